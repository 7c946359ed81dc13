// file: internals/features/laporan/service/snapshot.go
package service

import (
	"context"

	"gorm.io/gorm"

	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	subBidangModel "desakeu_backend/internals/features/anggaran/subbidang/model"
	profilModel "desakeu_backend/internals/features/desa/profil/model"
	pemasukanModel "desakeu_backend/internals/features/keuangan/pemasukan/model"
	pembiayaanModel "desakeu_backend/internals/features/keuangan/pembiayaan/model"
	pengeluaranModel "desakeu_backend/internals/features/keuangan/pengeluaran/model"
	lampiranModel "desakeu_backend/internals/features/lampiran/model"
	narasiModel "desakeu_backend/internals/features/narasi/model"
	"desakeu_backend/internals/helpers/tahunlock"
)

// LaporanSnapshot: potret lengkap satu tahun anggaran, dimuat dalam SATU
// transaksi read-only di bawah read-lock tahun. Semua renderer membaca
// snapshot yang sama — tidak ada query susulan di tengah render, jadi
// kaskade yang jalan bersamaan tidak bisa membuat angka antar-dokumen
// berbeda.
type LaporanSnapshot struct {
	Tahun int

	Profil    profilModel.ProfilDesa
	Perangkat []profilModel.PerangkatDesa

	SubBidang   []subBidangModel.SubBidang
	Kegiatan    []kegiatanModel.Kegiatan
	Pemasukan   []pemasukanModel.Pemasukan
	Pengeluaran []pengeluaranModel.Pengeluaran
	Rincian     []pengeluaranModel.RincianPengeluaran
	Pembiayaan  []pembiayaanModel.Pembiayaan
	Lampiran    []lampiranModel.Lampiran
	Narasi      narasiModel.Narasi
}

// MuatSnapshot memuat seluruh data tahun `tahun`. Profil dan narasi boleh
// kosong (struct zero-value) — blocker ekspor ditentukan belakangan oleh
// CekEkspor, bukan di sini.
func MuatSnapshot(ctx context.Context, db *gorm.DB, tahun int) (*LaporanSnapshot, error) {
	tahunlock.RLock(tahun)
	defer tahunlock.RUnlock(tahun)

	snap := &LaporanSnapshot{Tahun: tahun}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&snap.Profil).Error; err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		if err := tx.Order("perangkat_desa_urutan ASC").
			Find(&snap.Perangkat).Error; err != nil {
			return err
		}
		if err := tx.Where("sub_bidang_tahun = ?", tahun).
			Find(&snap.SubBidang).Error; err != nil {
			return err
		}
		if err := tx.Where("kegiatan_tahun = ?", tahun).
			Find(&snap.Kegiatan).Error; err != nil {
			return err
		}
		if err := tx.Where("pemasukan_tahun = ?", tahun).
			Find(&snap.Pemasukan).Error; err != nil {
			return err
		}
		if err := tx.Where("pengeluaran_tahun = ?", tahun).
			Find(&snap.Pengeluaran).Error; err != nil {
			return err
		}
		if err := tx.Where("rincian_tahun = ?", tahun).
			Find(&snap.Rincian).Error; err != nil {
			return err
		}
		if err := tx.Where("pembiayaan_tahun = ?", tahun).
			Find(&snap.Pembiayaan).Error; err != nil {
			return err
		}
		if err := tx.Where("lampiran_tahun = ?", tahun).
			Find(&snap.Lampiran).Error; err != nil {
			return err
		}
		if err := tx.First(&snap.Narasi, "narasi_tahun = ?", tahun).Error; err != nil &&
			err != gorm.ErrRecordNotFound {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	snap.Narasi.NarasiTahun = tahun
	return snap, nil
}
