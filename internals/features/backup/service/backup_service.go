// file: internals/features/backup/service/backup_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	subBidangModel "desakeu_backend/internals/features/anggaran/subbidang/model"
	tahunModel "desakeu_backend/internals/features/anggaran/tahun/model"
	pemasukanModel "desakeu_backend/internals/features/keuangan/pemasukan/model"
	pembiayaanModel "desakeu_backend/internals/features/keuangan/pembiayaan/model"
	pengeluaranModel "desakeu_backend/internals/features/keuangan/pengeluaran/model"
	lampiranModel "desakeu_backend/internals/features/lampiran/model"
	narasiModel "desakeu_backend/internals/features/narasi/model"
	"desakeu_backend/internals/helpers/tahunlock"
)

// VersiArsip dinaikkan tiap format arsip berubah tidak kompatibel.
const VersiArsip = 1

var (
	ErrVersiArsip = errors.New("versi arsip tidak didukung")
	ErrTahunBeda  = errors.New("tahun arsip tidak sama dengan tahun tujuan")
)

// ArsipTahun: seluruh data satu tahun anggaran dalam satu dokumen JSON.
// Profil desa sengaja tidak ikut — profil bersifat global, bukan milik
// satu tahun.
type ArsipTahun struct {
	Versi   int       `json:"versi"`
	Tahun   int       `json:"tahun"`
	Dibuat  time.Time `json:"dibuat"`

	SubBidang   []subBidangModel.SubBidang              `json:"sub_bidang"`
	Kegiatan    []kegiatanModel.Kegiatan                `json:"kegiatan"`
	Pemasukan   []pemasukanModel.Pemasukan              `json:"pemasukan"`
	Pengeluaran []pengeluaranModel.Pengeluaran          `json:"pengeluaran"`
	Rincian     []pengeluaranModel.RincianPengeluaran   `json:"rincian"`
	Pembiayaan  []pembiayaanModel.Pembiayaan            `json:"pembiayaan"`
	Lampiran    []lampiranModel.Lampiran                `json:"lampiran"`
	Narasi      []narasiModel.Narasi                    `json:"narasi"`
}

// LaporanPulihkan: jumlah baris yang masuk kembali per koleksi.
type LaporanPulihkan struct {
	SubBidang   int `json:"sub_bidang"`
	Kegiatan    int `json:"kegiatan"`
	Pemasukan   int `json:"pemasukan"`
	Pengeluaran int `json:"pengeluaran"`
	Rincian     int `json:"rincian"`
	Pembiayaan  int `json:"pembiayaan"`
	Lampiran    int `json:"lampiran"`
	Narasi      int `json:"narasi"`
}

type Service struct {
	DB *gorm.DB
}

// Ekspor membaca seluruh data tahun `tahun` dalam satu transaksi di bawah
// read-lock tahun.
func (s *Service) Ekspor(ctx context.Context, tahun int) (*ArsipTahun, error) {
	tahunlock.RLock(tahun)
	defer tahunlock.RUnlock(tahun)

	a := &ArsipTahun{Versi: VersiArsip, Tahun: tahun, Dibuat: time.Now()}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sub_bidang_tahun = ?", tahun).Find(&a.SubBidang).Error; err != nil {
			return err
		}
		if err := tx.Where("kegiatan_tahun = ?", tahun).Find(&a.Kegiatan).Error; err != nil {
			return err
		}
		if err := tx.Where("pemasukan_tahun = ?", tahun).Find(&a.Pemasukan).Error; err != nil {
			return err
		}
		if err := tx.Where("pengeluaran_tahun = ?", tahun).Find(&a.Pengeluaran).Error; err != nil {
			return err
		}
		if err := tx.Where("rincian_tahun = ?", tahun).Find(&a.Rincian).Error; err != nil {
			return err
		}
		if err := tx.Where("pembiayaan_tahun = ?", tahun).Find(&a.Pembiayaan).Error; err != nil {
			return err
		}
		if err := tx.Where("lampiran_tahun = ?", tahun).Find(&a.Lampiran).Error; err != nil {
			return err
		}
		if err := tx.Where("narasi_tahun = ?", tahun).Find(&a.Narasi).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Pulihkan mengganti seluruh isi tahun `tahun` dengan isi arsip: hapus
// semua baris tahun itu, lalu sisipkan ulang dari arsip, semuanya dalam
// SATU transaksi di bawah write-lock tahun. Gagal di tengah = rollback
// total, data lama utuh.
func (s *Service) Pulihkan(ctx context.Context, tahun int, a *ArsipTahun) (LaporanPulihkan, error) {
	var rep LaporanPulihkan

	if a.Versi != VersiArsip {
		return rep, fmt.Errorf("%w: versi %d", ErrVersiArsip, a.Versi)
	}
	if a.Tahun != tahun {
		return rep, fmt.Errorf("%w: arsip %d, tujuan %d", ErrTahunBeda, a.Tahun, tahun)
	}

	tahunlock.Lock(tahun)
	defer tahunlock.Unlock(tahun)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// hapus dari anak ke induk
		for _, del := range []struct {
			model any
			where string
		}{
			{&lampiranModel.Lampiran{}, "lampiran_tahun = ?"},
			{&pengeluaranModel.RincianPengeluaran{}, "rincian_tahun = ?"},
			{&pengeluaranModel.Pengeluaran{}, "pengeluaran_tahun = ?"},
			{&pemasukanModel.Pemasukan{}, "pemasukan_tahun = ?"},
			{&pembiayaanModel.Pembiayaan{}, "pembiayaan_tahun = ?"},
			{&kegiatanModel.Kegiatan{}, "kegiatan_tahun = ?"},
			{&subBidangModel.SubBidang{}, "sub_bidang_tahun = ?"},
			{&narasiModel.Narasi{}, "narasi_tahun = ?"},
		} {
			if err := tx.Where(del.where, tahun).Delete(del.model).Error; err != nil {
				return err
			}
		}

		// sisip dari induk ke anak
		if len(a.SubBidang) > 0 {
			if err := tx.Create(&a.SubBidang).Error; err != nil {
				return err
			}
		}
		if len(a.Kegiatan) > 0 {
			if err := tx.Create(&a.Kegiatan).Error; err != nil {
				return err
			}
		}
		if len(a.Pemasukan) > 0 {
			if err := tx.Create(&a.Pemasukan).Error; err != nil {
				return err
			}
		}
		if len(a.Pengeluaran) > 0 {
			if err := tx.Create(&a.Pengeluaran).Error; err != nil {
				return err
			}
		}
		if len(a.Rincian) > 0 {
			if err := tx.Create(&a.Rincian).Error; err != nil {
				return err
			}
		}
		if len(a.Pembiayaan) > 0 {
			if err := tx.Create(&a.Pembiayaan).Error; err != nil {
				return err
			}
		}
		if len(a.Lampiran) > 0 {
			if err := tx.Create(&a.Lampiran).Error; err != nil {
				return err
			}
		}
		if len(a.Narasi) > 0 {
			if err := tx.Create(&a.Narasi).Error; err != nil {
				return err
			}
		}

		// pastikan tahunnya tercatat di daftar tahun anggaran
		var th tahunModel.TahunAnggaran
		err := tx.First(&th, "tahun_anggaran_tahun = ?", tahun).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			th = tahunModel.TahunAnggaran{TahunAnggaranTahun: tahun}
			if err := tx.Create(&th).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return rep, err
	}

	rep.SubBidang = len(a.SubBidang)
	rep.Kegiatan = len(a.Kegiatan)
	rep.Pemasukan = len(a.Pemasukan)
	rep.Pengeluaran = len(a.Pengeluaran)
	rep.Rincian = len(a.Rincian)
	rep.Pembiayaan = len(a.Pembiayaan)
	rep.Lampiran = len(a.Lampiran)
	rep.Narasi = len(a.Narasi)
	return rep, nil
}
