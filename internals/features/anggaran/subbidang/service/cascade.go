// file: internals/features/anggaran/subbidang/service/cascade.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	"desakeu_backend/internals/features/anggaran/subbidang/model"
	lampiranModel "desakeu_backend/internals/features/lampiran/model"
	helper "desakeu_backend/internals/helpers"
	"desakeu_backend/internals/helpers/tahunlock"
)

var (
	ErrDuplikatNama   = errors.New("nama sub bidang sudah dipakai di bidang ini")
	ErrTidakDitemukan = errors.New("sub bidang tidak ditemukan")
)

// HapusBerkasFunc menghapus objek biner lampiran (OSS) berdasar URL.
// Di test diganti stub.
type HapusBerkasFunc func(url string) error

type Service struct {
	DB          *gorm.DB
	HapusBerkas HapusBerkasFunc
}

// LaporanKaskade merangkum efek samping kaskade hapus. Saat kaskade gagal
// di tengah, angka-angka ini memberi tahu pemanggil apa yang sudah hilang.
type LaporanKaskade struct {
	KegiatanDihapus int `json:"kegiatan_dihapus"`
	LampiranDihapus int `json:"lampiran_dihapus"`
	LampiranGagal   int `json:"lampiran_gagal"`
}

// List mengembalikan sub bidang satu bidang+tahun, urut kode rekening.
func (s *Service) List(ctx context.Context, tahun int, bidang string) ([]model.SubBidang, error) {
	var rows []model.SubBidang
	err := s.DB.WithContext(ctx).
		Where("sub_bidang_tahun = ? AND sub_bidang_bidang = ?", tahun, bidang).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	helper.SortByKode(rows, func(r model.SubBidang) string { return r.SubBidangKode })
	return rows, nil
}

// namaSudahAda: cek duplikat nama case-insensitive dalam bidang+tahun,
// opsional mengecualikan satu id (untuk rename diri sendiri).
func (s *Service) namaSudahAda(ctx context.Context, tahun int, bidang, nama string, excludeID uuid.UUID) (bool, error) {
	q := s.DB.WithContext(ctx).Model(&model.SubBidang{}).
		Where("sub_bidang_tahun = ? AND sub_bidang_bidang = ? AND LOWER(sub_bidang_nama) = ?",
			tahun, bidang, strings.ToLower(strings.TrimSpace(nama)))
	if excludeID != uuid.Nil {
		q = q.Where("sub_bidang_id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create menambah sub bidang baru. Gagal bila nama sudah ada
// (case-insensitive) di bidang+tahun yang sama.
func (s *Service) Create(ctx context.Context, m model.SubBidang) (model.SubBidang, error) {
	dup, err := s.namaSudahAda(ctx, m.SubBidangTahun, m.SubBidangBidang, m.SubBidangNama, uuid.Nil)
	if err != nil {
		return model.SubBidang{}, err
	}
	if dup {
		return model.SubBidang{}, ErrDuplikatNama
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return model.SubBidang{}, err
	}
	return m, nil
}

// Rename mengganti nama (dan kode) sub bidang DAN semua kegiatan yang
// masih memakai nama lama, dalam SATU transaksi: urutannya update baris
// sub bidang dulu, lalu bulk-update kegiatan. Gagal di salah satu step
// berarti keduanya batal; tidak ada keadaan setengah-rename.
func (s *Service) Rename(ctx context.Context, tahun int, bidang string, id uuid.UUID, namaBaru, kodeBaru string) (model.SubBidang, int64, error) {
	tahunlock.Lock(tahun)
	defer tahunlock.Unlock(tahun)

	var row model.SubBidang
	var diubah int64

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row,
			"sub_bidang_id = ? AND sub_bidang_tahun = ? AND sub_bidang_bidang = ?",
			id, tahun, bidang).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTidakDitemukan
			}
			return err
		}

		namaLama := row.SubBidangNama
		if !strings.EqualFold(namaLama, namaBaru) {
			var n int64
			if err := tx.Model(&model.SubBidang{}).
				Where("sub_bidang_tahun = ? AND sub_bidang_bidang = ? AND LOWER(sub_bidang_nama) = ? AND sub_bidang_id <> ?",
					tahun, bidang, strings.ToLower(strings.TrimSpace(namaBaru)), id).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrDuplikatNama
			}
		}

		row.SubBidangNama = namaBaru
		if kodeBaru != "" {
			row.SubBidangKode = kodeBaru
		}
		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		res := tx.Model(&kegiatanModel.Kegiatan{}).
			Where("kegiatan_tahun = ? AND kegiatan_bidang = ? AND kegiatan_sub_bidang = ?",
				tahun, bidang, namaLama).
			Update("kegiatan_sub_bidang", namaBaru)
		if res.Error != nil {
			return res.Error
		}
		diubah = res.RowsAffected
		return nil
	})
	if err != nil {
		return model.SubBidang{}, 0, err
	}
	return row, diubah, nil
}

// Delete menghapus sub bidang berikut seluruh dependennya:
//  1. kumpulkan kegiatan di bawahnya,
//  2. hapus lampiran tiap kegiatan — biner di OSS best-effort (log lalu
//     lanjut), baris metadata ikut dihapus,
//  3. hapus baris kegiatan,
//  4. hapus baris sub bidang.
//
// Gagal di step lampiran TIDAK menggagalkan kaskade; gagal di step
// kegiatan/sub bidang menghentikan sisanya dan laporan berisi berapa
// yang terlanjur terhapus.
func (s *Service) Delete(ctx context.Context, tahun int, bidang string, id uuid.UUID) (LaporanKaskade, error) {
	tahunlock.Lock(tahun)
	defer tahunlock.Unlock(tahun)

	rep := LaporanKaskade{}
	db := s.DB.WithContext(ctx)

	var row model.SubBidang
	if err := db.First(&row,
		"sub_bidang_id = ? AND sub_bidang_tahun = ? AND sub_bidang_bidang = ?",
		id, tahun, bidang).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rep, ErrTidakDitemukan
		}
		return rep, err
	}

	var kegiatan []kegiatanModel.Kegiatan
	if err := db.
		Where("kegiatan_tahun = ? AND kegiatan_bidang = ? AND kegiatan_sub_bidang = ?",
			tahun, bidang, row.SubBidangNama).
		Find(&kegiatan).Error; err != nil {
		return rep, err
	}

	// (2) lampiran: advisory cleanup
	for _, k := range kegiatan {
		var lampiran []lampiranModel.Lampiran
		if err := db.
			Where("lampiran_induk_jenis = ? AND lampiran_induk_id = ?",
				lampiranModel.IndukKegiatan, k.KegiatanID).
			Find(&lampiran).Error; err != nil {
			log.Printf("[WARN] kaskade: gagal baca lampiran kegiatan %s: %v", k.KegiatanID, err)
			rep.LampiranGagal++
			continue
		}
		for _, l := range lampiran {
			if s.HapusBerkas != nil {
				if err := s.HapusBerkas(l.LampiranURL); err != nil {
					log.Printf("[WARN] kaskade: gagal hapus biner lampiran %s: %v", l.LampiranID, err)
				}
			}
			if err := db.Delete(&lampiranModel.Lampiran{}, "lampiran_id = ?", l.LampiranID).Error; err != nil {
				log.Printf("[WARN] kaskade: gagal hapus metadata lampiran %s: %v", l.LampiranID, err)
				rep.LampiranGagal++
				continue
			}
			rep.LampiranDihapus++
		}
	}

	// (3) kegiatan: otoritatif, berhenti saat gagal
	for _, k := range kegiatan {
		if err := db.Delete(&kegiatanModel.Kegiatan{}, "kegiatan_id = ?", k.KegiatanID).Error; err != nil {
			return rep, fmt.Errorf("kaskade berhenti setelah %d dari %d kegiatan terhapus: %w",
				rep.KegiatanDihapus, len(kegiatan), err)
		}
		rep.KegiatanDihapus++
	}

	// (4) baris sub bidang
	if err := db.Delete(&model.SubBidang{}, "sub_bidang_id = ?", id).Error; err != nil {
		return rep, fmt.Errorf("kegiatan sudah terhapus (%d) tapi sub bidang gagal dihapus: %w",
			rep.KegiatanDihapus, err)
	}
	return rep, nil
}
