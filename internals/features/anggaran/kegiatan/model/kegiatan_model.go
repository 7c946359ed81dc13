// file: internals/features/anggaran/kegiatan/model/kegiatan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM status kegiatan ----------------------------------------------------
type StatusKegiatan string

const (
	StatusDirencanakan StatusKegiatan = "direncanakan"
	StatusBerjalan     StatusKegiatan = "berjalan"
	StatusSelesai      StatusKegiatan = "selesai"
)

// --- ENUM jenis laporan ------------------------------------------------------
type JenisLaporan string

const (
	JenisFisik    JenisLaporan = "fisik"
	JenisNonFisik JenisLaporan = "nonfisik"
)

// Kegiatan: unit kerja berdana di bawah satu pasangan bidang + sub bidang.
// Bidang dan sub bidang direfer lewat NAMA; konsistensinya dijaga oleh
// kaskade rename/hapus di fitur subbidang.
type Kegiatan struct {
	KegiatanID uuid.UUID `json:"kegiatan_id" gorm:"column:kegiatan_id;type:uuid;primaryKey"`

	KegiatanTahun     int    `json:"kegiatan_tahun" gorm:"column:kegiatan_tahun;type:int;not null;index:idx_kegiatan_tahun_bidang,priority:1"`
	KegiatanBidang    string `json:"kegiatan_bidang" gorm:"column:kegiatan_bidang;type:varchar(120);not null;index:idx_kegiatan_tahun_bidang,priority:2"`
	KegiatanSubBidang string `json:"kegiatan_sub_bidang" gorm:"column:kegiatan_sub_bidang;type:varchar(160);not null;index:idx_kegiatan_sub_bidang"`

	KegiatanKode string `json:"kegiatan_kode" gorm:"column:kegiatan_kode;type:varchar(30)"`
	KegiatanNama string `json:"kegiatan_nama" gorm:"column:kegiatan_nama;type:varchar(200);not null"`

	KegiatanStatus StatusKegiatan `json:"kegiatan_status" gorm:"column:kegiatan_status;type:varchar(20);not null;default:'direncanakan'"`
	KegiatanJenis  JenisLaporan   `json:"kegiatan_jenis" gorm:"column:kegiatan_jenis;type:varchar(10);not null;default:'fisik'"`

	// 0..100
	KegiatanProgres int `json:"kegiatan_progres" gorm:"column:kegiatan_progres;type:int;not null;default:0"`

	// Rupiah bulat. Realisasi boleh melebihi anggaran (warning, bukan blokir).
	KegiatanAnggaran  int64 `json:"kegiatan_anggaran" gorm:"column:kegiatan_anggaran;type:bigint;not null;default:0"`
	KegiatanRealisasi int64 `json:"kegiatan_realisasi" gorm:"column:kegiatan_realisasi;type:bigint;not null;default:0"`

	KegiatanPelaksana      string     `json:"kegiatan_pelaksana" gorm:"column:kegiatan_pelaksana;type:varchar(120)"`
	KegiatanTanggalMulai   *time.Time `json:"kegiatan_tanggal_mulai,omitempty" gorm:"column:kegiatan_tanggal_mulai;type:date"`
	KegiatanTanggalSelesai *time.Time `json:"kegiatan_tanggal_selesai,omitempty" gorm:"column:kegiatan_tanggal_selesai;type:date"`
	KegiatanLokasi         string     `json:"kegiatan_lokasi" gorm:"column:kegiatan_lokasi;type:varchar(200)"`
	KegiatanDurasi         string     `json:"kegiatan_durasi" gorm:"column:kegiatan_durasi;type:varchar(60)"`

	KegiatanCreatedAt time.Time `json:"kegiatan_created_at" gorm:"column:kegiatan_created_at;not null;autoCreateTime"`
	KegiatanUpdatedAt time.Time `json:"kegiatan_updated_at" gorm:"column:kegiatan_updated_at;not null;autoUpdateTime"`
}

func (Kegiatan) TableName() string { return "activities" }

func (m *Kegiatan) BeforeCreate(tx *gorm.DB) error {
	if m.KegiatanID == uuid.Nil {
		m.KegiatanID = uuid.New()
	}
	return nil
}
