// file: internals/features/lampiran/model/lampiran_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM induk lampiran -----------------------------------------------------
type IndukLampiran string

const (
	IndukKegiatan    IndukLampiran = "kegiatan"
	IndukPengeluaran IndukLampiran = "pengeluaran"
)

// Lampiran: metadata berkas bukti (foto, nota, dokumen) milik satu
// kegiatan atau satu pengeluaran. Objek binernya di OSS; menghapus induk
// wajib menghapus lampiran beserta binernya (kaskade).
type Lampiran struct {
	LampiranID uuid.UUID `json:"lampiran_id" gorm:"column:lampiran_id;type:uuid;primaryKey"`

	LampiranTahun      int           `json:"lampiran_tahun" gorm:"column:lampiran_tahun;type:int;not null;index:idx_lampiran_tahun"`
	LampiranIndukJenis IndukLampiran `json:"lampiran_induk_jenis" gorm:"column:lampiran_induk_jenis;type:varchar(15);not null;index:idx_lampiran_induk,priority:1"`
	LampiranIndukID    uuid.UUID     `json:"lampiran_induk_id" gorm:"column:lampiran_induk_id;type:uuid;not null;index:idx_lampiran_induk,priority:2"`

	LampiranNamaFile   string `json:"lampiran_nama_file" gorm:"column:lampiran_nama_file;type:varchar(200);not null"`
	LampiranURL        string `json:"lampiran_url" gorm:"column:lampiran_url;type:text;not null"`
	LampiranUkuran     int64  `json:"lampiran_ukuran" gorm:"column:lampiran_ukuran;type:bigint;not null;default:0"`
	LampiranTipe       string `json:"lampiran_tipe" gorm:"column:lampiran_tipe;type:varchar(100)"`
	LampiranKeterangan string `json:"lampiran_keterangan" gorm:"column:lampiran_keterangan;type:varchar(200)"`

	LampiranCreatedAt time.Time `json:"lampiran_created_at" gorm:"column:lampiran_created_at;not null;autoCreateTime"`
}

func (Lampiran) TableName() string { return "attachments" }

func (m *Lampiran) BeforeCreate(tx *gorm.DB) error {
	if m.LampiranID == uuid.Nil {
		m.LampiranID = uuid.New()
	}
	return nil
}
