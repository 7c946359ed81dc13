// file: internals/features/keuangan/pembiayaan/model/pembiayaan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM arah pembiayaan ----------------------------------------------------
type JenisPembiayaan string

const (
	PembiayaanPenerimaan  JenisPembiayaan = "penerimaan"
	PembiayaanPengeluaran JenisPembiayaan = "pengeluaran"
)

// Pembiayaan: arus kas non-operasional (penerimaan/pengeluaran pembiayaan),
// terpisah dari pemasukan dan belanja. Netonya ikut membentuk SiLPA.
type Pembiayaan struct {
	PembiayaanID uuid.UUID `json:"pembiayaan_id" gorm:"column:pembiayaan_id;type:uuid;primaryKey"`

	PembiayaanTahun    int             `json:"pembiayaan_tahun" gorm:"column:pembiayaan_tahun;type:int;not null;index:idx_pembiayaan_tahun"`
	PembiayaanJenis    JenisPembiayaan `json:"pembiayaan_jenis" gorm:"column:pembiayaan_jenis;type:varchar(15);not null"`
	PembiayaanKode     string          `json:"pembiayaan_kode" gorm:"column:pembiayaan_kode;type:varchar(30)"`
	PembiayaanKategori string          `json:"pembiayaan_kategori" gorm:"column:pembiayaan_kategori;type:varchar(120);not null"`
	PembiayaanUraian   string          `json:"pembiayaan_uraian" gorm:"column:pembiayaan_uraian;type:varchar(200)"`

	PembiayaanJumlah  int64      `json:"pembiayaan_jumlah" gorm:"column:pembiayaan_jumlah;type:bigint;not null"`
	PembiayaanTanggal *time.Time `json:"pembiayaan_tanggal,omitempty" gorm:"column:pembiayaan_tanggal;type:date"`

	PembiayaanCreatedAt time.Time `json:"pembiayaan_created_at" gorm:"column:pembiayaan_created_at;not null;autoCreateTime"`
	PembiayaanUpdatedAt time.Time `json:"pembiayaan_updated_at" gorm:"column:pembiayaan_updated_at;not null;autoUpdateTime"`
}

func (Pembiayaan) TableName() string { return "financings" }

func (m *Pembiayaan) BeforeCreate(tx *gorm.DB) error {
	if m.PembiayaanID == uuid.Nil {
		m.PembiayaanID = uuid.New()
	}
	return nil
}
