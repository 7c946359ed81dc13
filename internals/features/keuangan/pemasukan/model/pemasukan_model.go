// file: internals/features/keuangan/pemasukan/model/pemasukan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pemasukan: buku kas pendapatan desa, flat per tahun.
type Pemasukan struct {
	PemasukanID uuid.UUID `json:"pemasukan_id" gorm:"column:pemasukan_id;type:uuid;primaryKey"`

	PemasukanTahun    int    `json:"pemasukan_tahun" gorm:"column:pemasukan_tahun;type:int;not null;index:idx_pemasukan_tahun"`
	PemasukanKode     string `json:"pemasukan_kode" gorm:"column:pemasukan_kode;type:varchar(30)"`
	PemasukanKategori string `json:"pemasukan_kategori" gorm:"column:pemasukan_kategori;type:varchar(120);not null"`
	PemasukanUraian   string `json:"pemasukan_uraian" gorm:"column:pemasukan_uraian;type:varchar(200)"`

	PemasukanJumlah  int64      `json:"pemasukan_jumlah" gorm:"column:pemasukan_jumlah;type:bigint;not null"`
	PemasukanTanggal *time.Time `json:"pemasukan_tanggal,omitempty" gorm:"column:pemasukan_tanggal;type:date"`
	PemasukanSumber  string     `json:"pemasukan_sumber" gorm:"column:pemasukan_sumber;type:varchar(120)"`

	PemasukanCreatedAt time.Time `json:"pemasukan_created_at" gorm:"column:pemasukan_created_at;not null;autoCreateTime"`
	PemasukanUpdatedAt time.Time `json:"pemasukan_updated_at" gorm:"column:pemasukan_updated_at;not null;autoUpdateTime"`
}

func (Pemasukan) TableName() string { return "incomes" }

func (m *Pemasukan) BeforeCreate(tx *gorm.DB) error {
	if m.PemasukanID == uuid.Nil {
		m.PemasukanID = uuid.New()
	}
	return nil
}
