// file: internals/features/keuangan/pengeluaran/model/pengeluaran_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pengeluaran: buku kas belanja desa, flat per tahun. Bisa punya nol atau
// lebih baris rincian (nota / HOK) di expense_items.
type Pengeluaran struct {
	PengeluaranID uuid.UUID `json:"pengeluaran_id" gorm:"column:pengeluaran_id;type:uuid;primaryKey"`

	PengeluaranTahun    int    `json:"pengeluaran_tahun" gorm:"column:pengeluaran_tahun;type:int;not null;index:idx_pengeluaran_tahun"`
	PengeluaranKode     string `json:"pengeluaran_kode" gorm:"column:pengeluaran_kode;type:varchar(30)"`
	PengeluaranKategori string `json:"pengeluaran_kategori" gorm:"column:pengeluaran_kategori;type:varchar(120);not null"`
	PengeluaranUraian   string `json:"pengeluaran_uraian" gorm:"column:pengeluaran_uraian;type:varchar(200)"`

	PengeluaranJumlah   int64      `json:"pengeluaran_jumlah" gorm:"column:pengeluaran_jumlah;type:bigint;not null"`
	PengeluaranTanggal  *time.Time `json:"pengeluaran_tanggal,omitempty" gorm:"column:pengeluaran_tanggal;type:date"`
	PengeluaranPenerima string     `json:"pengeluaran_penerima" gorm:"column:pengeluaran_penerima;type:varchar(120)"`

	PengeluaranCreatedAt time.Time `json:"pengeluaran_created_at" gorm:"column:pengeluaran_created_at;not null;autoCreateTime"`
	PengeluaranUpdatedAt time.Time `json:"pengeluaran_updated_at" gorm:"column:pengeluaran_updated_at;not null;autoUpdateTime"`
}

func (Pengeluaran) TableName() string { return "expenses" }

func (m *Pengeluaran) BeforeCreate(tx *gorm.DB) error {
	if m.PengeluaranID == uuid.Nil {
		m.PengeluaranID = uuid.New()
	}
	return nil
}

// --- ENUM jenis rincian ------------------------------------------------------
type JenisRincian string

const (
	RincianNota JenisRincian = "nota"
	RincianHOK  JenisRincian = "hok" // hari orang kerja
)

// RincianPengeluaran: baris detail belanja, volume × harga satuan = jumlah.
type RincianPengeluaran struct {
	RincianID            uuid.UUID `json:"rincian_id" gorm:"column:rincian_id;type:uuid;primaryKey"`
	RincianPengeluaranID uuid.UUID `json:"rincian_pengeluaran_id" gorm:"column:rincian_pengeluaran_id;type:uuid;not null;index:idx_rincian_pengeluaran"`

	RincianTahun  int          `json:"rincian_tahun" gorm:"column:rincian_tahun;type:int;not null;index:idx_rincian_tahun"`
	RincianJenis  JenisRincian `json:"rincian_jenis" gorm:"column:rincian_jenis;type:varchar(10);not null;default:'nota'"`
	RincianUraian string       `json:"rincian_uraian" gorm:"column:rincian_uraian;type:varchar(200);not null"`

	RincianVolume      float64 `json:"rincian_volume" gorm:"column:rincian_volume;type:numeric;not null;default:0"`
	RincianSatuan      string  `json:"rincian_satuan" gorm:"column:rincian_satuan;type:varchar(30)"`
	RincianHargaSatuan int64   `json:"rincian_harga_satuan" gorm:"column:rincian_harga_satuan;type:bigint;not null;default:0"`
	RincianJumlah      int64   `json:"rincian_jumlah" gorm:"column:rincian_jumlah;type:bigint;not null;default:0"`

	RincianCreatedAt time.Time `json:"rincian_created_at" gorm:"column:rincian_created_at;not null;autoCreateTime"`
}

func (RincianPengeluaran) TableName() string { return "expense_items" }

func (m *RincianPengeluaran) BeforeCreate(tx *gorm.DB) error {
	if m.RincianID == uuid.Nil {
		m.RincianID = uuid.New()
	}
	return nil
}
