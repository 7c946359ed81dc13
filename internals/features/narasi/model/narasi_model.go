// file: internals/features/narasi/model/narasi_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Narasi: satu baris per tahun anggaran berisi bagian teks bebas laporan.
// Bagian kosong diganti teks boilerplate saat render (bukan saat simpan).
type Narasi struct {
	NarasiID    uuid.UUID `json:"narasi_id" gorm:"column:narasi_id;type:uuid;primaryKey"`
	NarasiTahun int       `json:"narasi_tahun" gorm:"column:narasi_tahun;type:int;not null;uniqueIndex:uq_narasi_tahun"`

	NarasiKataPengantar string `json:"narasi_kata_pengantar" gorm:"column:narasi_kata_pengantar;type:text"`
	NarasiLatarBelakang string `json:"narasi_latar_belakang" gorm:"column:narasi_latar_belakang;type:text"`
	NarasiMaksudTujuan  string `json:"narasi_maksud_tujuan" gorm:"column:narasi_maksud_tujuan;type:text"`
	NarasiDasarHukum    string `json:"narasi_dasar_hukum" gorm:"column:narasi_dasar_hukum;type:text"`
	NarasiPelaksanaan   string `json:"narasi_pelaksanaan" gorm:"column:narasi_pelaksanaan;type:text"`
	NarasiHambatan      string `json:"narasi_hambatan" gorm:"column:narasi_hambatan;type:text"`
	NarasiSaran         string `json:"narasi_saran" gorm:"column:narasi_saran;type:text"`

	NarasiCreatedAt time.Time `json:"narasi_created_at" gorm:"column:narasi_created_at;not null;autoCreateTime"`
	NarasiUpdatedAt time.Time `json:"narasi_updated_at" gorm:"column:narasi_updated_at;not null;autoUpdateTime"`
}

func (Narasi) TableName() string { return "narrative_content" }

func (m *Narasi) BeforeCreate(tx *gorm.DB) error {
	if m.NarasiID == uuid.Nil {
		m.NarasiID = uuid.New()
	}
	return nil
}
