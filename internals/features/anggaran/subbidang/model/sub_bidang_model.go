// file: internals/features/anggaran/subbidang/model/sub_bidang_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubBidang: subdivisi bidang yang dikelola user, di-scope per tahun.
// Kegiatan merefer sub bidang lewat NAMA (bukan id) — karena itu rename
// dan hapus wajib kaskade ke kegiatan (lihat service/cascade.go).
type SubBidang struct {
	SubBidangID uuid.UUID `json:"sub_bidang_id" gorm:"column:sub_bidang_id;type:uuid;primaryKey"`

	SubBidangTahun  int    `json:"sub_bidang_tahun" gorm:"column:sub_bidang_tahun;type:int;not null;index:idx_sub_bidang_tahun_bidang,priority:1"`
	SubBidangBidang string `json:"sub_bidang_bidang" gorm:"column:sub_bidang_bidang;type:varchar(120);not null;index:idx_sub_bidang_tahun_bidang,priority:2"`

	SubBidangNama string `json:"sub_bidang_nama" gorm:"column:sub_bidang_nama;type:varchar(160);not null"`
	SubBidangKode string `json:"sub_bidang_kode" gorm:"column:sub_bidang_kode;type:varchar(30)"`

	SubBidangCreatedAt time.Time `json:"sub_bidang_created_at" gorm:"column:sub_bidang_created_at;not null;autoCreateTime"`
	SubBidangUpdatedAt time.Time `json:"sub_bidang_updated_at" gorm:"column:sub_bidang_updated_at;not null;autoUpdateTime"`
}

func (SubBidang) TableName() string { return "budget_sub_fields" }

func (m *SubBidang) BeforeCreate(tx *gorm.DB) error {
	if m.SubBidangID == uuid.Nil {
		m.SubBidangID = uuid.New()
	}
	return nil
}
