// file: internals/features/anggaran/tahun/model/tahun_anggaran_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TahunAnggaran: registri tahun fiskal. Semua koleksi keuangan dan
// kegiatan dipartisi oleh kolom tahun; tahun lama tidak pernah dihapus.
type TahunAnggaran struct {
	TahunAnggaranID    uuid.UUID `json:"tahun_anggaran_id" gorm:"column:tahun_anggaran_id;type:uuid;primaryKey"`
	TahunAnggaranTahun int       `json:"tahun_anggaran_tahun" gorm:"column:tahun_anggaran_tahun;type:int;not null;uniqueIndex:uq_tahun_anggaran_tahun"`

	TahunAnggaranCreatedAt time.Time `json:"tahun_anggaran_created_at" gorm:"column:tahun_anggaran_created_at;not null;autoCreateTime"`
}

func (TahunAnggaran) TableName() string { return "fiscal_years" }

func (m *TahunAnggaran) BeforeCreate(tx *gorm.DB) error {
	if m.TahunAnggaranID == uuid.Nil {
		m.TahunAnggaranID = uuid.New()
	}
	return nil
}
