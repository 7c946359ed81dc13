// file: internals/features/desa/profil/model/profil_desa_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfilDesa: identitas desa untuk kop surat & blok tanda tangan.
// Global, tidak di-scope per tahun anggaran.
type ProfilDesa struct {
	ProfilDesaID uuid.UUID `json:"profil_desa_id" gorm:"column:profil_desa_id;type:uuid;primaryKey"`

	ProfilDesaNama      string `json:"profil_desa_nama" gorm:"column:profil_desa_nama;type:varchar(120);not null"`
	ProfilDesaKecamatan string `json:"profil_desa_kecamatan" gorm:"column:profil_desa_kecamatan;type:varchar(120)"`
	ProfilDesaKabupaten string `json:"profil_desa_kabupaten" gorm:"column:profil_desa_kabupaten;type:varchar(120)"`
	ProfilDesaProvinsi  string `json:"profil_desa_provinsi" gorm:"column:profil_desa_provinsi;type:varchar(120)"`

	// Label bebas, mis. "Tahun Anggaran 2025" / "Semester I 2025"
	ProfilDesaLabelTahun   string `json:"profil_desa_label_tahun" gorm:"column:profil_desa_label_tahun;type:varchar(60)"`
	ProfilDesaLabelPeriode string `json:"profil_desa_label_periode" gorm:"column:profil_desa_label_periode;type:varchar(60)"`

	ProfilDesaCreatedAt time.Time `json:"profil_desa_created_at" gorm:"column:profil_desa_created_at;not null;autoCreateTime"`
	ProfilDesaUpdatedAt time.Time `json:"profil_desa_updated_at" gorm:"column:profil_desa_updated_at;not null;autoUpdateTime"`
}

func (ProfilDesa) TableName() string { return "village_info" }

func (m *ProfilDesa) BeforeCreate(tx *gorm.DB) error {
	if m.ProfilDesaID == uuid.Nil {
		m.ProfilDesaID = uuid.New()
	}
	return nil
}

// PerangkatDesa: daftar pejabat (jabatan → nama) untuk blok tanda tangan.
type PerangkatDesa struct {
	PerangkatDesaID      uuid.UUID `json:"perangkat_desa_id" gorm:"column:perangkat_desa_id;type:uuid;primaryKey"`
	PerangkatDesaJabatan string    `json:"perangkat_desa_jabatan" gorm:"column:perangkat_desa_jabatan;type:varchar(80);not null"`
	PerangkatDesaNama    string    `json:"perangkat_desa_nama" gorm:"column:perangkat_desa_nama;type:varchar(120);not null"`
	PerangkatDesaUrutan  int       `json:"perangkat_desa_urutan" gorm:"column:perangkat_desa_urutan;type:int;not null;default:0"`

	PerangkatDesaCreatedAt time.Time `json:"perangkat_desa_created_at" gorm:"column:perangkat_desa_created_at;not null;autoCreateTime"`
	PerangkatDesaUpdatedAt time.Time `json:"perangkat_desa_updated_at" gorm:"column:perangkat_desa_updated_at;not null;autoUpdateTime"`
}

func (PerangkatDesa) TableName() string { return "officials" }

func (m *PerangkatDesa) BeforeCreate(tx *gorm.DB) error {
	if m.PerangkatDesaID == uuid.Nil {
		m.PerangkatDesaID = uuid.New()
	}
	return nil
}
