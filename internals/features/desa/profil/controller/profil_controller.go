// file: internals/features/desa/profil/controller/profil_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/desa/profil/model"
	helper "desakeu_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

type ProfilUpdateDTO struct {
	ProfilDesaNama         string `json:"profil_desa_nama" validate:"required,max=120"`
	ProfilDesaKecamatan    string `json:"profil_desa_kecamatan" validate:"omitempty,max=120"`
	ProfilDesaKabupaten    string `json:"profil_desa_kabupaten" validate:"omitempty,max=120"`
	ProfilDesaProvinsi     string `json:"profil_desa_provinsi" validate:"omitempty,max=120"`
	ProfilDesaLabelTahun   string `json:"profil_desa_label_tahun" validate:"omitempty,max=60"`
	ProfilDesaLabelPeriode string `json:"profil_desa_label_periode" validate:"omitempty,max=60"`
}

type PerangkatDTO struct {
	PerangkatDesaJabatan string `json:"perangkat_desa_jabatan" validate:"required,max=80"`
	PerangkatDesaNama    string `json:"perangkat_desa_nama" validate:"required,max=120"`
	PerangkatDesaUrutan  int    `json:"perangkat_desa_urutan" validate:"min=0"`
}

// GET /api/a/profil-desa
// Profil dibuat implicit saat pertama kali di-update; GET sebelum itu
// mengembalikan profil kosong.
func (h *Handler) GetProfil(c *fiber.Ctx) error {
	var m model.ProfilDesa
	err := h.DB.WithContext(c.UserContext()).First(&m).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var perangkat []model.PerangkatDesa
	if err := h.DB.WithContext(c.UserContext()).
		Order("perangkat_desa_urutan ASC").Find(&perangkat).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "profil desa", fiber.Map{
		"profil":    m,
		"perangkat": perangkat,
	})
}

// PUT /api/a/profil-desa
func (h *Handler) UpsertProfil(c *fiber.Ctx) error {
	var in ProfilUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.ProfilDesa
	err := h.DB.WithContext(c.UserContext()).First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = model.ProfilDesa{}
	case err != nil:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m.ProfilDesaNama = in.ProfilDesaNama
	m.ProfilDesaKecamatan = in.ProfilDesaKecamatan
	m.ProfilDesaKabupaten = in.ProfilDesaKabupaten
	m.ProfilDesaProvinsi = in.ProfilDesaProvinsi
	m.ProfilDesaLabelTahun = in.ProfilDesaLabelTahun
	m.ProfilDesaLabelPeriode = in.ProfilDesaLabelPeriode

	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "profil desa disimpan", m)
}

// POST /api/a/profil-desa/perangkat
func (h *Handler) CreatePerangkat(c *fiber.Ctx) error {
	var in PerangkatDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	m := model.PerangkatDesa{
		PerangkatDesaJabatan: in.PerangkatDesaJabatan,
		PerangkatDesaNama:    in.PerangkatDesaNama,
		PerangkatDesaUrutan:  in.PerangkatDesaUrutan,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "perangkat ditambahkan", m)
}

// DELETE /api/a/profil-desa/perangkat/:id
func (h *Handler) DeletePerangkat(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.WithContext(c.UserContext()).
		Delete(&model.PerangkatDesa{}, "perangkat_desa_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "perangkat tidak ditemukan")
	}
	return helper.JsonDeleted(c, "perangkat dihapus", nil)
}
