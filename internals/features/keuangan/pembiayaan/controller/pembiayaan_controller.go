// file: internals/features/keuangan/pembiayaan/controller/pembiayaan_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/keuangan/pembiayaan/model"
	helper "desakeu_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

type PembiayaanCreateDTO struct {
	PembiayaanJenis    model.JenisPembiayaan `json:"pembiayaan_jenis" validate:"required,oneof=penerimaan pengeluaran"`
	PembiayaanKode     string                `json:"pembiayaan_kode" validate:"omitempty,max=30"`
	PembiayaanKategori string                `json:"pembiayaan_kategori" validate:"required,max=120"`
	PembiayaanUraian   string                `json:"pembiayaan_uraian" validate:"omitempty,max=200"`
	PembiayaanJumlah   int64                 `json:"pembiayaan_jumlah" validate:"required,gt=0"`
	PembiayaanTanggal  *time.Time            `json:"pembiayaan_tanggal,omitempty"`
}

func parseTahun(c *fiber.Ctx) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(c.Params("tahun")))
	if err != nil || t < 2000 || t > 2100 {
		return 0, errors.New("tahun tidak valid")
	}
	return t, nil
}

// GET /api/a/:tahun/pembiayaan
func (h *Handler) List(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []model.Pembiayaan
	if err := h.DB.WithContext(c.UserContext()).
		Where("pembiayaan_tahun = ?", tahun).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	helper.SortByKode(rows, func(r model.Pembiayaan) string { return r.PembiayaanKode })
	return helper.JsonList(c, "daftar pembiayaan", rows, len(rows))
}

// POST /api/a/:tahun/pembiayaan
func (h *Handler) Create(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var in PembiayaanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := model.Pembiayaan{
		PembiayaanTahun:    tahun,
		PembiayaanJenis:    in.PembiayaanJenis,
		PembiayaanKode:     in.PembiayaanKode,
		PembiayaanKategori: in.PembiayaanKategori,
		PembiayaanUraian:   in.PembiayaanUraian,
		PembiayaanJumlah:   in.PembiayaanJumlah,
		PembiayaanTanggal:  in.PembiayaanTanggal,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "pembiayaan dicatat", m)
}

// PATCH /api/a/:tahun/pembiayaan/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var in PembiayaanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.Pembiayaan
	if err := h.DB.WithContext(c.UserContext()).First(&m,
		"pembiayaan_id = ? AND pembiayaan_tahun = ?", id, tahun).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "pembiayaan tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m.PembiayaanJenis = in.PembiayaanJenis
	m.PembiayaanKode = in.PembiayaanKode
	m.PembiayaanKategori = in.PembiayaanKategori
	m.PembiayaanUraian = in.PembiayaanUraian
	m.PembiayaanJumlah = in.PembiayaanJumlah
	m.PembiayaanTanggal = in.PembiayaanTanggal
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "pembiayaan diupdate", m)
}

// DELETE /api/a/:tahun/pembiayaan/:id
func (h *Handler) Delete(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	res := h.DB.WithContext(c.UserContext()).
		Delete(&model.Pembiayaan{}, "pembiayaan_id = ? AND pembiayaan_tahun = ?", id, tahun)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "pembiayaan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "pembiayaan dihapus", nil)
}
