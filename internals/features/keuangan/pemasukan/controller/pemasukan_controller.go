// file: internals/features/keuangan/pemasukan/controller/pemasukan_controller.go
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

	"desakeu_backend/internals/features/keuangan/pemasukan/model"
	helper "desakeu_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

type PemasukanCreateDTO struct {
	PemasukanKode     string     `json:"pemasukan_kode" validate:"omitempty,max=30"`
	PemasukanKategori string     `json:"pemasukan_kategori" validate:"required,max=120"`
	PemasukanUraian   string     `json:"pemasukan_uraian" validate:"omitempty,max=200"`
	PemasukanJumlah   int64      `json:"pemasukan_jumlah" validate:"required,gt=0"`
	PemasukanTanggal  *time.Time `json:"pemasukan_tanggal,omitempty"`
	PemasukanSumber   string     `json:"pemasukan_sumber" validate:"omitempty,max=120"`
}

func parseTahun(c *fiber.Ctx) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(c.Params("tahun")))
	if err != nil || t < 2000 || t > 2100 {
		return 0, errors.New("tahun tidak valid")
	}
	return t, nil
}

// GET /api/a/:tahun/pemasukan
func (h *Handler) List(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []model.Pemasukan
	if err := h.DB.WithContext(c.UserContext()).
		Where("pemasukan_tahun = ?", tahun).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	helper.SortByKode(rows, func(r model.Pemasukan) string { return r.PemasukanKode })
	return helper.JsonList(c, "daftar pemasukan", rows, len(rows))
}

// POST /api/a/:tahun/pemasukan
func (h *Handler) Create(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var in PemasukanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := model.Pemasukan{
		PemasukanTahun:    tahun,
		PemasukanKode:     in.PemasukanKode,
		PemasukanKategori: in.PemasukanKategori,
		PemasukanUraian:   in.PemasukanUraian,
		PemasukanJumlah:   in.PemasukanJumlah,
		PemasukanTanggal:  in.PemasukanTanggal,
		PemasukanSumber:   in.PemasukanSumber,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "pemasukan dicatat", m)
}

// PATCH /api/a/:tahun/pemasukan/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var in PemasukanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.Pemasukan
	if err := h.DB.WithContext(c.UserContext()).First(&m,
		"pemasukan_id = ? AND pemasukan_tahun = ?", id, tahun).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "pemasukan tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m.PemasukanKode = in.PemasukanKode
	m.PemasukanKategori = in.PemasukanKategori
	m.PemasukanUraian = in.PemasukanUraian
	m.PemasukanJumlah = in.PemasukanJumlah
	m.PemasukanTanggal = in.PemasukanTanggal
	m.PemasukanSumber = in.PemasukanSumber
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "pemasukan diupdate", m)
}

// DELETE /api/a/:tahun/pemasukan/:id
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
		Delete(&model.Pemasukan{}, "pemasukan_id = ? AND pemasukan_tahun = ?", id, tahun)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "pemasukan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "pemasukan dihapus", nil)
}
