// file: internals/features/narasi/controller/narasi_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/narasi/model"
	helper "desakeu_backend/internals/helpers"
)

type Handler struct {
	DB *gorm.DB
}

type NarasiUpdateDTO struct {
	NarasiKataPengantar string `json:"narasi_kata_pengantar"`
	NarasiLatarBelakang string `json:"narasi_latar_belakang"`
	NarasiMaksudTujuan  string `json:"narasi_maksud_tujuan"`
	NarasiDasarHukum    string `json:"narasi_dasar_hukum"`
	NarasiPelaksanaan   string `json:"narasi_pelaksanaan"`
	NarasiHambatan      string `json:"narasi_hambatan"`
	NarasiSaran         string `json:"narasi_saran"`
}

func parseTahun(c *fiber.Ctx) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(c.Params("tahun")))
	if err != nil || t < 2000 || t > 2100 {
		return 0, errors.New("tahun tidak valid")
	}
	return t, nil
}

// GET /api/a/:tahun/narasi
func (h *Handler) Get(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var m model.Narasi
	err = h.DB.WithContext(c.UserContext()).First(&m, "narasi_tahun = ?", tahun).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	m.NarasiTahun = tahun
	return helper.JsonOK(c, "narasi laporan", m)
}

// PUT /api/a/:tahun/narasi  (upsert satu baris per tahun)
func (h *Handler) Upsert(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var in NarasiUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}

	var m model.Narasi
	err = h.DB.WithContext(c.UserContext()).First(&m, "narasi_tahun = ?", tahun).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = model.Narasi{NarasiTahun: tahun}
	case err != nil:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m.NarasiKataPengantar = in.NarasiKataPengantar
	m.NarasiLatarBelakang = in.NarasiLatarBelakang
	m.NarasiMaksudTujuan = in.NarasiMaksudTujuan
	m.NarasiDasarHukum = in.NarasiDasarHukum
	m.NarasiPelaksanaan = in.NarasiPelaksanaan
	m.NarasiHambatan = in.NarasiHambatan
	m.NarasiSaran = in.NarasiSaran

	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "narasi disimpan", m)
}
