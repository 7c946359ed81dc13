// file: internals/features/lampiran/controller/lampiran_controller.go
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

	"desakeu_backend/internals/features/lampiran/model"
	helper "desakeu_backend/internals/helpers"
	"desakeu_backend/internals/helpers/oss"
)

type Handler struct {
	DB *gorm.DB
}

func parseTahun(c *fiber.Ctx) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(c.Params("tahun")))
	if err != nil || t < 2000 || t > 2100 {
		return 0, errors.New("tahun tidak valid")
	}
	return t, nil
}

func parseInduk(c *fiber.Ctx) (model.IndukLampiran, uuid.UUID, error) {
	jenis := model.IndukLampiran(strings.TrimSpace(c.Query("induk_jenis")))
	if jenis != model.IndukKegiatan && jenis != model.IndukPengeluaran {
		return "", uuid.Nil, errors.New("induk_jenis harus kegiatan atau pengeluaran")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Query("induk_id")))
	if err != nil {
		return "", uuid.Nil, errors.New("induk_id tidak valid")
	}
	return jenis, id, nil
}

// GET /api/a/:tahun/lampiran?induk_jenis=...&induk_id=...
func (h *Handler) List(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	jenis, indukID, err := parseInduk(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []model.Lampiran
	if err := h.DB.WithContext(c.UserContext()).
		Where("lampiran_tahun = ? AND lampiran_induk_jenis = ? AND lampiran_induk_id = ?",
			tahun, jenis, indukID).
		Order("lampiran_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "daftar lampiran", rows, len(rows))
}

// POST /api/a/:tahun/lampiran  (multipart: file + induk_jenis + induk_id + keterangan)
func (h *Handler) Upload(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	jenis := model.IndukLampiran(strings.TrimSpace(c.FormValue("induk_jenis")))
	if jenis != model.IndukKegiatan && jenis != model.IndukPengeluaran {
		return helper.JsonError(c, http.StatusBadRequest, "induk_jenis harus kegiatan atau pengeluaran")
	}
	indukID, err := uuid.Parse(strings.TrimSpace(c.FormValue("induk_id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "induk_id tidak valid")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "file wajib diunggah")
	}

	svc, err := oss.NewOSSServiceFromEnv("")
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	url, ct, err := svc.UploadFromFormFile(c.UserContext(), tahun, string(jenis), fh)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m := model.Lampiran{
		LampiranTahun:      tahun,
		LampiranIndukJenis: jenis,
		LampiranIndukID:    indukID,
		LampiranNamaFile:   fh.Filename,
		LampiranURL:        url,
		LampiranUkuran:     fh.Size,
		LampiranTipe:       ct,
		LampiranKeterangan: strings.TrimSpace(c.FormValue("keterangan")),
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		// metadata gagal: bersihkan biner yang terlanjur naik
		_ = svc.DeleteByPublicURL(c.UserContext(), url)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "lampiran diunggah", m)
}

// DELETE /api/a/:tahun/lampiran/:id
func (h *Handler) Delete(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.Lampiran
	if err := h.DB.WithContext(c.UserContext()).First(&m,
		"lampiran_id = ? AND lampiran_tahun = ?", id, tahun).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "lampiran tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	_ = oss.DeleteByPublicURLENV(m.LampiranURL, 10*time.Second) // advisory

	if err := h.DB.WithContext(c.UserContext()).
		Delete(&model.Lampiran{}, "lampiran_id = ?", id).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "lampiran dihapus", nil)
}
