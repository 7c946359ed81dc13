// file: internals/features/anggaran/kegiatan/controller/kegiatan_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/anggaran/kegiatan/dto"
	"desakeu_backend/internals/features/anggaran/kegiatan/model"
	subBidangModel "desakeu_backend/internals/features/anggaran/subbidang/model"
	lampiranModel "desakeu_backend/internals/features/lampiran/model"
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

// GET /api/a/:tahun/kegiatan?bidang=...&sub_bidang=...
func (h *Handler) ListKegiatan(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := h.DB.WithContext(c.UserContext()).Model(&model.Kegiatan{}).
		Where("kegiatan_tahun = ?", tahun)
	if b := strings.TrimSpace(c.Query("bidang")); b != "" {
		q = q.Where("kegiatan_bidang = ?", b)
	}
	if sb := strings.TrimSpace(c.Query("sub_bidang")); sb != "" {
		q = q.Where("kegiatan_sub_bidang = ?", sb)
	}

	var rows []model.Kegiatan
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	helper.SortByKode(rows, func(r model.Kegiatan) string { return r.KegiatanKode })
	return helper.JsonList(c, "daftar kegiatan", dto.ToKegiatanResponses(rows), len(rows))
}

// POST /api/a/:tahun/kegiatan
func (h *Handler) CreateKegiatan(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var in dto.KegiatanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	in.KegiatanTahun = tahun
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if !dto.ValidasiTanggal(in.KegiatanTanggalMulai, in.KegiatanTanggalSelesai) {
		return helper.JsonValidationError(c, map[string][]string{
			"kegiatan_tanggal_selesai": {"tidak boleh mendahului tanggal mulai"},
		})
	}

	// sub bidang harus ada di tahun+bidang tsb (refer by name)
	var n int64
	if err := h.DB.WithContext(c.UserContext()).Model(&subBidangModel.SubBidang{}).
		Where("sub_bidang_tahun = ? AND sub_bidang_bidang = ? AND sub_bidang_nama = ?",
			tahun, in.KegiatanBidang, in.KegiatanSubBidang).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonError(c, http.StatusBadRequest, "sub bidang tidak ditemukan di bidang/tahun ini")
	}

	m := dto.ToKegiatanModel(in)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "kegiatan dibuat",
		"data":     dto.ToKegiatanResponse(m),
		"warnings": dto.PeringatanKegiatan(m),
	})
}

// PATCH /api/a/:tahun/kegiatan/:id
func (h *Handler) UpdateKegiatan(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.KegiatanUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.Kegiatan
	if err := h.DB.WithContext(c.UserContext()).First(&m,
		"kegiatan_id = ? AND kegiatan_tahun = ?", id, tahun).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "kegiatan tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyKegiatanUpdate(&m, in)
	if !dto.ValidasiTanggal(m.KegiatanTanggalMulai, m.KegiatanTanggalSelesai) {
		return helper.JsonValidationError(c, map[string][]string{
			"kegiatan_tanggal_selesai": {"tidak boleh mendahului tanggal mulai"},
		})
	}
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":  true,
		"message":  "kegiatan diupdate",
		"data":     dto.ToKegiatanResponse(m),
		"warnings": dto.PeringatanKegiatan(m),
	})
}

// DELETE /api/a/:tahun/kegiatan/:id
// Ikut menghapus lampiran kegiatan: biner best-effort, metadata wajib.
func (h *Handler) DeleteKegiatan(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	db := h.DB.WithContext(c.UserContext())

	var m model.Kegiatan
	if err := db.First(&m, "kegiatan_id = ? AND kegiatan_tahun = ?", id, tahun).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "kegiatan tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var lampiran []lampiranModel.Lampiran
	if err := db.Where("lampiran_induk_jenis = ? AND lampiran_induk_id = ?",
		lampiranModel.IndukKegiatan, id).Find(&lampiran).Error; err == nil {
		for _, l := range lampiran {
			_ = oss.DeleteByPublicURLENV(l.LampiranURL, 10*time.Second) // advisory
		}
		if err := db.Delete(&lampiranModel.Lampiran{},
			"lampiran_induk_jenis = ? AND lampiran_induk_id = ?",
			lampiranModel.IndukKegiatan, id).Error; err != nil {
			log.Printf("[WARN] hapus kegiatan %s: gagal hapus metadata lampiran: %v", id, err)
		}
	}

	if err := db.Delete(&model.Kegiatan{}, "kegiatan_id = ?", id).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "kegiatan dihapus", fiber.Map{"lampiran_dihapus": len(lampiran)})
}
