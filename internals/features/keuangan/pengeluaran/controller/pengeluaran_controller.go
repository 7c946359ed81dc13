// file: internals/features/keuangan/pengeluaran/controller/pengeluaran_controller.go
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

	"desakeu_backend/internals/features/keuangan/pengeluaran/model"
	lampiranModel "desakeu_backend/internals/features/lampiran/model"
	helper "desakeu_backend/internals/helpers"
	"desakeu_backend/internals/helpers/oss"
)

type Handler struct {
	DB *gorm.DB
}

type PengeluaranCreateDTO struct {
	PengeluaranKode     string     `json:"pengeluaran_kode" validate:"omitempty,max=30"`
	PengeluaranKategori string     `json:"pengeluaran_kategori" validate:"required,max=120"`
	PengeluaranUraian   string     `json:"pengeluaran_uraian" validate:"omitempty,max=200"`
	PengeluaranJumlah   int64      `json:"pengeluaran_jumlah" validate:"required,gt=0"`
	PengeluaranTanggal  *time.Time `json:"pengeluaran_tanggal,omitempty"`
	PengeluaranPenerima string     `json:"pengeluaran_penerima" validate:"omitempty,max=120"`
}

type RincianCreateDTO struct {
	RincianJenis       model.JenisRincian `json:"rincian_jenis" validate:"omitempty,oneof=nota hok"`
	RincianUraian      string             `json:"rincian_uraian" validate:"required,max=200"`
	RincianVolume      float64            `json:"rincian_volume" validate:"gt=0"`
	RincianSatuan      string             `json:"rincian_satuan" validate:"omitempty,max=30"`
	RincianHargaSatuan int64              `json:"rincian_harga_satuan" validate:"gt=0"`
}

func parseTahun(c *fiber.Ctx) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(c.Params("tahun")))
	if err != nil || t < 2000 || t > 2100 {
		return 0, errors.New("tahun tidak valid")
	}
	return t, nil
}

// GET /api/a/:tahun/pengeluaran
func (h *Handler) List(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []model.Pengeluaran
	if err := h.DB.WithContext(c.UserContext()).
		Where("pengeluaran_tahun = ?", tahun).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	helper.SortByKode(rows, func(r model.Pengeluaran) string { return r.PengeluaranKode })
	return helper.JsonList(c, "daftar pengeluaran", rows, len(rows))
}

// POST /api/a/:tahun/pengeluaran
func (h *Handler) Create(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var in PengeluaranCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := model.Pengeluaran{
		PengeluaranTahun:    tahun,
		PengeluaranKode:     in.PengeluaranKode,
		PengeluaranKategori: in.PengeluaranKategori,
		PengeluaranUraian:   in.PengeluaranUraian,
		PengeluaranJumlah:   in.PengeluaranJumlah,
		PengeluaranTanggal:  in.PengeluaranTanggal,
		PengeluaranPenerima: in.PengeluaranPenerima,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "pengeluaran dicatat", m)
}

// PATCH /api/a/:tahun/pengeluaran/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var in PengeluaranCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.Pengeluaran
	if err := h.DB.WithContext(c.UserContext()).First(&m,
		"pengeluaran_id = ? AND pengeluaran_tahun = ?", id, tahun).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "pengeluaran tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m.PengeluaranKode = in.PengeluaranKode
	m.PengeluaranKategori = in.PengeluaranKategori
	m.PengeluaranUraian = in.PengeluaranUraian
	m.PengeluaranJumlah = in.PengeluaranJumlah
	m.PengeluaranTanggal = in.PengeluaranTanggal
	m.PengeluaranPenerima = in.PengeluaranPenerima
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "pengeluaran diupdate", m)
}

// DELETE /api/a/:tahun/pengeluaran/:id
// Ikut menghapus rincian dan lampirannya (biner best-effort).
func (h *Handler) Delete(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	db := h.DB.WithContext(c.UserContext())

	var m model.Pengeluaran
	if err := db.First(&m, "pengeluaran_id = ? AND pengeluaran_tahun = ?", id, tahun).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "pengeluaran tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var lampiran []lampiranModel.Lampiran
	if err := db.Where("lampiran_induk_jenis = ? AND lampiran_induk_id = ?",
		lampiranModel.IndukPengeluaran, id).Find(&lampiran).Error; err == nil {
		for _, l := range lampiran {
			_ = oss.DeleteByPublicURLENV(l.LampiranURL, 10*time.Second) // advisory
		}
		if err := db.Delete(&lampiranModel.Lampiran{},
			"lampiran_induk_jenis = ? AND lampiran_induk_id = ?",
			lampiranModel.IndukPengeluaran, id).Error; err != nil {
			log.Printf("[WARN] hapus pengeluaran %s: gagal hapus metadata lampiran: %v", id, err)
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.RincianPengeluaran{}, "rincian_pengeluaran_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Pengeluaran{}, "pengeluaran_id = ?", id).Error
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "pengeluaran dihapus", fiber.Map{"lampiran_dihapus": len(lampiran)})
}

// GET /api/a/:tahun/pengeluaran/:id/rincian
func (h *Handler) ListRincian(c *fiber.Ctx) error {
	if _, err := parseTahun(c); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var rows []model.RincianPengeluaran
	if err := h.DB.WithContext(c.UserContext()).
		Where("rincian_pengeluaran_id = ?", id).
		Order("rincian_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "rincian pengeluaran", rows, len(rows))
}

// POST /api/a/:tahun/pengeluaran/:id/rincian
func (h *Handler) CreateRincian(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var in RincianCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var induk model.Pengeluaran
	if err := h.DB.WithContext(c.UserContext()).First(&induk,
		"pengeluaran_id = ? AND pengeluaran_tahun = ?", id, tahun).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "pengeluaran tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	jenis := in.RincianJenis
	if jenis == "" {
		jenis = model.RincianNota
	}
	m := model.RincianPengeluaran{
		RincianPengeluaranID: id,
		RincianTahun:         tahun,
		RincianJenis:         jenis,
		RincianUraian:        in.RincianUraian,
		RincianVolume:        in.RincianVolume,
		RincianSatuan:        in.RincianSatuan,
		RincianHargaSatuan:   in.RincianHargaSatuan,
		// volume × harga satuan, dibulatkan ke rupiah
		RincianJumlah: int64(in.RincianVolume*float64(in.RincianHargaSatuan) + 0.5),
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "rincian ditambahkan", m)
}

// DELETE /api/a/:tahun/pengeluaran/:id/rincian/:rincian_id
func (h *Handler) DeleteRincian(c *fiber.Ctx) error {
	if _, err := parseTahun(c); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	rid, err := uuid.Parse(c.Params("rincian_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid rincian_id")
	}
	res := h.DB.WithContext(c.UserContext()).
		Delete(&model.RincianPengeluaran{}, "rincian_id = ?", rid)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "rincian tidak ditemukan")
	}
	return helper.JsonDeleted(c, "rincian dihapus", nil)
}
