// file: internals/features/anggaran/subbidang/controller/sub_bidang_controller.go
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

	"desakeu_backend/internals/constants"
	"desakeu_backend/internals/features/anggaran/subbidang/dto"
	"desakeu_backend/internals/features/anggaran/subbidang/service"
	helper "desakeu_backend/internals/helpers"
	"desakeu_backend/internals/helpers/oss"
)

type Handler struct {
	Svc *service.Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Svc: &service.Service{
		DB: db,
		HapusBerkas: func(url string) error {
			return oss.DeleteByPublicURLENV(url, 10*time.Second)
		},
	}}
}

func parseTahun(c *fiber.Ctx) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(c.Params("tahun")))
	if err != nil || t < 2000 || t > 2100 {
		return 0, errors.New("tahun tidak valid")
	}
	return t, nil
}

// GET /api/a/:tahun/bidang
// Katalog bidang tetap; sama untuk semua tahun.
func (h *Handler) ListBidang(c *fiber.Ctx) error {
	return helper.JsonList(c, "katalog bidang", constants.BidangCatalog, len(constants.BidangCatalog))
}

// GET /api/a/:tahun/sub-bidang?bidang=...
func (h *Handler) ListSubBidang(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	bidang := strings.TrimSpace(c.Query("bidang"))
	if bidang == "" {
		return helper.JsonError(c, http.StatusBadRequest, "query bidang wajib diisi")
	}
	rows, err := h.Svc.List(c.UserContext(), tahun, bidang)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "daftar sub bidang", dto.ToSubBidangResponses(rows), len(rows))
}

// POST /api/a/:tahun/sub-bidang
func (h *Handler) CreateSubBidang(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var in dto.SubBidangCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	in.SubBidangTahun = tahun // selalu dari path, abaikan body
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if _, ok := constants.FindBidang(in.SubBidangBidang); !ok {
		return helper.JsonError(c, http.StatusBadRequest, "bidang tidak dikenal")
	}

	m, err := h.Svc.Create(c.UserContext(), dto.ToSubBidangModel(in))
	if err != nil {
		if errors.Is(err, service.ErrDuplikatNama) {
			return helper.JsonError(c, http.StatusConflict, err.Error())
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "sub bidang dibuat", dto.ToSubBidangResponse(m))
}

// PATCH /api/a/:tahun/sub-bidang/:id?bidang=...
// Rename berkaskade: baris sub bidang + semua kegiatan pemakai nama lama.
func (h *Handler) RenameSubBidang(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	bidang := strings.TrimSpace(c.Query("bidang"))
	if bidang == "" {
		return helper.JsonError(c, http.StatusBadRequest, "query bidang wajib diisi")
	}

	var in dto.SubBidangRenameDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m, diubah, err := h.Svc.Rename(c.UserContext(), tahun, bidang, id, in.SubBidangNama, in.SubBidangKode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTidakDitemukan):
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrDuplikatNama):
			return helper.JsonError(c, http.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonUpdated(c, "sub bidang di-rename", fiber.Map{
		"sub_bidang":      dto.ToSubBidangResponse(m),
		"kegiatan_diubah": diubah,
	})
}

// DELETE /api/a/:tahun/sub-bidang/:id?bidang=...
func (h *Handler) DeleteSubBidang(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	bidang := strings.TrimSpace(c.Query("bidang"))
	if bidang == "" {
		return helper.JsonError(c, http.StatusBadRequest, "query bidang wajib diisi")
	}

	rep, err := h.Svc.Delete(c.UserContext(), tahun, bidang, id)
	if err != nil {
		if errors.Is(err, service.ErrTidakDitemukan) {
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		}
		// kaskade berhenti di tengah: kirim laporan parsial juga
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
			"data":    rep,
		})
	}
	return helper.JsonDeleted(c, "sub bidang dihapus", rep)
}
