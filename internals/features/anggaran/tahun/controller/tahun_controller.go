// file: internals/features/anggaran/tahun/controller/tahun_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/anggaran/tahun/service"
	helper "desakeu_backend/internals/helpers"
)

type Handler struct {
	Svc *service.Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Svc: &service.Service{DB: db}}
}

// GET /api/a/tahun-anggaran
func (h *Handler) ListTahun(c *fiber.Ctx) error {
	rows, err := h.Svc.List(c.UserContext())
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "daftar tahun anggaran", rows, len(rows))
}

type createTahunDTO struct {
	Tahun      int `json:"tahun" validate:"required,min=2000,max=2100"`
	TahunAcuan int `json:"tahun_acuan" validate:"required,min=2000,max=2100"`
}

// POST /api/a/tahun-anggaran
func (h *Handler) CreateTahun(c *fiber.Ctx) error {
	var in createTahunDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	row, disalin, err := h.Svc.Create(c.UserContext(), in.Tahun, in.TahunAcuan)
	if err != nil {
		if errors.Is(err, service.ErrTahunSudahAda) {
			return helper.JsonError(c, http.StatusConflict, err.Error())
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "tahun anggaran dibuat", fiber.Map{
		"tahun":              row,
		"sub_bidang_disalin": disalin,
	})
}
