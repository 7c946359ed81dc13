// file: internals/features/backup/controller/backup_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/backup/service"
	helper "desakeu_backend/internals/helpers"
)

type Handler struct {
	Svc *service.Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Svc: &service.Service{DB: db}}
}

func parseTahun(c *fiber.Ctx) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(c.Params("tahun")))
	if err != nil || t < 2000 || t > 2100 {
		return 0, errors.New("tahun tidak valid")
	}
	return t, nil
}

// GET /api/a/:tahun/backup
// Unduh arsip JSON satu tahun anggaran.
func (h *Handler) Ekspor(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	arsip, err := h.Svc.Ekspor(c.UserContext(), tahun)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="backup-desa-%d.json"`, tahun))
	return c.JSON(arsip)
}

// POST /api/a/:tahun/backup/pulihkan
// Ganti seluruh isi tahun dengan isi arsip. Gagal parsial tidak mungkin:
// seluruh operasi satu transaksi.
func (h *Handler) Pulihkan(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var arsip service.ArsipTahun
	if err := c.BodyParser(&arsip); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "arsip tidak bisa dibaca: "+err.Error())
	}

	rep, err := h.Svc.Pulihkan(c.UserContext(), tahun, &arsip)
	switch {
	case errors.Is(err, service.ErrVersiArsip), errors.Is(err, service.ErrTahunBeda):
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, fmt.Sprintf("tahun %d dipulihkan dari arsip", tahun), rep)
}
