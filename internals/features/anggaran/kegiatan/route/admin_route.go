// file: internals/features/anggaran/kegiatan/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/anggaran/kegiatan/controller"
)

func KegiatanAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Get("/:tahun/kegiatan", h.ListKegiatan)
	r.Post("/:tahun/kegiatan", h.CreateKegiatan)
	r.Patch("/:tahun/kegiatan/:id", h.UpdateKegiatan)
	r.Delete("/:tahun/kegiatan/:id", h.DeleteKegiatan)
}
