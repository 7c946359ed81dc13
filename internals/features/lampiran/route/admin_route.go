// file: internals/features/lampiran/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/lampiran/controller"
)

func LampiranAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Get("/:tahun/lampiran", h.List)
	r.Post("/:tahun/lampiran", h.Upload)
	r.Delete("/:tahun/lampiran/:id", h.Delete)
}
