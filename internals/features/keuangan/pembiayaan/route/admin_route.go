// file: internals/features/keuangan/pembiayaan/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/keuangan/pembiayaan/controller"
)

func PembiayaanAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Get("/:tahun/pembiayaan", h.List)
	r.Post("/:tahun/pembiayaan", h.Create)
	r.Patch("/:tahun/pembiayaan/:id", h.Update)
	r.Delete("/:tahun/pembiayaan/:id", h.Delete)
}
