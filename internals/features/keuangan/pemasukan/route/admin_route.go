// file: internals/features/keuangan/pemasukan/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/keuangan/pemasukan/controller"
)

func PemasukanAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Get("/:tahun/pemasukan", h.List)
	r.Post("/:tahun/pemasukan", h.Create)
	r.Patch("/:tahun/pemasukan/:id", h.Update)
	r.Delete("/:tahun/pemasukan/:id", h.Delete)
}
