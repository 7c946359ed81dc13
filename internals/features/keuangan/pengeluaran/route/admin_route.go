// file: internals/features/keuangan/pengeluaran/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/keuangan/pengeluaran/controller"
)

func PengeluaranAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Get("/:tahun/pengeluaran", h.List)
	r.Post("/:tahun/pengeluaran", h.Create)
	r.Patch("/:tahun/pengeluaran/:id", h.Update)
	r.Delete("/:tahun/pengeluaran/:id", h.Delete)

	r.Get("/:tahun/pengeluaran/:id/rincian", h.ListRincian)
	r.Post("/:tahun/pengeluaran/:id/rincian", h.CreateRincian)
	r.Delete("/:tahun/pengeluaran/:id/rincian/:rincian_id", h.DeleteRincian)
}
