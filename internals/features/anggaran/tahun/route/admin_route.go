// file: internals/features/anggaran/tahun/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/anggaran/tahun/controller"
)

func TahunAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewHandler(db)

	r.Get("/tahun-anggaran", h.ListTahun)
	r.Post("/tahun-anggaran", h.CreateTahun)
}
