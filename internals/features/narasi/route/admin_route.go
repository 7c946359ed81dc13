// file: internals/features/narasi/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/narasi/controller"
)

func NarasiAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Get("/:tahun/narasi", h.Get)
	r.Put("/:tahun/narasi", h.Upsert)
}
