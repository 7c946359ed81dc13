// file: internals/features/backup/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/backup/controller"
)

func BackupAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewHandler(db)

	r.Get("/:tahun/backup", h.Ekspor)
	r.Post("/:tahun/backup/pulihkan", h.Pulihkan)
}
