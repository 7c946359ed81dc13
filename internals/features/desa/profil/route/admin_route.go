// file: internals/features/desa/profil/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/desa/profil/controller"
)

func ProfilAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Get("/profil-desa", h.GetProfil)
	r.Put("/profil-desa", h.UpsertProfil)
	r.Post("/profil-desa/perangkat", h.CreatePerangkat)
	r.Delete("/profil-desa/perangkat/:id", h.DeletePerangkat)
}
