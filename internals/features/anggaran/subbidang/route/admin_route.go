// file: internals/features/anggaran/subbidang/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/anggaran/subbidang/controller"
)

func SubBidangAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewHandler(db)

	r.Get("/:tahun/bidang", h.ListBidang)
	r.Get("/:tahun/sub-bidang", h.ListSubBidang)
	r.Post("/:tahun/sub-bidang", h.CreateSubBidang)
	r.Patch("/:tahun/sub-bidang/:id", h.RenameSubBidang)
	r.Delete("/:tahun/sub-bidang/:id", h.DeleteSubBidang)
}
