// file: internals/features/laporan/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/laporan/controller"
	"desakeu_backend/internals/middlewares"
)

func LaporanAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Get("/:tahun/laporan/ringkasan", h.Ringkasan)

	// render dokumen itu mahal, limiter-nya lebih ketat
	ekspor := r.Group("/", middlewares.ExportRateLimiter())
	ekspor.Get("/:tahun/laporan/excel", h.Excel)
	ekspor.Get("/:tahun/laporan/word", h.Word)
	ekspor.Get("/:tahun/laporan/pdf", h.PDF)
}
