// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	backupRoute "desakeu_backend/internals/features/backup/route"
	kegiatanRoute "desakeu_backend/internals/features/anggaran/kegiatan/route"
	subBidangRoute "desakeu_backend/internals/features/anggaran/subbidang/route"
	tahunRoute "desakeu_backend/internals/features/anggaran/tahun/route"
	profilRoute "desakeu_backend/internals/features/desa/profil/route"
	pemasukanRoute "desakeu_backend/internals/features/keuangan/pemasukan/route"
	pembiayaanRoute "desakeu_backend/internals/features/keuangan/pembiayaan/route"
	pengeluaranRoute "desakeu_backend/internals/features/keuangan/pengeluaran/route"
	lampiranRoute "desakeu_backend/internals/features/lampiran/route"
	laporanRoute "desakeu_backend/internals/features/laporan/route"
	narasiRoute "desakeu_backend/internals/features/narasi/route"
)

var startTime time.Time

// SetupRoutes memasang seluruh rute aplikasi. Semua endpoint admin berada
// di bawah /api/a; endpoint yang di-scope tahun memakai prefix /:tahun.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	// ===================== DESA =====================
	profilRoute.ProfilAdminRoutes(admin, db)

	// ===================== ANGGARAN =====================
	tahunRoute.TahunAdminRoutes(admin, db)
	subBidangRoute.SubBidangAdminRoutes(admin, db)
	kegiatanRoute.KegiatanAdminRoutes(admin, db)

	// ===================== KEUANGAN =====================
	pemasukanRoute.PemasukanAdminRoutes(admin, db)
	pengeluaranRoute.PengeluaranAdminRoutes(admin, db)
	pembiayaanRoute.PembiayaanAdminRoutes(admin, db)

	// ===================== PELENGKAP =====================
	lampiranRoute.LampiranAdminRoutes(admin, db)
	narasiRoute.NarasiAdminRoutes(admin, db)
	laporanRoute.LaporanAdminRoutes(admin, db)
	backupRoute.BackupAdminRoutes(admin, db)

	log.Println("[INFO] All routes ready")
}
