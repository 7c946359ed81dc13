// file: internals/features/anggaran/kegiatan/controller/kegiatan_controller_test.go
package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	databases "desakeu_backend/internals/databases"
	"desakeu_backend/internals/features/anggaran/kegiatan/model"
	lampiranModel "desakeu_backend/internals/features/lampiran/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, databases.MigrateAll(db))
	return db
}

// hapus kegiatan: biner OSS boleh gagal (di test ini env OSS memang
// kosong), tapi metadata lampiran wajib ikut terhapus.
func TestDeleteKegiatanIkutHapusMetadataLampiran(t *testing.T) {
	db := newTestDB(t)
	h := &Handler{DB: db}
	app := fiber.New()
	app.Delete("/:tahun/kegiatan/:id", h.DeleteKegiatan)

	k := model.Kegiatan{
		KegiatanTahun:     2025,
		KegiatanBidang:    "Pelaksanaan Pembangunan Desa",
		KegiatanSubBidang: "Jalan Desa",
		KegiatanNama:      "Pengaspalan",
		KegiatanStatus:    model.StatusBerjalan,
		KegiatanAnggaran:  10_000_000,
	}
	require.NoError(t, db.Create(&k).Error)
	require.NoError(t, db.Create(&lampiranModel.Lampiran{
		LampiranTahun:      2025,
		LampiranIndukJenis: lampiranModel.IndukKegiatan,
		LampiranIndukID:    k.KegiatanID,
		LampiranNamaFile:   "foto.jpg",
		LampiranURL:        "https://oss.example/foto.jpg",
	}).Error)

	req := httptest.NewRequest(fiber.MethodDelete, "/2025/kegiatan/"+k.KegiatanID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var nKegiatan, nLampiran int64
	db.Model(&model.Kegiatan{}).Count(&nKegiatan)
	db.Model(&lampiranModel.Lampiran{}).Count(&nLampiran)
	assert.Zero(t, nKegiatan)
	assert.Zero(t, nLampiran, "metadata lampiran tidak boleh tersisa")
}
