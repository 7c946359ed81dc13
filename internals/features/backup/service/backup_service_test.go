// file: internals/features/backup/service/backup_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	databases "desakeu_backend/internals/databases"
	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	subBidangModel "desakeu_backend/internals/features/anggaran/subbidang/model"
	tahunModel "desakeu_backend/internals/features/anggaran/tahun/model"
	pemasukanModel "desakeu_backend/internals/features/keuangan/pemasukan/model"
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

func isiTahun(t *testing.T, db *gorm.DB, tahun int) {
	t.Helper()
	require.NoError(t, db.Create(&subBidangModel.SubBidang{
		SubBidangTahun: tahun, SubBidangBidang: "Pelaksanaan Pembangunan Desa",
		SubBidangNama: "Jalan Desa", SubBidangKode: "2.1",
	}).Error)
	require.NoError(t, db.Create(&kegiatanModel.Kegiatan{
		KegiatanTahun: tahun, KegiatanBidang: "Pelaksanaan Pembangunan Desa",
		KegiatanSubBidang: "Jalan Desa", KegiatanNama: "Pengaspalan",
		KegiatanStatus: kegiatanModel.StatusBerjalan,
		KegiatanAnggaran: 10_000_000, KegiatanRealisasi: 6_000_000,
	}).Error)
	require.NoError(t, db.Create(&pemasukanModel.Pemasukan{
		PemasukanTahun: tahun, PemasukanKategori: "Dana Desa", PemasukanJumlah: 100_000_000,
	}).Error)
}

func TestEksporPulihkanBolakBalik(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()
	isiTahun(t, db, 2025)

	arsip, err := svc.Ekspor(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, VersiArsip, arsip.Versi)
	assert.Len(t, arsip.SubBidang, 1)
	assert.Len(t, arsip.Kegiatan, 1)
	assert.Len(t, arsip.Pemasukan, 1)

	// rusak datanya, lalu pulihkan dari arsip
	require.NoError(t, db.Where("kegiatan_tahun = 2025").Delete(&kegiatanModel.Kegiatan{}).Error)
	require.NoError(t, db.Create(&pemasukanModel.Pemasukan{
		PemasukanTahun: 2025, PemasukanKategori: "Nyasar", PemasukanJumlah: 1,
	}).Error)

	rep, err := svc.Pulihkan(ctx, 2025, arsip)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Kegiatan)
	assert.Equal(t, 1, rep.Pemasukan)

	var nKegiatan, nPemasukan int64
	db.Model(&kegiatanModel.Kegiatan{}).Where("kegiatan_tahun = 2025").Count(&nKegiatan)
	db.Model(&pemasukanModel.Pemasukan{}).Where("pemasukan_tahun = 2025").Count(&nPemasukan)
	assert.EqualValues(t, 1, nKegiatan)
	assert.EqualValues(t, 1, nPemasukan, "baris nyasar ikut terganti")

	var masuk pemasukanModel.Pemasukan
	require.NoError(t, db.First(&masuk, "pemasukan_tahun = 2025").Error)
	assert.Equal(t, "Dana Desa", masuk.PemasukanKategori)

	// tahun tercatat di registri
	var nTahun int64
	db.Model(&tahunModel.TahunAnggaran{}).Where("tahun_anggaran_tahun = 2025").Count(&nTahun)
	assert.EqualValues(t, 1, nTahun)
}

func TestPulihkanTidakSentuhTahunLain(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()
	isiTahun(t, db, 2024)
	isiTahun(t, db, 2025)

	arsip, err := svc.Ekspor(ctx, 2025)
	require.NoError(t, err)
	_, err = svc.Pulihkan(ctx, 2025, arsip)
	require.NoError(t, err)

	var n2024 int64
	db.Model(&kegiatanModel.Kegiatan{}).Where("kegiatan_tahun = 2024").Count(&n2024)
	assert.EqualValues(t, 1, n2024)
}

func TestPulihkanValidasiArsip(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()

	_, err := svc.Pulihkan(ctx, 2025, &ArsipTahun{Versi: 99, Tahun: 2025})
	assert.ErrorIs(t, err, ErrVersiArsip)

	_, err = svc.Pulihkan(ctx, 2025, &ArsipTahun{Versi: VersiArsip, Tahun: 2024})
	assert.ErrorIs(t, err, ErrTahunBeda)
}
