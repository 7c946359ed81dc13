// file: internals/features/anggaran/tahun/service/tahun_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"desakeu_backend/internals/constants"
	databases "desakeu_backend/internals/databases"
	subBidangModel "desakeu_backend/internals/features/anggaran/subbidang/model"
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

func TestCreateTahunDariTemplate(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()

	// tahun acuan kosong → template bawaan yang dipakai
	row, disalin, err := svc.Create(ctx, 2025, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2025, row.TahunAnggaranTahun)
	assert.Equal(t, len(constants.DefaultSubBidangTemplate), disalin)

	var n int64
	db.Model(&subBidangModel.SubBidang{}).Where("sub_bidang_tahun = 2025").Count(&n)
	assert.EqualValues(t, disalin, n)
}

func TestCreateTahunSalinDariAcuan(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()

	_, _, err := svc.Create(ctx, 2025, 0)
	require.NoError(t, err)
	// kustomisasi katalog 2025
	require.NoError(t, db.Create(&subBidangModel.SubBidang{
		SubBidangTahun:  2025,
		SubBidangBidang: constants.BidangCatalog[1].Nama,
		SubBidangNama:   "Jembatan Gantung",
		SubBidangKode:   "2.9",
	}).Error)

	var sebelum int64
	db.Model(&subBidangModel.SubBidang{}).Where("sub_bidang_tahun = 2025").Count(&sebelum)

	_, disalin, err := svc.Create(ctx, 2026, 2025)
	require.NoError(t, err)
	assert.EqualValues(t, sebelum, int64(disalin), "2026 menyalin katalog 2025, termasuk kustomisasi")

	var adaKustom int64
	db.Model(&subBidangModel.SubBidang{}).
		Where("sub_bidang_tahun = 2026 AND sub_bidang_nama = ?", "Jembatan Gantung").
		Count(&adaKustom)
	assert.EqualValues(t, 1, adaKustom)

	// katalog 2025 tidak tersentuh oleh pembuatan 2026
	var sesudah int64
	db.Model(&subBidangModel.SubBidang{}).Where("sub_bidang_tahun = 2025").Count(&sesudah)
	assert.Equal(t, sebelum, sesudah)
}

func TestCreateTahunTolakDuplikat(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()

	_, _, err := svc.Create(ctx, 2025, 0)
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, 2025, 0)
	assert.ErrorIs(t, err, ErrTahunSudahAda)
}

func TestListTahunUrutNaik(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()

	for _, th := range []int{2026, 2024, 2025} {
		_, _, err := svc.Create(ctx, th, 0)
		require.NoError(t, err)
	}
	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 2024, rows[0].TahunAnggaranTahun)
	assert.Equal(t, 2025, rows[1].TahunAnggaranTahun)
	assert.Equal(t, 2026, rows[2].TahunAnggaranTahun)
}
