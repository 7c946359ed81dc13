// file: internals/features/anggaran/subbidang/service/cascade_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	databases "desakeu_backend/internals/databases"
	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	"desakeu_backend/internals/features/anggaran/subbidang/model"
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

func buatSubBidang(t *testing.T, db *gorm.DB, tahun int, bidang, nama, kode string) model.SubBidang {
	t.Helper()
	m := model.SubBidang{
		SubBidangTahun:  tahun,
		SubBidangBidang: bidang,
		SubBidangNama:   nama,
		SubBidangKode:   kode,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func buatKegiatan(t *testing.T, db *gorm.DB, tahun int, bidang, sub, nama string, anggaran, realisasi int64) kegiatanModel.Kegiatan {
	t.Helper()
	k := kegiatanModel.Kegiatan{
		KegiatanTahun:     tahun,
		KegiatanBidang:    bidang,
		KegiatanSubBidang: sub,
		KegiatanNama:      nama,
		KegiatanStatus:    kegiatanModel.StatusBerjalan,
		KegiatanJenis:     kegiatanModel.JenisFisik,
		KegiatanAnggaran:  anggaran,
		KegiatanRealisasi: realisasi,
	}
	require.NoError(t, db.Create(&k).Error)
	return k
}

// stempel waktu harus ikut terbaca ulang dari driver test, bukan cuma
// dari postgres.
func TestSimpanBacaUlangStempelWaktu(t *testing.T) {
	db := newTestDB(t)
	sb := buatSubBidang(t, db, 2025, "Penyelenggaraan Pemerintahan Desa", "Operasional", "1.1")

	var ulang model.SubBidang
	require.NoError(t, db.First(&ulang, "sub_bidang_id = ?", sb.SubBidangID).Error)
	assert.False(t, ulang.SubBidangCreatedAt.IsZero())
	assert.False(t, ulang.SubBidangUpdatedAt.IsZero())
}

func TestCreateTolakDuplikatNama(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()

	_, err := svc.Create(ctx, model.SubBidang{
		SubBidangTahun: 2025, SubBidangBidang: "Pelaksanaan Pembangunan Desa",
		SubBidangNama: "Pekerjaan Umum", SubBidangKode: "2.1",
	})
	require.NoError(t, err)

	// duplikat case-insensitive ditolak
	_, err = svc.Create(ctx, model.SubBidang{
		SubBidangTahun: 2025, SubBidangBidang: "Pelaksanaan Pembangunan Desa",
		SubBidangNama: "pekerjaan umum",
	})
	assert.ErrorIs(t, err, ErrDuplikatNama)

	// nama sama di bidang lain boleh
	_, err = svc.Create(ctx, model.SubBidang{
		SubBidangTahun: 2025, SubBidangBidang: "Pembinaan Kemasyarakatan",
		SubBidangNama: "Pekerjaan Umum",
	})
	assert.NoError(t, err)

	// nama sama di tahun lain boleh
	_, err = svc.Create(ctx, model.SubBidang{
		SubBidangTahun: 2026, SubBidangBidang: "Pelaksanaan Pembangunan Desa",
		SubBidangNama: "Pekerjaan Umum",
	})
	assert.NoError(t, err)
}

func TestRenameKaskadeKeKegiatan(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()
	const bidang = "Pelaksanaan Pembangunan Desa"

	sb := buatSubBidang(t, db, 2025, bidang, "Jalan Desa", "2.1")
	buatKegiatan(t, db, 2025, bidang, "Jalan Desa", "Pengaspalan RT 01", 10_000_000, 6_000_000)
	buatKegiatan(t, db, 2025, bidang, "Jalan Desa", "Talud RT 02", 5_000_000, 0)
	// kegiatan lain yang TIDAK boleh ikut berubah
	lain := buatSubBidang(t, db, 2025, bidang, "Irigasi", "2.2")
	buatKegiatan(t, db, 2025, bidang, "Irigasi", "Saluran Sawah", 3_000_000, 0)
	// nama sama di tahun berbeda juga tidak boleh ikut
	buatKegiatan(t, db, 2024, bidang, "Jalan Desa", "Pengaspalan Lama", 1_000_000, 1_000_000)

	row, diubah, err := svc.Rename(ctx, 2025, bidang, sb.SubBidangID, "Jalan dan Jembatan", "2.1")
	require.NoError(t, err)
	assert.Equal(t, "Jalan dan Jembatan", row.SubBidangNama)
	assert.EqualValues(t, 2, diubah)

	var sisa int64
	require.NoError(t, db.Model(&kegiatanModel.Kegiatan{}).
		Where("kegiatan_tahun = 2025 AND kegiatan_sub_bidang = ?", "Jalan Desa").
		Count(&sisa).Error)
	assert.Zero(t, sisa, "tidak ada kegiatan 2025 yang masih memakai nama lama")

	var ikut int64
	require.NoError(t, db.Model(&kegiatanModel.Kegiatan{}).
		Where("kegiatan_sub_bidang = ?", "Jalan dan Jembatan").
		Count(&ikut).Error)
	assert.EqualValues(t, 2, ikut)

	// kegiatan tahun lain tetap memakai nama lama
	var lama kegiatanModel.Kegiatan
	require.NoError(t, db.First(&lama, "kegiatan_tahun = 2024").Error)
	assert.Equal(t, "Jalan Desa", lama.KegiatanSubBidang)

	// rename ke nama milik sub bidang lain ditolak
	_, _, err = svc.Rename(ctx, 2025, bidang, lain.SubBidangID, "Jalan dan Jembatan", "")
	assert.ErrorIs(t, err, ErrDuplikatNama)

	// ganti kapitalisasi diri sendiri boleh
	_, _, err = svc.Rename(ctx, 2025, bidang, lain.SubBidangID, "IRIGASI", "")
	assert.NoError(t, err)
}

func TestRenameTidakDitemukan(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}

	_, _, err := svc.Rename(context.Background(), 2025, "Pemberdayaan Masyarakat",
		uuid.New(), "Apa Saja", "")
	assert.ErrorIs(t, err, ErrTidakDitemukan)
}

func TestDeleteKaskadePenuh(t *testing.T) {
	db := newTestDB(t)
	var dihapusURL []string
	svc := &Service{
		DB: db,
		HapusBerkas: func(url string) error {
			dihapusURL = append(dihapusURL, url)
			return nil
		},
	}
	ctx := context.Background()
	const bidang = "Pelaksanaan Pembangunan Desa"

	sb := buatSubBidang(t, db, 2025, bidang, "Jalan Desa", "2.1")
	k1 := buatKegiatan(t, db, 2025, bidang, "Jalan Desa", "Pengaspalan", 10_000_000, 6_000_000)
	k2 := buatKegiatan(t, db, 2025, bidang, "Jalan Desa", "Talud", 5_000_000, 0)
	aman := buatKegiatan(t, db, 2025, bidang, "Irigasi", "Saluran", 3_000_000, 0)

	for i, induk := range []uuid.UUID{k1.KegiatanID, k1.KegiatanID, k2.KegiatanID} {
		require.NoError(t, db.Create(&lampiranModel.Lampiran{
			LampiranTahun:      2025,
			LampiranIndukJenis: lampiranModel.IndukKegiatan,
			LampiranIndukID:    induk,
			LampiranNamaFile:   "bukti.jpg",
			LampiranURL:        "https://oss.example/lampiran/2025/kegiatan/" + uuid.NewString(),
			LampiranUkuran:     int64(1000 + i),
		}).Error)
	}

	rep, err := svc.Delete(ctx, 2025, bidang, sb.SubBidangID)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.KegiatanDihapus)
	assert.Equal(t, 3, rep.LampiranDihapus)
	assert.Zero(t, rep.LampiranGagal)
	assert.Len(t, dihapusURL, 3)

	var nKegiatan, nLampiran, nSub int64
	db.Model(&kegiatanModel.Kegiatan{}).Count(&nKegiatan)
	db.Model(&lampiranModel.Lampiran{}).Count(&nLampiran)
	db.Model(&model.SubBidang{}).Count(&nSub)
	assert.EqualValues(t, 1, nKegiatan, "kegiatan sub bidang lain selamat")
	assert.Zero(t, nLampiran)
	assert.Zero(t, nSub)

	var masihAda kegiatanModel.Kegiatan
	assert.NoError(t, db.First(&masihAda, "kegiatan_id = ?", aman.KegiatanID).Error)
}

func TestDeleteGagalBinerTetapLanjut(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{
		DB:          db,
		HapusBerkas: func(string) error { return errors.New("oss timeout") },
	}
	const bidang = "Pembinaan Kemasyarakatan"

	sb := buatSubBidang(t, db, 2025, bidang, "Keagamaan", "3.2")
	k := buatKegiatan(t, db, 2025, bidang, "Keagamaan", "Pengajian", 1_000_000, 500_000)
	require.NoError(t, db.Create(&lampiranModel.Lampiran{
		LampiranTahun:      2025,
		LampiranIndukJenis: lampiranModel.IndukKegiatan,
		LampiranIndukID:    k.KegiatanID,
		LampiranNamaFile:   "foto.jpg",
		LampiranURL:        "https://oss.example/x",
	}).Error)

	rep, err := svc.Delete(context.Background(), 2025, bidang, sb.SubBidangID)
	require.NoError(t, err, "gagal hapus biner tidak menggagalkan kaskade")
	assert.Equal(t, 1, rep.KegiatanDihapus)
	assert.Equal(t, 1, rep.LampiranDihapus, "metadata tetap dihapus walau biner gagal")
}

func TestDeleteTidakDitemukan(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}

	_, err := svc.Delete(context.Background(), 2025, "Pemberdayaan Masyarakat", uuid.New())
	assert.ErrorIs(t, err, ErrTidakDitemukan)
}
