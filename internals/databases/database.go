package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"desakeu_backend/internals/configs"
	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	subBidangModel "desakeu_backend/internals/features/anggaran/subbidang/model"
	tahunModel "desakeu_backend/internals/features/anggaran/tahun/model"
	profilModel "desakeu_backend/internals/features/desa/profil/model"
	pemasukanModel "desakeu_backend/internals/features/keuangan/pemasukan/model"
	pembiayaanModel "desakeu_backend/internals/features/keuangan/pembiayaan/model"
	pengeluaranModel "desakeu_backend/internals/features/keuangan/pengeluaran/model"
	lampiranModel "desakeu_backend/internals/features/lampiran/model"
	narasiModel "desakeu_backend/internals/features/narasi/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=desakeu&options=-c statement_timeout=5000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateAll menjalankan AutoMigrate seluruh tabel aplikasi.
// Dipakai juga oleh test dengan driver sqlite in-memory.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&profilModel.ProfilDesa{},
		&profilModel.PerangkatDesa{},
		&tahunModel.TahunAnggaran{},
		&subBidangModel.SubBidang{},
		&kegiatanModel.Kegiatan{},
		&pemasukanModel.Pemasukan{},
		&pengeluaranModel.Pengeluaran{},
		&pengeluaranModel.RincianPengeluaran{},
		&pembiayaanModel.Pembiayaan{},
		&lampiranModel.Lampiran{},
		&narasiModel.Narasi{},
	)
}
