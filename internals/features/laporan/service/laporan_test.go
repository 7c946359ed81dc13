// file: internals/features/laporan/service/laporan_test.go
package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"desakeu_backend/internals/constants"
	databases "desakeu_backend/internals/databases"
	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	subBidangModel "desakeu_backend/internals/features/anggaran/subbidang/model"
	profilModel "desakeu_backend/internals/features/desa/profil/model"
	pemasukanModel "desakeu_backend/internals/features/keuangan/pemasukan/model"
	pembiayaanModel "desakeu_backend/internals/features/keuangan/pembiayaan/model"
	pengeluaranModel "desakeu_backend/internals/features/keuangan/pengeluaran/model"
	lampiranModel "desakeu_backend/internals/features/lampiran/model"
	narasiModel "desakeu_backend/internals/features/narasi/model"
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

// isiTahunContoh: desa lengkap dengan satu kegiatan jalan 10jt/6jt,
// dipakai semua test renderer.
func isiTahunContoh(t *testing.T, db *gorm.DB, tahun int) {
	t.Helper()
	pembangunan := constants.BidangCatalog[1].Nama

	require.NoError(t, db.Create(&profilModel.ProfilDesa{
		ProfilDesaNama:      "Sukamaju",
		ProfilDesaKecamatan: "Cisitu",
		ProfilDesaKabupaten: "Sumedang",
		ProfilDesaProvinsi:  "Jawa Barat",
	}).Error)
	require.NoError(t, db.Create(&profilModel.PerangkatDesa{
		PerangkatDesaJabatan: "Kepala Desa",
		PerangkatDesaNama:    "Asep Saepudin",
		PerangkatDesaUrutan:  1,
	}).Error)
	require.NoError(t, db.Create(&subBidangModel.SubBidang{
		SubBidangTahun:  tahun,
		SubBidangBidang: pembangunan,
		SubBidangNama:   "Jalan Desa",
		SubBidangKode:   "2.1",
	}).Error)
	k := kegiatanModel.Kegiatan{
		KegiatanTahun:     tahun,
		KegiatanBidang:    pembangunan,
		KegiatanSubBidang: "Jalan Desa",
		KegiatanKode:      "2.1.01",
		KegiatanNama:      "Pengaspalan Jalan RT 01",
		KegiatanStatus:    kegiatanModel.StatusBerjalan,
		KegiatanAnggaran:  10_000_000,
		KegiatanRealisasi: 6_000_000,
	}
	require.NoError(t, db.Create(&k).Error)
	require.NoError(t, db.Create(&pemasukanModel.Pemasukan{
		PemasukanTahun: tahun, PemasukanKategori: "Dana Desa", PemasukanJumlah: 100_000_000,
	}).Error)
	require.NoError(t, db.Create(&pengeluaranModel.Pengeluaran{
		PengeluaranTahun: tahun, PengeluaranKategori: "Belanja Modal", PengeluaranJumlah: 60_000_000,
	}).Error)
	require.NoError(t, db.Create(&pembiayaanModel.Pembiayaan{
		PembiayaanTahun: tahun, PembiayaanJenis: pembiayaanModel.PembiayaanPenerimaan,
		PembiayaanKategori: "SiLPA tahun lalu", PembiayaanJumlah: 5_000_000,
	}).Error)
	require.NoError(t, db.Create(&lampiranModel.Lampiran{
		LampiranTahun:      tahun,
		LampiranIndukJenis: lampiranModel.IndukKegiatan,
		LampiranIndukID:    k.KegiatanID,
		LampiranNamaFile:   "foto-jalan.jpg",
		LampiranURL:        "https://oss.example/lampiran/foto-jalan.jpg",
	}).Error)
	// bukti fisik tanpa URL: harus tampil sebagai teks biasa di lampiran
	require.NoError(t, db.Create(&lampiranModel.Lampiran{
		LampiranTahun:      tahun,
		LampiranIndukJenis: lampiranModel.IndukKegiatan,
		LampiranIndukID:    k.KegiatanID,
		LampiranNamaFile:   "nota-aspal.pdf",
	}).Error)
	require.NoError(t, db.Create(&narasiModel.Narasi{
		NarasiTahun:         tahun,
		NarasiKataPengantar: "Dengan rahmat Tuhan Yang Maha Esa.",
	}).Error)
}

func TestTampilanLaporanAngkaInti(t *testing.T) {
	db := newTestDB(t)
	isiTahunContoh(t, db, 2025)

	snap, err := MuatSnapshot(context.Background(), db, 2025)
	require.NoError(t, err)
	v := BangunTampilan(snap)

	assert.EqualValues(t, 10_000_000, v.TotalAnggaranKegiatan)
	assert.EqualValues(t, 6_000_000, v.TotalRealisasiKegiatan)
	assert.InDelta(t, 60.0, v.PersenRealisasi, 1e-9)
	assert.Equal(t, "Enam Juta Rupiah", v.TerbilangRealisasi)
	assert.Equal(t, "Seratus Juta Rupiah", v.TerbilangPemasukan)
	assert.EqualValues(t, 45_000_000, v.RekapTahunan.SiLPA) // 100jt - 60jt + 5jt

	// bidang pembangunan (indeks 1 katalog) memuat satu-satunya kegiatan
	assert.Equal(t, 1, v.Seksi[1].Rekap.Jumlah)
	assert.InDelta(t, 60.0, v.Seksi[1].Rekap.Persentase, 1e-9)
	for i, seksi := range v.Seksi {
		if i != 1 {
			assert.Zero(t, seksi.Rekap.Jumlah)
		}
	}

	require.NotEmpty(t, v.KopBaris)
	assert.Equal(t, "PEMERINTAH DESA SUKAMAJU", v.KopBaris[len(v.KopBaris)-1])
	require.Len(t, v.TandaTangan, 1)
	assert.Equal(t, "Asep Saepudin", v.TandaTangan[0].Nama)
}

func TestCekEkspor(t *testing.T) {
	db := newTestDB(t)
	isiTahunContoh(t, db, 2025)

	snap, err := MuatSnapshot(context.Background(), db, 2025)
	require.NoError(t, err)
	blockers, _ := CekEkspor(snap)
	assert.Empty(t, blockers)

	// tanpa nama desa dan tanpa kegiatan → dua blocker
	kosong := &LaporanSnapshot{Tahun: 2030}
	blockers, warnings := CekEkspor(kosong)
	assert.Len(t, blockers, 2)
	assert.NotEmpty(t, warnings, "perangkat kosong minimal satu warning")

	// realisasi > anggaran cuma warning
	snap.Kegiatan[0].KegiatanRealisasi = snap.Kegiatan[0].KegiatanAnggaran + 1
	blockers, warnings = CekEkspor(snap)
	assert.Empty(t, blockers)
	assert.NotEmpty(t, warnings)

	// nama wilayah kosong juga cuma warning, bukan blocker
	snap.Kegiatan[0].KegiatanRealisasi = snap.Kegiatan[0].KegiatanAnggaran
	snap.Profil.ProfilDesaKabupaten = ""
	blockers, warnings = CekEkspor(snap)
	assert.Empty(t, blockers)
	adaWilayah := false
	for _, w := range warnings {
		if strings.Contains(w, "kabupaten") {
			adaWilayah = true
		}
	}
	assert.True(t, adaWilayah, "kabupaten kosong harus menghasilkan warning")
}

func TestBangunExcelAngkaSamaDenganTampilan(t *testing.T) {
	db := newTestDB(t)
	isiTahunContoh(t, db, 2025)

	snap, err := MuatSnapshot(context.Background(), db, 2025)
	require.NoError(t, err)
	v := BangunTampilan(snap)

	buf, err := BangunExcel(v)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	// buka ulang hasilnya dan cek angka di sheet Rekap
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Profil")
	assert.Contains(t, sheets, "Rekap")
	assert.Contains(t, sheets, "Bidang 2")
	assert.NotContains(t, sheets, "Sheet1")

	raw := excelize.Options{RawCellValue: true}
	// baris TOTAL = 5 bidang + 1 header
	anggaran, err := f.GetCellValue("Rekap", "F7", raw)
	require.NoError(t, err)
	realisasi, err := f.GetCellValue("Rekap", "G7", raw)
	require.NoError(t, err)
	assert.Equal(t, "10000000", anggaran)
	assert.Equal(t, "6000000", realisasi)

	terbilang, err := f.GetCellValue("Rekap", "A8")
	require.NoError(t, err)
	assert.Contains(t, terbilang, "Enam Juta Rupiah")

	serapan, err := f.GetCellValue("Rekap", "H7")
	require.NoError(t, err)
	assert.Equal(t, "60,0%", serapan)
}

func TestBangunWordDanPDF(t *testing.T) {
	db := newTestDB(t)
	isiTahunContoh(t, db, 2025)

	snap, err := MuatSnapshot(context.Background(), db, 2025)
	require.NoError(t, err)
	v := BangunTampilan(snap)

	docx, err := BangunWord(v, WordLengkap, "")
	require.NoError(t, err)
	require.Greater(t, docx.Len(), 4)
	assert.Equal(t, []byte("PK"), docx.Bytes()[:2], "docx adalah arsip zip")

	satu, err := BangunWord(v, WordPerKegiatan, "Pengaspalan Jalan RT 01")
	require.NoError(t, err)
	assert.NotZero(t, satu.Len())

	_, err = BangunWord(v, WordPerKegiatan, "Tidak Ada Kegiatan Ini")
	assert.Error(t, err)

	// varian per level klasifikasi
	perBidang, err := BangunWord(v, WordPerBidang, constants.BidangCatalog[1].Nama)
	require.NoError(t, err)
	assert.NotZero(t, perBidang.Len())

	perSub, err := BangunWord(v, WordPerSubBidang, "Jalan Desa")
	require.NoError(t, err)
	assert.NotZero(t, perSub.Len())

	_, err = BangunWord(v, WordPerSubBidang, "Tidak Ada Sub Ini")
	assert.Error(t, err)

	pdf, err := BangunPDF(v)
	require.NoError(t, err)
	require.Greater(t, pdf.Len(), 4)
	assert.Equal(t, []byte("%PDF"), pdf.Bytes()[:4])
}

func TestPotongPerRune(t *testing.T) {
	panjang := strings.Repeat("Kondisi jalan pasca hujan café é", 5)
	hasil := potong(panjang, 40)
	assert.True(t, utf8.ValidString(hasil), "pemenggalan tidak boleh membelah rune")
	assert.Len(t, []rune(hasil), 40)
	assert.True(t, strings.HasSuffix(hasil, "..."))

	pendek := "nota-aspal.pdf"
	assert.Equal(t, pendek, potong(pendek, 100))
}

// pindah tahun lalu kembali tidak boleh mengubah apa pun: snapshot kedua
// identik dengan yang pertama.
func TestMuatSnapshotTidakMemutasi(t *testing.T) {
	db := newTestDB(t)
	isiTahunContoh(t, db, 2025)
	ctx := context.Background()

	v1, err := MuatSnapshot(ctx, db, 2025)
	require.NoError(t, err)
	t1 := BangunTampilan(v1)

	// "pindah" ke tahun lain (kosong), lalu balik
	kosong, err := MuatSnapshot(ctx, db, 2026)
	require.NoError(t, err)
	assert.Empty(t, kosong.Kegiatan)

	v2, err := MuatSnapshot(ctx, db, 2025)
	require.NoError(t, err)
	t2 := BangunTampilan(v2)

	assert.Equal(t, t1.TotalAnggaranKegiatan, t2.TotalAnggaranKegiatan)
	assert.Equal(t, t1.TotalRealisasiKegiatan, t2.TotalRealisasiKegiatan)
	assert.Equal(t, t1.RekapTahunan, t2.RekapTahunan)
	assert.Equal(t, t1.TerbilangRealisasi, t2.TerbilangRealisasi)
	assert.Equal(t, len(t1.Seksi), len(t2.Seksi))
}
