// file: internals/features/laporan/service/aggregation_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	pemasukanModel "desakeu_backend/internals/features/keuangan/pemasukan/model"
	pembiayaanModel "desakeu_backend/internals/features/keuangan/pembiayaan/model"
	pengeluaranModel "desakeu_backend/internals/features/keuangan/pengeluaran/model"
)

func keg(bidang, sub string, status kegiatanModel.StatusKegiatan, anggaran, realisasi int64) kegiatanModel.Kegiatan {
	return kegiatanModel.Kegiatan{
		KegiatanBidang:    bidang,
		KegiatanSubBidang: sub,
		KegiatanStatus:    status,
		KegiatanAnggaran:  anggaran,
		KegiatanRealisasi: realisasi,
	}
}

func TestPersen(t *testing.T) {
	assert.InDelta(t, 60.0, Persen(6_000_000, 10_000_000), 1e-9)
	assert.Zero(t, Persen(5, 0), "anggaran nol → 0, bukan pembagian nol")
	assert.InDelta(t, 120.0, Persen(12, 10), 1e-9, "realisasi boleh melebihi anggaran")
}

func TestRekapBidang(t *testing.T) {
	rows := []kegiatanModel.Kegiatan{
		keg("Pembangunan", "Jalan", kegiatanModel.StatusSelesai, 10_000_000, 10_000_000),
		keg("Pembangunan", "Jalan", kegiatanModel.StatusBerjalan, 10_000_000, 6_000_000),
		keg("Pembangunan", "Irigasi", kegiatanModel.StatusDirencanakan, 5_000_000, 0),
		keg("Pembinaan", "Keagamaan", kegiatanModel.StatusSelesai, 2_000_000, 2_000_000),
	}

	r := RekapBidang(rows, "Pembangunan")
	assert.Equal(t, 3, r.Jumlah)
	assert.Equal(t, 1, r.Selesai)
	assert.Equal(t, 1, r.Berjalan)
	assert.Equal(t, 1, r.Direncanakan)
	assert.EqualValues(t, 25_000_000, r.TotalAnggaran)
	assert.EqualValues(t, 16_000_000, r.TotalRealisasi)
	assert.InDelta(t, 64.0, r.Persentase, 1e-9)

	kosong := RekapBidang(rows, "Penanggulangan Bencana")
	assert.Zero(t, kosong.Jumlah)
	assert.Zero(t, kosong.Persentase)
}

// jumlah rekap sub bidang harus sama dengan rekap bidangnya
func TestRekapSubBidangKonsistenDenganBidang(t *testing.T) {
	rows := []kegiatanModel.Kegiatan{
		keg("Pembangunan", "Jalan", kegiatanModel.StatusSelesai, 10_000_000, 9_000_000),
		keg("Pembangunan", "Jalan", kegiatanModel.StatusBerjalan, 4_000_000, 1_000_000),
		keg("Pembangunan", "Irigasi", kegiatanModel.StatusDirencanakan, 6_000_000, 0),
	}
	bidang := RekapBidang(rows, "Pembangunan")
	jalan := RekapSubBidang(rows, "Pembangunan", "Jalan")
	irigasi := RekapSubBidang(rows, "Pembangunan", "Irigasi")

	assert.Equal(t, bidang.Jumlah, jalan.Jumlah+irigasi.Jumlah)
	assert.Equal(t, bidang.TotalAnggaran, jalan.TotalAnggaran+irigasi.TotalAnggaran)
	assert.Equal(t, bidang.TotalRealisasi, jalan.TotalRealisasi+irigasi.TotalRealisasi)
}

func TestHitungRekapTahunan(t *testing.T) {
	pemasukan := []pemasukanModel.Pemasukan{
		{PemasukanJumlah: 100_000_000},
		{PemasukanJumlah: 50_000_000},
	}
	pengeluaran := []pengeluaranModel.Pengeluaran{
		{PengeluaranJumlah: 120_000_000},
	}
	pembiayaan := []pembiayaanModel.Pembiayaan{
		{PembiayaanJenis: pembiayaanModel.PembiayaanPenerimaan, PembiayaanJumlah: 10_000_000},
		{PembiayaanJenis: pembiayaanModel.PembiayaanPengeluaran, PembiayaanJumlah: 4_000_000},
	}

	r := HitungRekapTahunan(pemasukan, pengeluaran, pembiayaan)
	assert.EqualValues(t, 150_000_000, r.TotalPemasukan)
	assert.EqualValues(t, 120_000_000, r.TotalPengeluaran)
	assert.EqualValues(t, 30_000_000, r.Surplus)
	assert.EqualValues(t, 6_000_000, r.PembiayaanNetto)
	assert.EqualValues(t, 36_000_000, r.SiLPA)
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 999", FormatRupiah(999))
	assert.Equal(t, "Rp 1.000", FormatRupiah(1000))
	assert.Equal(t, "Rp 6.000.000", FormatRupiah(6_000_000))
	assert.Equal(t, "-Rp 2.500", FormatRupiah(-2500))
}

func TestFormatPersen(t *testing.T) {
	assert.Equal(t, "60,0%", FormatPersen(60))
	assert.Equal(t, "33,3%", FormatPersen(100.0/3.0))
}

func TestNamaBerkas(t *testing.T) {
	assert.Equal(t, "laporan-excel-sukamaju-2025.xlsx",
		NamaBerkas("excel", "Sukamaju", 2025, "", "xlsx"))
	assert.Equal(t, "laporan-word-suka-maju-2025-pengaspalan-jalan.docx",
		NamaBerkas("word", "Suka Maju", 2025, "Pengaspalan Jalan", "docx"))
}
