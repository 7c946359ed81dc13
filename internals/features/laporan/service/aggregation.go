// file: internals/features/laporan/service/aggregation.go
package service

import (
	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	pemasukanModel "desakeu_backend/internals/features/keuangan/pemasukan/model"
	pembiayaanModel "desakeu_backend/internals/features/keuangan/pembiayaan/model"
	pengeluaranModel "desakeu_backend/internals/features/keuangan/pengeluaran/model"
)

// Rekap: rollup satu lingkup (bidang atau sub bidang). Selalu dihitung
// ulang dari koleksi saat dibaca — tidak ada counter inkremental yang
// bisa melenceng.
type Rekap struct {
	Jumlah         int     `json:"jumlah"`
	Selesai        int     `json:"selesai"`
	Berjalan       int     `json:"berjalan"`
	Direncanakan   int     `json:"direncanakan"`
	TotalAnggaran  int64   `json:"total_anggaran"`
	TotalRealisasi int64   `json:"total_realisasi"`
	Persentase     float64 `json:"persentase"`
}

// Persen: realisasi/anggaran × 100, dengan konvensi 0 saat anggaran 0.
func Persen(realisasi, anggaran int64) float64 {
	if anggaran == 0 {
		return 0
	}
	return float64(realisasi) / float64(anggaran) * 100
}

func rekapDari(rows []kegiatanModel.Kegiatan) Rekap {
	r := Rekap{}
	for _, k := range rows {
		r.Jumlah++
		switch k.KegiatanStatus {
		case kegiatanModel.StatusSelesai:
			r.Selesai++
		case kegiatanModel.StatusBerjalan:
			r.Berjalan++
		default:
			r.Direncanakan++
		}
		r.TotalAnggaran += k.KegiatanAnggaran
		r.TotalRealisasi += k.KegiatanRealisasi
	}
	r.Persentase = Persen(r.TotalRealisasi, r.TotalAnggaran)
	return r
}

// RekapBidang merekap kegiatan satu bidang.
func RekapBidang(kegiatan []kegiatanModel.Kegiatan, bidang string) Rekap {
	var scoped []kegiatanModel.Kegiatan
	for _, k := range kegiatan {
		if k.KegiatanBidang == bidang {
			scoped = append(scoped, k)
		}
	}
	return rekapDari(scoped)
}

// RekapSubBidang merekap kegiatan satu pasangan (bidang, sub bidang).
func RekapSubBidang(kegiatan []kegiatanModel.Kegiatan, bidang, subBidang string) Rekap {
	var scoped []kegiatanModel.Kegiatan
	for _, k := range kegiatan {
		if k.KegiatanBidang == bidang && k.KegiatanSubBidang == subBidang {
			scoped = append(scoped, k)
		}
	}
	return rekapDari(scoped)
}

// RekapTahunan: total satu tahun anggaran penuh.
// surplus = pemasukan − pengeluaran; netto pembiayaan = penerimaan −
// pengeluaran pembiayaan; SiLPA = surplus + netto.
type RekapTahunan struct {
	TotalPemasukan   int64 `json:"total_pemasukan"`
	TotalPengeluaran int64 `json:"total_pengeluaran"`
	Surplus          int64 `json:"surplus"`

	PembiayaanMasuk  int64 `json:"pembiayaan_masuk"`
	PembiayaanKeluar int64 `json:"pembiayaan_keluar"`
	PembiayaanNetto  int64 `json:"pembiayaan_netto"`

	SiLPA int64 `json:"silpa"`
}

func HitungRekapTahunan(
	pemasukan []pemasukanModel.Pemasukan,
	pengeluaran []pengeluaranModel.Pengeluaran,
	pembiayaan []pembiayaanModel.Pembiayaan,
) RekapTahunan {
	r := RekapTahunan{}
	for _, p := range pemasukan {
		r.TotalPemasukan += p.PemasukanJumlah
	}
	for _, p := range pengeluaran {
		r.TotalPengeluaran += p.PengeluaranJumlah
	}
	for _, p := range pembiayaan {
		if p.PembiayaanJenis == pembiayaanModel.PembiayaanPenerimaan {
			r.PembiayaanMasuk += p.PembiayaanJumlah
		} else {
			r.PembiayaanKeluar += p.PembiayaanJumlah
		}
	}
	r.Surplus = r.TotalPemasukan - r.TotalPengeluaran
	r.PembiayaanNetto = r.PembiayaanMasuk - r.PembiayaanKeluar
	r.SiLPA = r.Surplus + r.PembiayaanNetto
	return r
}
