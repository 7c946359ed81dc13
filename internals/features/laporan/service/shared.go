// file: internals/features/laporan/service/shared.go
package service

import (
	"fmt"
	"strings"
	"time"

	"desakeu_backend/internals/constants"
	kegiatanModel "desakeu_backend/internals/features/anggaran/kegiatan/model"
	subBidangModel "desakeu_backend/internals/features/anggaran/subbidang/model"
	pemasukanModel "desakeu_backend/internals/features/keuangan/pemasukan/model"
	pembiayaanModel "desakeu_backend/internals/features/keuangan/pembiayaan/model"
	pengeluaranModel "desakeu_backend/internals/features/keuangan/pengeluaran/model"
	helper "desakeu_backend/internals/helpers"
)

// TitikTitik dipakai di slot tanda tangan / isian yang belum terisi.
const TitikTitik = "..................."

// SeksiSubBidang: satu sub bidang + kegiatan di dalamnya, sudah terurut
// berdasarkan kode.
type SeksiSubBidang struct {
	SubBidang subBidangModel.SubBidang
	Kegiatan  []kegiatanModel.Kegiatan
	Rekap     Rekap
}

// SeksiBidang: satu bidang katalog + seluruh isinya untuk satu tahun.
type SeksiBidang struct {
	Bidang    constants.Bidang
	SubBidang []SeksiSubBidang
	Rekap     Rekap
}

// BlokTandaTangan: satu slot tanda tangan pada halaman pengesahan.
type BlokTandaTangan struct {
	Jabatan string
	Nama    string
}

// TampilanLaporan: view ternormalisasi yang dibangun SEKALI dari snapshot
// lalu dipakai oleh ketiga renderer (excel, word, pdf). Urutan baris,
// total, dan string terbilang dihitung di sini supaya ketiganya pasti
// sepakat.
type TampilanLaporan struct {
	Snapshot *LaporanSnapshot

	NamaDesa    string
	KopBaris    []string
	JudulTahun  string
	TanggalCetak time.Time

	Seksi        []SeksiBidang
	RekapTahunan RekapTahunan

	TotalAnggaranKegiatan  int64
	TotalRealisasiKegiatan int64
	PersenRealisasi        float64

	TerbilangRealisasi  string
	TerbilangPemasukan  string
	TerbilangPengeluaran string

	TandaTangan []BlokTandaTangan
}

// BangunTampilan menyusun view laporan dari snapshot.
func BangunTampilan(snap *LaporanSnapshot) *TampilanLaporan {
	t := &TampilanLaporan{
		Snapshot:     snap,
		NamaDesa:     snap.Profil.ProfilDesaNama,
		JudulTahun:   fmt.Sprintf("Tahun Anggaran %d", snap.Tahun),
		TanggalCetak: time.Now(),
	}
	if strings.TrimSpace(snap.Profil.ProfilDesaLabelTahun) != "" {
		t.JudulTahun = snap.Profil.ProfilDesaLabelTahun
	}
	t.KopBaris = kopSurat(snap)

	// urutkan sumber sekali, semua seksi memetik dari hasil urut yang sama
	helper.SortByKode(snap.SubBidang, func(s subBidangModel.SubBidang) string { return s.SubBidangKode })
	helper.SortByKode(snap.Kegiatan, func(k kegiatanModel.Kegiatan) string { return k.KegiatanKode })
	sortPemasukan(snap)
	sortPengeluaran(snap)
	sortPembiayaan(snap)

	for _, b := range constants.BidangCatalog {
		seksi := SeksiBidang{Bidang: b, Rekap: RekapBidang(snap.Kegiatan, b.Nama)}
		for _, sb := range snap.SubBidang {
			if sb.SubBidangBidang != b.Nama {
				continue
			}
			sub := SeksiSubBidang{
				SubBidang: sb,
				Rekap:     RekapSubBidang(snap.Kegiatan, b.Nama, sb.SubBidangNama),
			}
			for _, k := range snap.Kegiatan {
				if k.KegiatanBidang == b.Nama && k.KegiatanSubBidang == sb.SubBidangNama {
					sub.Kegiatan = append(sub.Kegiatan, k)
				}
			}
			seksi.SubBidang = append(seksi.SubBidang, sub)
		}
		t.Seksi = append(t.Seksi, seksi)
		t.TotalAnggaranKegiatan += seksi.Rekap.TotalAnggaran
		t.TotalRealisasiKegiatan += seksi.Rekap.TotalRealisasi
	}
	t.PersenRealisasi = Persen(t.TotalRealisasiKegiatan, t.TotalAnggaranKegiatan)

	t.RekapTahunan = HitungRekapTahunan(snap.Pemasukan, snap.Pengeluaran, snap.Pembiayaan)
	t.TerbilangRealisasi = helper.Terbilang(t.TotalRealisasiKegiatan) + " Rupiah"
	t.TerbilangPemasukan = helper.Terbilang(t.RekapTahunan.TotalPemasukan) + " Rupiah"
	t.TerbilangPengeluaran = helper.Terbilang(t.RekapTahunan.TotalPengeluaran) + " Rupiah"

	t.TandaTangan = blokTandaTangan(snap)
	return t
}

func kopSurat(snap *LaporanSnapshot) []string {
	p := snap.Profil
	baris := []string{}
	if p.ProfilDesaProvinsi != "" {
		baris = append(baris, "PEMERINTAH PROVINSI "+strings.ToUpper(p.ProfilDesaProvinsi))
	}
	if p.ProfilDesaKabupaten != "" {
		baris = append(baris, "KABUPATEN "+strings.ToUpper(p.ProfilDesaKabupaten))
	}
	if p.ProfilDesaKecamatan != "" {
		baris = append(baris, "KECAMATAN "+strings.ToUpper(p.ProfilDesaKecamatan))
	}
	nama := p.ProfilDesaNama
	if nama == "" {
		nama = TitikTitik
	}
	baris = append(baris, "PEMERINTAH DESA "+strings.ToUpper(nama))
	return baris
}

func blokTandaTangan(snap *LaporanSnapshot) []BlokTandaTangan {
	if len(snap.Perangkat) == 0 {
		return []BlokTandaTangan{
			{Jabatan: "Kepala Desa", Nama: TitikTitik},
			{Jabatan: "Sekretaris Desa", Nama: TitikTitik},
		}
	}
	out := make([]BlokTandaTangan, 0, len(snap.Perangkat))
	for _, p := range snap.Perangkat {
		nama := p.PerangkatDesaNama
		if strings.TrimSpace(nama) == "" {
			nama = TitikTitik
		}
		out = append(out, BlokTandaTangan{Jabatan: p.PerangkatDesaJabatan, Nama: nama})
	}
	return out
}

func sortPemasukan(snap *LaporanSnapshot) {
	helper.SortByKode(snap.Pemasukan, func(p pemasukanModel.Pemasukan) string { return p.PemasukanKode })
}

func sortPengeluaran(snap *LaporanSnapshot) {
	helper.SortByKode(snap.Pengeluaran, func(p pengeluaranModel.Pengeluaran) string { return p.PengeluaranKode })
}

func sortPembiayaan(snap *LaporanSnapshot) {
	helper.SortByKode(snap.Pembiayaan, func(p pembiayaanModel.Pembiayaan) string { return p.PembiayaanKode })
}

// FormatRupiah menulis nominal dengan pemisah ribuan titik: Rp 6.000.000.
// Nilai negatif (mis. defisit) ditulis dengan tanda minus di depan Rp.
func FormatRupiah(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

// FormatPersen: satu angka di belakang koma, gaya Indonesia (koma desimal).
func FormatPersen(p float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.1f%%", p), ".", ",")
}

// NamaBerkas membentuk nama file unduhan:
// laporan-<jenis>-<desa>-<tahun>[-<kegiatan>].<ext>
func NamaBerkas(jenis, desa string, tahun int, kegiatan, ext string) string {
	parts := []string{"laporan", slug(jenis), slug(desa), fmt.Sprintf("%d", tahun)}
	if kegiatan != "" {
		parts = append(parts, slug(kegiatan))
	}
	return strings.Join(parts, "-") + "." + ext
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prevDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// NarasiEfektif mengembalikan isi bagian narasi, atau teks bawaan bila
// bagian itu kosong. Fallback terjadi saat render, data tersimpan tidak
// pernah diubah.
func NarasiEfektif(isi, bawaan string) string {
	if strings.TrimSpace(isi) == "" {
		return bawaan
	}
	return isi
}

// Teks bawaan bagian narasi laporan.
const (
	BawaanKataPengantar = "Puji syukur kami panjatkan ke hadirat Tuhan Yang Maha Esa atas tersusunnya laporan realisasi kegiatan dan anggaran ini."
	BawaanLatarBelakang = "Laporan ini disusun sebagai bentuk pertanggungjawaban pemerintah desa atas pelaksanaan kegiatan dan penggunaan anggaran."
	BawaanMaksudTujuan  = "Memberikan gambaran pelaksanaan kegiatan serta realisasi anggaran desa secara transparan dan akuntabel."
	BawaanDasarHukum    = "Peraturan perundang-undangan yang berlaku tentang pengelolaan keuangan desa."
	BawaanPelaksanaan   = "Seluruh kegiatan dilaksanakan sesuai rencana kerja pemerintah desa pada tahun anggaran berjalan."
	BawaanHambatan      = "Tidak terdapat hambatan berarti dalam pelaksanaan kegiatan."
	BawaanSaran         = "Diharapkan dukungan seluruh pihak agar pelaksanaan kegiatan tahun berikutnya berjalan lebih baik."
)
