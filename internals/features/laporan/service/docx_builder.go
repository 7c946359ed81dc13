// file: internals/features/laporan/service/docx_builder.go
package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// VarianWord menentukan cakupan dokumen Word yang dirender.
type VarianWord string

const (
	WordLengkap      VarianWord = "lengkap"        // seluruh tahun
	WordPerBidang    VarianWord = "per-bidang"     // satu bidang saja
	WordPerSubBidang VarianWord = "per-sub-bidang" // satu sub bidang saja
	WordPerKegiatan  VarianWord = "per-kegiatan"   // satu kegiatan saja
)

// BangunWord merender laporan naratif .docx: halaman sampul, bab
// pendahuluan (narasi), bab pelaksanaan per bidang dengan tabel kegiatan,
// bab keuangan, penutup, dan blok tanda tangan. `fokus` memilih nama
// bidang/sub bidang/kegiatan untuk varian terbatas; bab pelaksanaan
// hanya memuat lingkup itu dan bab keuangan dilewati.
func BangunWord(t *TampilanLaporan, varian VarianWord, fokus string) (*bytes.Buffer, error) {
	w := docx.New().WithDefaultTheme()

	tulisSampul(w, t, varian, fokus)
	tulisPendahuluan(w, t)

	switch varian {
	case WordPerKegiatan:
		if err := tulisBabSatuKegiatan(w, t, fokus); err != nil {
			return nil, err
		}
	case WordPerBidang:
		if err := tulisBabSatuBidang(w, t, fokus); err != nil {
			return nil, err
		}
	case WordPerSubBidang:
		if err := tulisBabSatuSubBidang(w, t, fokus); err != nil {
			return nil, err
		}
	default:
		tulisBabPelaksanaan(w, t)
		tulisBabKeuangan(w, t)
		tulisLampiran(w, t)
	}

	tulisPenutup(w, t)
	tulisTandaTangan(w, t)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func tulisSampul(w *docx.Docx, t *TampilanLaporan, varian VarianWord, fokus string) {
	for _, baris := range t.KopBaris {
		p := w.AddParagraph().Justification("center")
		p.AddText(baris).Size("28").Bold()
	}
	w.AddParagraph()
	w.AddParagraph()

	p := w.AddParagraph().Justification("center")
	p.AddText("LAPORAN REALISASI KEGIATAN DAN ANGGARAN").Size("36").Bold()
	if varian != WordLengkap && fokus != "" {
		p2 := w.AddParagraph().Justification("center")
		p2.AddText(fokus).Size("30").Bold()
	}
	p3 := w.AddParagraph().Justification("center")
	p3.AddText(t.JudulTahun).Size("28")

	w.AddParagraph().AddPageBreaks()
}

func tulisPendahuluan(w *docx.Docx, t *TampilanLaporan) {
	n := t.Snapshot.Narasi

	judulBab(w, "KATA PENGANTAR")
	isiBab(w, NarasiEfektif(n.NarasiKataPengantar, BawaanKataPengantar))
	w.AddParagraph().AddPageBreaks()

	judulBab(w, "BAB I PENDAHULUAN")
	subJudul(w, "A. Latar Belakang")
	isiBab(w, NarasiEfektif(n.NarasiLatarBelakang, BawaanLatarBelakang))
	subJudul(w, "B. Maksud dan Tujuan")
	isiBab(w, NarasiEfektif(n.NarasiMaksudTujuan, BawaanMaksudTujuan))
	subJudul(w, "C. Dasar Hukum")
	isiBab(w, NarasiEfektif(n.NarasiDasarHukum, BawaanDasarHukum))
	w.AddParagraph().AddPageBreaks()
}

func tulisBabPelaksanaan(w *docx.Docx, t *TampilanLaporan) {
	judulBab(w, "BAB II PELAKSANAAN KEGIATAN")
	isiBab(w, NarasiEfektif(t.Snapshot.Narasi.NarasiPelaksanaan, BawaanPelaksanaan))

	for _, seksi := range t.Seksi {
		if seksi.Rekap.Jumlah == 0 {
			continue
		}
		tulisSeksiBidang(w, seksi)
	}
	p := w.AddParagraph()
	p.AddText(fmt.Sprintf("Total realisasi seluruh bidang: %s (%s), terbilang %s.",
		FormatRupiah(t.TotalRealisasiKegiatan),
		FormatPersen(t.PersenRealisasi),
		t.TerbilangRealisasi)).Bold()
	w.AddParagraph().AddPageBreaks()
}

func tulisSeksiBidang(w *docx.Docx, seksi SeksiBidang) {
	subJudul(w, seksi.Bidang.Kode+". "+seksi.Bidang.Nama)
	for _, sub := range seksi.SubBidang {
		if len(sub.Kegiatan) == 0 {
			continue
		}
		tulisSeksiSub(w, sub)
	}
	p := w.AddParagraph()
	p.AddText(fmt.Sprintf("Jumlah bidang: %s dari %s (%s)",
		FormatRupiah(seksi.Rekap.TotalRealisasi),
		FormatRupiah(seksi.Rekap.TotalAnggaran),
		FormatPersen(seksi.Rekap.Persentase))).Bold()
}

func tulisSeksiSub(w *docx.Docx, sub SeksiSubBidang) {
	p := w.AddParagraph()
	p.AddText(sub.SubBidang.SubBidangKode + " " + sub.SubBidang.SubBidangNama).Bold()

	tabelKegiatan(w, sub)
	p2 := w.AddParagraph()
	p2.AddText(fmt.Sprintf("Jumlah: %s dari %s (%s)",
		FormatRupiah(sub.Rekap.TotalRealisasi),
		FormatRupiah(sub.Rekap.TotalAnggaran),
		FormatPersen(sub.Rekap.Persentase)))
}

// varian satu bidang: bab pelaksanaan hanya memuat bidang terpilih.
func tulisBabSatuBidang(w *docx.Docx, t *TampilanLaporan, bidangNama string) error {
	judulBab(w, "BAB II PELAKSANAAN KEGIATAN")
	for _, seksi := range t.Seksi {
		if !strings.EqualFold(seksi.Bidang.Nama, bidangNama) {
			continue
		}
		tulisSeksiBidang(w, seksi)
		w.AddParagraph().AddPageBreaks()
		return nil
	}
	return fmt.Errorf("bidang %q tidak ditemukan", bidangNama)
}

// varian satu sub bidang: hanya tabel sub bidang terpilih.
func tulisBabSatuSubBidang(w *docx.Docx, t *TampilanLaporan, subNama string) error {
	judulBab(w, "BAB II PELAKSANAAN KEGIATAN")
	for _, seksi := range t.Seksi {
		for _, sub := range seksi.SubBidang {
			if !strings.EqualFold(sub.SubBidang.SubBidangNama, subNama) {
				continue
			}
			subJudul(w, seksi.Bidang.Kode+". "+seksi.Bidang.Nama)
			tulisSeksiSub(w, sub)
			w.AddParagraph().AddPageBreaks()
			return nil
		}
	}
	return fmt.Errorf("sub bidang %q tidak ditemukan pada tahun %d", subNama, t.Snapshot.Tahun)
}

func tulisBabSatuKegiatan(w *docx.Docx, t *TampilanLaporan, kegiatanNama string) error {
	judulBab(w, "BAB II PELAKSANAAN KEGIATAN")
	for _, seksi := range t.Seksi {
		for _, sub := range seksi.SubBidang {
			for _, k := range sub.Kegiatan {
				if k.KegiatanNama != kegiatanNama {
					continue
				}
				subJudul(w, k.KegiatanNama)
				for _, kv := range [][2]string{
					{"Bidang", seksi.Bidang.Nama},
					{"Sub Bidang", sub.SubBidang.SubBidangNama},
					{"Status", string(k.KegiatanStatus)},
					{"Pelaksana", k.KegiatanPelaksana},
					{"Lokasi", k.KegiatanLokasi},
					{"Anggaran", FormatRupiah(k.KegiatanAnggaran)},
					{"Realisasi", FormatRupiah(k.KegiatanRealisasi)},
					{"Serapan", FormatPersen(Persen(k.KegiatanRealisasi, k.KegiatanAnggaran))},
				} {
					p := w.AddParagraph()
					p.AddText(kv[0] + ": " + kv[1])
				}
				return nil
			}
		}
	}
	return fmt.Errorf("kegiatan %q tidak ditemukan pada tahun %d", kegiatanNama, t.Snapshot.Tahun)
}

func tulisBabKeuangan(w *docx.Docx, t *TampilanLaporan) {
	r := t.RekapTahunan
	judulBab(w, "BAB III REALISASI KEUANGAN")
	for _, kv := range [][2]string{
		{"Total Pemasukan", FormatRupiah(r.TotalPemasukan)},
		{"Total Pengeluaran", FormatRupiah(r.TotalPengeluaran)},
		{"Surplus / Defisit", FormatRupiah(r.Surplus)},
		{"Pembiayaan Netto", FormatRupiah(r.PembiayaanNetto)},
		{"SiLPA", FormatRupiah(r.SiLPA)},
	} {
		p := w.AddParagraph()
		p.AddText(kv[0] + ": " + kv[1])
	}
	p := w.AddParagraph()
	p.AddText("Terbilang pemasukan: " + t.TerbilangPemasukan + ".")
	p2 := w.AddParagraph()
	p2.AddText("Terbilang pengeluaran: " + t.TerbilangPengeluaran + ".")
	w.AddParagraph().AddPageBreaks()
}

// daftar lampiran: nama berkas + keterangan + url, urut sesuai snapshot.
func tulisLampiran(w *docx.Docx, t *TampilanLaporan) {
	if len(t.Snapshot.Lampiran) == 0 {
		return
	}
	judulBab(w, "DAFTAR LAMPIRAN")
	for i, l := range t.Snapshot.Lampiran {
		label := fmt.Sprintf("%d. [%s] %s", i+1, l.LampiranIndukJenis, l.LampiranNamaFile)
		if l.LampiranKeterangan != "" {
			label += " - " + l.LampiranKeterangan
		}
		p := w.AddParagraph()
		p.AddText(label)
		if l.LampiranURL != "" {
			pu := w.AddParagraph()
			pu.AddText("    " + l.LampiranURL).Color("0563C1")
		}
	}
	w.AddParagraph().AddPageBreaks()
}

func tulisPenutup(w *docx.Docx, t *TampilanLaporan) {
	n := t.Snapshot.Narasi
	judulBab(w, "BAB IV PENUTUP")
	subJudul(w, "A. Hambatan")
	isiBab(w, NarasiEfektif(n.NarasiHambatan, BawaanHambatan))
	subJudul(w, "B. Saran")
	isiBab(w, NarasiEfektif(n.NarasiSaran, BawaanSaran))
}

func tulisTandaTangan(w *docx.Docx, t *TampilanLaporan) {
	w.AddParagraph()
	p := w.AddParagraph().Justification("right")
	p.AddText("Desa " + t.NamaDesa + ", " + t.TanggalCetak.Format("2 January 2006"))
	for _, tt := range t.TandaTangan {
		w.AddParagraph()
		pj := w.AddParagraph().Justification("right")
		pj.AddText(tt.Jabatan)
		w.AddParagraph()
		w.AddParagraph()
		pn := w.AddParagraph().Justification("right")
		pn.AddText(tt.Nama).Bold()
	}
}

func tabelKegiatan(w *docx.Docx, sub SeksiSubBidang) {
	tbl := w.AddTable(len(sub.Kegiatan)+1, 5, 9000, nil)
	head := []string{"Kegiatan", "Status", "Anggaran", "Realisasi", "Serapan"}
	for i, c := range tbl.TableRows[0].TableCells {
		c.AddParagraph().AddText(head[i]).Bold()
	}
	for i, k := range sub.Kegiatan {
		cells := tbl.TableRows[i+1].TableCells
		cells[0].AddParagraph().AddText(k.KegiatanNama)
		cells[1].AddParagraph().AddText(string(k.KegiatanStatus))
		cells[2].AddParagraph().AddText(FormatRupiah(k.KegiatanAnggaran))
		cells[3].AddParagraph().AddText(FormatRupiah(k.KegiatanRealisasi))
		cells[4].AddParagraph().AddText(FormatPersen(Persen(k.KegiatanRealisasi, k.KegiatanAnggaran)))
	}
}

func judulBab(w *docx.Docx, judul string) {
	p := w.AddParagraph().Justification("center")
	p.AddText(judul).Size("28").Bold()
	w.AddParagraph()
}

func subJudul(w *docx.Docx, judul string) {
	p := w.AddParagraph()
	p.AddText(judul).Bold()
}

func isiBab(w *docx.Docx, isi string) {
	p := w.AddParagraph()
	p.AddText(isi)
	w.AddParagraph()
}
