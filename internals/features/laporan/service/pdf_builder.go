// file: internals/features/laporan/service/pdf_builder.go
package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// BangunPDF merender laporan .pdf siap cetak: kop surat di halaman awal,
// tabel kegiatan per bidang, ringkasan keuangan, daftar lampiran dengan
// tautan yang bisa diklik, dan blok tanda tangan. Nomor halaman di footer.
func BangunPDF(t *TampilanLaporan) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Halaman %d / {nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})

	pdfSampul(pdf, tr, t)
	pdfKegiatan(pdf, tr, t)
	pdfKeuangan(pdf, tr, t)
	pdfLampiran(pdf, tr, t)
	pdfTandaTangan(pdf, tr, t)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func pdfSampul(pdf *gofpdf.Fpdf, tr func(string) string, t *TampilanLaporan) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 13)
	for _, baris := range t.KopBaris {
		pdf.CellFormat(0, 7, tr(baris), "", 1, "C", false, 0, "")
	}
	pdf.SetLineWidth(0.7)
	pdf.Line(15, pdf.GetY()+2, 195, pdf.GetY()+2)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("LAPORAN REALISASI KEGIATAN DAN ANGGARAN"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(0, 9, tr(t.JudulTahun), "", 1, "C", false, 0, "")
}

func pdfKegiatan(pdf *gofpdf.Fpdf, tr func(string) string, t *TampilanLaporan) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, tr("Realisasi Kegiatan per Bidang"), "", 1, "L", false, 0, "")

	lebar := []float64{72, 24, 32, 32, 20}
	for _, seksi := range t.Seksi {
		if seksi.Rekap.Jumlah == 0 {
			continue
		}
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, tr(seksi.Bidang.Kode+". "+seksi.Bidang.Nama), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(221, 235, 247)
		for i, judul := range []string{"Kegiatan", "Status", "Anggaran", "Realisasi", "Serapan"} {
			pdf.CellFormat(lebar[i], 7, tr(judul), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, sub := range seksi.SubBidang {
			if len(sub.Kegiatan) == 0 {
				continue
			}
			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(lebar[0]+lebar[1]+lebar[2]+lebar[3]+lebar[4], 6,
				tr(sub.SubBidang.SubBidangKode+" "+sub.SubBidang.SubBidangNama),
				"1", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			for _, k := range sub.Kegiatan {
				pdf.CellFormat(lebar[0], 6, tr(potong(k.KegiatanNama, 48)), "1", 0, "L", false, 0, "")
				pdf.CellFormat(lebar[1], 6, tr(string(k.KegiatanStatus)), "1", 0, "C", false, 0, "")
				pdf.CellFormat(lebar[2], 6, tr(FormatRupiah(k.KegiatanAnggaran)), "1", 0, "R", false, 0, "")
				pdf.CellFormat(lebar[3], 6, tr(FormatRupiah(k.KegiatanRealisasi)), "1", 0, "R", false, 0, "")
				pdf.CellFormat(lebar[4], 6,
					tr(FormatPersen(Persen(k.KegiatanRealisasi, k.KegiatanAnggaran))),
					"1", 1, "R", false, 0, "")
			}
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(lebar[0]+lebar[1], 6, tr("Jumlah Bidang"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(lebar[2], 6, tr(FormatRupiah(seksi.Rekap.TotalAnggaran)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(lebar[3], 6, tr(FormatRupiah(seksi.Rekap.TotalRealisasi)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(lebar[4], 6, tr(FormatPersen(seksi.Rekap.Persentase)), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(
		"Total realisasi seluruh bidang: %s dari %s (%s). Terbilang: %s.",
		FormatRupiah(t.TotalRealisasiKegiatan),
		FormatRupiah(t.TotalAnggaranKegiatan),
		FormatPersen(t.PersenRealisasi),
		t.TerbilangRealisasi)), "", "L", false)
}

func pdfKeuangan(pdf *gofpdf.Fpdf, tr func(string) string, t *TampilanLaporan) {
	r := t.RekapTahunan
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, tr("Ringkasan Keuangan"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, kv := range []struct {
		label  string
		jumlah int64
	}{
		{"Total Pemasukan", r.TotalPemasukan},
		{"Total Pengeluaran", r.TotalPengeluaran},
		{"Surplus / Defisit", r.Surplus},
		{"Penerimaan Pembiayaan", r.PembiayaanMasuk},
		{"Pengeluaran Pembiayaan", r.PembiayaanKeluar},
		{"Pembiayaan Netto", r.PembiayaanNetto},
		{"SiLPA", r.SiLPA},
	} {
		pdf.CellFormat(90, 7, tr(kv.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(FormatRupiah(kv.jumlah)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Terbilang pemasukan: "+t.TerbilangPemasukan+". "+
		"Terbilang pengeluaran: "+t.TerbilangPengeluaran+"."), "", "L", false)
}

func pdfLampiran(pdf *gofpdf.Fpdf, tr func(string) string, t *TampilanLaporan) {
	if len(t.Snapshot.Lampiran) == 0 {
		return
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, tr("Daftar Lampiran"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for i, l := range t.Snapshot.Lampiran {
		label := fmt.Sprintf("%d. [%s] %s", i+1, l.LampiranIndukJenis, l.LampiranNamaFile)
		if l.LampiranKeterangan != "" {
			label += " - " + l.LampiranKeterangan
		}
		// baris ber-URL jadi tautan biru, sisanya teks biasa
		if l.LampiranURL != "" {
			pdf.SetTextColor(0, 0, 200)
			pdf.CellFormat(0, 6, tr(potong(label, 100)), "", 1, "L", false, 0, l.LampiranURL)
			pdf.SetTextColor(0, 0, 0)
		} else {
			pdf.CellFormat(0, 6, tr(potong(label, 100)), "", 1, "L", false, 0, "")
		}
	}
}

func pdfTandaTangan(pdf *gofpdf.Fpdf, tr func(string) string, t *TampilanLaporan) {
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Desa "+t.NamaDesa+", "+t.TanggalCetak.Format("2 January 2006")),
		"", 1, "R", false, 0, "")
	for _, tt := range t.TandaTangan {
		pdf.Ln(4)
		pdf.CellFormat(0, 6, tr(tt.Jabatan), "", 1, "R", false, 0, "")
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "BU", 10)
		pdf.CellFormat(0, 6, tr(tt.Nama), "", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}
}

// potong memenggal per rune supaya karakter multi-byte tidak terbelah
// sebelum translasi cp1252.
func potong(s string, maks int) string {
	r := []rune(s)
	if len(r) <= maks {
		return s
	}
	return string(r[:maks-3]) + "..."
}
