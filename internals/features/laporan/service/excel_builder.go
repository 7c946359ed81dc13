// file: internals/features/laporan/service/excel_builder.go
package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BangunExcel merender satu workbook penuh dari tampilan laporan:
// sheet Profil, Pemasukan, Pengeluaran, Pembiayaan, satu sheet per bidang,
// Rekap, dan Lampiran. Angka ditulis sebagai number, bukan string, supaya
// bisa dijumlah ulang di spreadsheet.
func BangunExcel(t *TampilanLaporan) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	judul, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 13},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "9BC2E6", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}
	uang, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	if err != nil {
		return nil, err
	}

	if err := sheetProfil(f, t, judul); err != nil {
		return nil, err
	}
	if err := sheetPemasukan(f, t, header, uang); err != nil {
		return nil, err
	}
	if err := sheetPengeluaran(f, t, header, uang); err != nil {
		return nil, err
	}
	if err := sheetPembiayaan(f, t, header, uang); err != nil {
		return nil, err
	}
	for _, seksi := range t.Seksi {
		if err := sheetBidang(f, seksi, header, uang); err != nil {
			return nil, err
		}
	}
	if err := sheetRekap(f, t, header, uang); err != nil {
		return nil, err
	}
	if err := sheetLampiran(f, t, header); err != nil {
		return nil, err
	}

	// sheet default bawaan excelize tidak dipakai
	if idx, err := f.GetSheetIndex("Profil"); err == nil {
		f.SetActiveSheet(idx)
	}
	_ = f.DeleteSheet("Sheet1")

	return f.WriteToBuffer()
}

func sheetProfil(f *excelize.File, t *TampilanLaporan, judul int) error {
	const s = "Profil"
	if _, err := f.NewSheet(s); err != nil {
		return err
	}
	row := 1
	for _, baris := range t.KopBaris {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(s, cell, baris)
		f.MergeCell(s, cell, fmt.Sprintf("D%d", row))
		f.SetCellStyle(s, cell, cell, judul)
		row++
	}
	row++
	f.SetCellValue(s, fmt.Sprintf("A%d", row), "Laporan Realisasi Kegiatan dan Anggaran")
	row++
	f.SetCellValue(s, fmt.Sprintf("A%d", row), t.JudulTahun)
	row += 2

	p := t.Snapshot.Profil
	for _, kv := range [][2]string{
		{"Desa", p.ProfilDesaNama},
		{"Kecamatan", p.ProfilDesaKecamatan},
		{"Kabupaten", p.ProfilDesaKabupaten},
		{"Provinsi", p.ProfilDesaProvinsi},
	} {
		f.SetCellValue(s, fmt.Sprintf("A%d", row), kv[0])
		f.SetCellValue(s, fmt.Sprintf("B%d", row), kv[1])
		row++
	}
	row++
	f.SetCellValue(s, fmt.Sprintf("A%d", row), "Perangkat Desa")
	row++
	for _, tt := range t.TandaTangan {
		f.SetCellValue(s, fmt.Sprintf("A%d", row), tt.Jabatan)
		f.SetCellValue(s, fmt.Sprintf("B%d", row), tt.Nama)
		row++
	}
	f.SetColWidth(s, "A", "A", 28)
	f.SetColWidth(s, "B", "D", 24)
	return nil
}

func sheetPemasukan(f *excelize.File, t *TampilanLaporan, header, uang int) error {
	const s = "Pemasukan"
	if _, err := f.NewSheet(s); err != nil {
		return err
	}
	tulisHeader(f, s, header, []string{"No", "Kode", "Kategori", "Uraian", "Sumber", "Jumlah (Rp)"})
	row := 2
	for i, p := range t.Snapshot.Pemasukan {
		f.SetCellValue(s, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(s, fmt.Sprintf("B%d", row), p.PemasukanKode)
		f.SetCellValue(s, fmt.Sprintf("C%d", row), p.PemasukanKategori)
		f.SetCellValue(s, fmt.Sprintf("D%d", row), p.PemasukanUraian)
		f.SetCellValue(s, fmt.Sprintf("E%d", row), p.PemasukanSumber)
		f.SetCellValue(s, fmt.Sprintf("F%d", row), p.PemasukanJumlah)
		row++
	}
	f.SetCellValue(s, fmt.Sprintf("E%d", row), "TOTAL")
	f.SetCellValue(s, fmt.Sprintf("F%d", row), t.RekapTahunan.TotalPemasukan)
	f.SetCellValue(s, fmt.Sprintf("A%d", row+1), "Terbilang: "+t.TerbilangPemasukan)
	f.SetCellStyle(s, "F2", fmt.Sprintf("F%d", row), uang)
	f.SetColWidth(s, "C", "E", 26)
	f.SetColWidth(s, "F", "F", 18)
	return nil
}

func sheetPengeluaran(f *excelize.File, t *TampilanLaporan, header, uang int) error {
	const s = "Pengeluaran"
	if _, err := f.NewSheet(s); err != nil {
		return err
	}
	tulisHeader(f, s, header, []string{"No", "Kode", "Kategori", "Uraian", "Penerima", "Jumlah (Rp)"})
	row := 2
	for i, p := range t.Snapshot.Pengeluaran {
		f.SetCellValue(s, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(s, fmt.Sprintf("B%d", row), p.PengeluaranKode)
		f.SetCellValue(s, fmt.Sprintf("C%d", row), p.PengeluaranKategori)
		f.SetCellValue(s, fmt.Sprintf("D%d", row), p.PengeluaranUraian)
		f.SetCellValue(s, fmt.Sprintf("E%d", row), p.PengeluaranPenerima)
		f.SetCellValue(s, fmt.Sprintf("F%d", row), p.PengeluaranJumlah)
		row++
	}
	f.SetCellValue(s, fmt.Sprintf("E%d", row), "TOTAL")
	f.SetCellValue(s, fmt.Sprintf("F%d", row), t.RekapTahunan.TotalPengeluaran)
	f.SetCellValue(s, fmt.Sprintf("A%d", row+1), "Terbilang: "+t.TerbilangPengeluaran)
	f.SetCellStyle(s, "F2", fmt.Sprintf("F%d", row), uang)
	f.SetColWidth(s, "C", "E", 26)
	f.SetColWidth(s, "F", "F", 18)
	return nil
}

func sheetPembiayaan(f *excelize.File, t *TampilanLaporan, header, uang int) error {
	const s = "Pembiayaan"
	if _, err := f.NewSheet(s); err != nil {
		return err
	}
	tulisHeader(f, s, header, []string{"No", "Kode", "Jenis", "Kategori", "Uraian", "Jumlah (Rp)"})
	row := 2
	for i, p := range t.Snapshot.Pembiayaan {
		f.SetCellValue(s, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(s, fmt.Sprintf("B%d", row), p.PembiayaanKode)
		f.SetCellValue(s, fmt.Sprintf("C%d", row), string(p.PembiayaanJenis))
		f.SetCellValue(s, fmt.Sprintf("D%d", row), p.PembiayaanKategori)
		f.SetCellValue(s, fmt.Sprintf("E%d", row), p.PembiayaanUraian)
		f.SetCellValue(s, fmt.Sprintf("F%d", row), p.PembiayaanJumlah)
		row++
	}
	r := t.RekapTahunan
	for _, kv := range []struct {
		label  string
		jumlah int64
	}{
		{"Penerimaan Pembiayaan", r.PembiayaanMasuk},
		{"Pengeluaran Pembiayaan", r.PembiayaanKeluar},
		{"Pembiayaan Netto", r.PembiayaanNetto},
		{"SiLPA", r.SiLPA},
	} {
		f.SetCellValue(s, fmt.Sprintf("E%d", row), kv.label)
		f.SetCellValue(s, fmt.Sprintf("F%d", row), kv.jumlah)
		row++
	}
	f.SetCellStyle(s, "F2", fmt.Sprintf("F%d", row-1), uang)
	f.SetColWidth(s, "D", "E", 26)
	f.SetColWidth(s, "F", "F", 18)
	return nil
}

// sheetBidang: satu sheet per bidang, kegiatan dikelompokkan per sub bidang.
func sheetBidang(f *excelize.File, seksi SeksiBidang, header, uang int) error {
	s := "Bidang " + seksi.Bidang.Kode
	if _, err := f.NewSheet(s); err != nil {
		return err
	}
	f.SetCellValue(s, "A1", seksi.Bidang.Kode+". "+seksi.Bidang.Nama)
	f.MergeCell(s, "A1", "H1")

	f.SetCellValue(s, "A2", "No")
	f.SetCellValue(s, "B2", "Kode")
	f.SetCellValue(s, "C2", "Kegiatan")
	f.SetCellValue(s, "D2", "Status")
	f.SetCellValue(s, "E2", "Progres (%)")
	f.SetCellValue(s, "F2", "Anggaran (Rp)")
	f.SetCellValue(s, "G2", "Realisasi (Rp)")
	f.SetCellValue(s, "H2", "Serapan")
	f.SetCellStyle(s, "A2", "H2", header)

	row := 3
	no := 1
	for _, sub := range seksi.SubBidang {
		f.SetCellValue(s, fmt.Sprintf("B%d", row), sub.SubBidang.SubBidangKode)
		f.SetCellValue(s, fmt.Sprintf("C%d", row), sub.SubBidang.SubBidangNama)
		f.SetCellStyle(s, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), header)
		row++
		for _, k := range sub.Kegiatan {
			f.SetCellValue(s, fmt.Sprintf("A%d", row), no)
			f.SetCellValue(s, fmt.Sprintf("B%d", row), k.KegiatanKode)
			f.SetCellValue(s, fmt.Sprintf("C%d", row), k.KegiatanNama)
			f.SetCellValue(s, fmt.Sprintf("D%d", row), string(k.KegiatanStatus))
			f.SetCellValue(s, fmt.Sprintf("E%d", row), k.KegiatanProgres)
			f.SetCellValue(s, fmt.Sprintf("F%d", row), k.KegiatanAnggaran)
			f.SetCellValue(s, fmt.Sprintf("G%d", row), k.KegiatanRealisasi)
			f.SetCellValue(s, fmt.Sprintf("H%d", row),
				FormatPersen(Persen(k.KegiatanRealisasi, k.KegiatanAnggaran)))
			no++
			row++
		}
		f.SetCellValue(s, fmt.Sprintf("C%d", row), "Jumlah "+sub.SubBidang.SubBidangNama)
		f.SetCellValue(s, fmt.Sprintf("F%d", row), sub.Rekap.TotalAnggaran)
		f.SetCellValue(s, fmt.Sprintf("G%d", row), sub.Rekap.TotalRealisasi)
		f.SetCellValue(s, fmt.Sprintf("H%d", row), FormatPersen(sub.Rekap.Persentase))
		row++
	}
	f.SetCellValue(s, fmt.Sprintf("C%d", row), "JUMLAH BIDANG")
	f.SetCellValue(s, fmt.Sprintf("F%d", row), seksi.Rekap.TotalAnggaran)
	f.SetCellValue(s, fmt.Sprintf("G%d", row), seksi.Rekap.TotalRealisasi)
	f.SetCellValue(s, fmt.Sprintf("H%d", row), FormatPersen(seksi.Rekap.Persentase))

	f.SetCellStyle(s, "F3", fmt.Sprintf("G%d", row), uang)
	f.SetColWidth(s, "C", "C", 40)
	f.SetColWidth(s, "F", "G", 18)
	return nil
}

func sheetRekap(f *excelize.File, t *TampilanLaporan, header, uang int) error {
	const s = "Rekap"
	if _, err := f.NewSheet(s); err != nil {
		return err
	}
	tulisHeader(f, s, header, []string{
		"Bidang", "Kegiatan", "Selesai", "Berjalan", "Direncanakan",
		"Anggaran (Rp)", "Realisasi (Rp)", "Serapan",
	})
	row := 2
	for _, seksi := range t.Seksi {
		f.SetCellValue(s, fmt.Sprintf("A%d", row), seksi.Bidang.Kode+". "+seksi.Bidang.Nama)
		f.SetCellValue(s, fmt.Sprintf("B%d", row), seksi.Rekap.Jumlah)
		f.SetCellValue(s, fmt.Sprintf("C%d", row), seksi.Rekap.Selesai)
		f.SetCellValue(s, fmt.Sprintf("D%d", row), seksi.Rekap.Berjalan)
		f.SetCellValue(s, fmt.Sprintf("E%d", row), seksi.Rekap.Direncanakan)
		f.SetCellValue(s, fmt.Sprintf("F%d", row), seksi.Rekap.TotalAnggaran)
		f.SetCellValue(s, fmt.Sprintf("G%d", row), seksi.Rekap.TotalRealisasi)
		f.SetCellValue(s, fmt.Sprintf("H%d", row), FormatPersen(seksi.Rekap.Persentase))
		row++
	}
	f.SetCellValue(s, fmt.Sprintf("A%d", row), "TOTAL")
	f.SetCellValue(s, fmt.Sprintf("F%d", row), t.TotalAnggaranKegiatan)
	f.SetCellValue(s, fmt.Sprintf("G%d", row), t.TotalRealisasiKegiatan)
	f.SetCellValue(s, fmt.Sprintf("H%d", row), FormatPersen(t.PersenRealisasi))
	row++
	f.SetCellValue(s, fmt.Sprintf("A%d", row), "Terbilang realisasi: "+t.TerbilangRealisasi)

	f.SetCellStyle(s, "F2", fmt.Sprintf("G%d", row-1), uang)
	f.SetColWidth(s, "A", "A", 44)
	f.SetColWidth(s, "F", "G", 18)
	return nil
}

func sheetLampiran(f *excelize.File, t *TampilanLaporan, header int) error {
	const s = "Lampiran"
	if _, err := f.NewSheet(s); err != nil {
		return err
	}
	tulisHeader(f, s, header, []string{"No", "Induk", "Nama File", "Keterangan", "URL"})
	row := 2
	for i, l := range t.Snapshot.Lampiran {
		f.SetCellValue(s, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(s, fmt.Sprintf("B%d", row), string(l.LampiranIndukJenis))
		f.SetCellValue(s, fmt.Sprintf("C%d", row), l.LampiranNamaFile)
		f.SetCellValue(s, fmt.Sprintf("D%d", row), l.LampiranKeterangan)
		f.SetCellValue(s, fmt.Sprintf("E%d", row), l.LampiranURL)
		if l.LampiranURL != "" {
			f.SetCellHyperLink(s, fmt.Sprintf("E%d", row), l.LampiranURL, "External")
		}
		row++
	}
	f.SetColWidth(s, "C", "E", 36)
	return nil
}

func tulisHeader(f *excelize.File, sheet string, style int, cols []string) {
	for i, judul := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, judul)
	}
	akhir, _ := excelize.CoordinatesToCellName(len(cols), 1)
	f.SetCellStyle(sheet, "A1", akhir, style)
}
