// file: internals/features/laporan/service/validate.go
package service

import (
	"fmt"
	"strings"
)

// CekEkspor memeriksa kelayakan snapshot sebelum render.
// Blocker menggagalkan ekspor (412), warning hanya dilampirkan di respons.
func CekEkspor(snap *LaporanSnapshot) (blockers []string, warnings []string) {
	if strings.TrimSpace(snap.Profil.ProfilDesaNama) == "" {
		blockers = append(blockers, "nama desa belum diisi di profil desa")
	}
	if len(snap.Kegiatan) == 0 {
		blockers = append(blockers, fmt.Sprintf("belum ada kegiatan pada tahun %d", snap.Tahun))
	}

	for _, k := range snap.Kegiatan {
		if k.KegiatanRealisasi > k.KegiatanAnggaran {
			warnings = append(warnings, fmt.Sprintf(
				"realisasi kegiatan %q melebihi anggaran", k.KegiatanNama))
		}
	}
	for _, wilayah := range [][2]string{
		{"kecamatan", snap.Profil.ProfilDesaKecamatan},
		{"kabupaten", snap.Profil.ProfilDesaKabupaten},
		{"provinsi", snap.Profil.ProfilDesaProvinsi},
	} {
		if strings.TrimSpace(wilayah[1]) == "" {
			warnings = append(warnings, "nama "+wilayah[0]+" belum diisi, kop surat tidak lengkap")
		}
	}
	if len(snap.Perangkat) == 0 {
		warnings = append(warnings, "daftar perangkat desa kosong, blok tanda tangan akan memakai titik-titik")
	}
	if strings.TrimSpace(snap.Narasi.NarasiKataPengantar) == "" {
		warnings = append(warnings, "kata pengantar kosong, laporan memakai teks bawaan")
	}
	return blockers, warnings
}
