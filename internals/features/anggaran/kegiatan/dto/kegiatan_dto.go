// file: internals/features/anggaran/kegiatan/dto/kegiatan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"desakeu_backend/internals/features/anggaran/kegiatan/model"
)

// Create
type KegiatanCreateDTO struct {
	KegiatanTahun     int    `json:"kegiatan_tahun" validate:"required,min=2000,max=2100"`
	KegiatanBidang    string `json:"kegiatan_bidang" validate:"required,max=120"`
	KegiatanSubBidang string `json:"kegiatan_sub_bidang" validate:"required,max=160"`

	KegiatanKode string `json:"kegiatan_kode" validate:"omitempty,max=30"`
	KegiatanNama string `json:"kegiatan_nama" validate:"required,max=200"`

	KegiatanStatus model.StatusKegiatan `json:"kegiatan_status" validate:"omitempty,oneof=direncanakan berjalan selesai"`
	KegiatanJenis  model.JenisLaporan   `json:"kegiatan_jenis" validate:"omitempty,oneof=fisik nonfisik"`

	KegiatanProgres   int   `json:"kegiatan_progres" validate:"min=0,max=100"`
	KegiatanAnggaran  int64 `json:"kegiatan_anggaran" validate:"min=0"`
	KegiatanRealisasi int64 `json:"kegiatan_realisasi" validate:"min=0"`

	KegiatanPelaksana      string     `json:"kegiatan_pelaksana" validate:"omitempty,max=120"`
	KegiatanTanggalMulai   *time.Time `json:"kegiatan_tanggal_mulai,omitempty"`
	KegiatanTanggalSelesai *time.Time `json:"kegiatan_tanggal_selesai,omitempty"`
	KegiatanLokasi         string     `json:"kegiatan_lokasi" validate:"omitempty,max=200"`
	KegiatanDurasi         string     `json:"kegiatan_durasi" validate:"omitempty,max=60"`
}

// Update (partial)
type KegiatanUpdateDTO struct {
	KegiatanKode *string `json:"kegiatan_kode,omitempty"`
	KegiatanNama *string `json:"kegiatan_nama,omitempty"`

	KegiatanStatus *model.StatusKegiatan `json:"kegiatan_status,omitempty" validate:"omitempty,oneof=direncanakan berjalan selesai"`
	KegiatanJenis  *model.JenisLaporan   `json:"kegiatan_jenis,omitempty" validate:"omitempty,oneof=fisik nonfisik"`

	KegiatanProgres   *int   `json:"kegiatan_progres,omitempty" validate:"omitempty,min=0,max=100"`
	KegiatanAnggaran  *int64 `json:"kegiatan_anggaran,omitempty" validate:"omitempty,min=0"`
	KegiatanRealisasi *int64 `json:"kegiatan_realisasi,omitempty" validate:"omitempty,min=0"`

	KegiatanPelaksana      *string    `json:"kegiatan_pelaksana,omitempty"`
	KegiatanTanggalMulai   *time.Time `json:"kegiatan_tanggal_mulai,omitempty"`
	KegiatanTanggalSelesai *time.Time `json:"kegiatan_tanggal_selesai,omitempty"`
	KegiatanLokasi         *string    `json:"kegiatan_lokasi,omitempty"`
	KegiatanDurasi         *string    `json:"kegiatan_durasi,omitempty"`
}

func ToKegiatanModel(in KegiatanCreateDTO) model.Kegiatan {
	status := in.KegiatanStatus
	if status == "" {
		status = model.StatusDirencanakan
	}
	jenis := in.KegiatanJenis
	if jenis == "" {
		jenis = model.JenisFisik
	}
	return model.Kegiatan{
		KegiatanTahun:          in.KegiatanTahun,
		KegiatanBidang:         in.KegiatanBidang,
		KegiatanSubBidang:      in.KegiatanSubBidang,
		KegiatanKode:           in.KegiatanKode,
		KegiatanNama:           in.KegiatanNama,
		KegiatanStatus:         status,
		KegiatanJenis:          jenis,
		KegiatanProgres:        in.KegiatanProgres,
		KegiatanAnggaran:       in.KegiatanAnggaran,
		KegiatanRealisasi:      in.KegiatanRealisasi,
		KegiatanPelaksana:      in.KegiatanPelaksana,
		KegiatanTanggalMulai:   in.KegiatanTanggalMulai,
		KegiatanTanggalSelesai: in.KegiatanTanggalSelesai,
		KegiatanLokasi:         in.KegiatanLokasi,
		KegiatanDurasi:         in.KegiatanDurasi,
	}
}

func ApplyKegiatanUpdate(m *model.Kegiatan, in KegiatanUpdateDTO) {
	if in.KegiatanKode != nil {
		m.KegiatanKode = *in.KegiatanKode
	}
	if in.KegiatanNama != nil {
		m.KegiatanNama = *in.KegiatanNama
	}
	if in.KegiatanStatus != nil {
		m.KegiatanStatus = *in.KegiatanStatus
	}
	if in.KegiatanJenis != nil {
		m.KegiatanJenis = *in.KegiatanJenis
	}
	if in.KegiatanProgres != nil {
		m.KegiatanProgres = *in.KegiatanProgres
	}
	if in.KegiatanAnggaran != nil {
		m.KegiatanAnggaran = *in.KegiatanAnggaran
	}
	if in.KegiatanRealisasi != nil {
		m.KegiatanRealisasi = *in.KegiatanRealisasi
	}
	if in.KegiatanPelaksana != nil {
		m.KegiatanPelaksana = *in.KegiatanPelaksana
	}
	if in.KegiatanTanggalMulai != nil {
		m.KegiatanTanggalMulai = in.KegiatanTanggalMulai
	}
	if in.KegiatanTanggalSelesai != nil {
		m.KegiatanTanggalSelesai = in.KegiatanTanggalSelesai
	}
	if in.KegiatanLokasi != nil {
		m.KegiatanLokasi = *in.KegiatanLokasi
	}
	if in.KegiatanDurasi != nil {
		m.KegiatanDurasi = *in.KegiatanDurasi
	}
}

// PeringatanKegiatan: kondisi soft-warning yang tidak memblokir simpan.
func PeringatanKegiatan(m model.Kegiatan) []string {
	var warns []string
	if m.KegiatanAnggaran > 0 && m.KegiatanRealisasi > m.KegiatanAnggaran {
		warns = append(warns, "realisasi melebihi anggaran")
	}
	return warns
}

// ValidasiTanggal: tanggal selesai tidak boleh mendahului tanggal mulai.
func ValidasiTanggal(mulai, selesai *time.Time) bool {
	if mulai == nil || selesai == nil {
		return true
	}
	return !selesai.Before(*mulai)
}

type KegiatanResponse struct {
	KegiatanID        uuid.UUID            `json:"kegiatan_id"`
	KegiatanTahun     int                  `json:"kegiatan_tahun"`
	KegiatanBidang    string               `json:"kegiatan_bidang"`
	KegiatanSubBidang string               `json:"kegiatan_sub_bidang"`
	KegiatanKode      string               `json:"kegiatan_kode"`
	KegiatanNama      string               `json:"kegiatan_nama"`
	KegiatanStatus    model.StatusKegiatan `json:"kegiatan_status"`
	KegiatanJenis     model.JenisLaporan   `json:"kegiatan_jenis"`
	KegiatanProgres   int                  `json:"kegiatan_progres"`
	KegiatanAnggaran  int64                `json:"kegiatan_anggaran"`
	KegiatanRealisasi int64                `json:"kegiatan_realisasi"`

	KegiatanPelaksana      string     `json:"kegiatan_pelaksana"`
	KegiatanTanggalMulai   *time.Time `json:"kegiatan_tanggal_mulai,omitempty"`
	KegiatanTanggalSelesai *time.Time `json:"kegiatan_tanggal_selesai,omitempty"`
	KegiatanLokasi         string     `json:"kegiatan_lokasi"`
	KegiatanDurasi         string     `json:"kegiatan_durasi"`
}

func ToKegiatanResponse(m model.Kegiatan) KegiatanResponse {
	return KegiatanResponse{
		KegiatanID:             m.KegiatanID,
		KegiatanTahun:          m.KegiatanTahun,
		KegiatanBidang:         m.KegiatanBidang,
		KegiatanSubBidang:      m.KegiatanSubBidang,
		KegiatanKode:           m.KegiatanKode,
		KegiatanNama:           m.KegiatanNama,
		KegiatanStatus:         m.KegiatanStatus,
		KegiatanJenis:          m.KegiatanJenis,
		KegiatanProgres:        m.KegiatanProgres,
		KegiatanAnggaran:       m.KegiatanAnggaran,
		KegiatanRealisasi:      m.KegiatanRealisasi,
		KegiatanPelaksana:      m.KegiatanPelaksana,
		KegiatanTanggalMulai:   m.KegiatanTanggalMulai,
		KegiatanTanggalSelesai: m.KegiatanTanggalSelesai,
		KegiatanLokasi:         m.KegiatanLokasi,
		KegiatanDurasi:         m.KegiatanDurasi,
	}
}

func ToKegiatanResponses(ms []model.Kegiatan) []KegiatanResponse {
	out := make([]KegiatanResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToKegiatanResponse(m))
	}
	return out
}
