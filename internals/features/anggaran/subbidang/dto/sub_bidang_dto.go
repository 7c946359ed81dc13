// file: internals/features/anggaran/subbidang/dto/sub_bidang_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"desakeu_backend/internals/features/anggaran/subbidang/model"
)

// Create
type SubBidangCreateDTO struct {
	SubBidangTahun  int    `json:"sub_bidang_tahun" validate:"required,min=2000,max=2100"`
	SubBidangBidang string `json:"sub_bidang_bidang" validate:"required,max=120"`
	SubBidangNama   string `json:"sub_bidang_nama" validate:"required,max=160"`
	SubBidangKode   string `json:"sub_bidang_kode" validate:"omitempty,max=30"`
}

// Rename (nama dan/atau kode)
type SubBidangRenameDTO struct {
	SubBidangNama string `json:"sub_bidang_nama" validate:"required,max=160"`
	SubBidangKode string `json:"sub_bidang_kode" validate:"omitempty,max=30"`
}

// Response
type SubBidangResponse struct {
	SubBidangID        uuid.UUID `json:"sub_bidang_id"`
	SubBidangTahun     int       `json:"sub_bidang_tahun"`
	SubBidangBidang    string    `json:"sub_bidang_bidang"`
	SubBidangNama      string    `json:"sub_bidang_nama"`
	SubBidangKode      string    `json:"sub_bidang_kode"`
	SubBidangCreatedAt time.Time `json:"sub_bidang_created_at"`
	SubBidangUpdatedAt time.Time `json:"sub_bidang_updated_at"`
}

func ToSubBidangModel(in SubBidangCreateDTO) model.SubBidang {
	return model.SubBidang{
		SubBidangTahun:  in.SubBidangTahun,
		SubBidangBidang: in.SubBidangBidang,
		SubBidangNama:   in.SubBidangNama,
		SubBidangKode:   in.SubBidangKode,
	}
}

func ToSubBidangResponse(m model.SubBidang) SubBidangResponse {
	return SubBidangResponse{
		SubBidangID:        m.SubBidangID,
		SubBidangTahun:     m.SubBidangTahun,
		SubBidangBidang:    m.SubBidangBidang,
		SubBidangNama:      m.SubBidangNama,
		SubBidangKode:      m.SubBidangKode,
		SubBidangCreatedAt: m.SubBidangCreatedAt,
		SubBidangUpdatedAt: m.SubBidangUpdatedAt,
	}
}

func ToSubBidangResponses(ms []model.SubBidang) []SubBidangResponse {
	out := make([]SubBidangResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToSubBidangResponse(m))
	}
	return out
}
