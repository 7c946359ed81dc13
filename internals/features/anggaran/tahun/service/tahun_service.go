// file: internals/features/anggaran/tahun/service/tahun_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"desakeu_backend/internals/constants"
	subBidangModel "desakeu_backend/internals/features/anggaran/subbidang/model"
	"desakeu_backend/internals/features/anggaran/tahun/model"
	"desakeu_backend/internals/helpers/tahunlock"
)

var ErrTahunSudahAda = errors.New("tahun anggaran sudah ada")

type Service struct {
	DB *gorm.DB
}

// List mengembalikan semua tahun anggaran, urut naik.
func (s *Service) List(ctx context.Context) ([]model.TahunAnggaran, error) {
	var rows []model.TahunAnggaran
	err := s.DB.WithContext(ctx).Order("tahun_anggaran_tahun ASC").Find(&rows).Error
	return rows, err
}

// Create membuat tahun baru dengan menyalin katalog sub bidang dari tahun
// acuan; bila tahun acuan tidak punya sub bidang sama sekali, dipakai
// template bawaan. Menolak bila tahun target sudah terdaftar. Tahun lama
// tidak pernah dihapus.
func (s *Service) Create(ctx context.Context, tahunBaru, tahunAcuan int) (model.TahunAnggaran, int, error) {
	tahunlock.Lock(tahunBaru)
	defer tahunlock.Unlock(tahunBaru)

	var row model.TahunAnggaran
	disalin := 0

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.TahunAnggaran{}).
			Where("tahun_anggaran_tahun = ?", tahunBaru).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrTahunSudahAda
		}

		row = model.TahunAnggaran{TahunAnggaranTahun: tahunBaru}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		var acuan []subBidangModel.SubBidang
		if err := tx.Where("sub_bidang_tahun = ?", tahunAcuan).Find(&acuan).Error; err != nil {
			return err
		}

		var baru []subBidangModel.SubBidang
		if len(acuan) > 0 {
			for _, sb := range acuan {
				baru = append(baru, subBidangModel.SubBidang{
					SubBidangTahun:  tahunBaru,
					SubBidangBidang: sb.SubBidangBidang,
					SubBidangNama:   sb.SubBidangNama,
					SubBidangKode:   sb.SubBidangKode,
				})
			}
		} else {
			for _, seed := range constants.DefaultSubBidangTemplate {
				baru = append(baru, subBidangModel.SubBidang{
					SubBidangTahun:  tahunBaru,
					SubBidangBidang: seed.Bidang,
					SubBidangNama:   seed.Nama,
					SubBidangKode:   seed.Kode,
				})
			}
		}
		if err := tx.Create(&baru).Error; err != nil {
			return err
		}
		disalin = len(baru)
		return nil
	})
	if err != nil {
		return model.TahunAnggaran{}, 0, err
	}
	return row, disalin, nil
}
