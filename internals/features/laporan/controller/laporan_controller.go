// file: internals/features/laporan/controller/laporan_controller.go
package controller

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desakeu_backend/internals/features/laporan/service"
	helper "desakeu_backend/internals/helpers"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePDF  = "application/pdf"
)

type Handler struct {
	DB *gorm.DB
}

func parseTahun(c *fiber.Ctx) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(c.Params("tahun")))
	if err != nil || t < 2000 || t > 2100 {
		return 0, errors.New("tahun tidak valid")
	}
	return t, nil
}

// muatTampilan: snapshot + cek blocker, dipakai semua endpoint ekspor.
func (h *Handler) muatTampilan(c *fiber.Ctx) (*service.TampilanLaporan, []string, error) {
	tahun, err := parseTahun(c)
	if err != nil {
		return nil, nil, helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	snap, err := service.MuatSnapshot(c.UserContext(), h.DB, tahun)
	if err != nil {
		return nil, nil, helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	blockers, warnings := service.CekEkspor(snap)
	if len(blockers) > 0 {
		return nil, nil, helper.JsonExportBlocked(c, blockers, warnings)
	}
	return service.BangunTampilan(snap), warnings, nil
}

func kirimBerkas(c *fiber.Ctx, buf *bytes.Buffer, nama, mime string, warnings []string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nama+`"`)
	if len(warnings) > 0 {
		c.Set("X-Peringatan", strings.Join(warnings, "; "))
	}
	return c.Send(buf.Bytes())
}

// GET /api/a/:tahun/laporan/ringkasan
// Rekap JSON untuk dashboard: per bidang + total tahunan. Tidak diblokir
// meski profil/kegiatan belum lengkap — blocker hanya berlaku untuk ekspor
// dokumen.
func (h *Handler) Ringkasan(c *fiber.Ctx) error {
	tahun, err := parseTahun(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	snap, err := service.MuatSnapshot(c.UserContext(), h.DB, tahun)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	t := service.BangunTampilan(snap)

	type rekapBidang struct {
		Kode  string        `json:"kode"`
		Nama  string        `json:"nama"`
		Warna string        `json:"warna"`
		Rekap service.Rekap `json:"rekap"`
	}
	bidang := make([]rekapBidang, 0, len(t.Seksi))
	for _, s := range t.Seksi {
		bidang = append(bidang, rekapBidang{
			Kode: s.Bidang.Kode, Nama: s.Bidang.Nama, Warna: s.Bidang.Warna, Rekap: s.Rekap,
		})
	}
	blockers, warnings := service.CekEkspor(snap)
	return helper.JsonOK(c, "ringkasan laporan", fiber.Map{
		"tahun":               tahun,
		"bidang":              bidang,
		"rekap_tahunan":       t.RekapTahunan,
		"total_anggaran":      t.TotalAnggaranKegiatan,
		"total_realisasi":     t.TotalRealisasiKegiatan,
		"persen_realisasi":    t.PersenRealisasi,
		"terbilang_realisasi": t.TerbilangRealisasi,
		"ekspor_siap":         len(blockers) == 0,
		"blockers":            blockers,
		"warnings":            warnings,
	})
}

// GET /api/a/:tahun/laporan/excel
func (h *Handler) Excel(c *fiber.Ctx) error {
	t, warnings, err := h.muatTampilan(c)
	if t == nil {
		return err
	}
	buf, err := service.BangunExcel(t)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	nama := service.NamaBerkas("excel", t.NamaDesa, t.Snapshot.Tahun, "", "xlsx")
	return kirimBerkas(c, buf, nama, mimeXLSX, warnings)
}

// GET /api/a/:tahun/laporan/word?kegiatan=|bidang=|sub_bidang=<nama>
// Tanpa query merender laporan tahun penuh; satu dari tiga query memilih
// varian lingkup (satu kegiatan / satu bidang / satu sub bidang).
func (h *Handler) Word(c *fiber.Ctx) error {
	t, warnings, err := h.muatTampilan(c)
	if t == nil {
		return err
	}
	varian, fokus := service.WordLengkap, ""
	switch {
	case strings.TrimSpace(c.Query("kegiatan")) != "":
		varian, fokus = service.WordPerKegiatan, strings.TrimSpace(c.Query("kegiatan"))
	case strings.TrimSpace(c.Query("bidang")) != "":
		varian, fokus = service.WordPerBidang, strings.TrimSpace(c.Query("bidang"))
	case strings.TrimSpace(c.Query("sub_bidang")) != "":
		varian, fokus = service.WordPerSubBidang, strings.TrimSpace(c.Query("sub_bidang"))
	}
	buf, err := service.BangunWord(t, varian, fokus)
	if err != nil {
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	}
	nama := service.NamaBerkas("word", t.NamaDesa, t.Snapshot.Tahun, fokus, "docx")
	return kirimBerkas(c, buf, nama, mimeDOCX, warnings)
}

// GET /api/a/:tahun/laporan/pdf
func (h *Handler) PDF(c *fiber.Ctx) error {
	t, warnings, err := h.muatTampilan(c)
	if t == nil {
		return err
	}
	buf, err := service.BangunPDF(t)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	nama := service.NamaBerkas("pdf", t.NamaDesa, t.Snapshot.Tahun, "", "pdf")
	return kirimBerkas(c, buf, nama, mimePDF, warnings)
}
