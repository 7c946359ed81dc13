// file: internals/constants/bidang.go
package constants

// Bidang adalah katalog tetap klasifikasi belanja desa level teratas.
// Tidak bisa diubah user; sub bidang di bawahnya yang dikelola per tahun.
type Bidang struct {
	Kode      string `json:"kode"`
	Nama      string `json:"nama"`
	Warna     string `json:"warna"`
	Ikon      string `json:"ikon"`
	Deskripsi string `json:"deskripsi"`
}

var BidangCatalog = []Bidang{
	{
		Kode:      "1",
		Nama:      "Penyelenggaraan Pemerintahan Desa",
		Warna:     "#2563eb",
		Ikon:      "landmark",
		Deskripsi: "Siltap, operasional pemerintahan, tata praja, dan pertanahan.",
	},
	{
		Kode:      "2",
		Nama:      "Pelaksanaan Pembangunan Desa",
		Warna:     "#16a34a",
		Ikon:      "hammer",
		Deskripsi: "Pekerjaan umum, pendidikan, kesehatan, dan permukiman.",
	},
	{
		Kode:      "3",
		Nama:      "Pembinaan Kemasyarakatan",
		Warna:     "#f59e0b",
		Ikon:      "users",
		Deskripsi: "Ketentraman, kebudayaan, keagamaan, serta pemuda dan olahraga.",
	},
	{
		Kode:      "4",
		Nama:      "Pemberdayaan Masyarakat",
		Warna:     "#9333ea",
		Ikon:      "sprout",
		Deskripsi: "Pertanian, peternakan, UMKM, dan peningkatan kapasitas warga.",
	},
	{
		Kode:      "5",
		Nama:      "Penanggulangan Bencana, Darurat dan Mendesak",
		Warna:     "#dc2626",
		Ikon:      "siren",
		Deskripsi: "Penanggulangan bencana, keadaan darurat, dan keadaan mendesak desa.",
	},
}

// FindBidang mencari bidang pada katalog berdasarkan nama.
func FindBidang(nama string) (Bidang, bool) {
	for _, b := range BidangCatalog {
		if b.Nama == nama {
			return b, true
		}
	}
	return Bidang{}, false
}

// SubBidangTemplate adalah isi awal sub bidang untuk tahun anggaran baru
// ketika tahun acuan tidak punya katalog sub bidang sama sekali.
type SubBidangSeed struct {
	Bidang string
	Nama   string
	Kode   string
}

var DefaultSubBidangTemplate = []SubBidangSeed{
	{Bidang: BidangCatalog[0].Nama, Nama: "Penghasilan Tetap dan Tunjangan", Kode: "1.1"},
	{Bidang: BidangCatalog[0].Nama, Nama: "Operasional Pemerintah Desa", Kode: "1.2"},
	{Bidang: BidangCatalog[1].Nama, Nama: "Pekerjaan Umum dan Penataan Ruang", Kode: "2.1"},
	{Bidang: BidangCatalog[1].Nama, Nama: "Pendidikan", Kode: "2.2"},
	{Bidang: BidangCatalog[1].Nama, Nama: "Kesehatan", Kode: "2.3"},
	{Bidang: BidangCatalog[2].Nama, Nama: "Ketentraman, Ketertiban, dan Perlindungan Masyarakat", Kode: "3.1"},
	{Bidang: BidangCatalog[3].Nama, Nama: "Pertanian dan Peternakan", Kode: "4.1"},
	{Bidang: BidangCatalog[4].Nama, Nama: "Penanggulangan Bencana", Kode: "5.1"},
}
