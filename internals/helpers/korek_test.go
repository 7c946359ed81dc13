// file: internals/helpers/korek_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareKode(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"2", "10", -1},      // natural, bukan leksikal
		{"1.2", "1.10", -1},
		{"1.1", "1.1.01", -1}, // prefix lebih pendek duluan
		{"1.1.01", "1.1.1", 0},
		{"", "1", -1},         // kosong selalu di depan
		{"", "", 0},
		{"3.4", "3.4", 0},
		{"10.1", "2.9", 1},
		{" 1.2 ", "1.2", 0},   // spasi pinggir diabaikan
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CompareKode(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestSortByKodeStabil(t *testing.T) {
	type baris struct {
		Kode string
		Nama string
	}
	rows := []baris{
		{"2.1", "c"},
		{"", "tanpa-kode-1"},
		{"1.10", "e"},
		{"1.2", "d"},
		{"", "tanpa-kode-2"},
		{"1.2", "d2"},
	}
	SortByKode(rows, func(b baris) string { return b.Kode })

	urut := make([]string, len(rows))
	for i, r := range rows {
		urut[i] = r.Nama
	}
	// kosong dulu (urutan asli dipertahankan), lalu 1.2 < 1.10 < 2.1
	assert.Equal(t, []string{"tanpa-kode-1", "tanpa-kode-2", "d", "d2", "e", "c"}, urut)
}
