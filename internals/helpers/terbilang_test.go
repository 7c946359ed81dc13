// file: internals/helpers/terbilang_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerbilang(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "Nol"},
		{1, "Satu"},
		{11, "Sebelas"},
		{12, "Dua Belas"},
		{17, "Tujuh Belas"},
		{20, "Dua Puluh"},
		{21, "Dua Puluh Satu"},
		{99, "Sembilan Puluh Sembilan"},
		{100, "Seratus"},
		{101, "Seratus Satu"},
		{111, "Seratus Sebelas"},
		{199, "Seratus Sembilan Puluh Sembilan"},
		{200, "Dua Ratus"},
		{999, "Sembilan Ratus Sembilan Puluh Sembilan"},
		{1000, "Seribu"},
		{1001, "Seribu Satu"},
		{1999, "Seribu Sembilan Ratus Sembilan Puluh Sembilan"},
		{2000, "Dua Ribu"},
		{10000, "Sepuluh Ribu"},
		{100000, "Seratus Ribu"},
		{123456, "Seratus Dua Puluh Tiga Ribu Empat Ratus Lima Puluh Enam"},
		{1000000, "Satu Juta"},
		{6000000, "Enam Juta"},
		{1000000000, "Satu Miliar"},
		{1000000000000, "Satu Triliun"},
		{-45, "Minus Empat Puluh Lima"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Terbilang(tc.n), "n=%d", tc.n)
	}
}

func TestTerbilangBatasAtas(t *testing.T) {
	assert.Equal(t, TerbilangTooLarge, Terbilang(1_000_000_000_000_000))
	assert.NotEqual(t, TerbilangTooLarge, Terbilang(999_999_999_999_999))
}

func TestTerbilangRupiah(t *testing.T) {
	assert.Equal(t, "Enam Juta Rupiah", TerbilangRupiah(6_000_000))
	assert.Equal(t, "Nol Rupiah", TerbilangRupiah(0))
	// pecahan dibulatkan ke rupiah terdekat
	assert.Equal(t, "Dua Rupiah", TerbilangRupiah(1.5))
	assert.Equal(t, "Satu Rupiah", TerbilangRupiah(1.4))
	assert.Equal(t, "Minus Seribu Rupiah", TerbilangRupiah(-1000))
	assert.Equal(t, TerbilangTooLarge, TerbilangRupiah(1e15))
}
