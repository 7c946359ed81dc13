// file: internals/helpers/terbilang.go
package helper

import (
	"math"
	"strings"
)

// Batas aman konversi: di atas ini (>= 10^15) hasilnya tidak dijamin benar,
// jadi kembalikan sentinel eksplisit, bukan teks ngawur.
const terbilangMax int64 = 1_000_000_000_000_000

// TerbilangTooLarge dikembalikan untuk nilai >= 10^15.
const TerbilangTooLarge = "Angka Terlalu Besar"

var satuan = []string{
	"", "Satu", "Dua", "Tiga", "Empat", "Lima",
	"Enam", "Tujuh", "Delapan", "Sembilan", "Sepuluh", "Sebelas",
}

// Terbilang mengeja bilangan bulat non-negatif dalam Bahasa Indonesia,
// tanpa akhiran mata uang. Dekomposisi rekursif per pita besaran dengan
// kasus khusus "Seratus" dan "Seribu".
func Terbilang(n int64) string {
	if n < 0 {
		return "Minus " + Terbilang(-n)
	}
	if n >= terbilangMax {
		return TerbilangTooLarge
	}
	if n == 0 {
		return "Nol"
	}
	return strings.TrimSpace(terbilang(n))
}

func terbilang(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 12:
		return satuan[n]
	case n < 20:
		return terbilang(n-10) + " Belas"
	case n < 100:
		return join(terbilang(n/10)+" Puluh", terbilang(n%10))
	case n < 200:
		return join("Seratus", terbilang(n-100))
	case n < 1_000:
		return join(terbilang(n/100)+" Ratus", terbilang(n%100))
	case n < 2_000:
		return join("Seribu", terbilang(n-1_000))
	case n < 1_000_000:
		return join(terbilang(n/1_000)+" Ribu", terbilang(n%1_000))
	case n < 1_000_000_000:
		return join(terbilang(n/1_000_000)+" Juta", terbilang(n%1_000_000))
	case n < 1_000_000_000_000:
		return join(terbilang(n/1_000_000_000)+" Miliar", terbilang(n%1_000_000_000))
	default:
		return join(terbilang(n/1_000_000_000_000)+" Triliun", terbilang(n%1_000_000_000_000))
	}
}

func join(a, b string) string {
	if b == "" {
		return a
	}
	return a + " " + b
}

// TerbilangRupiah mengeja nominal lengkap dengan akhiran "Rupiah".
// Pecahan dibulatkan ke rupiah terdekat sebelum dieja.
func TerbilangRupiah(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "Minus " + TerbilangRupiah(float64(-n))
	}
	if n >= terbilangMax {
		return TerbilangTooLarge
	}
	return Terbilang(n) + " Rupiah"
}
