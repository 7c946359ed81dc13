// file: internals/helpers/korek.go
package helper

import (
	"sort"
	"strconv"
	"strings"
)

// CompareKode membandingkan dua kode rekening bertitik ("1.1.01" dst)
// secara natural per segmen angka. Kode kosong selalu di depan.
// Satu-satunya aturan urutan untuk semua list dan semua renderer laporan.
func CompareKode(a, b string) int {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" && b == "" {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}

	sa := strings.Split(a, ".")
	sb := strings.Split(b, ".")
	for i := 0; i < len(sa) && i < len(sb); i++ {
		na, errA := strconv.Atoi(sa[i])
		nb, errB := strconv.Atoi(sb[i])
		switch {
		case errA == nil && errB == nil:
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
		case errA == nil:
			// segmen angka sebelum segmen teks
			return -1
		case errB == nil:
			return 1
		default:
			if c := strings.Compare(sa[i], sb[i]); c != 0 {
				return c
			}
		}
	}
	// prefix sama, yang lebih pendek duluan ("1.1" sebelum "1.1.01")
	switch {
	case len(sa) < len(sb):
		return -1
	case len(sa) > len(sb):
		return 1
	default:
		return 0
	}
}

// SortByKode mengurutkan in-place secara stabil memakai CompareKode;
// elemen berkode sama mempertahankan urutan aslinya.
func SortByKode[T any](items []T, kode func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return CompareKode(kode(items[i]), kode(items[j])) < 0
	})
}
