// file: internals/helpers/tahunlock/lock.go
package tahunlock

import "sync"

// Registry kunci RW per tahun anggaran. Mutasi berantai (rename/hapus
// sub bidang) memegang kunci tulis; pemuatan snapshot laporan memegang
// kunci baca, sehingga pembaca tidak pernah melihat kaskade setengah jalan.
var (
	mu    sync.Mutex
	locks = map[int]*sync.RWMutex{}
)

func forTahun(tahun int) *sync.RWMutex {
	mu.Lock()
	defer mu.Unlock()
	l, ok := locks[tahun]
	if !ok {
		l = &sync.RWMutex{}
		locks[tahun] = l
	}
	return l
}

func Lock(tahun int)    { forTahun(tahun).Lock() }
func Unlock(tahun int)  { forTahun(tahun).Unlock() }
func RLock(tahun int)   { forTahun(tahun).RLock() }
func RUnlock(tahun int) { forTahun(tahun).RUnlock() }
