package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

const historySize = 5

// History keeps hashes of recent generations to spot still lifes and short cycles
type History struct {
	hashes []string
}

func NewHistory() *History {
	return &History{hashes: make([]string, 0, historySize)}
}

// HashCells returns an MD5 hash of a generation, independent of map iteration order
func HashCells(cells CoordSet) string {
	h := md5.New()
	buf := make([]byte, 16)
	for _, c := range cells.Sorted() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Update adds a generation hash and keeps only the most recent ones
func (h *History) Update(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash matches one of the last three generations,
// which covers still lifes and period 2 and 3 oscillators.
func (h *History) IsStagnant(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}
