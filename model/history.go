package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// historySize is how many recent generations are kept for cycle detection
const historySize = 5

// Fingerprint returns an MD5 hash of the set's live cells
func Fingerprint(cells CellSet) string {
	h := md5.New()
	var buf [16]byte
	for _, c := range cells.Coords() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History remembers recent generations to spot still lifes and short cycles
type History struct {
	hashes []string
}

// Record adds the generation to history and maintains size
func (h *History) Record(cells CellSet) {
	h.hashes = append(h.hashes, Fingerprint(cells))

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether cells repeats one of the last three recorded generations
func (h *History) IsStagnant(cells CellSet) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := Fingerprint(cells)
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}
