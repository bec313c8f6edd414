package random

import (
	"math/rand"
	"time"
)

// Source is the randomness capability handed to code that generates example
// passwords. Tests inject a seeded source to get reproducible output.
type Source interface {
	Intn(n int) int
}

// New returns a time-seeded source for production use.
func New() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeeded returns a deterministic source for tests.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// String draws length characters from charset using src.
func String(src Source, charset string, length int) string {
	if length <= 0 || len(charset) == 0 {
		return ""
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = charset[src.Intn(len(charset))]
	}
	return string(result)
}
