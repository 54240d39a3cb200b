package testutil

import (
	"math/rand/v2"
	"path/filepath"
	"testing"
)

// RandSeed returns a random generator seed and logs it so a failing run can be
// replayed with the same value.
func RandSeed(t *testing.T) int64 {
	t.Helper()
	seed := rand.Int64()
	if rand.IntN(2) == 0 {
		seed = -seed
	}
	t.Logf("seed: %d", seed)
	return seed
}

// RandFilePath returns a path with a random name and the given extension
// inside a fresh temp dir owned by t.
func RandFilePath(t *testing.T, ext string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), RandString(12)+ext)
}

func RandString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}
