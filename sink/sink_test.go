package sink

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coro-sh/domaingen/internal/testutil"
)

const testLines = "abc.com\nz.com\n"

func TestOpen_Stdout(t *testing.T) {
	for _, path := range []string{"", StdoutPath} {
		t.Run("path "+path, func(t *testing.T) {
			var stdout bytes.Buffer
			s, err := Open(Config{Path: path}, &stdout)
			require.NoError(t, err)
			assert.Equal(t, StdoutPath, s.Path())

			_, err = io.WriteString(s, testLines)
			require.NoError(t, err)
			assert.Empty(t, stdout.String(), "output is buffered until close")

			require.NoError(t, s.Close())
			assert.Equal(t, testLines, stdout.String())
		})
	}
}

func TestOpen_File(t *testing.T) {
	path := testutil.RandFilePath(t, ".txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer\n"), 0o644))

	var stdout bytes.Buffer
	s, err := Open(Config{Path: path}, &stdout)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())

	_, err = io.WriteString(s, testLines)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testLines, string(got), "existing file is truncated")
	assert.Empty(t, stdout.String())
}

func TestOpen_Gzip(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		level int
	}{
		{name: "stdout default level", path: "", level: gzip.DefaultCompression},
		{name: "file best speed", path: testutil.RandFilePath(t, ".txt.gz"), level: gzip.BestSpeed},
		{name: "file huffman only", path: testutil.RandFilePath(t, ".txt.gz"), level: gzip.HuffmanOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			s, err := Open(Config{Path: tt.path, Gzip: true, GzipLevel: tt.level}, &stdout)
			require.NoError(t, err)

			_, err = io.WriteString(s, testLines)
			require.NoError(t, err)
			require.NoError(t, s.Close())

			compressed := stdout.Bytes()
			if tt.path != "" {
				compressed, err = os.ReadFile(tt.path)
				require.NoError(t, err)
			}

			zr, err := gzip.NewReader(bytes.NewReader(compressed))
			require.NoError(t, err)
			got, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, testLines, string(got))
		})
	}
}

func TestOpen_InvalidGzipLevel(t *testing.T) {
	path := testutil.RandFilePath(t, ".gz")
	_, err := Open(Config{Path: path, Gzip: true, GzipLevel: 42}, io.Discard)
	require.Error(t, err)
}

func TestOpen_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	_, err := Open(Config{Path: path}, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
