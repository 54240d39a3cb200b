// Package sink opens the destination generated fixtures are written to:
// stdout or a file, optionally gzip-compressed, always buffered.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// StdoutPath is the Path value reported for, and accepted as, stdout.
const StdoutPath = "-"

const bufferSize = 64 << 10

type Config struct {
	// Path is the output file. Empty or StdoutPath selects stdout.
	Path      string
	Gzip      bool
	GzipLevel int
}

// Sink is a buffered writer over the configured destination. Close must be
// called to flush it.
type Sink struct {
	buf  *bufio.Writer
	gz   *gzip.Writer
	file *os.File
	path string
}

// Open opens the destination described by cfg. Stdout is never closed by the
// returned Sink.
func Open(cfg Config, stdout io.Writer) (*Sink, error) {
	s := &Sink{path: StdoutPath}
	w := stdout

	if cfg.Path != "" && cfg.Path != StdoutPath {
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open output file: %w", err)
		}
		s.file, s.path, w = f, cfg.Path, f
	}

	if cfg.Gzip {
		gz, err := gzip.NewWriterLevel(w, cfg.GzipLevel)
		if err != nil {
			if s.file != nil {
				s.file.Close() //nolint:errcheck
			}
			return nil, fmt.Errorf("create gzip writer: %w", err)
		}
		s.gz, w = gz, gz
	}

	s.buf = bufio.NewWriterSize(w, bufferSize)
	return s, nil
}

func (s *Sink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Path returns the output file path, or StdoutPath.
func (s *Sink) Path() string {
	return s.path
}

// Close flushes buffered data, finishes the gzip stream and closes the output
// file, in that order. It returns the first error encountered.
func (s *Sink) Close() error {
	err := s.buf.Flush()
	if err != nil {
		err = fmt.Errorf("flush output: %w", err)
	}
	if s.gz != nil {
		if cerr := s.gz.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close gzip stream: %w", cerr)
		}
	}
	if s.file != nil {
		if cerr := s.file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}
	return err
}
