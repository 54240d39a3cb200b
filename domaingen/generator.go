// Package domaingen generates fake domain names for regression fixtures.
//
// A name is a label of MinLabelLen to MaxLabelLen lowercase ASCII letters
// followed by Suffix. Names are not unique and are not meant to resolve.
package domaingen

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/coro-sh/domaingen/rng"
)

const (
	MinLabelLen = 1
	MaxLabelLen = 30
	Suffix      = ".com"

	alphabetLen = 26
)

// cancelCheckInterval is how many lines Write emits between context checks.
const cancelCheckInterval = 1024

// Generator draws domain names from a Source it owns. Draw order is fixed:
// one draw for the label length, then one per character, left to right.
type Generator struct {
	src rng.Source
	buf []byte
}

func NewGenerator(src rng.Source) *Generator {
	return &Generator{
		src: src,
		buf: make([]byte, 0, MaxLabelLen+len(Suffix)),
	}
}

// Next returns the next name in the stream.
func (g *Generator) Next() string {
	n := int(g.src.Float64()*MaxLabelLen + 1)
	g.buf = g.buf[:0]
	for range n {
		g.buf = append(g.buf, byte('a'+int(g.src.Float64()*alphabetLen)))
	}
	g.buf = append(g.buf, Suffix...)
	return string(g.buf)
}

// Names returns a lazy sequence of the next count names. The sequence
// advances the generator's stream, so ranging over it twice yields different
// names. It panics if count is negative.
func (g *Generator) Names(count int) iter.Seq[string] {
	if count < 0 {
		panic(fmt.Sprintf("domaingen: negative count %d", count))
	}
	return func(yield func(string) bool) {
		for range count {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// Generate returns count names drawn from a new rng.Default source seeded
// with seed. Every range over the result replays the same names.
func Generate(count int, seed int64) iter.Seq[string] {
	if count < 0 {
		panic(fmt.Sprintf("domaingen: negative count %d", count))
	}
	return func(yield func(string) bool) {
		g := NewGenerator(rng.NewMT19937(seed))
		for name := range g.Names(count) {
			if !yield(name) {
				return
			}
		}
	}
}

// Write writes each name as a newline-terminated line to w and returns the
// number of lines written.
func Write(ctx context.Context, w io.Writer, names iter.Seq[string]) (int, error) {
	n := 0
	for name := range names {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}
		if _, err := io.WriteString(w, name+"\n"); err != nil {
			return n, fmt.Errorf("write domain name: %w", err)
		}
		n++
	}
	return n, nil
}
