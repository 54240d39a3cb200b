package id

import "go.jetify.com/typeid"

type ID interface {
	typeid.Subtype
	IsZero() bool
}

// New creates a new instance of the specified ID type. It panics if the ID
// cannot be generated.
func New[T ID, PI typeid.SubtypePtr[T]]() T {
	return typeid.Must(typeid.New[T, PI]())
}

// Parse parses a string representation of an ID into the specified ID type.
func Parse[I ID, PI typeid.SubtypePtr[I]](id string) (I, error) {
	return typeid.Parse[I, PI](id)
}

type runPrefix struct{}

func (runPrefix) Prefix() string { return "run" }

// RunID identifies one generation run in logs.
type RunID struct {
	typeid.TypeID[runPrefix]
}

func NewRunID() RunID {
	return New[RunID]()
}
