package fixtures

import "time"

// Option is a minimal nullable wrapper used by the fixture types.
type Option[T any] struct {
	value T
	some  bool
}

// Movie is a catalogue entry.
//ctorlite:constructor
type Movie struct {
	Title string
	Year  Option[uint16]
}

//ctorlite:constructor name=fromPath visibility=unexported
type document struct {
	path  string
	cache map[string]string `ctor:"default"`
}

//ctorlite:constructor
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

//ctorlite:constructor
type Event struct {
	Stamp time.Time
	Note  Option[string] `ctor:"required"`
}

// Broken trips the conflicting-directives diagnostic and must not block
// the records above.
//ctorlite:constructor
type Broken struct {
	Name string `ctor:"required,default"`
}
