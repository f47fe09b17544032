package utils

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 generates a new UUID v7
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		// Fallback to v4 if v7 fails (highly unlikely)
		return uuid.New()
	}
	return id
}

// UUIDGenerator issues time-ordered UUID strings.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return GenerateUUIDv7().String()
}

// SequenceGenerator issues prefix+counter ids, starting after Start.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Int64
}

// NewSequenceGenerator returns a generator whose first id is prefix+(start+1).
func NewSequenceGenerator(prefix string, start int64) *SequenceGenerator {
	g := &SequenceGenerator{Prefix: prefix}
	g.next.Store(start)
	return g
}

func (g *SequenceGenerator) NewID() string {
	return g.Prefix + strconv.FormatInt(g.next.Add(1), 10)
}
