package room

import (
	"strings"

	"github.com/google/uuid"
)

// Ref points at a room either by internal id or by its number within a property.
// Callers resolve it once at the boundary; everything downstream works with the id.
type Ref struct {
	id     uuid.UUID
	number string
}

func ByID(id uuid.UUID) Ref {
	return Ref{id: id}
}

func ByNumber(number string) Ref {
	return Ref{number: strings.TrimSpace(number)}
}

// ParseRef treats anything that parses as a UUID as an id and everything else as a room number.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, ErrEmptyRef
	}
	if id, err := uuid.Parse(s); err == nil {
		return ByID(id), nil
	}
	return ByNumber(s), nil
}

func (r Ref) IsID() bool     { return r.id != uuid.Nil }
func (r Ref) ID() uuid.UUID  { return r.id }
func (r Ref) Number() string { return r.number }
func (r Ref) IsZero() bool   { return r.id == uuid.Nil && r.number == "" }

func (r Ref) String() string {
	if r.IsID() {
		return r.id.String()
	}
	return r.number
}
