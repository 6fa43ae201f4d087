package types

import (
	"fmt"
	"strconv"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

// EntityID is a 64-bit handle to an entity slot in a world arena.
//
// It is a value type: cheap to copy, compare and serialize. A projectile
// keeps the EntityID of its shooter instead of a pointer, so a shooter that
// has decayed and whose slot was reused resolves to nothing.
//
// Bit layout (most significant first):
//
//	[ Kind (16) | Generation (16) | Index (32) ]
//
//   - Kind is the ThingKind of the entity (creature, projectile, ...)
//   - Generation is bumped every time a slot is released
//   - Index is the slot position in the arena
type EntityID uint64

// NilEntityID is the zero handle. It never resolves.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 16
	bitsKind  = 16

	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID builds an EntityID from its parts. Ranges are not checked.
func PackEntityID(kind enums.ThingKind, gen uint16, index uint32) EntityID {
	return EntityID(
		(uint64(kind) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index returns the arena slot.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation returns the slot generation the handle was issued for.
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Kind returns the kind of thing the handle points at.
func (id EntityID) Kind() enums.ThingKind {
	return enums.ThingKind((id >> shiftKind) & maskKind)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String is meant for logs.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[kind=%s gen=%d idx=%d]",
		id.Kind(),
		id.Generation(),
		id.Index(),
	)
}

// MarshalJSON encodes the handle as a decimal string so JavaScript
// clients do not lose precision on uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON accepts both the string and the numeric form.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = EntityID(v)
	return nil
}
