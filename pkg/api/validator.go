package api

import (
	"errors"
	"fmt"
)

// Validator is implemented by payloads that check themselves after
// decoding.
type Validator interface {
	Validate() error
}

// Elevations run from 0 (underground) to 2 (above ground).
const (
	minZ = 0
	maxZ = 2
)

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p PositionPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("position (%d,%d) is negative", p.X, p.Y)
	}
	if p.Z != nil && (*p.Z < minZ || *p.Z > maxZ) {
		return fmt.Errorf("elevation %d out of range", *p.Z)
	}
	return nil
}

func (p SpawnPayload) Validate() error {
	if p.Template == "" {
		return errors.New("template is required")
	}
	return nil
}

func (c ClientCommand) Validate() error {
	if c.Action == "" {
		return errors.New("action is required")
	}
	return nil
}
