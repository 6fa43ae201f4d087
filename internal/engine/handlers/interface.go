package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/internal/systems"
)

// Log types
const (
	MsgInfo   = "INFO"
	MsgCombat = "COMBAT"
	MsgError  = "ERROR"
)

// Context hands a handler the world it may mutate. Handlers run between
// ticks, never concurrently with the simulation.
type Context struct {
	World *domain.GameWorld
	Actor *domain.Creature // The player.

	// Sink receives sounds and messages raised by the systems the
	// handler calls.
	Sink systems.Sink
	Rng  *rand.Rand

	ProjectileSpeed int
}

// Result is what a handler reports back. Handlers do not write to the
// game log themselves.
type Result struct {
	Msg     string // Log text, may be empty.
	MsgType string // INFO, COMBAT, ERROR
}

// HandlerFunc is the contract of every command (MOVE, SHOOT, ...).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult is a successful result with nothing to say.
func EmptyResult() Result {
	return Result{}
}

// Fail is a rejected command with a message for the player.
func Fail(msg string) Result {
	return Result{Msg: msg, MsgType: MsgError}
}
