package engine

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/engine/handlers"
	"github.com/kevrgithub/tibianer-old/internal/engine/handlers/actions"
	"github.com/kevrgithub/tibianer-old/internal/engine/handlers/admin"
)

// Registry maps commands to their handlers.
type Registry map[enums.ActionType]handlers.HandlerFunc

// NewRegistry registers the player actions, plus the admin commands when
// debug is set.
func NewRegistry(debug bool) Registry {
	r := Registry{
		enums.ActionMove:      handlers.WithPayload(actions.HandleMove),
		enums.ActionTurn:      handlers.WithPayload(actions.HandleTurn),
		enums.ActionUseLadder: handlers.WithPayload(actions.HandleUseLadder),
		enums.ActionUseLever:  handlers.WithPayload(actions.HandleUseLever),
		enums.ActionShoot:     handlers.WithPayload(actions.HandleShoot),
		enums.ActionWait:      handlers.WithEmptyPayload(actions.HandleWait),
	}
	if debug {
		r[enums.ActionSpawn] = handlers.WithPayload(admin.HandleSpawn)
		r[enums.ActionTeleport] = handlers.WithPayload(admin.HandleTeleport)
	}
	return r
}
