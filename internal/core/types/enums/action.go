package enums

import "strings"

// ActionType is a command the player can send.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionTurn
	ActionUseLadder
	ActionUseLever
	ActionShoot
	ActionWait

	// Debug
	ActionSpawn
	ActionTeleport
)

var actionToString = map[ActionType]string{
	ActionMove:      "MOVE",
	ActionTurn:      "TURN",
	ActionUseLadder: "USE_LADDER",
	ActionUseLever:  "USE_LEVER",
	ActionShoot:     "SHOOT",
	ActionWait:      "WAIT",
	ActionSpawn:     "SPAWN",
	ActionTeleport:  "TELEPORT",
}

var actionStringToType = map[string]ActionType{
	"MOVE":       ActionMove,
	"TURN":       ActionTurn,
	"USE_LADDER": ActionUseLadder,
	"USE_LEVER":  ActionUseLever,
	"SHOOT":      ActionShoot,
	"WAIT":       ActionWait,
	"SPAWN":      ActionSpawn,
	"TELEPORT":   ActionTeleport,
}

func (a ActionType) String() string {
	if val, ok := actionToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseAction is case-insensitive and returns ActionUnknown for names it
// does not know.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}
