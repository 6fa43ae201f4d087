package enums

import "strings"

type Team uint8

const (
	TeamNeutral Team = iota
	TeamGood
	TeamEvil
)

var teamToString = map[Team]string{
	TeamNeutral: "NEUTRAL",
	TeamGood:    "GOOD",
	TeamEvil:    "EVIL",
}

var teamStringToType = map[string]Team{
	"NEUTRAL": TeamNeutral,
	"GOOD":    TeamGood,
	"EVIL":    TeamEvil,
}

// String returns the name used in logs and templates.
func (t Team) String() string {
	if val, ok := teamToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseTeam maps a template string to a Team. Unknown names are neutral,
// which makes the creature untouchable rather than hostile.
func ParseTeam(s string) Team {
	if val, ok := teamStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return TeamNeutral
}

// IsNeutral is true for creatures that cannot be damaged and never hunt.
func (t Team) IsNeutral() bool {
	return t == TeamNeutral
}
