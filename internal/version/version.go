package version

import (
	"fmt"
	"time"
)

// Set at link time with -ldflags "-X .../internal/version.BuildDate=...".
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Name is reported by the version endpoint and the client banner.
const Name = "tibianer"

// Build ids count days since the first playable build.
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	Name      string `json:"name"`
	BuildID   int    `json:"buildId"`
	BuildDate string `json:"buildDate,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Known     bool   `json:"known"`
	Error     string `json:"error,omitempty"`
}

// BuildID converts a YYYY-MM-DD date to a build id.
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, buildEpoch.Format("2006-01-02"))
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info returns the linked build metadata.
func Info() VersionInfo {
	info := VersionInfo{
		Name:      Name,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	id, err := BuildID(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Known = true
	return info
}

func String() string {
	info := Info()
	if !info.Known {
		return fmt.Sprintf("%s dev build (%s)", Name, info.Error)
	}
	return fmt.Sprintf("%s build %d (%s) commit[%s] branch[%s]",
		Name, info.BuildID, info.BuildDate,
		coalesce(info.Commit, "unknown"), coalesce(info.Branch, "unknown"))
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
