package simresults

import (
	"fmt"
	"time"
)

type SessionType int

const (
	SessionTypePractice SessionType = iota
	SessionTypeQualify
	SessionTypeWarmup
	SessionTypeRace
)

func (s SessionType) String() string {
	switch s {
	case SessionTypePractice:
		return "Practice"
	case SessionTypeQualify:
		return "Qualify"
	case SessionTypeWarmup:
		return "Warmup"
	case SessionTypeRace:
		return "Race"
	default:
		return fmt.Sprintf("Unknown (%d)", int(s))
	}
}

// Server identifies the dedicated server which produced a log.
type Server struct {
	Name string
}

// Game identifies the simulation a log came from.
type Game struct {
	Name string
}

// Track identifies the venue a session took place at.
type Track struct {
	Venue string
}

// SessionSetting is one server setting carried through from the log
// unchanged.
type SessionSetting struct {
	Name  string
	Value int
}

// Session is one timed segment (practice, qualify, warmup or race) within a
// log document. Participant and Incident lists are populated during
// construction and must not be modified afterwards.
type Session struct {
	Type SessionType
	Date time.Time

	// MaxLaps is the lap limit for the session. Zero means unbounded.
	MaxLaps int

	// Settings holds the server settings for the session, ordered by name.
	Settings []SessionSetting

	Server Server
	Game   Game
	Track  Track

	Participants []*Participant
	Incidents    []*Incident
}

// Setting returns the value of the named server setting.
func (s *Session) Setting(name string) (int, bool) {
	for _, setting := range s.Settings {
		if setting.Name == name {
			return setting.Value, true
		}
	}

	return 0, false
}
