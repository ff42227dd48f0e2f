// Package pcarsserver reads the sms_stats_data.json logs written by the
// Project CARS dedicated server and reconstructs sessions, participants,
// laps, track cuts and incident reports from them.
//
// The logs are adversarial input: participant ids go missing, event streams
// are absent for whole sessions, cut markers are unbalanced and free text is
// badly escaped. Everything recoverable is recovered; an error is only
// returned when the data is not this log format at all.
package pcarsserver

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"justapengu.in/simresults"
)

const GameName = "Project Cars"

// ErrNotProjectCarsLog is the cause of every error returned by New. It tells
// the format dispatch chain to try the next format.
var ErrNotProjectCarsLog = errors.New("pcarsserver: data is not a project cars dedicated server log")

func init() {
	simresults.RegisterFormat("pcars-server", func(data []byte) (simresults.Reader, error) {
		return New(data)
	})
}

// Reader is the session graph built from one server log.
type Reader struct {
	sessions []*simresults.Session
}

// New builds a Reader from raw log bytes. The returned error always wraps
// ErrNotProjectCarsLog; in-format anomalies never fail construction.
func New(data []byte) (*Reader, error) {
	doc, err := decodeDocument(data)

	if err != nil {
		return nil, err
	}

	sessions := buildSessions(doc)

	if len(sessions) == 0 {
		return nil, errors.Wrap(ErrNotProjectCarsLog, "log has no session blocks")
	}

	return &Reader{sessions: sessions}, nil
}

func (r *Reader) Sessions() []*simresults.Session {
	return r.sessions
}

func (r *Reader) Session(index int) (*simresults.Session, error) {
	if index < 0 || index >= len(r.sessions) {
		return nil, errors.Errorf("pcarsserver: no session at index %d", index)
	}

	return r.sessions[index], nil
}

func (r *Reader) DefaultSession() *simresults.Session {
	return r.sessions[0]
}

// buildSessions walks every stage of every history entry in authored order
// and reconstructs one session per stage.
func buildSessions(doc *document) []*simresults.Session {
	server := simresults.Server{Name: doc.Stats.Server.Name}
	game := simresults.Game{Name: GameName}

	var sessions []*simresults.Session

	for _, history := range doc.Stats.History {
		track := simresults.Track{Venue: trackVenue(int64(history.Setup["TrackId"]))}
		settings := sessionSettings(history.Setup)

		for _, entry := range history.Stages {
			sessionType, ok := stageSessionType(entry.Key)

			if !ok {
				logrus.Warnf("Skipping unrecognised stage %q", entry.Key)
				continue
			}

			session := &simresults.Session{
				Type:     sessionType,
				Date:     stageDate(history, entry.Stage),
				MaxLaps:  history.Setup[lapLimitKey(entry.Key)],
				Settings: settings,
				Server:   server,
				Game:     game,
				Track:    track,
			}

			events := chronologicalEvents(entry.Stage.Events)

			roster := reconcileParticipants(session, history, entry.Stage, events)
			buildIncidents(session, events, roster)

			sessions = append(sessions, session)
		}
	}

	return sessions
}

// stageSessionType maps a stage key such as "practice2" or "qualifying1" to
// a session type.
func stageSessionType(key string) (simresults.SessionType, bool) {
	name := strings.TrimRight(strings.ToLower(key), "0123456789")

	switch name {
	case "practice":
		return simresults.SessionTypePractice, true
	case "qualifying", "qualify":
		return simresults.SessionTypeQualify, true
	case "warmup":
		return simresults.SessionTypeWarmup, true
	case "race":
		return simresults.SessionTypeRace, true
	default:
		return 0, false
	}
}

// lapLimitKey returns the setup key carrying the lap limit for a stage,
// "Race1Length" for stage "race1".
func lapLimitKey(stageKey string) string {
	return strings.Title(stageKey) + "Length"
}

func stageDate(history historyItem, st stage) time.Time {
	startTime := st.StartTime

	if startTime == 0 {
		startTime = history.StartTime
	}

	return time.Unix(startTime, 0).UTC()
}

// sessionSettings copies the history setup through unchanged, ordered by
// name so repeated reads of the same log agree.
func sessionSettings(setup map[string]int) []simresults.SessionSetting {
	settings := make([]simresults.SessionSetting, 0, len(setup))

	for name, value := range setup {
		settings = append(settings, simresults.SessionSetting{Name: name, Value: value})
	}

	sort.Slice(settings, func(i, j int) bool {
		return settings[i].Name < settings[j].Name
	})

	return settings
}
