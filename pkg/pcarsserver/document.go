package pcarsserver

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// document is the raw shape of an sms_stats_data.json file. It carries no
// reconciliation logic; everything here decodes the log as authored.
type document struct {
	Stats stats `json:"stats"`
}

type stats struct {
	Server  serverInfo    `json:"server"`
	History []historyItem `json:"history"`
}

type serverInfo struct {
	Name string `json:"name"`
}

// historyItem is one server run: the shared setup, the identity tables and
// the session stages it hosted.
type historyItem struct {
	StartTime    int64                     `json:"start_time"`
	Finished     int                       `json:"finished"`
	Setup        map[string]int            `json:"setup"`
	Members      map[string]member         `json:"members"`
	Participants map[string]participantRef `json:"participants"`
	Stages       stageList                 `json:"stages"`
}

// member is a connected (human) player, keyed by refid.
type member struct {
	Name    string      `json:"name"`
	SteamID json.Number `json:"steamid"`
	Setup   memberSetup `json:"setup"`
}

type memberSetup struct {
	VehicleID int64 `json:"VehicleId"`
}

// participantRef is a car slot advertised by the server, keyed by
// participant id.
type participantRef struct {
	Name      string `json:"Name"`
	IsPlayer  int    `json:"IsPlayer"`
	RefID     int    `json:"RefId"`
	VehicleID int64  `json:"VehicleId"`
}

type stage struct {
	StartTime int64    `json:"start_time"`
	Events    []event  `json:"events"`
	Results   []result `json:"results"`
}

type stageEntry struct {
	Key   string
	Stage stage
}

// stageList preserves the authored order of the stages object, which callers
// rely on as session presentation order. A plain map would lose it.
type stageList []stageEntry

func (s *stageList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()

	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("pcarsserver: stages is not an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()

		if err != nil {
			return err
		}

		key, ok := keyTok.(string)

		if !ok {
			return errors.New("pcarsserver: stage key is not a string")
		}

		var st stage

		if err := dec.Decode(&st); err != nil {
			return errors.Wrapf(err, "decode stage %q", key)
		}

		*s = append(*s, stageEntry{Key: key, Stage: st})
	}

	_, err = dec.Token()

	return err
}

type event struct {
	EventName     string     `json:"event_name"`
	ParticipantID int        `json:"participantid"`
	RefID         int        `json:"refid"`
	Time          int64      `json:"time"`
	Attributes    attributes `json:"attributes"`
}

type result struct {
	ParticipantID int        `json:"participantid"`
	RefID         int        `json:"refid"`
	Time          int64      `json:"time"`
	Attributes    attributes `json:"attributes"`
}

// attributes is the free-form attribute bag the server attaches to events
// and results entries.
type attributes map[string]interface{}

func (a attributes) Has(name string) bool {
	_, ok := a[name]
	return ok
}

func (a attributes) Int(name string) int64 {
	value, ok := a[name].(float64)

	if !ok {
		return 0
	}

	return int64(value)
}

func (a attributes) String(name string) string {
	value, _ := a[name].(string)

	return value
}

// Duration reads a millisecond attribute.
func (a attributes) Duration(name string) time.Duration {
	return time.Duration(a.Int(name)) * time.Millisecond
}

func decodeDocument(data []byte) (*document, error) {
	var doc document

	if err := json.Unmarshal(normalize(data), &doc); err != nil {
		return nil, errors.Wrap(ErrNotProjectCarsLog, err.Error())
	}

	if len(doc.Stats.History) == 0 {
		return nil, errors.Wrap(ErrNotProjectCarsLog, "log has no history entries")
	}

	return &doc, nil
}
