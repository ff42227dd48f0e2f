package pcarsserver

import (
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"justapengu.in/simresults"
)

const (
	eventLap                  = "Lap"
	eventCutTrackStart        = "CutTrackStart"
	eventCutTrackEnd          = "CutTrackEnd"
	eventImpact               = "Impact"
	eventState                = "State"
	eventParticipantCreated   = "ParticipantCreated"
	eventParticipantDestroyed = "ParticipantDestroyed"
)

// identity is everything the log advertises about one participant id, merged
// from the aggregate participant table, the member table and the live
// ParticipantCreated events.
type identity struct {
	id        int
	name      string
	driverID  string
	human     bool
	vehicleID int64
}

// candidate pairs an identity with its evidence in the two session views.
type candidate struct {
	ident       *identity
	result      *result
	events      []event
	participant *simresults.Participant
}

// reconcileParticipants merges the results view and the events view of a
// stage into the session's authoritative participant list and returns the
// reconciled roster keyed by participant id.
//
// Races take their ordering from the server's own results ranking. Other
// session types order on pace instead, because drivers who drove are
// routinely missing from non-race results lists. Results entries whose ids
// resolve nowhere are not fatal; the roster falls back to identities
// observed in the events stream.
func reconcileParticipants(session *simresults.Session, history historyItem, st stage, events []event) map[int]*simresults.Participant {
	ids := identityTable(history, events)

	cands := make(map[int]*candidate, len(ids))

	for id, ident := range ids {
		cands[id] = &candidate{ident: ident}
	}

	for i := range st.Results {
		res := &st.Results[i]

		cand, ok := cands[res.ParticipantID]

		if !ok {
			logrus.Warnf("Results entry references unknown participant id %d, entry data is unusable", res.ParticipantID)
			continue
		}

		if cand.result == nil {
			cand.result = res
		}
	}

	for _, ev := range events {
		if !isParticipationEvent(ev.EventName) {
			continue
		}

		cand, ok := cands[ev.ParticipantID]

		if !ok {
			logrus.Debugf("Ignoring %s event for unknown participant id %d", ev.EventName, ev.ParticipantID)
			continue
		}

		cand.events = append(cand.events, ev)
	}

	// participants with no evidence in either view do not exist
	var list []*candidate

	for _, cand := range cands {
		if cand.result == nil && len(cand.events) == 0 {
			continue
		}

		list = append(list, cand)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].ident.id < list[j].ident.id
	})

	for _, cand := range list {
		cand.participant = newParticipant(cand)
		buildLaps(cand.participant, cand.events, session.Date)
	}

	orderCandidates(session.Type, list)

	roster := make(map[int]*simresults.Participant, len(list))

	for position, cand := range list {
		cand.participant.Position = position + 1
		session.Participants = append(session.Participants, cand.participant)
		roster[cand.ident.id] = cand.participant
	}

	resolveFinishStatus(session, list)

	return roster
}

func identityTable(history historyItem, events []event) map[int]*identity {
	ids := make(map[int]*identity)

	for key, ref := range history.Participants {
		id, err := strconv.Atoi(key)

		if err != nil {
			logrus.Warnf("Ignoring participant table entry with bad id %q", key)
			continue
		}

		ident := &identity{
			id:        id,
			name:      ref.Name,
			human:     ref.IsPlayer == 1,
			vehicleID: ref.VehicleID,
		}

		applyMember(ident, history, ref.RefID)

		ids[id] = ident
	}

	// ParticipantCreated events advertise identities live. They complete the
	// roster when the aggregate tables are missing or wrong.
	for _, ev := range events {
		if ev.EventName != eventParticipantCreated {
			continue
		}

		ident, ok := ids[ev.ParticipantID]

		if !ok {
			ident = &identity{id: ev.ParticipantID}
			ids[ev.ParticipantID] = ident
		}

		if ident.name == "" {
			ident.name = ev.Attributes.String("Name")
		}

		if ev.Attributes.Int("IsPlayer") == 1 {
			ident.human = true
		}

		if ident.vehicleID == 0 {
			ident.vehicleID = ev.Attributes.Int("VehicleId")
		}

		refID := ev.RefID

		if ev.Attributes.Has("RefId") {
			refID = int(ev.Attributes.Int("RefId"))
		}

		applyMember(ident, history, refID)
	}

	return ids
}

// applyMember fills identity gaps from the member table, which is the only
// place the log records platform ids.
func applyMember(ident *identity, history historyItem, refID int) {
	m, ok := history.Members[strconv.Itoa(refID)]

	if !ok {
		return
	}

	if ident.driverID == "" {
		ident.driverID = m.SteamID.String()
	}

	if ident.name == "" {
		ident.name = m.Name
	}

	if ident.vehicleID == 0 {
		ident.vehicleID = m.Setup.VehicleID
	}
}

func newParticipant(cand *candidate) *simresults.Participant {
	ident := cand.ident

	participant := &simresults.Participant{
		Driver: simresults.Driver{
			Name:     ident.name,
			DriverID: ident.driverID,
			IsHuman:  ident.human,
		},
	}

	vehicleID := ident.vehicleID

	if cand.result != nil {
		attrs := cand.result.Attributes

		participant.GridPosition = int(attrs.Int("GridPosition"))
		participant.TotalTime = attrs.Duration("TotalTime")
		participant.FastestLap = attrs.Duration("FastestLapTime")

		if id := attrs.Int("VehicleId"); id != 0 {
			vehicleID = id
		}
	}

	participant.Vehicle = vehicleLabel(vehicleID)

	return participant
}

func orderCandidates(sessionType simresults.SessionType, cands []*candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]

		if sessionType == simresults.SessionTypeRace {
			aPos, bPos := resultPosition(a), resultPosition(b)

			if aPos != bPos {
				if aPos == 0 {
					return false
				}

				if bPos == 0 {
					return true
				}

				return aPos < bPos
			}
		}

		aBest, bBest := a.participant.BestLapTime(), b.participant.BestLapTime()

		switch {
		case aBest > 0 && bBest > 0 && aBest != bBest:
			return aBest < bBest
		case aBest > 0 && bBest == 0:
			return true
		case aBest == 0 && bBest > 0:
			return false
		}

		return a.ident.id < b.ident.id
	})
}

func resultPosition(cand *candidate) int64 {
	if cand.result == nil {
		return 0
	}

	return cand.result.Attributes.Int("RacePosition")
}

// isParticipationEvent reports whether an event counts as evidence that a
// participant took part in the session. Identity advertisements alone do
// not.
func isParticipationEvent(name string) bool {
	switch name {
	case eventLap, eventCutTrackStart, eventCutTrackEnd, eventImpact, eventState:
		return true
	default:
		return false
	}
}

// chronologicalEvents returns the stage events ordered by timestamp. The
// server writes them live and mostly in order, but ordering is load bearing
// for lap numbering and cut pairing, so it is not taken on trust.
func chronologicalEvents(events []event) []event {
	sorted := make([]event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	return sorted
}
