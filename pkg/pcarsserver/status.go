package pcarsserver

import (
	"justapengu.in/simresults"
)

const (
	stateFinished     = "Finished"
	stateRetired      = "Retired"
	stateDNF          = "DNF"
	stateDisqualified = "Disqualified"
)

// resolveFinishStatus classifies every participant's terminal state.
// Finishing is a race-only concept: non-race sessions stay N/A no matter
// what the results entries claim, and so does a race that produced no
// ranking at all (a server shut down mid-race).
func resolveFinishStatus(session *simresults.Session, cands []*candidate) {
	if session.Type != simresults.SessionTypeRace {
		return
	}

	var anyResults, hasLapEvents, limitReached bool

	for _, cand := range cands {
		if cand.result != nil {
			anyResults = true
		}

		if len(cand.participant.Laps) > 0 {
			hasLapEvents = true
		}

		if session.MaxLaps > 0 && len(cand.participant.Laps) >= session.MaxLaps {
			limitReached = true
		}
	}

	if !anyResults {
		return
	}

	for _, cand := range cands {
		cand.participant.FinishStatus = finishStatus(session, cand, hasLapEvents, limitReached)
	}
}

func finishStatus(session *simresults.Session, cand *candidate, hasLapEvents, limitReached bool) simresults.FinishStatus {
	if cand.result != nil {
		switch cand.result.Attributes.String("State") {
		case stateFinished:
			return simresults.FinishNormal
		case stateRetired, stateDNF, stateDisqualified:
			return simresults.FinishDNF
		}
	}

	for _, ev := range cand.events {
		if ev.EventName == eventState && ev.Attributes.String("NewState") == stateRetired {
			return simresults.FinishDNF
		}
	}

	// Lap shortfall only counts as DNF evidence when the stage has an event
	// stream at all; a results-only log keeps whatever its results entries
	// encode.
	if hasLapEvents && limitReached && len(cand.participant.Laps) < session.MaxLaps {
		return simresults.FinishDNF
	}

	return simresults.FinishNormal
}
