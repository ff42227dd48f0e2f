package pcarsserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"justapengu.in/simresults"
)

func statusCandidate(name string, laps int, res *result) *candidate {
	cand := &candidate{
		ident:       &identity{name: name},
		result:      res,
		participant: &simresults.Participant{Driver: simresults.Driver{Name: name}},
	}

	for i := 0; i < laps; i++ {
		cand.participant.AddLap(&simresults.Lap{Number: i + 1})
	}

	return cand
}

func TestRaceWithoutResultsHasNoFinishStatus(t *testing.T) {
	// the server went down mid-race: there is no ranking to finish against
	session := &simresults.Session{Type: simresults.SessionTypeRace, MaxLaps: 7}

	cands := []*candidate{
		statusCandidate("I am Reginald", 4, nil),
		statusCandidate("xCrazydogx", 3, nil),
	}

	resolveFinishStatus(session, cands)

	for _, cand := range cands {
		assert.Equal(t, simresults.FinishNone, cand.participant.FinishStatus)
	}
}

func TestLapShortfallMeansDNF(t *testing.T) {
	session := &simresults.Session{Type: simresults.SessionTypeRace, MaxLaps: 7}

	finished := statusCandidate("Leader", 7, &result{Attributes: attributes{"State": stateFinished}})
	stopped := statusCandidate("Stopped", 3, &result{Attributes: attributes{}})

	resolveFinishStatus(session, []*candidate{finished, stopped})

	assert.Equal(t, simresults.FinishNormal, finished.participant.FinishStatus)
	assert.Equal(t, simresults.FinishDNF, stopped.participant.FinishStatus)
}

func TestResultsOnlyRaceKeepsEncodedStatus(t *testing.T) {
	// no event stream: an empty lap list is a fallback state, not DNF
	// evidence
	session := &simresults.Session{Type: simresults.SessionTypeRace, MaxLaps: 10}

	cands := []*candidate{
		statusCandidate("Winner", 0, &result{Attributes: attributes{"State": stateFinished}}),
		statusCandidate("Unmarked", 0, &result{Attributes: attributes{}}),
		statusCandidate("Retired", 0, &result{Attributes: attributes{"State": stateRetired}}),
	}

	resolveFinishStatus(session, cands)

	assert.Equal(t, simresults.FinishNormal, cands[0].participant.FinishStatus)
	assert.Equal(t, simresults.FinishNormal, cands[1].participant.FinishStatus)
	assert.Equal(t, simresults.FinishDNF, cands[2].participant.FinishStatus)
}

func TestNonRaceSessionIgnoresResultStates(t *testing.T) {
	session := &simresults.Session{Type: simresults.SessionTypeQualify}

	cand := statusCandidate("Driver", 2, &result{Attributes: attributes{"State": stateFinished}})

	resolveFinishStatus(session, []*candidate{cand})

	assert.Equal(t, simresults.FinishNone, cand.participant.FinishStatus)
}
