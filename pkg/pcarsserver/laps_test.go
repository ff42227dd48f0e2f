package pcarsserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justapengu.in/simresults"
)

var lapTestSessionStart = time.Unix(1446150022, 0).UTC()

func lapEvent(at int64, lapTime int64, position int64) event {
	return event{
		EventName:     eventLap,
		ParticipantID: 1,
		Time:          at,
		Attributes: attributes{
			"LapTime":      float64(lapTime),
			"RacePosition": float64(position),
		},
	}
}

func cutStartEvent(at int64) event {
	return event{
		EventName:     eventCutTrackStart,
		ParticipantID: 1,
		Time:          at,
		Attributes:    attributes{},
	}
}

func cutEndEvent(at int64, cutTime, skipped int64) event {
	return event{
		EventName:     eventCutTrackEnd,
		ParticipantID: 1,
		Time:          at,
		Attributes: attributes{
			"ElapsedTime": float64(cutTime),
			"SkippedTime": float64(skipped),
		},
	}
}

func TestCutEndFloodDoesNotInflateCutTime(t *testing.T) {
	participant := &simresults.Participant{}

	// one start, two ends: the second end belongs to nothing and must not
	// be folded into the cut
	buildLaps(participant, []event{
		lapEvent(1446150112, 90000, 3),
		cutStartEvent(1446150130),
		cutEndEvent(1446150132, 1434, 1200),
		cutEndEvent(1446150133, 900, 800),
		lapEvent(1446150202, 91000, 3),
	}, lapTestSessionStart)

	require.Len(t, participant.Laps, 2)

	lap := participant.Laps[1]

	assert.Equal(t, 1, lap.NumberOfCuts())
	assert.Equal(t, 1434*time.Millisecond, lap.CutsTime())
	assert.Equal(t, 1200*time.Millisecond, lap.CutsTimeSkipped())
}

func TestEachCutConsumesADistinctEnd(t *testing.T) {
	participant := &simresults.Participant{}

	buildLaps(participant, []event{
		lapEvent(1446150112, 90000, 3),
		cutStartEvent(1446150120),
		cutStartEvent(1446150124),
		cutEndEvent(1446150126, 500, 400),
		cutEndEvent(1446150128, 300, 200),
		lapEvent(1446150202, 91000, 3),
	}, lapTestSessionStart)

	require.Len(t, participant.Laps, 2)

	lap := participant.Laps[1]

	require.Equal(t, 2, lap.NumberOfCuts())
	assert.Equal(t, 500*time.Millisecond, lap.Cuts[0].CutTime)
	assert.Equal(t, 300*time.Millisecond, lap.Cuts[1].CutTime)
	assert.Equal(t, 800*time.Millisecond, lap.CutsTime())
}

func TestCutWithoutAnEndBeforeTheLapBoundaryIsDiscarded(t *testing.T) {
	participant := &simresults.Participant{}

	buildLaps(participant, []event{
		lapEvent(1446150112, 90000, 3),
		cutStartEvent(1446150130),
		lapEvent(1446150202, 91000, 3),
		cutEndEvent(1446150210, 700, 600),
	}, lapTestSessionStart)

	require.Len(t, participant.Laps, 2)
	assert.Equal(t, 0, participant.Laps[0].NumberOfCuts())
	assert.Equal(t, 0, participant.Laps[1].NumberOfCuts())
}

func TestCutPairAfterTheFinalLapIsDiscarded(t *testing.T) {
	participant := &simresults.Participant{}

	buildLaps(participant, []event{
		lapEvent(1446150112, 90000, 3),
		cutStartEvent(1446150130),
		cutEndEvent(1446150133, 700, 600),
	}, lapTestSessionStart)

	require.Len(t, participant.Laps, 1)
	assert.Equal(t, 0, participant.Laps[0].NumberOfCuts())
}

func TestLapNumbersAndElapsedTimeAccumulate(t *testing.T) {
	participant := &simresults.Participant{}

	buildLaps(participant, []event{
		lapEvent(1446150112, 90000, 2),
		lapEvent(1446150196, 84000, 2),
		lapEvent(1446150281, 85000, 1),
	}, lapTestSessionStart)

	require.Len(t, participant.Laps, 3)

	expectedElapsed := []time.Duration{0, 90 * time.Second, 174 * time.Second}

	for i, lap := range participant.Laps {
		assert.Equal(t, i+1, lap.Number)
		assert.Equal(t, expectedElapsed[i], lap.ElapsedTime)
		assert.Equal(t, participant, lap.Participant())
	}
}

func TestNoLapEventsLeavesLapsEmpty(t *testing.T) {
	participant := &simresults.Participant{FastestLap: 119417 * time.Millisecond}

	buildLaps(participant, nil, lapTestSessionStart)

	assert.Empty(t, participant.Laps)
	assert.Equal(t, 119417*time.Millisecond, participant.BestLapTime())
}
