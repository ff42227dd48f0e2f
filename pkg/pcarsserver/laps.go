package pcarsserver

import (
	"fmt"
	"time"

	"justapengu.in/simresults"
)

// buildLaps walks a participant's chronological events and reconstructs laps
// with their sector splits and cuts. When the stage has no lap events at all
// the participant keeps an empty lap list and only the aggregate fastest lap
// from the results view; callers distinguish that state from having no data.
func buildLaps(participant *simresults.Participant, events []event, sessionStart time.Time) {
	consumedEnds := make(map[int]bool)

	var pendingCuts []*simresults.Cut
	var elapsed time.Duration

	for i, ev := range events {
		switch ev.EventName {
		case eventLap:
			lap := &simresults.Lap{
				Number:      len(participant.Laps) + 1,
				Position:    int(ev.Attributes.Int("RacePosition")),
				Time:        ev.Attributes.Duration("LapTime"),
				ElapsedTime: elapsed,
				Sectors:     sectorTimes(ev.Attributes),
			}

			participant.AddLap(lap)

			for _, cut := range pendingCuts {
				lap.AddCut(cut)
			}

			pendingCuts = nil
			elapsed += lap.Time
		case eventCutTrackStart:
			cut, endIndex, ok := matchCutEnd(events, i, consumedEnds)

			if !ok {
				// the interval never closed; there is nothing safe to record
				continue
			}

			consumedEnds[endIndex] = true

			cut.Date = time.Unix(ev.Time, 0).UTC()
			cut.ElapsedTime = cut.Date.Sub(sessionStart)

			pendingCuts = append(pendingCuts, cut)
		}
	}
}

// matchCutEnd scans forward from a cut start marker for the first unconsumed
// end marker, stopping at the lap boundary. An end marker already matched to
// an earlier cut is never consumed again; some game versions flood the log
// with more end markers than start markers and reusing one would double
// count cut time.
func matchCutEnd(events []event, start int, consumed map[int]bool) (*simresults.Cut, int, bool) {
	for i := start + 1; i < len(events); i++ {
		switch events[i].EventName {
		case eventLap:
			return nil, 0, false
		case eventCutTrackEnd:
			if consumed[i] {
				continue
			}

			return &simresults.Cut{
				CutTime:     events[i].Attributes.Duration("ElapsedTime"),
				TimeSkipped: events[i].Attributes.Duration("SkippedTime"),
			}, i, true
		}
	}

	return nil, 0, false
}

// sectorTimes collects however many sector splits the event carries.
func sectorTimes(attrs attributes) []time.Duration {
	var sectors []time.Duration

	for i := 1; ; i++ {
		name := fmt.Sprintf("Sector%dTime", i)

		if !attrs.Has(name) {
			break
		}

		sectors = append(sectors, attrs.Duration(name))
	}

	return sectors
}
