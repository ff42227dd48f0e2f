package simresults

import "time"

// Lap is one completed circuit by a participant.
type Lap struct {
	// Number is the 1-based, gapless lap number.
	Number int

	// Position is the participant's running position when the lap was
	// completed.
	Position int

	Time time.Duration

	// ElapsedTime is the session time at which the lap started.
	ElapsedTime time.Duration

	// Sectors holds as many sector splits as the log provides, commonly
	// three.
	Sectors []time.Duration

	Cuts []*Cut

	participant *Participant
}

// Participant returns the participant the lap belongs to.
func (l *Lap) Participant() *Participant {
	return l.participant
}

// Driver returns the driver who completed the lap.
func (l *Lap) Driver() Driver {
	return l.participant.Driver
}

// AddCut appends a cut to the lap and makes the lap reachable from it.
func (l *Lap) AddCut(cut *Cut) {
	cut.lap = l
	l.Cuts = append(l.Cuts, cut)
}

// NumberOfCuts returns how many track cuts were recorded on the lap.
func (l *Lap) NumberOfCuts() int {
	return len(l.Cuts)
}

// CutsTime returns the combined duration of the lap's cuts.
func (l *Lap) CutsTime() time.Duration {
	var total time.Duration

	for _, cut := range l.Cuts {
		total += cut.CutTime
	}

	return total
}

// CutsTimeSkipped returns the combined track time skipped via the lap's cuts.
func (l *Lap) CutsTimeSkipped() time.Duration {
	var total time.Duration

	for _, cut := range l.Cuts {
		total += cut.TimeSkipped
	}

	return total
}

// Cut is one track limit violation interval. A cut only exists when the log
// recorded both its start and its end.
type Cut struct {
	CutTime     time.Duration
	TimeSkipped time.Duration

	Date time.Time

	// ElapsedTime is the session time at which the cut happened.
	ElapsedTime time.Duration

	lap *Lap
}

// Lap returns the lap the cut belongs to.
func (c *Cut) Lap() *Lap {
	return c.lap
}
