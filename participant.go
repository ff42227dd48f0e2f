package simresults

import (
	"fmt"
	"time"
)

type FinishStatus int

const (
	// FinishNone means finishing status does not apply, either because the
	// session is not a race or because the race produced no final ranking.
	FinishNone FinishStatus = iota
	FinishNormal
	FinishDNF
)

func (f FinishStatus) String() string {
	switch f {
	case FinishNone:
		return "N/A"
	case FinishNormal:
		return "Finished"
	case FinishDNF:
		return "DNF"
	default:
		return fmt.Sprintf("Unknown (%d)", int(f))
	}
}

// Driver is the identity of the person (or AI) steering a car.
type Driver struct {
	Name string

	// DriverID is the platform identity of a human driver, empty for AI.
	DriverID string

	IsHuman bool
}

// Vehicle is the car a participant drove.
type Vehicle struct {
	Name  string
	Class string
}

// Participant is one car and driver entry within a session.
type Participant struct {
	Driver  Driver
	Vehicle Vehicle

	// Position is the 1-based position of the participant within the
	// session ordering.
	Position int

	// GridPosition is the 1-based starting position, zero when the log does
	// not record one.
	GridPosition int

	TotalTime    time.Duration
	FinishStatus FinishStatus

	// FastestLap is the aggregate fastest lap recorded by the server for
	// this participant. It remains available even when the log carries no
	// per-lap detail and Laps is empty.
	FastestLap time.Duration

	Laps []*Lap
}

// AddLap appends a lap to the participant and makes the participant
// reachable from it.
func (p *Participant) AddLap(lap *Lap) {
	lap.participant = p
	p.Laps = append(p.Laps, lap)
}

// BestLap returns the fastest of the participant's laps, or nil when the log
// carried no per-lap detail.
func (p *Participant) BestLap() *Lap {
	var best *Lap

	for _, lap := range p.Laps {
		if lap.Time <= 0 {
			continue
		}

		if best == nil || lap.Time < best.Time {
			best = lap
		}
	}

	return best
}

// BestLapTime returns the participant's best lap time, falling back to the
// server's aggregate fastest lap when no laps were reconstructed. Zero means
// no best lap is known at all.
func (p *Participant) BestLapTime() time.Duration {
	if best := p.BestLap(); best != nil {
		return best.Time
	}

	return p.FastestLap
}
