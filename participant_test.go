package simresults

import (
	"testing"
	"time"
)

type bestLapTest struct {
	name       string
	lapTimes   []time.Duration
	fastestLap time.Duration
	expected   time.Duration
}

func TestBestLapTime(t *testing.T) {
	bestLapTests := []bestLapTest{
		{
			name:     "fastest of several laps",
			lapTimes: []time.Duration{90030 * time.Millisecond, 84224 * time.Millisecond, 84399 * time.Millisecond},
			expected: 84224 * time.Millisecond,
		},
		{
			name:       "aggregate fallback when no laps were built",
			fastestLap: 119417 * time.Millisecond,
			expected:   119417 * time.Millisecond,
		},
		{
			name:       "laps win over the aggregate field",
			lapTimes:   []time.Duration{85 * time.Second},
			fastestLap: 80 * time.Second,
			expected:   85 * time.Second,
		},
		{
			name:     "zero lap times are not best laps",
			lapTimes: []time.Duration{0, 91 * time.Second},
			expected: 91 * time.Second,
		},
		{
			name:     "no data at all",
			expected: 0,
		},
	}

	for _, test := range bestLapTests {
		t.Run(test.name, func(t *testing.T) {
			participant := &Participant{FastestLap: test.fastestLap}

			for _, lapTime := range test.lapTimes {
				participant.AddLap(&Lap{Time: lapTime})
			}

			if best := participant.BestLapTime(); best != test.expected {
				t.Errorf("Expected best lap %s, got: %s", test.expected, best)
			}
		})
	}
}

func TestLapAndCutBackReferences(t *testing.T) {
	participant := &Participant{
		Driver: Driver{Name: "ItchyTrigaFinga"},
	}

	lap := &Lap{Number: 1, Time: 90 * time.Second}
	participant.AddLap(lap)

	if lap.Participant() != participant {
		t.Error("Expected lap to reference its participant")
	}

	if lap.Driver().Name != "ItchyTrigaFinga" {
		t.Errorf("Expected lap driver ItchyTrigaFinga, got: %s", lap.Driver().Name)
	}

	cut := &Cut{CutTime: 2878 * time.Millisecond, TimeSkipped: 2748 * time.Millisecond}
	lap.AddCut(cut)

	if cut.Lap() != lap {
		t.Error("Expected cut to reference its lap")
	}
}

func TestLapCutAggregates(t *testing.T) {
	lap := &Lap{Number: 2}

	lap.AddCut(&Cut{CutTime: 2878 * time.Millisecond, TimeSkipped: 2748 * time.Millisecond})
	lap.AddCut(&Cut{CutTime: 95 * time.Millisecond, TimeSkipped: 74 * time.Millisecond})
	lap.AddCut(&Cut{CutTime: 50 * time.Millisecond, TimeSkipped: 50 * time.Millisecond})

	if lap.NumberOfCuts() != 3 {
		t.Errorf("Expected 3 cuts, got: %d", lap.NumberOfCuts())
	}

	if expected := 3023 * time.Millisecond; lap.CutsTime() != expected {
		t.Errorf("Expected cuts time %s, got: %s", expected, lap.CutsTime())
	}

	if expected := 2872 * time.Millisecond; lap.CutsTimeSkipped() != expected {
		t.Errorf("Expected cuts time skipped %s, got: %s", expected, lap.CutsTimeSkipped())
	}
}
