package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	"justapengu.in/simresults"
	_ "justapengu.in/simresults/pkg/pcarsserver"
)

var (
	logFilePath string
	dumpGraph   bool
)

func init() {
	flag.StringVar(&logFilePath, "f", "sms_stats_data.json", "path to the server log file")
	flag.BoolVar(&dumpGraph, "dump", false, "dump the full session graph instead of printing tables")
	flag.Parse()
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	data, err := ioutil.ReadFile(logFilePath)

	if err != nil {
		logger.WithError(err).Fatal("Could not read the server log file")
	}

	reader, err := simresults.Open(data)

	if err != nil {
		logger.WithError(err).Fatal("Could not read results from the server log")
	}

	if dumpGraph {
		spew.Dump(reader.Sessions())
		return
	}

	for i, session := range reader.Sessions() {
		fmt.Printf("\nSession %d: %s at %s on %s, started %s\n", i+1, session.Type, session.Track.Venue, session.Server.Name, humanize.Time(session.Date))

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Pos", "Driver", "Vehicle", "Best Lap", "Total", "Status"})

		for _, participant := range session.Participants {
			table.Append([]string{
				humanize.Ordinal(participant.Position),
				participant.Driver.Name,
				participant.Vehicle.Name,
				formatDuration(participant.BestLapTime()),
				formatDuration(participant.TotalTime),
				participant.FinishStatus.String(),
			})
		}

		table.Render()

		for _, incident := range session.Incidents {
			fmt.Printf("  [%s] %s\n", incident.Date.Format("15:04:05"), incident.Message)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}

	minutes := int(d / time.Minute)
	seconds := float64(d-time.Duration(minutes)*time.Minute) / float64(time.Second)

	return fmt.Sprintf("%d:%06.3f", minutes, seconds)
}
