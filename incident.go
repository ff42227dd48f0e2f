package simresults

import "time"

// Incident is one contact report within a session. Attribution is carried in
// the message text only.
type Incident struct {
	Message string

	Date time.Time

	// ElapsedTime is the session time at which the incident happened.
	ElapsedTime time.Duration
}
