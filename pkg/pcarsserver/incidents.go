package pcarsserver

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"justapengu.in/simresults"
)

// environmentParticipantID is what the server records as the other party
// when a car hits the scenery rather than another car.
const environmentParticipantID = -1

// buildIncidents emits one incident per Impact event, in chronological
// order. A report naming a participant identity that is not in the
// reconciled roster is transient junk in the log; it is dropped so the
// remaining well-formed reports stay usable.
func buildIncidents(session *simresults.Session, events []event, roster map[int]*simresults.Participant) {
	for _, ev := range events {
		if ev.EventName != eventImpact {
			continue
		}

		reporter, ok := roster[ev.ParticipantID]

		if !ok {
			logrus.Debugf("Dropping impact report from unresolved participant id %d", ev.ParticipantID)
			continue
		}

		magnitude := ev.Attributes.Int("CollisionMagnitude")
		otherID := int(ev.Attributes.Int("OtherParticipantId"))

		var message string

		if otherID == environmentParticipantID {
			message = fmt.Sprintf("%s reported contact with the environment. CollisionMagnitude: %d", reporter.Driver.Name, magnitude)
		} else {
			other, ok := roster[otherID]

			if !ok {
				logrus.Debugf("Dropping impact report between participant id %d and unresolved id %d", ev.ParticipantID, otherID)
				continue
			}

			message = fmt.Sprintf("%s reported contact with another vehicle %s. CollisionMagnitude: %d", reporter.Driver.Name, other.Driver.Name, magnitude)
		}

		date := time.Unix(ev.Time, 0).UTC()

		session.Incidents = append(session.Incidents, &simresults.Incident{
			Message:     message,
			Date:        date,
			ElapsedTime: date.Sub(session.Date),
		})
	}
}
