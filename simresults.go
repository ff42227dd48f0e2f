// Package simresults reconstructs normalised race session data from the raw
// logs written by racing simulation dedicated servers. Log formats register
// themselves with RegisterFormat; Open hands the raw log to each format in
// turn and returns the first reader that accepts it.
package simresults

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrCannotReadData is returned by Open when no registered format accepts the
// given data.
var ErrCannotReadData = errors.New("simresults: data does not match any known log format")

// Reader provides read-only access to the session graph built from a single
// log document.
type Reader interface {
	// Sessions returns every session in the document, in source order.
	Sessions() []*Session

	// Session returns the session at the given 0-based position in source
	// order, or an error if no such session exists.
	Session(index int) (*Session, error)

	// DefaultSession returns the first (or only) session in the document.
	DefaultSession() *Session
}

// FormatFunc attempts to build a Reader from raw log data. It must return an
// error if the data does not match the format, leaving the dispatch chain to
// try the next candidate.
type FormatFunc func(data []byte) (Reader, error)

type format struct {
	name string
	fn   FormatFunc
}

var formats []format

// RegisterFormat adds a log format to the dispatch chain. Formats are tried
// in registration order.
func RegisterFormat(name string, fn FormatFunc) {
	formats = append(formats, format{name: name, fn: fn})
}

// Open builds a Reader for the given log data by trying each registered
// format in order. It returns ErrCannotReadData if every format rejects the
// data.
func Open(data []byte) (Reader, error) {
	for _, f := range formats {
		reader, err := f.fn(data)

		if err != nil {
			logrus.WithError(err).Debugf("Format %q rejected the data", f.name)
			continue
		}

		return reader, nil
	}

	return nil, ErrCannotReadData
}
