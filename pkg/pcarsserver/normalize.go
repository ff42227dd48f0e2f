package pcarsserver

import (
	"bytes"
	"io/ioutil"

	"github.com/dimchansky/utfbom"
)

// normalize prepares raw log bytes for JSON decoding. The server writes its
// stats file with an optional UTF BOM and, in some game versions, with
// backslashes that do not begin a valid JSON escape sequence. Only those two
// defects are repaired; legitimate content, including escaped forward slashes
// inside chat and incident text, passes through untouched.
func normalize(data []byte) []byte {
	skipped, err := ioutil.ReadAll(utfbom.SkipOnly(bytes.NewReader(data)))

	if err == nil {
		data = skipped
	}

	return repairEscapes(data)
}

// repairEscapes drops every backslash that does not begin a valid JSON escape
// sequence. The byte following a dropped backslash is kept, so the decoded
// text matches what the author wrote.
func repairEscapes(data []byte) []byte {
	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); i++ {
		c := data[i]

		if c != '\\' {
			out = append(out, c)
			continue
		}

		if i+1 >= len(data) {
			// a trailing backslash can't escape anything
			break
		}

		switch data[i+1] {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			out = append(out, c, data[i+1])
			i++
		case 'u':
			if i+5 < len(data) && isHex(data[i+2:i+6]) {
				out = append(out, data[i:i+6]...)
				i += 5
			}
		}
	}

	return out
}

func isHex(b []byte) bool {
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}
