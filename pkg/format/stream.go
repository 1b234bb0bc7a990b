package format

import "unicode/utf8"

// invalidMarker is what an undecodable stream renders as.
const invalidMarker = "(invalid UTF-8)"

// Stream is a captured subprocess output stream: either the decoded UTF-8
// text or the invalid-UTF-8 marker, never both.
type Stream struct {
	text  string
	valid bool
}

// NewStream decodes raw captured bytes. Bytes that are not valid UTF-8
// degrade to the invalid marker instead of failing.
func NewStream(raw []byte) Stream {
	if !utf8.Valid(raw) {
		return Stream{}
	}
	return Stream{text: string(raw), valid: true}
}

// Text returns the decoded content and whether the captured bytes were
// valid UTF-8.
func (s Stream) Text() (string, bool) {
	return s.text, s.valid
}

// Valid reports whether the captured bytes decoded as UTF-8.
func (s Stream) Valid() bool {
	return s.valid
}

func (s Stream) String() string {
	if !s.valid {
		return invalidMarker
	}
	return s.text
}
