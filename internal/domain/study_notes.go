package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// StudyNotes is the result of a generation request: a short definition,
// explanatory points and key terms for a topic.
//
// Notes parsed from generated content keep the original JSON document, and
// MarshalJSON reproduces it (compacted) so that any extra fields the model
// returned reach the client unchanged.
type StudyNotes struct {
	Definition string   `json:"definition"`
	Points     []string `json:"points"`
	Terms      []string `json:"terms"`

	raw json.RawMessage
}

// requiredNoteFields must all be present and truthy for notes to be valid.
var requiredNoteFields = []string{"definition", "points", "terms"}

// ParseStudyNotes parses content as a JSON study notes document.
//
// Validation is intentionally shallow: each required field must be present
// and truthy in the JavaScript sense (not null, false, 0 or ""), but the
// number and type of points and terms are not checked. Typed fields are
// populated on a best-effort basis; the raw document is authoritative.
func ParseStudyNotes(content string) (*StudyNotes, error) {
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, []byte(content)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableNotes, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(compacted.Bytes(), &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: content is not a JSON object", ErrInvalidNotesFormat)
	}

	for _, name := range requiredNoteFields {
		if !truthy(fields[name]) {
			return nil, fmt.Errorf("%w: missing or empty %q", ErrInvalidNotesFormat, name)
		}
	}

	notes := &StudyNotes{raw: json.RawMessage(compacted.Bytes())}
	fillTyped(fields["definition"], &notes.Definition)
	fillTyped(fields["points"], &notes.Points)
	fillTyped(fields["terms"], &notes.Terms)

	return notes, nil
}

// fillTyped decodes raw into dst when the JSON type matches. On a mismatch
// (e.g. a numeric definition or an array of objects) dst keeps its zero value:
// the shape check above is the only validation, and the raw document is what
// clients receive, so typed fields are only a convenience for logging and
// rendering.
func fillTyped(raw json.RawMessage, dst any) {
	_ = json.Unmarshal(raw, dst)
}

// MarshalJSON returns the original document for parsed notes and the typed
// fields otherwise.
func (n StudyNotes) MarshalJSON() ([]byte, error) {
	if len(n.raw) > 0 {
		return n.raw, nil
	}
	type plain StudyNotes
	return json.Marshal(plain(n))
}

// truthy reports whether a JSON value would be truthy in JavaScript.
// Absent values, null, false, 0, -0 and "" are falsy; arrays and objects,
// including empty ones, are truthy. Numbers beyond float64 range are truthy,
// as JavaScript reads them as Infinity.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return false
	}

	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case json.Number:
		// Overflow yields ±Inf and underflow yields 0, matching JavaScript
		f, _ := strconv.ParseFloat(x.String(), 64)
		return f != 0
	case string:
		return x != ""
	default:
		return true
	}
}
