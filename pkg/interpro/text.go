package interpro

import "strings"

// textMode selects how the accumulator reacts to reset requests.
type textMode int

const (
	// textNormal clears the buffer on every reset.
	textNormal textMode = iota
	// textFreeText suppresses resets so nested markup inside a free-text
	// element does not fragment the accumulated text.
	textFreeText
)

// textAccumulator collects character data observed between element
// boundaries. One accumulator is shared across the current element content;
// it is not per-frame.
type textAccumulator struct {
	buf  strings.Builder
	mode textMode
}

// Append trims one text event and appends it to the running buffer. The event
// loses its single leading run of whitespace and a single trailing line
// terminator; interior whitespace is preserved.
func (a *textAccumulator) Append(data string) {
	a.buf.WriteString(trimEvent(data))
}

// Text returns the accumulated text so far.
func (a *textAccumulator) Text() string {
	return a.buf.String()
}

// Reset clears the buffer, unless the accumulator is inside a free-text
// element.
func (a *textAccumulator) Reset() {
	if a.mode == textFreeText {
		return
	}
	a.buf.Reset()
}

// EnterFreeText suspends resets until LeaveFreeText.
func (a *textAccumulator) EnterFreeText() {
	a.mode = textFreeText
}

// LeaveFreeText restores normal reset behavior.
func (a *textAccumulator) LeaveFreeText() {
	a.mode = textNormal
}

// clear unconditionally empties the buffer regardless of mode.
func (a *textAccumulator) clear() {
	a.mode = textNormal
	a.buf.Reset()
}

// trimEvent strips a single leading run of whitespace and a single trailing
// line terminator from one text event.
func trimEvent(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	s = s[i:]

	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r") {
		return s[:len(s)-1]
	}
	return s
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
