/*
Copyright 2025 Wurl Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package wurl

import "strings"

// eof is the synthetic sentinel fed to state handlers once the driver
// has stepped past the last byte of the input, per spec.md §4.6.2. It
// is not a valid input byte (it is negative), so it can never be
// confused with real input.
const eof int32 = -1

// parserInput is the sanitized byte buffer the C7 driver steps over.
// It supports the one-byte lookahead/rewind the state table needs
// (§4.6.2, §4.6.3) via a plain index into buf — simpler than the
// teacher's strings.Reader-backed parserInput (iri/input.go) because
// the URL grammar is byte-, not rune-, oriented and needs `decrement`,
// which strings.Reader cannot do past a UTF-8 boundary.
type parserInput struct {
	buf []byte
	pos int
}

// newParserInput sanitizes s per spec.md §4.6.1 and returns a
// parserInput over the result plus whether any sanitization actually
// removed something (the advisory validation-error signal).
func newParserInput(s string) (*parserInput, bool) {
	trimmed, trimErr := trimASCIIWhitespace(s)
	clean, tabErr := removeTabsAndNewlines(trimmed)
	return &parserInput{buf: []byte(clean)}, trimErr || tabErr
}

// trimASCIIWhitespace strips leading/trailing bytes in
// {NUL,0x1B,0x04,0x12,0x1F} or C-locale isspace, per spec.md §4.6.1.
func trimASCIIWhitespace(s string) (string, bool) {
	start, end := 0, len(s)
	for start < end && isLeadTrailTrim(s[start]) {
		start++
	}
	for end > start && isLeadTrailTrim(s[end-1]) {
		end--
	}
	return s[start:end], start != 0 || end != len(s)
}

// isLeadTrailTrim reports whether b is one of the sanitization-time
// leading/trailing bytes: NUL, ESC, EOT, DC2, US, or a C-locale space
// character (space, tab, newline, CR, FF, VT).
func isLeadTrailTrim(b byte) bool {
	switch b {
	case 0x00, 0x1B, 0x04, 0x12, 0x1F:
		return true
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// removeTabsAndNewlines deletes every interior '\t', '\r', '\n'.
func removeTabsAndNewlines(s string) (string, bool) {
	if strings.IndexAny(s, "\t\r\n") == -1 {
		return s, false
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isASCIITabOrNewline(s[i]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String(), true
}

// current returns the byte at the current position, or eof if the
// position is at or past the end of the buffer.
func (p *parserInput) current() int32 {
	if p.pos >= len(p.buf) {
		return eof
	}
	return int32(p.buf[p.pos])
}

// peekAt returns the byte n positions after the current one (n=1 is
// the very next byte), or eof if that position is out of range. This
// is the Go-native replacement for the original source's
// remaining_starts_with: instead of matching a string ahead of a
// not-yet-advanced pointer, state handlers call peekAt directly.
func (p *parserInput) peekAt(n int) int32 {
	i := p.pos + n
	if i < 0 || i >= len(p.buf) {
		return eof
	}
	return int32(p.buf[i])
}

// increment advances the position by one byte.
func (p *parserInput) increment() { p.pos++ }

// decrement moves the position back by one byte.
func (p *parserInput) decrement() { p.pos-- }

// atEOF reports whether the position is at or past the end.
func (p *parserInput) atEOF() bool { return p.pos >= len(p.buf) }

// remainder returns every byte from the current position to the end.
func (p *parserInput) remainder() string {
	if p.atEOF() {
		return ""
	}
	return string(p.buf[p.pos:])
}

// reset rewinds the position to the start of the buffer, per the
// driver contract's reset() (§4.6.2).
func (p *parserInput) reset() { p.pos = 0 }

// rewindBy moves the position back by n bytes. Used by the authority
// state's restart-from-buffer transition (§4.6.3), which must re-scan
// the just-accumulated userinfo/host bytes as the host state's input.
func (p *parserInput) rewindBy(n int) { p.pos -= n }
