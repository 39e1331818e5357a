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

// escapeSet is a caller-supplied set of ASCII bytes that must always be
// percent-encoded in a given context, on top of the bytes always escaped
// (anything outside 0x20..0x7E).
type escapeSet string

const (
	// c0ControlEscapeSet is the baseline set used for fragments and
	// opaque hosts: bytes below 0x20 or above 0x7E are already always
	// escaped, so this adds only the printable exceptions.
	c0ControlEscapeSet escapeSet = " \"<>`"
	queryEscapeSet     escapeSet = " \"#<>"
	pathEscapeSet      escapeSet = " \"<>`#?{}"
	userinfoEscapeSet  escapeSet = " \"<>`#?{}/:;=@[\\]^|"
)

const upperHex = "0123456789ABCDEF"

// pctEncodeByte percent-encodes a single byte into buf using set,
// per spec.md §4.1: always escape control/non-ASCII bytes, escape
// anything in set, otherwise pass the byte through unchanged.
func pctEncodeByte(buf *strings.Builder, b byte, set escapeSet) {
	if b < 0x20 || b > 0x7E || strings.IndexByte(string(set), b) >= 0 {
		buf.WriteByte('%')
		buf.WriteByte(upperHex[b>>4])
		buf.WriteByte(upperHex[b&0x0F])
		return
	}
	buf.WriteByte(b)
}

// pctEncodeString percent-encodes every byte of s using set and returns
// the result.
func pctEncodeString(s string, set escapeSet) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		pctEncodeByte(&b, s[i], set)
	}
	return b.String()
}

// isPctEncodedAt reports whether s[i] is '%' followed by two hex digits.
func isPctEncodedAt(s string, i int) bool {
	return i < len(s) && s[i] == '%' &&
		i+2 < len(s) && isASCIIHexDigit(s[i+1]) && isASCIIHexDigit(s[i+2])
}

// pctDecode percent-decodes input left to right. A '%' not followed by
// two hex digits is emitted literally and reported via the returned
// validationError flag; decoding never aborts on such input.
func pctDecode(input string) (decoded []byte, validationError bool) {
	out := make([]byte, 0, len(input))
	for i := 0; i < len(input); {
		if input[i] != '%' {
			out = append(out, input[i])
			i++
			continue
		}
		if isPctEncodedAt(input, i) {
			v := hexDigitValue(input[i+1])<<4 | hexDigitValue(input[i+2])
			out = append(out, byte(v))
			i += 3
			continue
		}
		out = append(out, '%')
		validationError = true
		i++
	}
	return out, validationError
}
