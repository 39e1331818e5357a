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

//nolint:testpackage // White-box test file for an internal package.
package wurl

import (
	"strings"
	"testing"
)

func TestPctEncodeByte(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		set  escapeSet
		want string
	}{
		{"unreserved passes through", 'a', pathEscapeSet, "a"},
		{"space always escaped in path set", ' ', pathEscapeSet, "%20"},
		{"control byte always escaped", 0x01, c0ControlEscapeSet, "%01"},
		{"non-ASCII byte always escaped", 0xFF, c0ControlEscapeSet, "%FF"},
		{"query set escapes hash", '#', queryEscapeSet, "%23"},
		{"query set leaves slash alone", '/', queryEscapeSet, "/"},
		{"userinfo set escapes colon", ':', userinfoEscapeSet, "%3A"},
		{"path set leaves colon alone", ':', pathEscapeSet, ":"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b strings.Builder
			pctEncodeByte(&b, tc.b, tc.set)
			if got := b.String(); got != tc.want {
				t.Errorf("pctEncodeByte(%q, ...) = %q, want %q", tc.b, got, tc.want)
			}
		})
	}
}

func TestPctEncodeString(t *testing.T) {
	got := pctEncodeString("a b", pathEscapeSet)
	if want := "a%20b"; got != want {
		t.Errorf("pctEncodeString(%q) = %q, want %q", "a b", got, want)
	}
}

func TestPctDecode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDecoded string
		wantErr     bool
	}{
		{"no percent signs", "hello", "hello", false},
		{"one valid triplet", "a%20b", "a b", false},
		{"uppercase and lowercase hex", "%2f%2F", "//", false},
		{"trailing percent with no digits", "a%", "a%", true},
		{"percent followed by one hex digit only", "a%2", "a%2", true},
		{"percent followed by non-hex", "a%zz", "a%zz", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decoded, validationError := pctDecode(tc.input)
			if string(decoded) != tc.wantDecoded {
				t.Errorf("pctDecode(%q) decoded = %q, want %q", tc.input, decoded, tc.wantDecoded)
			}
			if validationError != tc.wantErr {
				t.Errorf("pctDecode(%q) validationError = %v, want %v", tc.input, validationError, tc.wantErr)
			}
		})
	}
}

// Byte sequences that avoid '%' should survive an encode/decode round
// trip unchanged; checked here with the path escape set.
func TestPctEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"foo/bar?baz#qux",
		string([]byte{0x00, 0x1F, 0x7F, 0xFF, 'a', 'Z', '9'}),
	}

	for _, in := range inputs {
		encoded := pctEncodeString(in, pathEscapeSet)
		decoded, validationError := pctDecode(encoded)
		if validationError {
			t.Errorf("pctDecode(pctEncodeString(%q)) reported a validation error", in)
		}
		if string(decoded) != in {
			t.Errorf("round trip for %q produced %q via encoded form %q", in, decoded, encoded)
		}
	}
}

func TestIsPctEncodedAt(t *testing.T) {
	tests := []struct {
		s    string
		i    int
		want bool
	}{
		{"%41", 0, true},
		{"%4", 0, false},
		{"%4z", 0, false},
		{"abc%41", 3, true},
		{"", 0, false},
	}
	for _, tc := range tests {
		if got := isPctEncodedAt(tc.s, tc.i); got != tc.want {
			t.Errorf("isPctEncodedAt(%q, %d) = %v, want %v", tc.s, tc.i, got, tc.want)
		}
	}
}
