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

import "testing"

func TestIsSpecial(t *testing.T) {
	special := []string{"ftp", "file", "http", "https", "ws", "wss"}
	for _, s := range special {
		if !isSpecial(s) {
			t.Errorf("isSpecial(%q) = false, want true", s)
		}
	}

	notSpecial := []string{"foo", "mailto", "blob", "", "HTTP"}
	for _, s := range notSpecial {
		if isSpecial(s) {
			t.Errorf("isSpecial(%q) = true, want false", s)
		}
	}
}

func TestIsDefaultPort(t *testing.T) {
	tests := []struct {
		scheme string
		port   uint16
		want   bool
	}{
		{"http", 80, true},
		{"http", 8080, false},
		{"https", 443, true},
		{"ws", 80, true},
		{"wss", 443, true},
		{"ftp", 21, true},
		{"file", 0, false},
		{"foo", 80, false},
	}
	for _, tc := range tests {
		if got := isDefaultPort(tc.scheme, tc.port); got != tc.want {
			t.Errorf("isDefaultPort(%q, %d) = %v, want %v", tc.scheme, tc.port, got, tc.want)
		}
	}
}

func TestIsWindowsDriveLetter(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"C:", true},
		{"c|", true},
		{"C", false},
		{"C::", false},
		{"1:", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := isWindowsDriveLetter(tc.s); got != tc.want {
			t.Errorf("isWindowsDriveLetter(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}

func TestIsSingleDotPathSegment(t *testing.T) {
	for _, s := range []string{".", "%2e", "%2E"} {
		if !isSingleDotPathSegment(s) {
			t.Errorf("isSingleDotPathSegment(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"..", "a", ""} {
		if isSingleDotPathSegment(s) {
			t.Errorf("isSingleDotPathSegment(%q) = true, want false", s)
		}
	}
}

func TestIsDoubleDotPathSegment(t *testing.T) {
	for _, s := range []string{"..", ".%2e", "%2e.", "%2E%2E"} {
		if !isDoubleDotPathSegment(s) {
			t.Errorf("isDoubleDotPathSegment(%q) = false, want true", s)
		}
	}
	for _, s := range []string{".", "a", ""} {
		if isDoubleDotPathSegment(s) {
			t.Errorf("isDoubleDotPathSegment(%q) = true, want false", s)
		}
	}
}

func TestIsURLCodePoint(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'9', true},
		{'~', true},
		{' ', false},
		{'<', false},
		{'é', true},
	}
	for _, tc := range tests {
		if got := isURLCodePoint(tc.r); got != tc.want {
			t.Errorf("isURLCodePoint(%q) = %v, want %v", tc.r, got, tc.want)
		}
	}
}
