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

func TestParseIPv4Number(t *testing.T) {
	tests := []struct {
		part   string
		want   uint64
		wantOK bool
	}{
		{"127", 127, true},
		{"0x7f", 0x7f, true},
		{"0X7F", 0x7f, true},
		{"017", 15, true}, // octal
		{"0", 0, true},
		{"", 0, true},
		{"0x", 0, true},
		{"256", 256, true},
		{"abc", 0, false},
		{"0xzz", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseIPv4Number(tc.part)
		if ok != tc.wantOK || (ok && got != tc.want) {
			t.Errorf("parseIPv4Number(%q) = (%d, %v), want (%d, %v)", tc.part, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAddr   string
		wantOK     bool
		wantFailed bool
	}{
		{"plain dotted decimal", "127.0.0.1", "127.0.0.1", true, false},
		{"hex-folded first octet", "0x7f.1", "127.0.0.1", true, false},
		{"single number collapses whole address", "2130706433", "127.0.0.1", true, false},
		{"two parts, last absorbs remainder", "127.1", "127.0.0.1", true, false},
		{"not numeric, falls back to domain", "example.com", "", false, false},
		{"trailing dot is tolerated", "127.0.0.1.", "127.0.0.1", true, false},
		{"too many parts", "1.2.3.4.5", "", false, false},
		{"out of range octet fails hard", "999.0.0.1", "", false, true},
		{"last part overflows available bits", "1.2.3.999", "", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			addr, ok, failed := parseIPv4(tc.input)
			if ok != tc.wantOK || failed != tc.wantFailed {
				t.Fatalf("parseIPv4(%q) = (ok=%v, failed=%v), want (ok=%v, failed=%v)",
					tc.input, ok, failed, tc.wantOK, tc.wantFailed)
			}
			if ok && addr.String() != tc.wantAddr {
				t.Errorf("parseIPv4(%q) address = %q, want %q", tc.input, addr.String(), tc.wantAddr)
			}
		})
	}
}

func TestIPv4AddressString(t *testing.T) {
	addr := ipv4Address(0x7F000001)
	if got, want := addr.String(), "127.0.0.1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	zero := ipv4Address(0)
	if got, want := zero.String(), "0.0.0.0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
