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

func TestParseIPv6(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantOK  bool
	}{
		{"loopback", "::1", "::1", true},
		{"unspecified", "::", "::", true},
		{"full address no compression", "2001:db8:0:0:0:0:0:1", "2001:db8::1", true},
		{"trailing compression", "ff02::", "ff02::", true},
		{"leading compression", "::ffff:c000:0280", "::ffff:c000:280", true},
		{"embedded IPv4 tail", "::ffff:192.0.2.1", "::ffff:c000:201", true},
		{"too many pieces", "1:2:3:4:5:6:7:8:9", "", false},
		{"double compression is invalid", "1::2::3", "", false},
		{"lone colon", ":", "", false},
		{"garbage", "not an address", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			addr, ok := parseIPv6(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("parseIPv6(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
			}
			if ok && addr.String() != tc.want {
				t.Errorf("parseIPv6(%q).String() = %q, want %q", tc.input, addr.String(), tc.want)
			}
		})
	}
}

func TestIPv6AddressString_Compression(t *testing.T) {
	// The longest run of zero pieces compresses; ties break toward the
	// leftmost run.
	addr := ipv6Address{0, 0, 1, 0, 0, 0, 0, 1}
	if got, want := addr.String(), "0:0:1::1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLongestZeroRun(t *testing.T) {
	tests := []struct {
		name      string
		addr      ipv6Address
		wantStart int
		wantLen   int
	}{
		{"no zero run", ipv6Address{1, 2, 3, 4, 5, 6, 7, 8}, -1, 0},
		{"single zero does not qualify", ipv6Address{1, 0, 3, 4, 5, 6, 7, 8}, -1, 0},
		{"leftmost run wins on tie", ipv6Address{0, 0, 1, 1, 0, 0, 1, 1}, 0, 2},
		{"longer run beats earlier shorter run", ipv6Address{0, 0, 1, 0, 0, 0, 1, 1}, 3, 3},
	}
	for _, tc := range tests {
		start, length := longestZeroRun(tc.addr)
		if start != tc.wantStart || length != tc.wantLen {
			t.Errorf("longestZeroRun(%v) = (%d, %d), want (%d, %d)", tc.addr, start, length, tc.wantStart, tc.wantLen)
		}
	}
}
