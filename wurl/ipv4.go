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

import (
	"strconv"
	"strings"
)

// ipv4Address is a parsed IPv4 host, stored as a single 32-bit value in
// network byte order (most significant octet first).
type ipv4Address uint32

// String renders addr as four dotted decimals with no leading zeros,
// per spec.md §4.2.
func (addr ipv4Address) String() string {
	var b strings.Builder
	b.Grow(15)
	for shift := 24; ; shift -= 8 {
		b.WriteString(strconv.Itoa(int((addr >> uint(shift)) & 0xFF)))
		if shift == 0 {
			break
		}
		b.WriteByte('.')
	}
	return b.String()
}

// parseIPv4Number parses one dot-separated part of a candidate IPv4
// address using the WHATWG radix-detection rule: "0x"/"0X" prefix means
// base 16, a single leading "0" means base 8, otherwise base 10. An
// empty part (after stripping a radix prefix) is zero. ok is false if
// the remainder contains a non-digit for the selected radix.
func parseIPv4Number(part string) (value uint64, ok bool) {
	radix := 10
	switch {
	case len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X'):
		part = part[2:]
		radix = 16
	case len(part) >= 2 && part[0] == '0':
		part = part[1:]
		radix = 8
	}
	if part == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(part, radix, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseIPv4 attempts to parse input as a WHATWG IPv4 address. ok is
// false if input cannot be parsed as IPv4 at all (the caller should
// then fall back to treating input as an opaque domain string); failed
// is true if input looked like an IPv4 address but was out of range,
// which is a hard parse failure (spec.md §4.2).
func parseIPv4(input string) (addr ipv4Address, ok bool, failed bool) {
	parts := strings.Split(input, ".")

	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	if len(parts) > 4 {
		return 0, false, false
	}

	numbers := make([]uint64, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return 0, false, false
		}
		n, valid := parseIPv4Number(part)
		if !valid {
			return 0, false, false
		}
		numbers = append(numbers, n)
	}

	for i := 0; i < len(numbers)-1; i++ {
		if numbers[i] > 255 {
			return 0, false, true
		}
	}

	last := numbers[len(numbers)-1]
	maxLast := uint64(1) << uint(8*(5-len(numbers)))
	if last >= maxLast {
		return 0, false, true
	}

	value := last
	for i := 0; i < len(numbers)-1; i++ {
		shift := uint(8 * (3 - i))
		value += numbers[i] << shift
	}

	return ipv4Address(value), true, false
}
