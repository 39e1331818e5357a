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

// hostKind tags which representation a Host value holds.
type hostKind int

const (
	hostKindDomain hostKind = iota
	hostKindIPv4
	hostKindIPv6
	hostKindOpaque
	hostKindEmpty
)

// Host is a parsed host component. The zero value is not a valid Host;
// construct one via the host parser or use a nil *Host to mean "no
// host at all" (as opposed to hostKindEmpty, the present-but-empty
// case used by, e.g., file URLs).
type Host struct {
	kind   hostKind
	domain string
	ipv4   ipv4Address
	ipv6   ipv6Address
	opaque string
}

// String renders the host in its canonical textual form, per spec.md
// §3: IPv6 hosts are bracketed, everything else is not.
func (h *Host) String() string {
	if h == nil {
		return ""
	}
	switch h.kind {
	case hostKindDomain:
		return h.domain
	case hostKindIPv4:
		return h.ipv4.String()
	case hostKindIPv6:
		return "[" + h.ipv6.String() + "]"
	case hostKindOpaque:
		return h.opaque
	case hostKindEmpty:
		return ""
	default:
		return ""
	}
}

// IsEmpty reports whether h is the present-but-empty host (the empty
// string case distinguished from a nil *Host in spec.md §3).
func (h *Host) IsEmpty() bool {
	return h != nil && h.kind == hostKindEmpty && h.domain == "" && h.opaque == ""
}

// DomainToASCII is the pluggable "ToASCII" slot spec.md §6 calls out:
// turn a percent-decoded, lowercased host string into its ASCII/DNS
// form. The zero value of the parser uses asciiLowerToASCII, which
// just lowercases (the spec's explicit fallback); IDNAToASCII is
// provided for callers that want full UTS#46 handling.
type DomainToASCII func(input string) (string, error)

// asciiLowerToASCII is the default ToASCII implementation: plain ASCII
// lowercasing, with no IDNA processing. The host parser already
// lowercases ASCII letters before calling this, so in practice this is
// a pass-through; it exists as a named function so ParseOptions always
// has a concrete, non-nil default.
func asciiLowerToASCII(input string) (string, error) {
	lowered := []byte(input)
	for i, b := range lowered {
		lowered[i] = toASCIILower(b)
	}
	return string(lowered), nil
}

// parseOpaqueHost implements spec.md §4.4 step 2: reject any byte in
// the forbidden-host set and percent-encode everything else with the
// C0-control escape set.
func parseOpaqueHost(input string) (*Host, error) {
	for i := 0; i < len(input); i++ {
		if isForbiddenHostCodePoint(input[i]) {
			return nil, &ParseError{Code: ErrInvalidHost, Err: errForbiddenHostCodePoint}
		}
	}
	return &Host{kind: hostKindOpaque, opaque: pctEncodeString(input, c0ControlEscapeSet)}, nil
}

// parseHost implements spec.md §4.4 in full: bracketed IPv6 literal,
// opaque host for non-special schemes, or percent-decode + ToASCII +
// forbidden-codepoint check + IPv4 fallback for everything else.
func parseHost(input string, isNotSpecial bool, toASCII DomainToASCII) (*Host, error) {
	if input == "" {
		return &Host{kind: hostKindEmpty}, nil
	}

	if input[0] == '[' {
		if input[len(input)-1] != ']' {
			return nil, &ParseError{Code: ErrInvalidHost, Err: errUnterminatedIPv6}
		}
		addr, ok := parseIPv6(input[1 : len(input)-1])
		if !ok {
			return nil, &ParseError{Code: ErrInvalidHost, Err: errInvalidIPv6Address}
		}
		return &Host{kind: hostKindIPv6, ipv6: addr}, nil
	}

	if isNotSpecial {
		return parseOpaqueHost(input)
	}

	decoded, _ := pctDecode(input)

	lowered := make([]byte, len(decoded))
	for i, b := range decoded {
		lowered[i] = toASCIILower(b)
	}
	domain := string(lowered)

	if toASCII == nil {
		toASCII = asciiLowerToASCII
	}
	asciiDomain, err := toASCII(domain)
	if err != nil {
		return nil, &ParseError{Code: ErrInvalidHost, Err: err}
	}

	for i := 0; i < len(asciiDomain); i++ {
		if isForbiddenDomainCodePoint(asciiDomain[i]) {
			return nil, &ParseError{Code: ErrInvalidHost, Err: errForbiddenHostCodePoint}
		}
	}

	addr, isIPv4, ipv4Failed := parseIPv4(asciiDomain)
	if ipv4Failed {
		return nil, &ParseError{Code: ErrInvalidHost, Err: errInvalidIPv4Address}
	}
	if isIPv4 {
		return &Host{kind: hostKindIPv4, ipv4: addr}, nil
	}

	return &Host{kind: hostKindDomain, domain: asciiDomain}, nil
}
