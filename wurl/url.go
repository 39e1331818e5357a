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

// URL is the public convenience wrapper around a Record: the "external
// collaborator" spec.md §1 calls out as out of the core's scope, named
// here only for its contract. It is supplemental to the core parser
// (SPEC_FULL's DOMAIN STACK / SUPPLEMENTAL FEATURES section), built the
// same way the teacher wraps its internal parse result in a public
// type (iri.Ref/iri.Iri, iri/iri.go) with accessor methods that report
// presence alongside value where a component can be absent.
type URL struct {
	record *Record
}

// ParseOptions configures a Parse call. The zero value uses the
// default ASCII-lowercase ToASCII.
type ParseOptions struct {
	// ToASCII overrides the host parser's domain-to-ASCII step. Pass
	// IDNAToASCII for full UTS#46 handling.
	ToASCII DomainToASCII
}

// Parse parses input against an optional base URL, per spec.md §6's
// primary entry point. base may be nil for an absolute parse.
func Parse(input string, base *URL) (*URL, error) {
	return ParseWithOptions(input, base, nil)
}

// ParseWithOptions is Parse with a pluggable DomainToASCII.
func ParseWithOptions(input string, base *URL, opts *ParseOptions) (*URL, error) {
	var baseRecord *Record
	if base != nil {
		baseRecord = base.record
	}
	var toASCII DomainToASCII
	if opts != nil {
		toASCII = opts.ToASCII
	}

	record, err := basicParse(input, baseRecord, nil, nil, toASCII)
	if err != nil {
		return nil, err
	}
	return &URL{record: record}, nil
}

// BasicParse is the lower-level primitive: it parses input against an
// optional base record, starting from a copy of url when url is
// non-nil, and returns the raw Record. It takes no state override, so
// parsing always begins at the scheme-start state and it does not
// re-parse a single component; the URL setters do that through the
// package's internal parser. Most callers want Parse.
func BasicParse(input string, base, url *Record) (*Record, error) {
	return basicParse(input, base, url, nil, nil)
}

// Record returns the URL's underlying parsed record.
func (u *URL) Record() *Record {
	return u.record
}

// String serializes the URL back to its canonical form, per spec.md §4.5.
func (u *URL) String() string {
	return u.record.Serialize(false)
}

// Scheme returns the URL's scheme.
func (u *URL) Scheme() string {
	return u.record.Scheme
}

// Username returns the URL's username component.
func (u *URL) Username() string {
	return u.record.Username
}

// Password returns the URL's password component.
func (u *URL) Password() string {
	return u.record.Password
}

// Host returns the URL's host in its canonical textual form and
// whether a host is present at all.
func (u *URL) Host() (string, bool) {
	if u.record.Host == nil {
		return "", false
	}
	return u.record.Host.String(), true
}

// Port returns the URL's port and whether one is present. A port that
// equals the scheme's default is never present (spec.md §3 invariant 4).
func (u *URL) Port() (uint16, bool) {
	if u.record.Port == nil {
		return 0, false
	}
	return *u.record.Port, true
}

// Path returns the URL's path segments joined with "/", without a
// leading slash for cannot-be-a-base URLs.
func (u *URL) Path() string {
	if u.record.CannotBeABaseURL {
		if len(u.record.Path) == 0 {
			return ""
		}
		return u.record.Path[0]
	}
	return "/" + strings.Join(u.record.Path, "/")
}

// Query returns the URL's query string (without the leading "?") and
// whether a query is present at all.
func (u *URL) Query() (string, bool) {
	if u.record.Query == nil {
		return "", false
	}
	return *u.record.Query, true
}

// Fragment returns the URL's fragment (without the leading "#") and
// whether a fragment is present at all.
func (u *URL) Fragment() (string, bool) {
	if u.record.Fragment == nil {
		return "", false
	}
	return *u.record.Fragment, true
}

// CannotBeABaseURL reports whether the URL has an opaque path.
func (u *URL) CannotBeABaseURL() bool {
	return u.record.CannotBeABaseURL
}

// ValidationError reports whether parsing recorded an advisory
// validation error. It never indicates that parsing failed.
func (u *URL) ValidationError() bool {
	return u.record.ValidationError
}

// setComponent re-parses input starting the driver at state on a clone
// of u's record, the mechanism every setter below is built on (spec.md
// GLOSSARY "state override").
func (u *URL) setComponent(input string, state parserState) error {
	rec, err := basicParse(input, nil, u.record, &state, nil)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// SetScheme re-parses scheme as the URL's scheme. Switching between a
// special and a non-special scheme, switching a URL that has
// credentials or a port to "file", or changing the scheme of a "file"
// URL whose host is empty, fails (spec.md §4.6.3 scheme-state override
// checks).
func (u *URL) SetScheme(scheme string) error {
	return u.setComponent(scheme+":", stateSchemeStart)
}

// SetUsername sets the URL's username, percent-encoded with the
// userinfo escape set. It is a no-op for cannot-be-a-base URLs, URLs
// with no host, or "file" URLs (spec.md §3 invariant 2).
func (u *URL) SetUsername(username string) {
	if u.record.CannotBeABaseURL || u.record.Host == nil || u.record.Host.IsEmpty() || u.record.Scheme == "file" {
		return
	}
	u.record.Username = pctEncodeString(username, userinfoEscapeSet)
}

// SetPassword sets the URL's password, with the same restrictions as
// SetUsername.
func (u *URL) SetPassword(password string) {
	if u.record.CannotBeABaseURL || u.record.Host == nil || u.record.Host.IsEmpty() || u.record.Scheme == "file" {
		return
	}
	u.record.Password = pctEncodeString(password, userinfoEscapeSet)
}

// SetHost re-parses host as the URL's host (and, if host contains a
// port, the port too). It fails for cannot-be-a-base URLs.
func (u *URL) SetHost(host string) error {
	if u.record.CannotBeABaseURL {
		return &ParseError{Code: ErrInvalidHost, Err: errCannotBeABaseURLHasNoHost}
	}
	return u.setComponent(host, stateHost)
}

// SetHostname is SetHost but stops before any trailing ":port" is consumed.
func (u *URL) SetHostname(hostname string) error {
	if u.record.CannotBeABaseURL {
		return &ParseError{Code: ErrInvalidHost, Err: errCannotBeABaseURLHasNoHost}
	}
	return u.setComponent(hostname, stateHostname)
}

// SetPort re-parses port as the URL's port. It is a no-op for "file"
// URLs and for URLs with no host (spec.md §3 invariant 2).
func (u *URL) SetPort(port string) error {
	if u.record.Scheme == "file" || u.record.Host == nil {
		return nil
	}
	return u.setComponent(port, statePort)
}

// SetPathname re-parses pathname as the URL's path from scratch. It is
// a no-op for cannot-be-a-base URLs.
func (u *URL) SetPathname(pathname string) error {
	if u.record.CannotBeABaseURL {
		return nil
	}
	clone := u.record.clone()
	clone.Path = nil
	state := statePathStart
	rec, err := basicParse(pathname, nil, clone, &state, nil)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// SetSearch re-parses search (without a leading "?") as the URL's
// query.
func (u *URL) SetSearch(search string) error {
	clone := u.record.clone()
	empty := ""
	clone.Query = &empty
	state := stateQuery
	input := strings.TrimPrefix(search, "?")
	rec, err := basicParse(input, nil, clone, &state, nil)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}

// SetHash re-parses hash (without a leading "#") as the URL's fragment.
func (u *URL) SetHash(hash string) error {
	clone := u.record.clone()
	empty := ""
	clone.Fragment = &empty
	state := stateFragment
	input := strings.TrimPrefix(hash, "#")
	rec, err := basicParse(input, nil, clone, &state, nil)
	if err != nil {
		return err
	}
	u.record = rec
	return nil
}
