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

// Record is the structured result of a parse: the in-memory URL value
// described in spec.md §3. It is produced only by the parser and, once
// returned, is meant to be treated as immutable — re-parsing a single
// component (as the URL setters do) always starts from a fresh copy.
type Record struct {
	Scheme   string
	Username string
	Password string

	// Host is nil when no host is present at all. A present-but-empty
	// host (e.g. "file:///path") is *Host with IsEmpty() true.
	Host *Host

	// Port is nil whenever it is absent, including when it equals the
	// scheme's default (spec.md §3 invariant 4).
	Port *uint16

	// Path is an ordered sequence of segments. For a cannot-be-a-base
	// URL it holds exactly one element: the opaque remainder.
	Path []string

	// Query and Fragment are nil when absent; a present-but-empty
	// value is a non-nil pointer to "".
	Query    *string
	Fragment *string

	CannotBeABaseURL bool
	ValidationError  bool
}

// IncludesCredentials reports whether the record carries a non-empty
// username or password, per spec.md §3.
func (r *Record) IncludesCredentials() bool {
	return r.Username != "" || r.Password != ""
}

// clone returns a deep copy of r, used whenever the driver needs to
// inherit from a base record without letting later mutation leak back
// into it (the base URL is read-only input, per spec.md §9).
func (r *Record) clone() *Record {
	c := *r
	if r.Host != nil {
		h := *r.Host
		c.Host = &h
	}
	if r.Port != nil {
		p := *r.Port
		c.Port = &p
	}
	c.Path = append([]string(nil), r.Path...)
	if r.Query != nil {
		q := *r.Query
		c.Query = &q
	}
	if r.Fragment != nil {
		f := *r.Fragment
		c.Fragment = &f
	}
	return &c
}

// IsSpecial reports whether the record's scheme is one of the six
// special schemes.
func (r *Record) IsSpecial() bool {
	return isSpecial(r.Scheme)
}

// Serialize renders r back to a canonical URL string, per spec.md §4.5.
// excludeFragment, when true, omits the "#fragment" suffix.
func (r *Record) Serialize(excludeFragment bool) string {
	var b strings.Builder
	b.WriteString(r.Scheme)
	b.WriteByte(':')

	if r.Host != nil {
		b.WriteString("//")
		if r.IncludesCredentials() {
			b.WriteString(r.Username)
			if r.Password != "" {
				b.WriteByte(':')
				b.WriteString(r.Password)
			}
			b.WriteByte('@')
		}
		b.WriteString(r.Host.String())
		if r.Port != nil {
			b.WriteByte(':')
			b.WriteString(portString(*r.Port))
		}
	} else if r.Scheme == "file" {
		b.WriteString("//")
	}

	if r.CannotBeABaseURL {
		if len(r.Path) > 0 {
			b.WriteString(r.Path[0])
		}
	} else {
		for _, seg := range r.Path {
			b.WriteByte('/')
			b.WriteString(seg)
		}
	}

	if r.Query != nil {
		b.WriteByte('?')
		b.WriteString(*r.Query)
	}

	if !excludeFragment && r.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*r.Fragment)
	}

	return b.String()
}

// Serialize renders record back to a canonical URL string, the public
// entry point for spec.md §6's `serialize(record) → string`.
func Serialize(record *Record) string {
	return record.Serialize(false)
}

func portString(p uint16) string {
	return strconv.Itoa(int(p))
}
