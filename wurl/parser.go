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

// parserState is the C7 driver's tagged-variant state, per spec.md §9's
// dispatch guidance: a single switch in the driver rather than a map of
// callables.
type parserState int

const (
	stateSchemeStart parserState = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateCannotBeABaseURLPath
	stateQuery
	stateFragment
)

// parseAction is a state handler's verdict, per spec.md §4.6.2.
type parseAction int

const (
	actionIncrement parseAction = iota
	actionContinue
	actionSuccess
	actionFail
)

// isEOF reports whether c is the synthetic EOF sentinel rather than a
// real input byte.
func isEOF(c int32) bool { return c == eof }

// parser holds the C7 driver's mutable state across one basicParse
// call: the sanitized input, the in-progress record, the base record
// it may inherit from, and the flags §4.6.2 lists.
type parser struct {
	input         *parserInput
	url           *Record
	base          *Record
	stateOverride *parserState
	toASCII       DomainToASCII

	state  parserState
	buffer accumBuffer

	atFlag                bool
	squareBracesFlag      bool
	passwordTokenSeenFlag bool
	validationError       bool
}

// basicParse is the C7 entry point: spec.md §6's
// `basic_parse(input, base?, url?, state_override?) → record | error`.
// It sanitizes input, then drives the state machine to completion.
func basicParse(input string, base *Record, url *Record, stateOverride *parserState, toASCII DomainToASCII) (*Record, error) {
	p := &parser{base: base, stateOverride: stateOverride, toASCII: toASCII}

	if url != nil {
		p.url = url.clone()
	} else {
		p.url = &Record{}
	}

	sanitized, sanitizeErr := newParserInput(input)
	p.input = sanitized
	p.validationError = sanitizeErr

	if stateOverride != nil {
		p.state = *stateOverride
	} else {
		p.state = stateSchemeStart
	}

	for {
		var c int32
		if p.input.atEOF() {
			c = eof
		} else {
			c = p.input.current()
		}

		action, err := p.dispatch(c)
		if err != nil {
			return nil, err
		}

		switch action {
		case actionSuccess:
			p.url.ValidationError = p.validationError
			return p.url, nil
		case actionContinue:
			continue
		}

		// action == actionIncrement: advance unless already at EOF, in
		// which case this step was the last one and parsing is done.
		if p.input.atEOF() {
			break
		}
		p.input.increment()
	}

	p.url.ValidationError = p.validationError
	return p.url, nil
}

func (p *parser) dispatch(c int32) (parseAction, error) {
	switch p.state {
	case stateSchemeStart:
		return p.parseSchemeStart(c)
	case stateScheme:
		return p.parseScheme(c)
	case stateNoScheme:
		return p.parseNoScheme(c)
	case stateSpecialRelativeOrAuthority:
		return p.parseSpecialRelativeOrAuthority(c)
	case statePathOrAuthority:
		return p.parsePathOrAuthority(c)
	case stateRelative:
		return p.parseRelative(c)
	case stateRelativeSlash:
		return p.parseRelativeSlash(c)
	case stateSpecialAuthoritySlashes:
		return p.parseSpecialAuthoritySlashes(c)
	case stateSpecialAuthorityIgnoreSlashes:
		return p.parseSpecialAuthorityIgnoreSlashes(c)
	case stateAuthority:
		return p.parseAuthority(c)
	case stateHost, stateHostname:
		return p.parseHostOrHostname(c)
	case statePort:
		return p.parsePort(c)
	case stateFile:
		return p.parseFile(c)
	case stateFileSlash:
		return p.parseFileSlash(c)
	case stateFileHost:
		return p.parseFileHost(c)
	case statePathStart:
		return p.parsePathStart(c)
	case statePath:
		return p.parsePath(c)
	case stateCannotBeABaseURLPath:
		return p.parseCannotBeABaseURLPath(c)
	case stateQuery:
		return p.parseQuery(c)
	case stateFragment:
		return p.parseFragment(c)
	default:
		panic("wurl: unreachable parser state")
	}
}

func (p *parser) parseSchemeStart(c int32) (parseAction, error) {
	if !isEOF(c) && isASCIIAlpha(byte(c)) {
		p.buffer.WriteByte(toASCIILower(byte(c)))
		p.state = stateScheme
		return actionIncrement, nil
	}
	if p.stateOverride == nil {
		p.state = stateNoScheme
		p.input.reset()
		return actionContinue, nil
	}
	p.validationError = true
	return actionFail, &ParseError{Code: ErrInvalidScheme, Err: errNoScheme}
}

func (p *parser) parseScheme(c int32) (parseAction, error) {
	if !isEOF(c) && (isASCIIAlphanumeric(byte(c)) || c == '+' || c == '-' || c == '.') {
		p.buffer.WriteByte(toASCIILower(byte(c)))
		return actionIncrement, nil
	}

	if c == ':' {
		scheme := p.buffer.String()

		if p.stateOverride != nil {
			if p.url.IsSpecial() && !isSpecial(scheme) {
				return actionFail, &ParseError{Code: ErrInvalidScheme, Err: errSchemeMismatch}
			}
			if !p.url.IsSpecial() && isSpecial(scheme) {
				return actionFail, &ParseError{Code: ErrInvalidScheme, Err: errSchemeMismatch}
			}
			if (p.url.IncludesCredentials() || p.url.Port != nil) && scheme == "file" {
				return actionFail, &ParseError{Code: ErrInvalidScheme, Err: errFileCannotHaveCredentialsOrPort}
			}
			if p.url.Scheme == "file" && (p.url.Host == nil || p.url.Host.IsEmpty()) {
				return actionFail, &ParseError{Code: ErrInvalidScheme, Err: errFileSchemeRequiresHost}
			}
		}

		p.url.Scheme = scheme
		p.buffer.Reset()

		if p.stateOverride != nil {
			if p.url.Port != nil && isDefaultPort(p.url.Scheme, *p.url.Port) {
				p.url.Port = nil
			}
			return actionSuccess, nil
		}

		switch {
		case p.url.Scheme == "file":
			if p.input.peekAt(1) != '/' || p.input.peekAt(2) != '/' {
				p.validationError = true
			}
			p.state = stateFile
		case p.url.IsSpecial() && p.base != nil && p.base.Scheme == p.url.Scheme:
			p.state = stateSpecialRelativeOrAuthority
		case p.url.IsSpecial():
			p.state = stateSpecialAuthoritySlashes
		case p.input.peekAt(1) == '/':
			p.state = statePathOrAuthority
			p.input.increment()
		default:
			p.url.CannotBeABaseURL = true
			p.url.Path = append(p.url.Path, "")
			p.state = stateCannotBeABaseURLPath
		}
		return actionIncrement, nil
	}

	if p.stateOverride == nil {
		p.buffer.Reset()
		p.state = stateNoScheme
		p.input.reset()
		return actionContinue, nil
	}

	// state_override set, byte neither a valid scheme character nor
	// ':': nothing to do but keep stepping (matches the grounding
	// source's url_parser_context::parse_scheme exactly).
	return actionIncrement, nil
}

func (p *parser) parseNoScheme(c int32) (parseAction, error) {
	if p.base == nil {
		p.validationError = true
		return actionFail, &ParseError{Code: ErrInvalidSyntax, Err: errNoScheme}
	}
	if p.base.CannotBeABaseURL && c != '#' {
		p.validationError = true
		return actionFail, &ParseError{Code: ErrInvalidSyntax, Err: errNotAbsoluteWithFragment}
	}

	if p.base.CannotBeABaseURL && c == '#' {
		p.url.Scheme = p.base.Scheme
		p.url.Path = append([]string(nil), p.base.Path...)
		p.url.Query = cloneStringPtr(p.base.Query)
		empty := ""
		p.url.Fragment = &empty
		p.url.CannotBeABaseURL = true
		p.state = stateFragment
		return actionIncrement, nil
	}

	if p.base.Scheme != "file" {
		p.state = stateRelative
	} else {
		p.state = stateFile
	}
	p.input.reset()
	return actionContinue, nil
}

func (p *parser) parseSpecialRelativeOrAuthority(c int32) (parseAction, error) {
	if c == '/' && p.input.peekAt(1) == '/' {
		p.input.increment()
		p.state = stateSpecialAuthorityIgnoreSlashes
	} else {
		p.validationError = true
		p.input.decrement()
		p.state = stateRelative
	}
	return actionIncrement, nil
}

func (p *parser) parsePathOrAuthority(c int32) (parseAction, error) {
	if c == '/' {
		p.state = stateAuthority
	} else {
		p.state = statePath
		p.input.decrement()
	}
	return actionIncrement, nil
}

func (p *parser) parseRelative(c int32) (parseAction, error) {
	p.url.Scheme = p.base.Scheme

	switch {
	case isEOF(c):
		p.url.Username = p.base.Username
		p.url.Password = p.base.Password
		p.url.Host = cloneHostPtr(p.base.Host)
		p.url.Port = clonePortPtr(p.base.Port)
		p.url.Path = append([]string(nil), p.base.Path...)
		p.url.Query = cloneStringPtr(p.base.Query)
	case c == '/':
		p.state = stateRelativeSlash
	case c == '?':
		p.url.Username = p.base.Username
		p.url.Password = p.base.Password
		p.url.Host = cloneHostPtr(p.base.Host)
		p.url.Port = clonePortPtr(p.base.Port)
		p.url.Path = append([]string(nil), p.base.Path...)
		empty := ""
		p.url.Query = &empty
		p.state = stateQuery
	case c == '#':
		p.url.Username = p.base.Username
		p.url.Password = p.base.Password
		p.url.Host = cloneHostPtr(p.base.Host)
		p.url.Port = clonePortPtr(p.base.Port)
		p.url.Path = append([]string(nil), p.base.Path...)
		p.url.Query = cloneStringPtr(p.base.Query)
		empty := ""
		p.url.Fragment = &empty
		p.state = stateFragment
	case p.url.IsSpecial() && c == '\\':
		p.validationError = true
		p.state = stateRelativeSlash
	default:
		p.url.Username = p.base.Username
		p.url.Password = p.base.Password
		p.url.Host = cloneHostPtr(p.base.Host)
		p.url.Port = clonePortPtr(p.base.Port)
		p.url.Path = append([]string(nil), p.base.Path...)
		if len(p.url.Path) > 0 {
			p.url.Path = p.url.Path[:len(p.url.Path)-1]
		}
		p.state = statePath
		p.input.decrement()
	}

	return actionIncrement, nil
}

func (p *parser) parseRelativeSlash(c int32) (parseAction, error) {
	switch {
	case p.url.IsSpecial() && (c == '/' || c == '\\'):
		if c == '\\' {
			p.validationError = true
		}
		p.state = stateSpecialAuthorityIgnoreSlashes
	case c == '/':
		p.state = stateAuthority
	default:
		p.url.Username = p.base.Username
		p.url.Password = p.base.Password
		p.url.Host = cloneHostPtr(p.base.Host)
		p.url.Port = clonePortPtr(p.base.Port)
		p.state = statePath
		p.input.decrement()
	}
	return actionIncrement, nil
}

func (p *parser) parseSpecialAuthoritySlashes(c int32) (parseAction, error) {
	if c == '/' && p.input.peekAt(1) == '/' {
		p.input.increment()
		p.state = stateSpecialAuthorityIgnoreSlashes
	} else {
		p.validationError = true
		p.input.decrement()
		p.state = stateSpecialAuthorityIgnoreSlashes
	}
	return actionIncrement, nil
}

func (p *parser) parseSpecialAuthorityIgnoreSlashes(c int32) (parseAction, error) {
	if c != '/' && c != '\\' {
		p.input.decrement()
		p.state = stateAuthority
	} else {
		p.validationError = true
	}
	return actionIncrement, nil
}

func (p *parser) parseAuthority(c int32) (parseAction, error) {
	if c == '@' {
		p.validationError = true
		if p.atFlag {
			p.buffer.PrependString("%40")
		}
		p.atFlag = true

		raw := p.buffer.String()
		for i := 0; i < len(raw); i++ {
			ch := raw[i]
			if ch == ':' && !p.passwordTokenSeenFlag {
				p.passwordTokenSeenFlag = true
				continue
			}
			var b strings.Builder
			pctEncodeByte(&b, ch, userinfoEscapeSet)
			if p.passwordTokenSeenFlag {
				p.url.Password += b.String()
			} else {
				p.url.Username += b.String()
			}
		}
		p.buffer.Reset()
		return actionIncrement, nil
	}

	if isEOF(c) || c == '/' || c == '?' || c == '#' || (p.url.IsSpecial() && c == '\\') {
		if p.atFlag && p.buffer.Len() == 0 {
			p.validationError = true
			return actionFail, &ParseError{Code: ErrInvalidUserInfo, Err: errEmptyHostBuffer}
		}
		// Decrease the pointer by the buffer length plus one; the
		// driver's own post-step increment then lands it exactly at
		// the first byte of the host the buffer just accumulated.
		p.input.rewindBy(p.buffer.Len() + 1)
		p.state = stateHost
		p.buffer.Reset()
		return actionIncrement, nil
	}

	p.buffer.WriteByte(byte(c))
	return actionIncrement, nil
}

func (p *parser) parseHostOrHostname(c int32) (parseAction, error) {
	if p.stateOverride != nil && p.url.Scheme == "file" {
		p.input.decrement()
		p.state = stateFileHost
		return actionIncrement, nil
	}

	if c == ':' && !p.squareBracesFlag {
		if p.buffer.Len() == 0 {
			p.validationError = true
			return actionFail, &ParseError{Code: ErrInvalidHost, Err: errEmptyHostBuffer}
		}

		host, err := parseHost(p.buffer.String(), !p.url.IsSpecial(), p.toASCII)
		if err != nil {
			return actionFail, err
		}
		p.url.Host = host
		p.buffer.Reset()
		p.state = statePort

		if p.stateOverride != nil && *p.stateOverride == stateHostname {
			return actionSuccess, nil
		}
		return actionIncrement, nil
	}

	if isEOF(c) || c == '/' || c == '?' || c == '#' || (p.url.IsSpecial() && c == '\\') {
		p.input.decrement()

		if p.url.IsSpecial() && p.buffer.Len() == 0 {
			p.validationError = true
			return actionFail, &ParseError{Code: ErrInvalidHost, Err: errEmptyHostBuffer}
		}

		host, err := parseHost(p.buffer.String(), !p.url.IsSpecial(), p.toASCII)
		if err != nil {
			return actionFail, err
		}
		p.url.Host = host
		p.buffer.Reset()

		if p.stateOverride != nil {
			return actionSuccess, nil
		}
		p.state = statePathStart
		return actionIncrement, nil
	}

	if c == '[' {
		p.squareBracesFlag = true
	} else if c == ']' {
		p.squareBracesFlag = false
	}
	p.buffer.WriteByte(byte(c))
	return actionIncrement, nil
}

func (p *parser) parsePort(c int32) (parseAction, error) {
	if !isEOF(c) && isASCIIDigit(byte(c)) {
		p.buffer.WriteByte(byte(c))
		return actionIncrement, nil
	}

	if isEOF(c) || c == '/' || c == '?' || c == '#' ||
		(p.url.IsSpecial() && c == '\\') || p.stateOverride != nil {

		if p.buffer.Len() > 0 {
			portNum, ok := parsePortNumber(p.buffer.String())
			if !ok {
				p.validationError = true
				return actionFail, &ParseError{Code: ErrInvalidPort, Err: errPortOutOfRange}
			}
			if isDefaultPort(p.url.Scheme, portNum) {
				p.url.Port = nil
			} else {
				p.url.Port = &portNum
			}
			p.buffer.Reset()
		}

		if p.stateOverride != nil {
			return actionSuccess, nil
		}

		p.input.decrement()
		p.state = statePathStart
		return actionIncrement, nil
	}

	p.validationError = true
	return actionFail, &ParseError{Code: ErrInvalidPort, Err: errInvalidPortSyntax}
}

// parsePortNumber parses a buffer known to contain only ASCII digits
// and reports whether it fits in a 16-bit port.
func parsePortNumber(s string) (uint16, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v >= 1<<16 {
		return 0, false
	}
	return uint16(v), true
}

func (p *parser) parseFile(c int32) (parseAction, error) {
	p.url.Scheme = "file"

	switch {
	case c == '/' || c == '\\':
		if c == '\\' {
			p.validationError = true
		}
		p.state = stateFileSlash
	case p.base != nil && p.base.Scheme == "file":
		switch {
		case isEOF(c):
			p.url.Host = cloneHostPtr(p.base.Host)
			p.url.Path = append([]string(nil), p.base.Path...)
			p.url.Query = cloneStringPtr(p.base.Query)
		case c == '?':
			p.url.Host = cloneHostPtr(p.base.Host)
			p.url.Path = append([]string(nil), p.base.Path...)
			empty := ""
			p.url.Query = &empty
			p.state = stateQuery
		case c == '#':
			p.url.Host = cloneHostPtr(p.base.Host)
			p.url.Path = append([]string(nil), p.base.Path...)
			p.url.Query = cloneStringPtr(p.base.Query)
			empty := ""
			p.url.Fragment = &empty
			p.state = stateFragment
		default:
			if !p.windowsDriveLetterAhead(c) {
				p.url.Host = cloneHostPtr(p.base.Host)
				p.url.Path = append([]string(nil), p.base.Path...)
				shortenPath(p.url.Scheme, &p.url.Path)
			} else {
				p.validationError = true
			}
			p.input.decrement()
			p.state = statePath
		}
	default:
		p.input.decrement()
		p.state = statePath
	}

	return actionIncrement, nil
}

// windowsDriveLetterAhead reports whether c (the current byte) and the
// one immediately following it form a Windows drive letter.
func (p *parser) windowsDriveLetterAhead(c int32) bool {
	if isEOF(c) || !isASCIIAlpha(byte(c)) {
		return false
	}
	next := p.input.peekAt(1)
	return next == ':' || next == '|'
}

func (p *parser) parseFileSlash(c int32) (parseAction, error) {
	if c == '/' || c == '\\' {
		if c == '\\' {
			p.validationError = true
		}
		p.state = stateFileHost
		return actionIncrement, nil
	}

	if p.base != nil && p.base.Scheme == "file" && !p.windowsDriveLetterAhead(c) {
		if len(p.base.Path) > 0 && isWindowsDriveLetter(p.base.Path[0]) {
			p.url.Path = append(p.url.Path, p.base.Path[0])
		} else {
			p.url.Host = cloneHostPtr(p.base.Host)
		}
	}

	p.state = statePath
	p.input.decrement()
	return actionIncrement, nil
}

func (p *parser) parseFileHost(c int32) (parseAction, error) {
	if isEOF(c) || c == '/' || c == '\\' || c == '?' || c == '#' {
		p.input.decrement()

		switch {
		case p.stateOverride == nil && isWindowsDriveLetter(p.buffer.String()):
			p.validationError = true
			p.state = statePath
		case p.buffer.Len() == 0:
			p.url.Host = &Host{kind: hostKindEmpty}
			if p.stateOverride != nil {
				return actionSuccess, nil
			}
			p.state = statePathStart
		default:
			host, err := parseHost(p.buffer.String(), !p.url.IsSpecial(), p.toASCII)
			if err != nil {
				return actionFail, err
			}
			if host.kind == hostKindDomain && host.domain == "localhost" {
				host.kind = hostKindEmpty
				host.domain = ""
			}
			p.url.Host = host

			if p.stateOverride != nil {
				return actionSuccess, nil
			}
			p.buffer.Reset()
			p.state = statePathStart
		}
		return actionIncrement, nil
	}

	p.buffer.WriteByte(byte(c))
	return actionIncrement, nil
}

func (p *parser) parsePathStart(c int32) (parseAction, error) {
	switch {
	case p.url.IsSpecial():
		if c == '\\' {
			p.validationError = true
		}
		p.state = statePath
		if c != '/' && c != '\\' {
			p.input.decrement()
		}
	case p.stateOverride == nil && c == '?':
		empty := ""
		p.url.Query = &empty
		p.state = stateQuery
	case p.stateOverride == nil && c == '#':
		empty := ""
		p.url.Fragment = &empty
		p.state = stateFragment
	case !isEOF(c):
		p.state = statePath
		if c != '/' {
			p.input.decrement()
		}
	}
	return actionIncrement, nil
}

func (p *parser) parsePath(c int32) (parseAction, error) {
	if isEOF(c) || c == '/' || (p.url.IsSpecial() && c == '\\') ||
		(p.stateOverride == nil && (c == '?' || c == '#')) {

		if p.url.IsSpecial() && c == '\\' {
			p.validationError = true
		}

		seg := p.buffer.String()
		endsSegment := c == '/' || (p.url.IsSpecial() && c == '\\')

		switch {
		case isDoubleDotPathSegment(seg):
			shortenPath(p.url.Scheme, &p.url.Path)
			if !endsSegment {
				p.url.Path = append(p.url.Path, "")
			}
		case isSingleDotPathSegment(seg) && !endsSegment:
			p.url.Path = append(p.url.Path, "")
		case !isSingleDotPathSegment(seg):
			if p.url.Scheme == "file" && len(p.url.Path) == 0 && isWindowsDriveLetter(seg) {
				if p.url.Host == nil || !p.url.Host.IsEmpty() {
					p.validationError = true
					p.url.Host = &Host{kind: hostKindEmpty}
				}
				seg = seg[:1] + ":" + seg[2:]
			}
			p.url.Path = append(p.url.Path, seg)
		}
		p.buffer.Reset()

		if p.url.Scheme == "file" && (isEOF(c) || c == '?' || c == '#') {
			for len(p.url.Path) > 1 && p.url.Path[0] == "" {
				p.validationError = true
				p.url.Path = p.url.Path[1:]
			}
		}

		if c == '?' {
			empty := ""
			p.url.Query = &empty
			p.state = stateQuery
		}
		if c == '#' {
			empty := ""
			p.url.Fragment = &empty
			p.state = stateFragment
		}
		return actionIncrement, nil
	}

	var b strings.Builder
	pctEncodeByte(&b, byte(c), pathEscapeSet)
	p.buffer.WriteString(b.String())
	return actionIncrement, nil
}

// shortenPath implements spec.md §4.6.3's shorten_path helper.
func shortenPath(scheme string, path *[]string) {
	if len(*path) == 0 {
		return
	}
	if scheme == "file" && len(*path) == 1 && isWindowsDriveLetter((*path)[0]) {
		return
	}
	*path = (*path)[:len(*path)-1]
}

func (p *parser) parseCannotBeABaseURLPath(c int32) (parseAction, error) {
	switch c {
	case '?':
		empty := ""
		p.url.Query = &empty
		p.state = stateQuery
	case '#':
		empty := ""
		p.url.Fragment = &empty
		p.state = stateFragment
	default:
		if !isEOF(c) && !isURLCodePoint(rune(c)) && c != '%' {
			p.validationError = true
		} else if c == '%' && !isPctEncodedAt(p.input.remainder(), 0) {
			p.validationError = true
		}
		if !isEOF(c) {
			var b strings.Builder
			pctEncodeByte(&b, byte(c), c0ControlEscapeSet)
			p.url.Path[0] += b.String()
		}
	}
	return actionIncrement, nil
}

func (p *parser) parseQuery(c int32) (parseAction, error) {
	if p.stateOverride == nil && c == '#' {
		empty := ""
		p.url.Fragment = &empty
		p.state = stateFragment
		return actionIncrement, nil
	}
	if !isEOF(c) {
		var b strings.Builder
		pctEncodeByte(&b, byte(c), queryEscapeSet)
		*p.url.Query += b.String()
	}
	return actionIncrement, nil
}

func (p *parser) parseFragment(c int32) (parseAction, error) {
	if c == 0x00 {
		p.validationError = true
		return actionIncrement, nil
	}
	if !isEOF(c) {
		var b strings.Builder
		pctEncodeByte(&b, byte(c), c0ControlEscapeSet)
		*p.url.Fragment += b.String()
	}
	return actionIncrement, nil
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneHostPtr(h *Host) *Host {
	if h == nil {
		return nil
	}
	v := *h
	return &v
}

func clonePortPtr(p *uint16) *uint16 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
