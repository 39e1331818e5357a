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
	"errors"
	"fmt"
)

// ErrorCode is one of the stable, ordinal error categories from
// spec.md §6. Every fatal parse failure maps to exactly one of these.
type ErrorCode int

// The eleven ordinals from spec.md §6, in the order the spec lists
// them. Values are part of the package's stability contract: do not
// reorder.
const (
	ErrInvalidSyntax ErrorCode = iota
	ErrInvalidScheme
	ErrInvalidUserInfo
	ErrInvalidHost
	ErrInvalidPort
	ErrInvalidPath
	ErrInvalidQuery
	ErrInvalidFragment
	ErrNotEnoughInput
	ErrNonHexInput
	ErrConversionFailed
)

// String renders the error code's name, mirroring the message table
// the original source keeps in its url_parse_errc category
// (src/core/url_error.cpp).
func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidSyntax:
		return "invalid_syntax"
	case ErrInvalidScheme:
		return "invalid_scheme"
	case ErrInvalidUserInfo:
		return "invalid_user_info"
	case ErrInvalidHost:
		return "invalid_host"
	case ErrInvalidPort:
		return "invalid_port"
	case ErrInvalidPath:
		return "invalid_path"
	case ErrInvalidQuery:
		return "invalid_query"
	case ErrInvalidFragment:
		return "invalid_fragment"
	case ErrNotEnoughInput:
		return "not_enough_input"
	case ErrNonHexInput:
		return "non_hex_input"
	case ErrConversionFailed:
		return "conversion_failed"
	default:
		return "unknown_error"
	}
}

// ParseError is the error type returned by every fatal parse failure
// in this package. It carries the stable ErrorCode plus, where
// available, the input that triggered it and a wrapped underlying
// cause, mirroring the teacher's *ParseError/kindError pair
// (iri/errors.go, iri/iri.go).
type ParseError struct {
	Code  ErrorCode
	Input string
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("wurl: parse %q: %s: %s", e.Input, e.Code, e.errMessage())
	}
	return fmt.Sprintf("wurl: %s: %s", e.Code, e.errMessage())
}

func (e *ParseError) errMessage() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code.String()
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Sentinel causes wrapped by ParseError.Err. These describe *why* a
// given ErrorCode fired; the ErrorCode itself is what callers should
// switch on, per spec.md §6.
var (
	errNoScheme                        = errors.New("no scheme found in an absolute URL")
	errFileSchemeRequiresHost          = errors.New("a file URL being given a new scheme must already have a non-empty host")
	errForbiddenHostCodePoint          = errors.New("forbidden host code point")
	errUnterminatedIPv6                = errors.New("unterminated IPv6 address, missing closing ']'")
	errInvalidIPv6Address              = errors.New("invalid IPv6 address")
	errInvalidIPv4Address              = errors.New("invalid IPv4 address")
	errEmptyHostBuffer                 = errors.New("empty host where one is required")
	errPortOutOfRange                  = errors.New("port out of range")
	errSchemeMismatch                  = errors.New("scheme mismatch during state override")
	errFileCannotHaveCredentialsOrPort = errors.New("file URLs cannot have credentials or a port")
	errNotAbsoluteWithFragment         = errors.New("a cannot-be-a-base URL can only be re-based with a fragment")
	errInvalidPortSyntax               = errors.New("port must be all ASCII digits")
	errCannotBeABaseURLHasNoHost       = errors.New("a cannot-be-a-base URL has no host to set")
)
