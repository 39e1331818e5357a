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

// Package wurl implements the WHATWG URL parsing and serialization
// algorithm: a byte-driven state machine that turns a (possibly relative)
// input string, together with an optional base URL, into a structured
// URL record whose components are canonicalized and can be serialized
// back to a bit-exact string.
//
// The entry points are Parse and BasicParse. Parse covers the common
// case — parse a string, optionally against a base URL — and returns a
// *URL convenience wrapper. BasicParse is the lower-level primitive
// that returns the raw Record and can start from an existing record; it
// takes no state override. The URL setters (SetHost, SetPort, ...)
// re-parse a single component through the package's internal parser,
// which does accept a state override.
//
// All character classification is ASCII-only; there is no locale
// dependence anywhere in this package.
package wurl
