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

// accumBuffer is the single reusable lexeme buffer the C7 driver
// accumulates into across states (spec.md §9 "Buffer"). It is cleared
// at the boundaries §4.6.3 lists. The one operation beyond a plain
// strings.Builder it needs is PrependString, used exactly once: the
// authority state's "%40" prefix when a second '@' is seen.
type accumBuffer struct {
	b strings.Builder
}

func (a *accumBuffer) WriteByte(c byte) error { return a.b.WriteByte(c) }
func (a *accumBuffer) WriteString(s string) { a.b.WriteString(s) }
func (a *accumBuffer) String() string       { return a.b.String() }
func (a *accumBuffer) Len() int             { return a.b.Len() }
func (a *accumBuffer) Reset()               { a.b.Reset() }

func (a *accumBuffer) PrependString(s string) {
	cur := a.b.String()
	a.b.Reset()
	a.b.WriteString(s)
	a.b.WriteString(cur)
}
