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
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// IDNAToASCII is a DomainToASCII implementation that substitutes a real
// UTS#46 processor for the default ASCII-lowercase fallback, exactly
// the pluggable slot spec.md §6 describes: "Implementations MAY
// substitute a full UTS#46 processor behind the same interface." It is
// built the same way the teacher normalizes a host
// (iri/autority.go:normalizeHostAndPort): NFC-normalize, run
// idna.ToASCII, then idna.ToUnicode to recover the canonical Unicode
// form so the IDNA2003 Eszett special case can be reapplied.
//
// The host parser (host.go) has already percent-decoded and
// ASCII-lowercased input before calling this, so IDNAToASCII only
// needs to handle the genuinely non-ASCII case; ASCII input passes
// through idna.ToASCII unchanged.
func IDNAToASCII(input string) (string, error) {
	normalized := norm.NFC.String(input)

	ascii, err := idna.ToASCII(normalized)
	if err != nil {
		return "", err
	}

	// Recover the canonical Unicode form so the Eszett mapping below
	// can be reapplied; x/net/idna's ToASCII alone would otherwise
	// leave "ß" encoded as "xn--zca" rather than folded to "ss".
	unicodeForm, err := idna.ToUnicode(ascii)
	if err != nil {
		return ascii, nil
	}

	if strings.Contains(unicodeForm, "ß") {
		folded := strings.ReplaceAll(unicodeForm, "ß", "ss")
		if refolded, err := idna.ToASCII(folded); err == nil {
			return refolded, nil
		}
	}

	return ascii, nil
}
