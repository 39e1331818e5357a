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

// ipv6Address is a parsed IPv6 host: eight 16-bit pieces, most
// significant piece first.
type ipv6Address [8]uint16

// String renders addr in the canonical WHATWG form: lowercase hex with
// no leading zeros, compressing the longest run of zero pieces (length
// at least 2, leftmost run wins on a tie) into "::", per spec.md §4.3.
func (addr ipv6Address) String() string {
	compressStart, compressLen := longestZeroRun(addr)

	var b strings.Builder
	b.Grow(39)

	ignore0 := false
	for piece := 0; piece < 8; piece++ {
		if ignore0 && addr[piece] == 0 {
			continue
		}
		if ignore0 {
			ignore0 = false
		}

		if compressLen >= 2 && piece == compressStart {
			if piece == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}
			ignore0 = true
			continue
		}

		b.WriteString(strconv.FormatUint(uint64(addr[piece]), 16))
		if piece != 7 {
			b.WriteByte(':')
		}
	}

	return b.String()
}

// longestZeroRun finds the longest run of zero pieces of length at
// least 2, breaking ties toward the leftmost run. It returns
// (-1, 0) if no qualifying run exists.
func longestZeroRun(addr ipv6Address) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0

	for i := 0; i < 8; i++ {
		if addr[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
		} else {
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
			curStart, curLen = -1, 0
		}
	}
	if curLen > bestLen {
		bestStart, bestLen = curStart, curLen
	}
	if bestLen < 2 {
		return -1, 0
	}
	return bestStart, bestLen
}

// ipv6Scanner walks a bracket-stripped IPv6 literal byte by byte,
// mirroring the one-byte lookahead/rewind style of the C7 input
// iterator (input.go), since the IPv6 grammar also needs to peek past
// the current position (e.g. to detect an embedded IPv4 tail).
type ipv6Scanner struct {
	s   string
	pos int
}

func (s *ipv6Scanner) eof() bool       { return s.pos >= len(s.s) }
func (s *ipv6Scanner) current() byte   { return s.s[s.pos] }
func (s *ipv6Scanner) advance()        { s.pos++ }
func (s *ipv6Scanner) rewind(n int)    { s.pos -= n }
func (s *ipv6Scanner) remaining() string {
	if s.eof() {
		return ""
	}
	return s.s[s.pos:]
}

// parseIPv6 parses a bracket-stripped IPv6 literal per spec.md §4.3.
func parseIPv6(input string) (ipv6Address, bool) {
	var address ipv6Address
	pieceIndex := 0
	compress := -1

	sc := &ipv6Scanner{s: input}

	if !sc.eof() && sc.current() == ':' {
		if len(sc.remaining()) < 2 || sc.remaining()[1] != ':' {
			return ipv6Address{}, false
		}
		sc.advance()
		sc.advance()
		pieceIndex++
		compress = pieceIndex
	}

	for !sc.eof() {
		if pieceIndex == 8 {
			return ipv6Address{}, false
		}

		if sc.current() == ':' {
			if compress != -1 {
				return ipv6Address{}, false
			}
			sc.advance()
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value := 0
		length := 0
		for length < 4 && !sc.eof() && isASCIIHexDigit(sc.current()) {
			value = value*0x10 + hexDigitValue(sc.current())
			sc.advance()
			length++
		}

		if !sc.eof() && sc.current() == '.' {
			if length == 0 {
				return ipv6Address{}, false
			}
			sc.rewind(length)

			if pieceIndex > 6 {
				return ipv6Address{}, false
			}

			numbersSeen := 0
			for !sc.eof() {
				ipv4Piece := -1

				if numbersSeen > 0 {
					if sc.current() == '.' && numbersSeen < 4 {
						sc.advance()
					} else {
						return ipv6Address{}, false
					}
				}

				if sc.eof() || !isASCIIDigit(sc.current()) {
					return ipv6Address{}, false
				}

				for !sc.eof() && isASCIIDigit(sc.current()) {
					digit := int(sc.current() - '0')
					switch {
					case ipv4Piece == -1:
						ipv4Piece = digit
					case ipv4Piece == 0:
						return ipv6Address{}, false
					default:
						ipv4Piece = ipv4Piece*10 + digit
					}
					if ipv4Piece > 255 {
						return ipv6Address{}, false
					}
					sc.advance()
				}

				address[pieceIndex] = address[pieceIndex]*0x100 + uint16(ipv4Piece)
				numbersSeen++

				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}

			if numbersSeen != 4 {
				return ipv6Address{}, false
			}
			break
		} else if !sc.eof() && sc.current() == ':' {
			sc.advance()
			if sc.eof() {
				return ipv6Address{}, false
			}
		} else if !sc.eof() {
			return ipv6Address{}, false
		}

		address[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		piece := 7
		for piece != 0 && swaps > 0 {
			address[piece], address[compress+swaps-1] = address[compress+swaps-1], address[piece]
			piece--
			swaps--
		}
	} else if pieceIndex != 8 {
		return ipv6Address{}, false
	}

	return address, true
}
