// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rewrite

import (
	"crypto/rand"
	"strconv"
	"strings"
)

// 🎫 mintTokens generates one placeholder token per plan entry for a
// single Apply run.
//
// Collision-freedom is structural, never checked after the fact. Every
// byte of a token is a control byte outside the text alphabet (NUL/SOH
// framing, an STX separator, and marker bytes in 0x10..0x1F), so no
// search pattern containing even one text character can match inside a
// minted token — the invariant phase 1 depends on, since each step of
// the sequential walk sees the tokens inserted by earlier steps. The
// per-run random component keeps two concurrent runs over related
// content from ever seeing each other's markers, and the trailing index
// keeps tokens within one run distinct.
func mintTokens(n int) []string {
	run := encodeMarker(runSeed())
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = "\x00\x01" + run + "\x02" + encodeMarker([]byte(strconv.Itoa(i))) + "\x01\x00"
	}
	return tokens
}

// 🔐 encodeMarker spreads each byte into two bytes in 0x10..0x1F, one
// per nibble. The output never contains a printable character, tab,
// newline, or carriage return.
func encodeMarker(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 2)
	for _, c := range data {
		b.WriteByte(0x10 | c>>4)
		b.WriteByte(0x10 | c&0x0F)
	}
	return b.String()
}

// 🎲 runSeed returns the random component shared by all tokens of one run
func runSeed() []byte {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the platform entropy source is
		// broken; there is no meaningful recovery
		panic("rewrite: reading random run id: " + err.Error())
	}
	return b[:]
}
