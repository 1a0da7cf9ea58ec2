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
	"regexp"
	"strings"
)

// word runs cover the characters used by configuration identifiers and
// hostnames: letters, digits, hyphen, underscore
var wordRunPattern = regexp.MustCompile(`[\p{L}\p{N}_-]+`)

// 🔍 FindContexts reports every maximal run of word characters in
// payload that contains fragment as a literal substring, in order of
// first appearance, deduplicated. An empty fragment yields nil.
//
// This is a read-only diagnostic: it lets an operator estimate the
// blast radius of a short or generic pattern (say "us") before
// committing to a substitution run. It never touches the engine's
// ordering or placeholder machinery.
//
// The fragment is compared with strings.Contains, so characters that
// would be metacharacters elsewhere (".", "*", "?") have no special
// meaning here.
func FindContexts(fragment, payload string) []string {
	if fragment == "" {
		return nil
	}

	var contexts []string
	seen := make(map[string]struct{})
	for _, run := range wordRunPattern.FindAllString(payload, -1) {
		if !strings.Contains(run, fragment) {
			continue
		}
		if _, ok := seen[run]; ok {
			continue
		}
		seen[run] = struct{}{}
		contexts = append(contexts, run)
	}
	return contexts
}
