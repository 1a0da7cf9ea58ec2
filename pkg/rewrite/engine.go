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
	"strings"
)

// 📊 Result contains the outcome of one Apply run
type Result struct {
	// WasModified indicates if any substitutions were made
	WasModified bool

	// ReplacementCount is the total number of substitutions made
	ReplacementCount int

	// Counts maps each search key to the number of times it was
	// substituted (zero-occurrence keys are absent)
	Counts map[string]int

	// OriginalContent is the payload before substitution
	OriginalContent string

	// ModifiedContent is the payload after substitution
	ModifiedContent string
}

// 🔄 Apply substitutes every table entry in payload and returns the
// transformed text. It is total over any validated table and any
// payload: a search key with zero occurrences is a no-op, not an error.
//
// The substitution is two-phase. Phase 1 walks the entries longest
// search first and replaces each occurrence with a per-run placeholder
// token. Phase 2 replaces each token with the entry's replace value.
// Because no replace value is written until every search has already
// happened, a replacement result can never be re-matched by a
// still-pending search — the "switching strings" corruption that a
// direct search→replace walk produces for tables like (A→B, B→A).
//
// All run state (plan, tokens) is call-local, so concurrent Apply calls
// over independent payloads are safe.
func Apply(t Table, payload string) string {
	return ApplyResult(t, payload).ModifiedContent
}

// 🔄 ApplyResult is Apply with per-entry accounting for status reporting
func ApplyResult(t Table, payload string) *Result {
	result := &Result{
		Counts:          make(map[string]int, t.Len()),
		OriginalContent: payload,
		ModifiedContent: payload,
	}

	plan := buildPlan(t)
	tokens := mintTokens(len(plan))

	// Phase 1: search → placeholder, sequentially, longest search first.
	// Each step operates on the output of the previous one.
	current := payload
	for i, e := range plan {
		n := strings.Count(current, e.Search)
		if n == 0 {
			continue
		}
		current = strings.ReplaceAll(current, e.Search, tokens[i])
		result.Counts[e.Search] = n
		result.ReplacementCount += n
		result.WasModified = true
	}

	// Phase 2: placeholder → replace. Order is irrelevant here: every
	// search occurrence is already neutralized into a token, and tokens
	// are inert with respect to every search and replace value.
	for i, e := range plan {
		if result.Counts[e.Search] == 0 {
			continue
		}
		current = strings.ReplaceAll(current, tokens[i], e.Replace)
	}

	result.ModifiedContent = current
	return result
}
