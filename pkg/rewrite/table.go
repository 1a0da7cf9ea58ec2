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
	"fmt"
	"strconv"
	"strings"
)

// 🔄 Entry represents one intended substitution
type Entry struct {
	// Search is the literal text to look for (never empty)
	Search string

	// Replace is the text to substitute (may be empty for deletion)
	Replace string
}

// 📚 Table is a validated, ordered mapping table. The zero value is an
// empty table. A non-empty Table can only be obtained through Validate,
// which guarantees no duplicate and no empty Search keys.
type Table struct {
	entries []Entry
}

// 📝 Entries returns the table entries in their original order
func (t Table) Entries() []Entry {
	return t.entries
}

// 🔢 Len returns the number of entries in the table
func (t Table) Len() int {
	return len(t.entries)
}

// 🚨 Validation failure kinds
const (
	// EmptySearchKey means an entry has an empty search value
	EmptySearchKey = "empty_search_key"

	// DuplicateSearchKey means two or more entries share a search value
	DuplicateSearchKey = "duplicate_search_key"

	// DuplicateReplaceValue means two or more entries share a replace
	// value (only checked by ValidateReversible)
	DuplicateReplaceValue = "duplicate_replace_value"
)

// 🚨 ValidationError reports everything wrong with a mapping table found
// in a single pass, so the operator can fix all of it in one sitting.
type ValidationError struct {
	// Kind is one of EmptySearchKey, DuplicateSearchKey, DuplicateReplaceValue
	Kind string

	// Keys is the complete set of offending search/replace values
	Keys []string

	// Positions is the complete set of offending entry indexes (EmptySearchKey)
	Positions []int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case EmptySearchKey:
		pos := make([]string, len(e.Positions))
		for i, p := range e.Positions {
			pos[i] = strconv.Itoa(p)
		}
		return fmt.Sprintf("mapping entries at positions [%s] have an empty search key", strings.Join(pos, ", "))
	case DuplicateSearchKey:
		return fmt.Sprintf("duplicate search keys: %s", strings.Join(quoteAll(e.Keys), ", "))
	case DuplicateReplaceValue:
		return fmt.Sprintf("duplicate replace values: %s", strings.Join(quoteAll(e.Keys), ", "))
	default:
		return "invalid mapping table"
	}
}

func quoteAll(keys []string) []string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = strconv.Quote(k)
	}
	return quoted
}

// ✅ Validate checks an ordered sequence of entries and returns a Table
// ready for Apply. It is pure: no text is touched on failure.
//
// An empty search key would match everywhere, so any entry with one fails
// validation. Duplicate search keys make application order ambiguous and
// are rejected with the full set of offenders, not just the first found.
func Validate(entries []Entry) (Table, error) {
	var emptyAt []int
	for i, e := range entries {
		if e.Search == "" {
			emptyAt = append(emptyAt, i)
		}
	}
	if len(emptyAt) > 0 {
		return Table{}, &ValidationError{Kind: EmptySearchKey, Positions: emptyAt}
	}

	if dups := duplicates(entries, func(e Entry) string { return e.Search }); len(dups) > 0 {
		return Table{}, &ValidationError{Kind: DuplicateSearchKey, Keys: dups}
	}

	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return Table{entries: copied}, nil
}

// ✅ ValidateReversible is a second, opt-in validation pass for tables
// intended for round-trip use (apply, then apply the field-swapped
// inverse). Reversal is only well-defined when replace values are unique,
// so duplicates are rejected here the same way duplicate search keys are
// on the primary path. Forward-only tables never need this check.
func ValidateReversible(t Table) error {
	if dups := duplicates(t.entries, func(e Entry) string { return e.Replace }); len(dups) > 0 {
		return &ValidationError{Kind: DuplicateReplaceValue, Keys: dups}
	}
	return nil
}

// 🔍 duplicates returns every key seen more than once, in order of first
// appearance
func duplicates(entries []Entry, key func(Entry) string) []string {
	seen := make(map[string]int, len(entries))
	var dups []string
	for _, e := range entries {
		k := key(e)
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}
