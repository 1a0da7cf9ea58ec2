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
	"sort"
)

// 📋 buildPlan derives the execution order for one Apply run: entries
// sorted by descending search length, ties keeping original table order.
//
// When one pattern is a substring of another ("example.com" inside
// "api.example.com"), the longer pattern must be consumed into its
// placeholder before the shorter one gets a chance to match inside it.
// A shorter pattern processed first would destroy text the longer
// pattern still needed to see intact.
//
// The plan is derived per run and discarded; it is never user-facing
// state.
func buildPlan(t Table) []Entry {
	plan := make([]Entry, len(t.entries))
	copy(plan, t.entries)
	sort.SliceStable(plan, func(i, j int) bool {
		return len(plan[i].Search) > len(plan[j].Search)
	})
	return plan
}
