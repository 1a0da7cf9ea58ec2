/*
Package rewrite implements safe multi-pattern string substitution driven
by a declarative mapping table.

	 +-----------+     +-----------+     +-----------+
	 |  Entries  | --> |  Validate | --> |   Table   |
	 +-----------+     +-----------+     +-----+-----+
	                                           |
	                     +---------------------+
	                     v
	 +-----------+   +-------+   +----------+   +----------+
	 |  Payload  |-->| plan  |-->| phase 1  |-->| phase 2  |--> output
	 +-----------+   | (len) |   | s -> tok |   | tok -> r |
	                 +-------+   +----------+   +----------+

🎯 Purpose:
- Substitutes N independent (search, replace) pairs in one run
- Never lets a replacement result be re-matched by a pending search
- Honors longer patterns before shorter ones they contain
- Rejects ambiguous tables before any text is touched

🔄 Flow:
1. Validate rejects empty and duplicate search keys (all offenders at once)
2. Apply sorts entries longest-search-first (stable)
3. Phase 1 consumes each search occurrence into a per-run placeholder
4. Phase 2 expands placeholders into replace values
5. The transformed payload is returned; the input is never mutated

⚡ Key Responsibilities:
- Mapping table validation
- Deterministic execution ordering
- Collision-free placeholder generation
- Context discovery diagnostics (FindContexts)

📝 Design Philosophy:
Correctness is unconditional, not configuration-dependent. A direct
search→replace walk is only safe when no replace value can be matched by
a later search; the two-phase design removes that precondition entirely,
because placeholders are disjoint from all payload content and from each
other by construction. Everything that could make a run ambiguous is
rejected up front, and the engine itself is total: absent patterns are
no-ops, never errors.

🔍 Example:

	table, err := rewrite.Validate([]rewrite.Entry{
		{Search: "example.com", Replace: "example-int.com"},
		{Search: "api.example.com", Replace: "next-api.example-int.com"},
	})
	if err != nil {
		return err
	}
	out := rewrite.Apply(table, "api.example.com is live")
	// out == "next-api.example-int.com is live"
*/
package rewrite
