// Package diff computes line-level and character-level diffs between a "before" and an "after" string.
//
// Representation: a Diff is an ordered slice of Edits. Each Edit carries one token (a line, or a grapheme
// cluster in character mode) and an Op:
//   - OpEqual: token common to both inputs at this position
//   - OpInsert: token present only in the after input
//   - OpDelete: token present only in the before input
//
// Line tokens keep their trailing terminator (LF, CR, or CRLF) when one is present; the final line of an
// input may have none.
//
// Invariants:
//   - concatenating the Text of all OpEqual and OpDelete edits reproduces the before input exactly
//   - concatenating the Text of all OpEqual and OpInsert edits reproduces the after input exactly
//   - the edit count is minimal: the number of OpDelete plus OpInsert edits equals
//     len(before tokens) + len(after tokens) - 2*LCS, the longest common subsequence length
//
// Where a region changes on both sides, the inserted tokens are listed before the deleted tokens they
// replace. That ordering is stable and callers may rely on it.
//
// Getting a diff:
//
//	d, err := diff.Compare(before, after)                    // by line
//	d, err := diff.Compare(before, after, diff.WithChars())  // by grapheme cluster
//
// Rendering: Text emits "  "/"- "/"+ " prefixed lines, HTML emits span/del/ins inline markup, HTMLTable
// emits side-by-side table rows, Unified emits a classic unified diff, and SideBySide emits a two-column
// terminal view. Renderers strip each token's trailing terminator; output structure comes from their
// separators and rows.
//
// The comparison builds an LCS length table over the tokens left after common prefix and suffix trimming,
// so time and memory grow with the product of the trimmed token counts. Compare imposes no size limit of
// its own; callers diffing unbounded inputs should cap them first. Nothing in the package holds state
// between calls, so concurrent comparisons over independent inputs need no locking.
package diff
