package diff

import (
	"fmt"
	"html"
	"strings"
)

// Tag rendering tables, one per output flavor.
var (
	textPrefix = map[Op]string{
		OpEqual:  "  ",
		OpDelete: "- ",
		OpInsert: "+ ",
	}
	htmlTag = map[Op]string{
		OpEqual:  "span",
		OpDelete: "del",
		OpInsert: "ins",
	}
	cellClass = map[Op]string{
		OpEqual:  "equal",
		OpDelete: "del",
		OpInsert: "ins",
	}
)

// Text renders the diff with two-column prefixes: "  " unchanged, "- "
// deleted, "+ " inserted. Entries are joined with WithSeparator's value,
// "\n" by default.
func (d Diff) Text(o ...FuncOption) string {
	var cfg config
	for _, f := range o {
		f(&cfg)
	}

	lines := make([]string, len(d))
	for i, e := range d {
		lines[i] = textPrefix[e.Op] + trimEOL(e.Text)
	}
	return strings.Join(lines, cfg.sep("\n"))
}

// HTML renders the diff inline: unchanged tokens in span, deleted in del,
// inserted in ins, all escaped. Entries are joined with WithSeparator's
// value, "<br/>" by default.
func (d Diff) HTML(o ...FuncOption) string {
	var cfg config
	for _, f := range o {
		f(&cfg)
	}

	parts := make([]string, len(d))
	for i, e := range d {
		tag := htmlTag[e.Op]
		parts[i] = fmt.Sprintf("<%s>%s</%s>", tag, html.EscapeString(trimEOL(e.Text)), tag)
	}
	return strings.Join(parts, cfg.sep("<br/>"))
}

// HTMLTable renders the diff as side-by-side table rows, before on the left
// and after on the right. Consecutive edits with the same tag form one row;
// a deleted run and an adjacent inserted run collapse into one replacement
// row with the deleted lines left and the inserted lines right, and an
// unpaired side gets an empty cell. The output is rows only, for embedding
// in a caller's <table>. WithIndent prefixes each row and WithSeparator
// joins them, "\n" by default.
func (d Diff) HTMLTable(o ...FuncOption) string {
	var cfg config
	for _, f := range o {
		f(&cfg)
	}

	var rows []string
	for i := 0; i < len(d); {
		row, n := tableRow(d, i)
		rows = append(rows, cfg.indent+row)
		i += n
	}
	return strings.Join(rows, cfg.sep("\n"))
}

// tableRow builds the row starting at d[i] and reports how many edits it
// consumed.
func tableRow(d Diff, i int) (string, int) {
	if d[i].Op == OpEqual {
		run, n := sameOpRun(d, i)
		c := cell(run, OpEqual)
		return "<tr>" + c + c + "</tr>", n
	}
	del, ins, n := changePair(d, i)
	return "<tr>" + cell(del, OpDelete) + cell(ins, OpInsert) + "</tr>", n
}

// sameOpRun returns the run of edits sharing d[i]'s tag and its length.
func sameOpRun(d Diff, i int) (Diff, int) {
	n := 1
	for i+n < len(d) && d[i+n].Op == d[i].Op {
		n++
	}
	return d[i : i+n], n
}

// changePair gathers the deleted and inserted runs of one replacement region
// starting at d[i], in either order, and reports how many edits it consumed.
func changePair(d Diff, i int) (Diff, Diff, int) {
	run, n := sameOpRun(d, i)
	var del, ins Diff
	if d[i].Op == OpDelete {
		del = run
	} else {
		ins = run
	}
	if next := i + n; next < len(d) && d[next].Op != OpEqual && d[next].Op != d[i].Op {
		other, m := sameOpRun(d, next)
		if d[next].Op == OpDelete {
			del = other
		} else {
			ins = other
		}
		n += m
	}
	return del, ins, n
}

// cell emits one td. An empty run is the blank side of an unpaired insertion
// or deletion.
func cell(run Diff, op Op) string {
	if len(run) == 0 {
		return `<td class="empty"></td>`
	}
	texts := make([]string, len(run))
	for i, e := range run {
		texts[i] = html.EscapeString(trimEOL(e.Text))
	}
	return fmt.Sprintf(`<td class="%s">%s</td>`, cellClass[op], strings.Join(texts, "<br/>"))
}

// Unified renders a classic unified diff with --- / +++ file headers and @@
// hunk headers. Change groups separated by more than 2*context unchanged
// lines split into separate hunks. The diff is assumed to be line-based.
func (d Diff) Unified(fromName, toName string, context int) string {
	if context < 0 {
		context = 0
	}

	type numbered struct {
		edit Edit
		old  int // 1-based old position, valid unless edit inserts
		new  int // 1-based new position, valid unless edit deletes
	}
	entries := make([]numbered, len(d))
	oldN, newN := 1, 1
	for i, e := range d {
		entries[i] = numbered{edit: e, old: oldN, new: newN}
		if e.Op != OpInsert {
			oldN++
		}
		if e.Op != OpDelete {
			newN++
		}
	}

	out := []string{"--- " + fromName, "+++ " + toName}

	i := 0
	for i < len(d) {
		if d[i].Op == OpEqual {
			i++
			continue
		}

		start := i - context
		if start < 0 {
			start = 0
		}

		// Extend across later changes while the equal gap between them is
		// small enough to share this hunk.
		end := i + 1
		for k := end; k < len(d); {
			if d[k].Op != OpEqual {
				k++
				end = k
				continue
			}
			g := k
			for g < len(d) && d[g].Op == OpEqual {
				g++
			}
			if g < len(d) && g-k <= 2*context {
				k = g
				continue
			}
			break
		}
		stop := end + context
		if stop > len(d) {
			stop = len(d)
		}

		var oldCount, newCount int
		body := make([]string, 0, stop-start)
		for _, en := range entries[start:stop] {
			switch en.edit.Op {
			case OpEqual:
				body = append(body, " "+trimEOL(en.edit.Text))
				oldCount++
				newCount++
			case OpDelete:
				body = append(body, "-"+trimEOL(en.edit.Text))
				oldCount++
			case OpInsert:
				body = append(body, "+"+trimEOL(en.edit.Text))
				newCount++
			}
		}
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", entries[start].old, oldCount, entries[start].new, newCount)
		out = append(out, header)
		out = append(out, body...)

		i = stop
	}

	return strings.Join(out, "\n")
}
