package diff

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// SideBySide renders the diff as two text columns of width display cells
// each, before on the left and after on the right. The gutter marks each
// row: "<" delete, ">" insert, "|" replace, spaces for unchanged lines. A
// deleted run and an adjacent inserted run pair up line by line, with blank
// lines padding the shorter side. Rows are joined with WithSeparator's
// value, "\n" by default.
//
// Width accounting uses terminal display cells rather than bytes or runes,
// so CJK text and emoji stay aligned. WithEastAsianWidth widens
// ambiguous-width code points too.
func (d Diff) SideBySide(width int, o ...FuncOption) string {
	var cfg config
	for _, f := range o {
		f(&cfg)
	}
	if width < 1 {
		width = 1
	}

	cond := runewidth.NewCondition()
	cond.EastAsianWidth = cfg.eastAsian
	cond.StrictEmojiNeutral = !cfg.eastAsian

	var rows []string
	addRow := func(left, right string, mark byte) {
		row := pad(left, width, cond) + " " + string(mark) + " " + right
		rows = append(rows, strings.TrimRight(row, " "))
	}

	for i := 0; i < len(d); {
		if d[i].Op == OpEqual {
			run, n := sameOpRun(d, i)
			for _, e := range run {
				line := trimEOL(e.Text)
				addRow(line, line, ' ')
			}
			i += n
			continue
		}
		del, ins, n := changePair(d, i)
		for k := 0; k < len(del) || k < len(ins); k++ {
			switch {
			case k >= len(ins):
				addRow(trimEOL(del[k].Text), "", '<')
			case k >= len(del):
				addRow("", trimEOL(ins[k].Text), '>')
			default:
				addRow(trimEOL(del[k].Text), trimEOL(ins[k].Text), '|')
			}
		}
		i += n
	}
	return strings.Join(rows, cfg.sep("\n"))
}

// pad fits s to exactly width display cells, truncating on grapheme cluster
// boundaries so a wide character or emoji sequence is never split.
func pad(s string, width int, cond *runewidth.Condition) string {
	w := cond.StringWidth(s)
	if w > width {
		s, w = truncateWidth(s, width, cond)
	}
	return s + strings.Repeat(" ", width-w)
}

func truncateWidth(s string, width int, cond *runewidth.Condition) (string, int) {
	var b strings.Builder
	w := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		gw := cond.StringWidth(iter.Value())
		if w+gw > width {
			break
		}
		b.WriteString(iter.Value())
		w += gw
	}
	return b.String(), w
}
