package diff

// trimCommon locates the shared prefix and suffix of a and b. It returns the
// first index at which the sequences differ and the last differing index of
// each sequence, both inclusive. The suffix scan never crosses start, so for
// identical sequences the ends come back as start-1.
func trimCommon(a, b []string) (start, end1, end2 int) {
	for start < len(a) && start < len(b) && a[start] == b[start] {
		start++
	}
	end1, end2 = len(a)-1, len(b)-1
	for end1 >= start && end2 >= start && a[end1] == b[end2] {
		end1--
		end2--
	}
	return start, end1, end2
}

// lcsTable holds LCS lengths for the trimmed middle region in a flat buffer
// addressed by row*cols+col. Row 0 and column 0 stay zero so the recurrence
// needs no edge cases. Rows follow the before tokens, columns the after
// tokens, each shifted by one.
type lcsTable struct {
	cells []int
	rows  int
	cols  int
}

func (t *lcsTable) at(i, j int) int { return t.cells[i*t.cols+j] }

// buildTable fills the LCS length table for a[start..end1] vs b[start..end2].
func buildTable(a, b []string, start, end1, end2 int) *lcsTable {
	t := &lcsTable{
		rows: end1 - start + 2,
		cols: end2 - start + 2,
	}
	t.cells = make([]int, t.rows*t.cols)
	for i := 1; i < t.rows; i++ {
		for j := 1; j < t.cols; j++ {
			if a[start+i-1] == b[start+j-1] {
				t.cells[i*t.cols+j] = t.at(i-1, j-1) + 1
			} else if down, right := t.at(i-1, j), t.at(i, j-1); down >= right {
				t.cells[i*t.cols+j] = down
			} else {
				t.cells[i*t.cols+j] = right
			}
		}
	}
	return t
}

// backtrack walks the table from its far corner to the origin, emitting the
// middle of the diff last token first. Where a tie leaves both moves optimal
// it takes the delete move, which places insertions before deletions once
// the result is reversed into forward order.
func backtrack(t *lcsTable, a, b []string, start int) []Edit {
	middle := make([]Edit, 0, t.rows+t.cols-2)
	i, j := t.rows-1, t.cols-1
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[start+i-1] == b[start+j-1]:
			middle = append(middle, Edit{OpEqual, a[start+i-1]})
			i--
			j--
		case i > 0 && (j == 0 || t.at(i-1, j) >= t.at(i, j-1)):
			middle = append(middle, Edit{OpDelete, a[start+i-1]})
			i--
		default:
			middle = append(middle, Edit{OpInsert, b[start+j-1]})
			j--
		}
	}
	return middle
}
