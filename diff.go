package diff

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Op classifies a single Edit.
type Op int8

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("Op(%d)", int8(op))
}

var (
	ErrInvalidUTF8 = errors.New("invalid UTF-8 input")
	ErrEmptyFile   = errors.New("file is empty")
)

// Edit is one token of a Diff and how it changed.
type Edit struct {
	Op   Op
	Text string
}

// Diff is an ordered edit sequence covering two inputs. See the package
// documentation for its invariants.
type Diff []Edit

// Compare diffs before and after by line, or by grapheme cluster with
// WithChars. It fails only when an input is not valid UTF-8.
func Compare(before, after string, o ...FuncOption) (Diff, error) {
	var cfg config
	for _, f := range o {
		f(&cfg)
	}

	a, err := tokenize(before, cfg.chars)
	if err != nil {
		return nil, fmt.Errorf("before input: %w", err)
	}
	b, err := tokenize(after, cfg.chars)
	if err != nil {
		return nil, fmt.Errorf("after input: %w", err)
	}

	return CompareTokens(a, b), nil
}

// CompareTokens diffs two pre-tokenized sequences. Tokens are compared by
// string equality only.
func CompareTokens(before, after []string) Diff {
	start, end1, end2 := trimCommon(before, after)
	table := buildTable(before, after, start, end1, end2)
	middle := backtrack(table, before, after, start)

	d := make(Diff, 0, start+len(middle)+len(before)-1-end1)
	for _, tok := range before[:start] {
		d = append(d, Edit{OpEqual, tok})
	}
	for i := len(middle) - 1; i >= 0; i-- {
		d = append(d, middle[i])
	}
	for _, tok := range before[end1+1:] {
		d = append(d, Edit{OpEqual, tok})
	}
	return d
}

// CompareFiles reads both paths and diffs their contents. Unreadable and
// empty files are errors.
func CompareFiles(beforePath, afterPath string, o ...FuncOption) (Diff, error) {
	before, err := readInput(beforePath)
	if err != nil {
		return nil, err
	}
	after, err := readInput(afterPath)
	if err != nil {
		return nil, err
	}
	return Compare(before, after, o...)
}

func readInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return string(b), nil
}

// Before reconstructs the before input from the diff.
func (d Diff) Before() string {
	var b strings.Builder
	for _, e := range d {
		if e.Op != OpInsert {
			b.WriteString(e.Text)
		}
	}
	return b.String()
}

// After reconstructs the after input from the diff.
func (d Diff) After() string {
	var b strings.Builder
	for _, e := range d {
		if e.Op != OpDelete {
			b.WriteString(e.Text)
		}
	}
	return b.String()
}
