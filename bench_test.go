package diff

import (
	"fmt"
	"strings"
	"testing"
)

func benchInputs() (string, string) {
	var oldLines, newLines []string
	for i := 0; i < 1000; i++ {
		oldLines = append(oldLines, fmt.Sprintf("line %d original", i))
		newLines = append(newLines, fmt.Sprintf("line %d original", i))
	}
	for _, idx := range []int{50, 150, 250, 350, 450, 550, 650, 750, 850, 950} {
		newLines[idx] = fmt.Sprintf("line %d changed", idx)
	}
	return strings.Join(oldLines, "\n") + "\n", strings.Join(newLines, "\n") + "\n"
}

func BenchmarkCompareLines(b *testing.B) {
	before, after := benchInputs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compare(before, after); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompareChars(b *testing.B) {
	before := strings.Repeat("the quick brown fox jumps over the lazy dog\n", 20)
	after := strings.Repeat("the quick brown cat jumps over the lazy dog\n", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compare(before, after, WithChars()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHTMLTable(b *testing.B) {
	before, after := benchInputs()
	d, err := Compare(before, after)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.HTMLTable()
	}
}

func BenchmarkUnified(b *testing.B) {
	before, after := benchInputs()
	d, err := Compare(before, after)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Unified("before.txt", "after.txt", 3)
	}
}
