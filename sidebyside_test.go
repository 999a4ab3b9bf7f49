package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideBySide(t *testing.T) {
	t.Run("gutter markers", func(t *testing.T) {
		d := Diff{
			{OpEqual, "same\n"},
			{OpInsert, "new\n"},
			{OpDelete, "old\n"},
			{OpDelete, "gone\n"},
			{OpEqual, "tail\n"},
		}
		pad8 := func(s string) string {
			return s + strings.Repeat(" ", 8-len(s))
		}
		rows := []string{
			pad8("same") + "   " + "same",
			pad8("old") + " | " + "new",
			pad8("gone") + " <",
			pad8("tail") + "   " + "tail",
		}

		assert.Equal(t, strings.Join(rows, "\n"), d.SideBySide(8))
		assert.Equal(t, strings.Join(rows, "\r\n"), d.SideBySide(8, WithSeparator("\r\n")))
	})

	t.Run("insert only rows", func(t *testing.T) {
		d := Diff{{OpEqual, "a\n"}, {OpInsert, "b\n"}}
		exp := "a    " + "   " + "a" + "\n" +
			"     " + " > " + "b"
		assert.Equal(t, exp, d.SideBySide(5))
	})

	t.Run("wide characters align", func(t *testing.T) {
		d := Diff{{OpInsert, "日本\n"}, {OpDelete, "ab\n"}}
		exp := "ab     " + " | " + "日本"
		assert.Equal(t, exp, d.SideBySide(7))
	})

	t.Run("truncates on cluster boundaries", func(t *testing.T) {
		d := Diff{{OpDelete, "日本語\n"}, {OpEqual, "x\n"}}
		exp := "日本 " + " <" + "\n" +
			"x    " + "   " + "x"
		assert.Equal(t, exp, d.SideBySide(5))
	})

	t.Run("east asian ambiguous width", func(t *testing.T) {
		d := Diff{{OpEqual, "→\n"}}

		exp := "→   " + "   " + "→"
		assert.Equal(t, exp, d.SideBySide(4))

		exp = "→  " + "   " + "→"
		assert.Equal(t, exp, d.SideBySide(4, WithEastAsianWidth()))
	})

	t.Run("width floor", func(t *testing.T) {
		d := Diff{{OpEqual, "a\n"}}
		assert.Equal(t, "a   a", d.SideBySide(0))
	})
}
