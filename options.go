package diff

type config struct {
	chars     bool
	separator string
	sepSet    bool
	indent    string
	eastAsian bool
}

// sep resolves the separator for a renderer with default def.
func (c *config) sep(def string) string {
	if c.sepSet {
		return c.separator
	}
	return def
}

type FuncOption func(*config)

// WithChars compares grapheme clusters instead of lines.
func WithChars() FuncOption {
	return func(o *config) {
		o.chars = true
	}
}

// WithSeparator overrides a renderer's default separator between entries or
// rows.
func WithSeparator(sep string) FuncOption {
	return func(o *config) {
		o.separator = sep
		o.sepSet = true
	}
}

// WithIndent prefixes every row HTMLTable emits.
func WithIndent(indent string) FuncOption {
	return func(o *config) {
		o.indent = indent
	}
}

// WithEastAsianWidth treats ambiguous-width East Asian code points as two
// columns wide in SideBySide output.
func WithEastAsianWidth() FuncOption {
	return func(o *config) {
		o.eastAsian = true
	}
}
