package html

// Tokenize returns a lazy, single-shot sequence of low-level Tokens
// for html, suitable for use with a range-over-func loop:
//
//	for tok := range html.Tokenize(src) {
//	    ...
//	}
//
// Breaking out of the loop abandons the sequence; no resources are
// held (spec.md §5).
func Tokenize(html string) func(yield func(Token) bool) {
	return func(yield func(Token) bool) {
		t := NewTokenizer(html)
		for {
			tok, ok := t.Next()
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Parse returns a lazy, single-shot sequence of high-level
// ParseEvents for html (spec.md §6).
func Parse(html string) func(yield func(ParseEvent) bool) {
	return func(yield func(ParseEvent) bool) {
		p := NewParser(html)
		for {
			ev, ok := p.Next()
			if !ok {
				return
			}
			if !yield(ev) {
				return
			}
		}
	}
}
