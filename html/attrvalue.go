package html

// readAttributeValue reads a single attribute value starting at pos,
// per spec.md §4.2. Unlike the chunkers, this is not a regex pattern:
// quoted values need a literal matching-quote scan and unquoted
// values need a negative character class, both of which are simpler
// to write directly than to anchor and re-anchor through a regex
// engine for a three-way branch this small.
//
// It returns the value exactly as written in the source, without its
// surrounding quotes (character references are not decoded), and the
// number of bytes consumed from pos (including surrounding quotes,
// when present).
func readAttributeValue(s string, pos int) (value string, length int) {
	if pos >= len(s) {
		return "", 0
	}

	quote := s[pos]
	if quote == '"' || quote == '\'' {
		end := -1
		for i := pos + 1; i < len(s); i++ {
			if s[i] == quote {
				end = i
				break
			}
		}
		if end >= 0 {
			return s[pos+1 : end], end - pos + 1
		}
		// Unterminated: the rest of the input is the value.
		return s[pos+1:], len(s) - pos
	}

	start := pos
	for pos < len(s) && !isUnquotedValueTerminator(s[pos]) {
		pos++
	}
	return s[start:pos], pos - start
}

func isUnquotedValueTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v', '>':
		return true
	default:
		return false
	}
}
