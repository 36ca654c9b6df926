// Package entities implements HTML character-reference decoding as a
// pluggable text transform, kept deliberately outside the html
// package's core tokenizer/parser (spec.md §1, §6): the core never
// decodes entities itself, so callers that don't want decoding (or
// want a different entity table) aren't forced to pay for it.
//
// Adapted from the named/numeric character reference decoder that
// originally lived inline in the teacher's html/tokenizer.go
// (decodeHTMLEntities/decodeEntity/decodeNumericEntity/namedEntities),
// where it ran eagerly over every text run. Here it runs on demand,
// either directly via Decode or as a ParseEvent filter via
// DecodingTextFilter.
package entities

import (
	"strconv"
	"strings"

	"github.com/gohtml/htmlevents/log"
)

// Decode replaces HTML named and numeric character references in s
// with their decoded text. Unrecognized or malformed references are
// left untouched (including the leading '&'), matching the html
// package's own no-error-channel design: decoding never fails.
func Decode(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] != '&' {
			result.WriteByte(s[i])
			i++
			continue
		}

		end := i + 1
		for end < len(s) && end < i+32 && s[end] != ';' && s[end] != '&' && s[end] != '<' {
			end++
		}

		if end < len(s) && s[end] == ';' {
			entity := s[i+1 : end]
			if decoded, ok := decodeEntity(entity); ok {
				result.WriteString(decoded)
				i = end + 1
				continue
			}
		}

		result.WriteByte(s[i])
		i++
	}

	return result.String()
}

func decodeEntity(entity string) (string, bool) {
	if entity == "" {
		return "", false
	}
	if entity[0] == '#' {
		return decodeNumericEntity(entity[1:])
	}
	if decoded, ok := namedEntities[entity]; ok {
		return decoded, true
	}
	return "", false
}

func decodeNumericEntity(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	var codePoint int64
	var err error
	if s[0] == 'x' || s[0] == 'X' {
		codePoint, err = strconv.ParseInt(s[1:], 16, 32)
	} else {
		codePoint, err = strconv.ParseInt(s, 10, 32)
	}

	if err != nil || codePoint <= 0 || codePoint > 0x10FFFF {
		log.WithFields(log.WarnLevel, "entities: rejecting numeric reference", map[string]interface{}{
			"ref": s,
		})
		return "", false
	}
	return string(rune(codePoint)), true
}
