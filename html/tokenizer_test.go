package html

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// collectTokens drains a tokenizer, dropping the synthetic Start/Done
// sentinels so tests can focus on the content tokens.
func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	tok := NewTokenizer(input)
	var tokens []Token
	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		if tk.Type == StartToken || tk.Type == DoneToken {
			continue
		}
		tokens = append(tokens, tk)
	}
	return tokens
}

func TestTokenizerText(t *testing.T) {
	tokens := collectTokens(t, "Hello, World!")
	require.Len(t, tokens, 1)
	require.Equal(t, TextToken, tokens[0].Type)
	require.Equal(t, "Hello, World!", tokens[0].Value)
}

func TestTokenizerEmptyInput(t *testing.T) {
	require.Empty(t, collectTokens(t, ""))
}

func TestTokenizerSimpleTag(t *testing.T) {
	tokens := collectTokens(t, "<div>")
	require.Equal(t, []Token{
		{Type: OpeningTagToken, Name: "div"},
		{Type: OpeningTagEndToken, Name: "div", Value: ">"},
	}, tokens)
}

func TestTokenizerClosingTag(t *testing.T) {
	tokens := collectTokens(t, "</div>")
	require.Equal(t, []Token{{Type: ClosingTagToken, Name: "div"}}, tokens)
}

func TestTokenizerSelfClosingSyntax(t *testing.T) {
	tokens := collectTokens(t, "<br />")
	require.Equal(t, []Token{
		{Type: OpeningTagToken, Name: "br"},
		{Type: OpeningTagEndToken, Name: "br", Value: "/>"},
	}, tokens)
}

func TestTokenizerAttributes(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedID    string
		expectedClass string
	}{
		{
			name:          "double quoted",
			input:         `<div id="main" class="container">`,
			expectedID:    "main",
			expectedClass: "container",
		},
		{
			name:          "single quoted",
			input:         `<div id='main' class='container'>`,
			expectedID:    "main",
			expectedClass: "container",
		},
		{
			name:          "unquoted",
			input:         `<div id=main class=container>`,
			expectedID:    "main",
			expectedClass: "container",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := collectTokens(t, tt.input)
			require.Equal(t, []Token{
				{Type: OpeningTagToken, Name: "div"},
				{Type: AttributeToken, Name: "id", Value: tt.expectedID},
				{Type: AttributeToken, Name: "class", Value: tt.expectedClass},
				{Type: OpeningTagEndToken, Name: "div", Value: ">"},
			}, tokens)
		})
	}
}

func TestTokenizerValuelessAttribute(t *testing.T) {
	tokens := collectTokens(t, "<input disabled>")
	require.Equal(t, []Token{
		{Type: OpeningTagToken, Name: "input"},
		{Type: AttributeToken, Name: "disabled", Value: ""},
		{Type: OpeningTagEndToken, Name: "input", Value: ">"},
	}, tokens)
}

func TestTokenizerAttributeValueWithQuoteNoise(t *testing.T) {
	tokens := collectTokens(t, `<br att='yes, "no", yes'>`)
	require.Equal(t, []Token{
		{Type: OpeningTagToken, Name: "br"},
		{Type: AttributeToken, Name: "att", Value: `yes, "no", yes`},
		{Type: OpeningTagEndToken, Name: "br", Value: ">"},
	}, tokens)
}

func TestTokenizerUnterminatedQuotedAttribute(t *testing.T) {
	tokens := collectTokens(t, `<div id="main`)
	require.Equal(t, []Token{
		{Type: OpeningTagToken, Name: "div"},
		{Type: AttributeToken, Name: "id", Value: "main"},
	}, tokens)
}

func TestTokenizerComment(t *testing.T) {
	tokens := collectTokens(t, "<!-- This is a comment -->")
	require.Equal(t, []Token{{Type: CommentToken, Value: " This is a comment "}}, tokens)
}

func TestTokenizerUnterminatedComment(t *testing.T) {
	tokens := collectTokens(t, "<!--x-- >")
	require.Equal(t, []Token{{Type: CommentToken, Value: "x-- >"}}, tokens)
}

func TestTokenizerDoctypePassesThroughAsText(t *testing.T) {
	tokens := collectTokens(t, "<!DOCTYPE html>")
	require.Equal(t, []Token{{Type: TextToken, Value: "<!DOCTYPE html>"}}, tokens)
}

func TestTokenizerScriptRawText(t *testing.T) {
	tokens := collectTokens(t, `<script>alert("</script>")</script>`)
	require.Equal(t, []Token{
		{Type: OpeningTagToken, Name: "script"},
		{Type: OpeningTagEndToken, Name: "script", Value: ">"},
		{Type: TextToken, Value: `alert("`},
		{Type: ClosingTagToken, Name: "script"},
		{Type: TextToken, Value: `")`},
		{Type: ClosingTagToken, Name: "script"},
	}, tokens)
}

func TestTokenizerUnterminatedScript(t *testing.T) {
	tokens := collectTokens(t, `<script>alert(1)`)
	require.Equal(t, []Token{
		{Type: OpeningTagToken, Name: "script"},
		{Type: OpeningTagEndToken, Name: "script", Value: ">"},
		{Type: TextToken, Value: "alert(1)"},
	}, tokens)
}

func TestTokenizerUppercaseScriptDoesNotEnterRawText(t *testing.T) {
	// No normalization anywhere (spec.md §9): the raw-text switch is a
	// literal comparison against "script", so <SCRIPT> is tokenized
	// as an ordinary element and its body is parsed as markup.
	tokens := collectTokens(t, "<SCRIPT>1 < 2</SCRIPT>")
	require.Equal(t, []Token{
		{Type: OpeningTagToken, Name: "SCRIPT"},
		{Type: OpeningTagEndToken, Name: "SCRIPT", Value: ">"},
		{Type: TextToken, Value: "1 < 2"},
		{Type: ClosingTagToken, Name: "SCRIPT"},
	}, tokens)
}

func TestTokenizerStrayAngleBracketFallback(t *testing.T) {
	tokens := collectTokens(t, "< br>a<<<br>")
	// "< br>" has a space before the tag name, so OpeningTagStart
	// never matches; the '<' falls back to a single literal char, which
	// is then coalesced with the following text (including the next two
	// stray '<' of "<<<br>") into one Text token.
	require.Equal(t, TextToken, tokens[0].Type)
	require.Equal(t, "< br>a<<", tokens[0].Value)
}

func TestTokenizerDoesNotEmitAdjacentTextTokens(t *testing.T) {
	tokens := collectTokens(t, "a<<b")
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Type == TextToken {
			require.NotEqual(t, TextToken, tokens[i-1].Type, "two adjacent Text tokens at index %d", i)
		}
	}
}

func TestTokenizerNamespacedTagName(t *testing.T) {
	tokens := collectTokens(t, "<svg:rect>")
	require.Equal(t, "svg:rect", tokens[0].Name)
}

func TestTokenizerMultipleTokens(t *testing.T) {
	tokens := collectTokens(t, "<html><body>Hello</body></html>")
	require.Equal(t, []Token{
		{Type: OpeningTagToken, Name: "html"},
		{Type: OpeningTagEndToken, Name: "html", Value: ">"},
		{Type: OpeningTagToken, Name: "body"},
		{Type: OpeningTagEndToken, Name: "body", Value: ">"},
		{Type: TextToken, Value: "Hello"},
		{Type: ClosingTagToken, Name: "body"},
		{Type: ClosingTagToken, Name: "html"},
	}, tokens)
}

func TestTokenizerStartAndDoneSentinels(t *testing.T) {
	tok := NewTokenizer("a")
	first, ok := tok.Next()
	require.True(t, ok)
	require.Equal(t, StartToken, first.Type)

	second, ok := tok.Next()
	require.True(t, ok)
	require.Equal(t, TextToken, second.Type)

	third, ok := tok.Next()
	require.True(t, ok)
	require.Equal(t, DoneToken, third.Type)

	_, ok = tok.Next()
	require.False(t, ok)
}

func TestTokenizeIterator(t *testing.T) {
	var names []string
	for tok := range Tokenize("<a><b>") {
		if tok.Type == OpeningTagToken {
			names = append(names, tok.Name)
		}
	}
	require.Equal(t, []string{"a", "b"}, names)
}
