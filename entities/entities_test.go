package entities

import (
	"testing"

	"github.com/gohtml/htmlevents/html"
	"github.com/stretchr/testify/require"
)

func TestDecodeNamedEntities(t *testing.T) {
	require.Equal(t, "<div> & 'x'", Decode("&lt;div&gt; &amp; &apos;x&apos;"))
}

func TestDecodeNumericEntities(t *testing.T) {
	require.Equal(t, "A", Decode("&#65;"))
	require.Equal(t, "A", Decode("&#x41;"))
	require.Equal(t, "A", Decode("&#X41;"))
}

func TestDecodeLeavesUnknownEntityUntouched(t *testing.T) {
	require.Equal(t, "&notareal;", Decode("&notareal;"))
}

func TestDecodeLeavesMalformedNumericUntouched(t *testing.T) {
	require.Equal(t, "&#xzz;", Decode("&#xzz;"))
	require.Equal(t, "&#9999999999;", Decode("&#9999999999;"))
}

func TestDecodeLeavesBareAmpersandUntouched(t *testing.T) {
	require.Equal(t, "Tom & Jerry", Decode("Tom & Jerry"))
}

func TestDecodeNoAmpersandIsNoOp(t *testing.T) {
	input := "plain text, no entities here"
	require.Equal(t, input, Decode(input))
}

func TestDecodeStopsScanAtStrayAngleBracket(t *testing.T) {
	// An unterminated reference followed by '<' must not swallow into
	// the next tag's markup.
	require.Equal(t, "&amp<b>", Decode("&amp<b>"))
}

func TestDecodingTextFilterOnlyTouchesTextAndComment(t *testing.T) {
	filter := DecodingTextFilter()

	open := filter(html.ParseEvent{Type: html.OpenEvent, Name: "div"})
	require.Equal(t, "div", open.Name)

	text := filter(html.ParseEvent{Type: html.TextEvent, Text: "Tom &amp; Jerry"})
	require.Equal(t, "Tom & Jerry", text.Text)

	comment := filter(html.ParseEvent{Type: html.CommentEvent, Text: "&copy; 2026"})
	require.Equal(t, "© 2026", comment.Text)
}

func TestDecodingTextFilterOverParseStream(t *testing.T) {
	filter := DecodingTextFilter()
	var texts []string
	for ev := range html.Parse("<p>Tom &amp; Jerry</p>") {
		ev = filter(ev)
		if ev.Type == html.TextEvent {
			texts = append(texts, ev.Text)
		}
	}
	require.Equal(t, []string{"Tom & Jerry"}, texts)
}
