package entities

import "github.com/gohtml/htmlevents/html"

// DecodingTextFilter returns a function that decodes character
// references in a ParseEvent's Text field (TextEvent and CommentEvent
// only) and leaves every other event untouched, so it composes
// directly with a range-over-func loop over html.Parse:
//
//	for ev := range html.Parse(src) {
//	    ev = entities.DecodingTextFilter()(ev)
//	    ...
//	}
func DecodingTextFilter() func(html.ParseEvent) html.ParseEvent {
	return func(ev html.ParseEvent) html.ParseEvent {
		switch ev.Type {
		case html.TextEvent, html.CommentEvent:
			ev.Text = Decode(ev.Text)
		}
		return ev
	}
}
