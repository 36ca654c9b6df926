package html

// Static tables lifted verbatim from the HTML5 optional-tag rules
// (spec.md §4.4-§4.5). All names are lowercase; lookups are
// performed on the tag name exactly as captured by the chunkers,
// with no case normalization (see the "case handling" design note in
// SPEC_FULL.md §5 — this is a deliberately reproduced, not fixed,
// quirk).

// voidElements never have content or a close tag: their Open event
// is immediately followed by a Close event with SelfClosing true.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"command": true, "embed": true, "hr": true, "img": true,
	"input": true, "keygen": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// closedByParent lists tags whose open frame is auto-closed when a
// closing tag for their parent is encountered two levels up the
// stack.
var closedByParent = map[string]bool{
	"p": true, "li": true, "dd": true, "rb": true, "rt": true,
	"rtc": true, "rp": true, "optgroup": true, "option": true,
	"tbody": true, "tfoot": true, "tr": true, "td": true, "th": true,
}

// closedBySibling maps a tag T to the set of tags whose *opening*
// implicitly closes an open T sitting on top of the stack.
var closedBySibling = map[string]map[string]bool{
	"p": set("address", "article", "aside", "blockquote", "div", "dl",
		"fieldset", "footer", "form", "h1", "h2", "h3", "h4", "h5", "h6",
		"header", "hgroup", "hr", "main", "nav", "ol", "p", "pre",
		"section", "table", "ul"),
	"li":       set("li"),
	"dt":       set("dt", "dd"),
	"dd":       set("dt", "dd"),
	"rb":       set("rb", "rt", "rtc", "rp"),
	"rt":       set("rb", "rt", "rtc", "rp"),
	"rtc":      set("rb", "rtc", "rp"),
	"rp":       set("rb", "rt", "rtc", "rp"),
	"optgroup": set("optgroup"),
	"option":   set("option", "optgroup"),
	"thead":    set("tbody", "tfoot"),
	"tbody":    set("tbody", "tfoot"),
	"tfoot":    set("tbody"),
	"tr":       set("tr"),
	"td":       set("td", "th"),
	"th":       set("td", "th"),
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func isVoidElement(name string) bool {
	return voidElements[name]
}

// closesOnSibling reports whether an open tag named top must be
// implicitly closed because name is about to be opened on top of it.
func closesOnSibling(top, name string) bool {
	siblings, ok := closedBySibling[top]
	return ok && siblings[name]
}
