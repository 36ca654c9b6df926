// Command htmlevents parses an HTML document and prints either its
// flat parse-event stream or a reconstructed DOM tree.
//
// Adapted from the teacher's cmd/browser (lukehoban-browser), which
// ran a fixed parse/style/layout pipeline over a file argument and
// printed each stage with hand-rolled indentation. htmlevents trims
// that pipeline down to this module's scope (tokenizing/parsing) and
// replaces the bare os.Args argument handling with cobra flags.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gohtml/htmlevents/domtree"
	"github.com/gohtml/htmlevents/entities"
	"github.com/gohtml/htmlevents/html"
	"github.com/gohtml/htmlevents/log"
)

var (
	format         string
	decodeEntities bool
	verbose        bool
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "htmlevents [file]",
		Short: "Tokenize and parse HTML, printing events or a DOM tree",
		Long: "htmlevents streams an HTML document through the permissive html\n" +
			"tokenizer/parser and prints either the raw parse-event sequence or\n" +
			"a reconstructed DOM tree. With no file argument it reads stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}
	cmd.Flags().StringVar(&format, "format", "events", `output format: "events" or "dom"`)
	cmd.Flags().BoolVar(&decodeEntities, "decode-entities", false, "decode named/numeric character references in text and comments")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace tokenizer/parser state transitions at debug level")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	src, err := readSource(args)
	if err != nil {
		return fmt.Errorf("htmlevents: %w", err)
	}

	switch format {
	case "events":
		return printEvents(cmd.OutOrStdout(), src)
	case "dom":
		return printDOM(cmd.OutOrStdout(), src)
	default:
		return fmt.Errorf("htmlevents: unknown --format %q (want \"events\" or \"dom\")", format)
	}
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(content), nil
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(content), nil
}

func printEvents(w io.Writer, src string) error {
	filter := entities.DecodingTextFilter()
	for ev := range html.Parse(src) {
		if decodeEntities {
			ev = filter(ev)
		}
		fmt.Fprintln(w, formatEvent(ev))
	}
	return nil
}

func formatEvent(ev html.ParseEvent) string {
	switch ev.Type {
	case html.OpenEvent:
		var attrs strings.Builder
		for _, a := range ev.Attributes {
			fmt.Fprintf(&attrs, " %s=%q", a.Name, a.Value)
		}
		if ev.SelfClosing {
			return fmt.Sprintf("open  <%s%s /> (self-closing)", ev.Name, attrs.String())
		}
		return fmt.Sprintf("open  <%s%s>", ev.Name, attrs.String())
	case html.TextEvent:
		return fmt.Sprintf("text  %q", ev.Text)
	case html.CommentEvent:
		return fmt.Sprintf("cmnt  %q", ev.Text)
	case html.CloseEvent:
		return fmt.Sprintf("close </%s>", ev.Name)
	default:
		return fmt.Sprintf("?     %+v", ev)
	}
}

func printDOM(w io.Writer, src string) error {
	var root *domtree.Node
	if decodeEntities {
		b := domtree.NewBuilder()
		filter := entities.DecodingTextFilter()
		for ev := range html.Parse(src) {
			b.Feed(filter(ev))
		}
		root = b.Root()
	} else {
		root = domtree.Build(src)
	}
	printNode(w, root, 0)
	return nil
}

func printNode(w io.Writer, n *domtree.Node, depth int) {
	prefix := strings.Repeat("  ", depth)
	switch n.Type {
	case domtree.DocumentNode:
		fmt.Fprintf(w, "%s[document]\n", prefix)
	case domtree.ElementNode:
		var attrs strings.Builder
		for _, a := range n.Attributes {
			fmt.Fprintf(&attrs, " %s=%q", a.Name, a.Value)
		}
		fmt.Fprintf(w, "%s<%s%s>\n", prefix, n.Name, attrs.String())
	case domtree.TextNode:
		text := strings.TrimSpace(n.Text)
		if text != "" {
			fmt.Fprintf(w, "%s%q\n", prefix, text)
		}
	case domtree.CommentNode:
		fmt.Fprintf(w, "%s<!--%s-->\n", prefix, n.Text)
	}
	for _, child := range n.Children {
		printNode(w, child, depth+1)
	}
}
