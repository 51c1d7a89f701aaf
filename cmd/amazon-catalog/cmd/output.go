package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/donaldgifford/amazon-catalog/internal/amazon"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printItemDetail(item *amazon.Item) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ASIN:\t%s\n", orAbsent(item.ASIN))
	tw.writef("Title:\t%s\n", orAbsent(item.Title))
	return tw.finish()
}

func printSearchTable(search *amazon.Search) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ASIN\tTITLE\n")
	for _, item := range search.Items() {
		tw.writef("%s\t%s\n", orAbsent(item.ASIN), orAbsent(item.Title))
	}
	if err := tw.finish(); err != nil {
		return err
	}
	_, err := fmt.Printf("\n%d of %d total results\n",
		len(search.Items()), search.TotalResults())
	return err
}

// orAbsent renders an optional accessor for table output.
func orAbsent(get func() (string, bool)) string {
	if v, ok := get(); ok {
		return v
	}
	return "-"
}

type searchOutput struct {
	TotalResults int              `json:"total_results"`
	Items        []map[string]any `json:"items"`
}

func searchJSON(search *amazon.Search) searchOutput {
	out := searchOutput{
		TotalResults: search.TotalResults(),
		Items:        make([]map[string]any, 0, len(search.Items())),
	}
	for _, item := range search.Items() {
		out.Items = append(out.Items, item.Raw())
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
