package batch

import (
	"io"
	"sort"
	"strconv"

	"github.com/nao1215/markdown"

	barcodegen "github.com/ericlevine/barcodegen"
)

// WriteMarkdownReport writes a GitHub flavored Markdown summary of results
// to w: a totals table, a failure breakdown by kind and one row per item.
func WriteMarkdownReport(w io.Writer, results []Result) error {
	s := Summarize(results)
	md := markdown.NewMarkdown(w)

	md.H1("Barcode Batch Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Total", "Succeeded", "Failed"},
		Rows: [][]string{{
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Succeeded),
			strconv.Itoa(s.Failed),
		}},
	})
	md.PlainText("")

	if s.Failed > 0 {
		kinds := make([]string, 0, len(s.Kinds))
		for k := range s.Kinds {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		rows := make([][]string, 0, len(kinds))
		for _, k := range kinds {
			rows = append(rows, []string{k, strconv.Itoa(s.Kinds[k])})
		}
		md.H2("Failures")
		md.PlainText("")
		md.Table(markdown.TableSet{Header: []string{"Kind", "Count"}, Rows: rows})
		md.PlainText("")
	}

	md.H2("Items")
	md.PlainText("")
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, itemRow(r))
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Symbology", "Format", "Status", "Detail"},
		Rows:   rows,
	})

	return md.Build()
}

func itemRow(r Result) []string {
	format := r.Request.Format.Resolve(r.Request.Symbology)
	if !r.OK() {
		return []string{strconv.Itoa(r.Index), r.Request.Symbology.String(), format.String(), "failed", barcodegen.ErrorKind(r.Err)}
	}
	detail := strconv.Itoa(r.Image.Width) + "x" + strconv.Itoa(r.Image.Height) + " px, " + strconv.Itoa(r.Image.Len()) + " bytes"
	return []string{strconv.Itoa(r.Index), r.Request.Symbology.String(), format.String(), "ok", detail}
}
