// Package report renders item and member listings as fixed-width text tables.
// Every table ends with a TOTAL row and a blank line.
package report

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"Fundraiser/internal/catalog"
	"Fundraiser/internal/ledger"
)

const (
	itemIDWidth   = 3
	memberIDWidth = 8
	nameWidth     = catalog.MaxNameLen
	numWidth      = 6

	totalLabel = "TOTAL"
)

// width measures names the same way whatever the locale; the package-level
// runewidth functions widen ambiguous characters under CJK locales.
var width = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

type ItemRow struct {
	ID    int
	Name  string
	Cost  int
	Sold  int
	Total int
}

type MemberRow struct {
	ID    string
	Name  string
	Sold  int
	Total int
}

func ItemRowOf(it *catalog.Item) ItemRow {
	return ItemRow{ID: it.ID, Name: it.Name, Cost: it.Cost, Sold: it.Sold, Total: it.Revenue()}
}

func LineRowOf(l ledger.Line) ItemRow {
	return ItemRow{ID: l.Item.ID, Name: l.Item.Name, Cost: l.Item.Cost, Sold: l.Quantity, Total: l.Revenue}
}

func MemberRowOf(st ledger.Standing) MemberRow {
	return MemberRow{ID: st.Member.ID, Name: st.Member.Name, Sold: st.Sold, Total: st.Revenue}
}

// Items writes an item table with right-aligned ids.
func Items(w io.Writer, rows []ItemRow) error {
	return writeItems(w, rows, "%*d")
}

// ItemDetail writes the per-member item table, which left-aligns ids.
func ItemDetail(w io.Writer, rows []ItemRow) error {
	return writeItems(w, rows, "%-*d")
}

func writeItems(w io.Writer, rows []ItemRow, idVerb string) error {
	tw := &tableWriter{w: w}

	tw.printf("%-*s %s %*s %*s %*s\n",
		itemIDWidth, "ID", pad("Name"), numWidth, "Cost", numWidth, "Sold", numWidth, "Total")

	var sold, total int
	for _, r := range rows {
		tw.printf(idVerb+" %s %*d %*d %*d\n",
			itemIDWidth, r.ID, pad(r.Name), numWidth, r.Cost, numWidth, r.Sold, numWidth, r.Total)
		sold += r.Sold
		total += r.Total
	}

	// TOTAL spills two columns past the id column; the narrower sold column
	// brings the numbers back into line.
	tw.printf("%*s %s %*s %*d %*d\n\n",
		itemIDWidth, totalLabel, pad(""), numWidth, "", numWidth-2, sold, numWidth, total)

	return tw.err
}

func Members(w io.Writer, rows []MemberRow) error {
	tw := &tableWriter{w: w}

	tw.printf("%-*s %s %*s %*s\n", memberIDWidth, "ID", pad("Name"), numWidth, "Sold", numWidth, "Total")

	var sold, total int
	for _, r := range rows {
		tw.printf("%-*s %s %*d %*d\n", memberIDWidth, r.ID, pad(r.Name), numWidth, r.Sold, numWidth, r.Total)
		sold += r.Sold
		total += r.Total
	}

	tw.printf("%-*s %s %*d %*d\n\n", memberIDWidth, totalLabel, pad(""), numWidth, sold, numWidth, total)

	return tw.err
}

// pad left-justifies s in the name column by display width.
func pad(s string) string {
	return width.FillRight(s, nameWidth)
}

type tableWriter struct {
	w   io.Writer
	err error
}

func (t *tableWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
