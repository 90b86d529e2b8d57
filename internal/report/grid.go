// Package report shapes an aggregated summary into a column-per-day grid of
// string cells, padded to equal length and suitable for flat serialization.
package report

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/alexanderramin/overtime/internal/aggregate"
	"github.com/alexanderramin/overtime/internal/domain"
)

// ErrUnknownDay indicates a column whose day label has no corresponding
// aggregated figures. The grid is only ever built from a summary's own day
// list, so hitting this means a construction bug.
var ErrUnknownDay = errors.New("no aggregated figures for column day")

// Summary-block row labels, kept byte-for-byte stable for downstream
// consumers of the exported file.
const (
	labelDayTotal   = "Total time worked that day :"
	labelDayExtra   = "Extra time worked that day :"
	labelCumulative = "Cumulated extra time worked :"
)

// Grid is an ordered sequence of columns, each an ordered sequence of string
// cells. Row 0 of every column is the day label. After Align all columns
// have equal length.
type Grid struct {
	columns [][]string
	maxLen  int
}

// AddColumn appends a column to the grid. Cell 0 is the column's day label;
// the cells are kept as given, and nothing is padded or reordered until
// Align or SortColumns run.
func (g *Grid) AddColumn(cells []string) {
	g.columns = append(g.columns, cells)
}

// SortColumns reorders columns ascending by their day label. Construction
// order is arbitrary, so this must run before output regardless of how the
// columns were added. A column with no cells sorts as an empty label.
func (g *Grid) SortColumns() {
	sort.SliceStable(g.columns, func(i, j int) bool {
		return label(g.columns[i]) < label(g.columns[j])
	})
}

func label(col []string) string {
	if len(col) == 0 {
		return ""
	}
	return col[0]
}

// Align pads every column with empty cells up to the longest column.
// Padding never reorders existing cells, and re-running on an already
// aligned grid is a no-op.
func (g *Grid) Align() {
	g.updateMaxLen()
	for i, col := range g.columns {
		for len(col) < g.maxLen {
			col = append(col, "")
		}
		g.columns[i] = col
	}
}

func (g *Grid) updateMaxLen() {
	for _, col := range g.columns {
		if len(col) > g.maxLen {
			g.maxLen = len(col)
		}
	}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return len(g.columns) }

// Rows returns the row count: the length of the longest column. Valid even
// before Align has run; shorter columns simply read as empty past their end.
func (g *Grid) Rows() int {
	g.updateMaxLen()
	return g.maxLen
}

// Cell returns the cell at (col, row). Rows beyond a column's own length
// read as empty, so cells stay independently addressable even before Align.
func (g *Grid) Cell(col, row int) string {
	c := g.columns[col]
	if row >= len(c) {
		return ""
	}
	return c[row]
}

// Build assembles the full report grid from a summary: one column per day
// (label first, then each entry duration in insertion order), columns
// re-sorted ascending by day, then the fixed summary block appended to every
// column.
func Build(sum *aggregate.Summary) (*Grid, error) {
	g := &Grid{}
	for _, d := range sum.Days() {
		cells := []string{d.String()}
		for _, sec := range sum.Bucket(d) {
			cells = append(cells, strconv.FormatInt(sec, 10))
		}
		g.AddColumn(cells)
	}
	g.SortColumns()
	if err := g.appendTotals(sum); err != nil {
		return nil, err
	}
	return g, nil
}

// appendTotals aligns the columns, then appends the nine summary rows to
// each: blank, total label and value, blank, extra label and value, blank,
// cumulative label and value. Extra time may render negative. A final Align
// re-pads defensively; the block is fixed-size so it changes nothing.
func (g *Grid) appendTotals(sum *aggregate.Summary) error {
	g.Align()
	for i, col := range g.columns {
		day, err := domain.ParseDay(col[0])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownDay, err)
		}
		total, err := sum.TotalFor(day)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownDay, day)
		}
		extra, err := sum.ExtraFor(day)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownDay, day)
		}
		cum, err := sum.CumulativeFor(day)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownDay, day)
		}

		col = append(col,
			"",
			labelDayTotal,
			strconv.FormatInt(total, 10),
			"",
			labelDayExtra,
			strconv.FormatInt(extra, 10),
			"",
			labelCumulative,
			strconv.FormatInt(cum, 10),
		)
		g.columns[i] = col
	}
	g.Align()
	return nil
}
