package report

import (
	"testing"

	"github.com/alexanderramin/overtime/internal/aggregate"
	"github.com/alexanderramin/overtime/internal/domain"
	"github.com/alexanderramin/overtime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func column(g *Grid, col int) []string {
	cells := make([]string, 0, g.Rows())
	for row := 0; row < g.Rows(); row++ {
		cells = append(cells, g.Cell(col, row))
	}
	return cells
}

func TestBuild_ColumnShape(t *testing.T) {
	// Two days with 2 and 5 entries: columns of length 3 and 6 before
	// padding, 6 after, 15 once the summary block lands.
	entries := append(
		testutil.Entries("2024-01-01", 100, 200),
		testutil.Entries("2024-01-02", 10, 20, 30, 40, 50)...,
	)
	sum := aggregate.Aggregate(entries, domain.BaselineSeconds)

	g, err := Build(sum)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 15, g.Rows(), "max bucket 5 + label + 9 summary rows")
}

func TestBuild_ColumnContent(t *testing.T) {
	entries := []domain.TimeEntry{
		testutil.Entry("2024-01-01", 3600),
		testutil.Entry("2024-01-01", 21600),
		testutil.Entry("2024-01-02", 28800),
	}
	sum := aggregate.Aggregate(entries, domain.BaselineSeconds)

	g, err := Build(sum)
	require.NoError(t, err)

	want := []string{
		"2024-01-01",
		"3600",
		"21600",
		"",
		"Total time worked that day :",
		"25200",
		"",
		"Extra time worked that day :",
		"0",
		"",
		"Cumulated extra time worked :",
		"0",
	}
	assert.Equal(t, want, column(g, 0))

	want = []string{
		"2024-01-02",
		"28800",
		"", // padded to the longer column before the summary block
		"",
		"Total time worked that day :",
		"28800",
		"",
		"Extra time worked that day :",
		"3600",
		"",
		"Cumulated extra time worked :",
		"3600",
	}
	assert.Equal(t, want, column(g, 1))
}

func TestBuild_NegativeExtraRendersWithMinusSign(t *testing.T) {
	sum := aggregate.Aggregate(testutil.Entries("2024-01-01", 18000), domain.BaselineSeconds)

	g, err := Build(sum)
	require.NoError(t, err)

	cells := column(g, 0)
	assert.Contains(t, cells, "-7200")
}

func TestBuild_ColumnsAscendingRegardlessOfDiscoveryOrder(t *testing.T) {
	entries := []domain.TimeEntry{
		testutil.Entry("2024-03-01", 1),
		testutil.Entry("2024-01-01", 2),
		testutil.Entry("2024-02-01", 3),
	}
	sum := aggregate.Aggregate(entries, domain.BaselineSeconds)

	g, err := Build(sum)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", g.Cell(0, 0))
	assert.Equal(t, "2024-02-01", g.Cell(1, 0))
	assert.Equal(t, "2024-03-01", g.Cell(2, 0))
}

func TestSortColumns_ReordersByDayLabel(t *testing.T) {
	g := &Grid{}
	g.AddColumn([]string{"2024-02-01", "1"})
	g.AddColumn([]string{"2024-01-01", "2"})

	g.SortColumns()

	assert.Equal(t, "2024-01-01", g.Cell(0, 0))
	assert.Equal(t, "2024-02-01", g.Cell(1, 0))
}

func TestSortColumns_EmptyColumnSortsFirst(t *testing.T) {
	g := &Grid{}
	g.AddColumn([]string{"2024-01-01", "1"})
	g.AddColumn(nil)

	g.SortColumns()

	assert.Equal(t, "", g.Cell(0, 0))
	assert.Equal(t, "2024-01-01", g.Cell(1, 0))
}

func TestRows_ValidBeforeAlign(t *testing.T) {
	g := &Grid{}
	g.AddColumn([]string{"2024-01-01", "1", "2"})
	g.AddColumn([]string{"2024-01-02"})

	assert.Equal(t, 3, g.Rows())
}

func TestAlign_PadsToLongestColumn(t *testing.T) {
	g := &Grid{}
	g.AddColumn([]string{"2024-01-01", "1", "2"})
	g.AddColumn([]string{"2024-01-02", "3"})

	g.Align()

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, []string{"2024-01-02", "3", ""}, column(g, 1))
}

func TestAlign_Idempotent(t *testing.T) {
	g := &Grid{}
	g.AddColumn([]string{"2024-01-01", "1", "2"})
	g.AddColumn([]string{"2024-01-02", "3"})

	g.Align()
	first := [][]string{column(g, 0), column(g, 1)}
	rows := g.Rows()

	g.Align()

	assert.Equal(t, rows, g.Rows())
	assert.Equal(t, first, [][]string{column(g, 0), column(g, 1)})
}

func TestAlign_NeverReordersCells(t *testing.T) {
	g := &Grid{}
	g.AddColumn([]string{"2024-01-01", "7", "8", "9"})
	g.AddColumn([]string{"2024-01-02"})

	g.Align()

	assert.Equal(t, []string{"2024-01-01", "7", "8", "9"}, column(g, 0))
}

func TestAppendTotals_UnknownDayLabel(t *testing.T) {
	sum := aggregate.Aggregate(testutil.Entries("2024-01-01", 100), domain.BaselineSeconds)

	g := &Grid{}
	g.AddColumn([]string{"2024-01-01", "100"})
	g.AddColumn([]string{"2030-12-31", "5"}) // never aggregated

	err := g.appendTotals(sum)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestAppendTotals_UnparsableDayLabel(t *testing.T) {
	sum := aggregate.Aggregate(testutil.Entries("2024-01-01", 100), domain.BaselineSeconds)

	g := &Grid{}
	g.AddColumn([]string{"not-a-day", "100"})

	err := g.appendTotals(sum)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestBuild_EmptySummary(t *testing.T) {
	sum := aggregate.Aggregate(nil, domain.BaselineSeconds)

	g, err := Build(sum)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Cols())
	assert.Equal(t, 0, g.Rows())
}
