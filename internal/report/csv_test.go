package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexanderramin/overtime/internal/aggregate"
	"github.com/alexanderramin/overtime/internal/domain"
	"github.com/alexanderramin/overtime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTo_FlattensRowMajor(t *testing.T) {
	g := &Grid{}
	g.AddColumn([]string{"2024-01-01", "100"})
	g.AddColumn([]string{"2024-01-02", "200"})
	g.Align()

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)

	want := "2024-01-01;2024-01-02;\n100;200;\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
}

func TestWriteTo_FullReport(t *testing.T) {
	entries := []domain.TimeEntry{
		testutil.Entry("2024-01-01", 3600),
		testutil.Entry("2024-01-01", 21600),
		testutil.Entry("2024-01-02", 28800),
	}
	sum := aggregate.Aggregate(entries, domain.BaselineSeconds)

	g, err := Build(sum)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = g.WriteTo(&buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, g.Rows())

	assert.Equal(t, "2024-01-01;2024-01-02;", lines[0])
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, ";"), "every cell is followed by the separator: %q", line)
		assert.Equal(t, g.Cols(), strings.Count(line, ";"))
	}
	assert.Contains(t, buf.String(), "Total time worked that day :;Total time worked that day :;")
}

func TestWriteTo_WithoutPriorAlign(t *testing.T) {
	g := &Grid{}
	g.AddColumn([]string{"2024-01-01", "100", "200"})
	g.AddColumn([]string{"2024-01-02", "300"})

	var buf bytes.Buffer
	_, err := g.WriteTo(&buf)
	require.NoError(t, err)

	want := "2024-01-01;2024-01-02;\n100;300;\n200;;\n"
	assert.Equal(t, want, buf.String(), "rows come from the longest column even before padding")
}

func TestWriteTo_EmptyGrid(t *testing.T) {
	g := &Grid{}

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}
