package report

import (
	"bufio"
	"io"
)

// WriteTo writes the flattened text form of the grid: one line per row,
// each cell followed by a ';' separator, columns in their current order.
// Implements io.WriterTo.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			bw.WriteString(g.Cell(col, row))
			bw.WriteByte(';')
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
