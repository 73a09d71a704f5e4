// Package diagram renders a grid as a printable PDF board diagram.
package diagram

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"goban/internal/domain/board"
	"goban/internal/grid"
)

const (
	pageWidth = 210.0 // A4, mm
	margin    = 20.0
	top       = 35.0
)

// Options for Render. Title is printed above the board.
type Options struct {
	Title  string
	Winner board.Side
}

// Render writes a one-page PDF with the board, captures and winner.
func Render(w io.Writer, g grid.Grid, opts Options) error {
	dim := g.Dimension()
	span := max(dim.Columns, dim.Rows)
	cell := (pageWidth - 2*margin) / float64(span)
	stone := cell * 0.46

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(margin, 20, opts.Title)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, 28, fmt.Sprintf("%s  captured: black %d, white %d  winner: %s",
		dim, g.CapturedBlack(), g.CapturedWhite(), opts.Winner))

	x0 := margin + cell/2
	y0 := top + cell/2
	width := float64(dim.Columns-1) * cell
	height := float64(dim.Rows-1) * cell

	pdf.SetFillColor(220, 179, 92)
	pdf.Rect(margin, top, float64(dim.Columns)*cell, float64(dim.Rows)*cell, "F")

	pdf.SetDrawColor(40, 40, 40)
	pdf.SetLineWidth(0.2)
	for col := 0; col < dim.Columns; col++ {
		x := x0 + float64(col)*cell
		pdf.Line(x, y0, x, y0+height)
	}
	for row := 0; row < dim.Rows; row++ {
		y := y0 + float64(row)*cell
		pdf.Line(x0, y, x0+width, y)
	}

	for col := 0; col < dim.Columns; col++ {
		for row := 0; row < dim.Rows; row++ {
			side, err := g.Get(board.Position{Column: col, Row: row})
			if err != nil {
				return fmt.Errorf("render %d,%d: %w", col, row, err)
			}
			switch side {
			case board.Black:
				pdf.SetFillColor(0, 0, 0)
			case board.White:
				pdf.SetFillColor(255, 255, 255)
			default:
				continue
			}
			pdf.Circle(x0+float64(col)*cell, y0+float64(row)*cell, stone, "FD")
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
