// Package sheet describes the physical layout of a printed label sheet: the
// page dimensions, margins, and the grid the labels flow into.
package sheet

import "fmt"

// Default layout values, sized for an A4 sheet of 13x5 labels.
const (
	DefaultPageWidthMM    = 210.0
	DefaultPageHeightMM   = 297.0
	DefaultMarginTopMM    = 10.0
	DefaultMarginLeftMM   = 5.0
	DefaultMarginBottomMM = 10.0
	DefaultMarginRightMM  = 5.0
	DefaultGridRows       = 13
	DefaultGridColumns    = 5
	DefaultRowSpacingMM   = 0.0
	DefaultColSpacingMM   = 2.5
)

// Geometry is the immutable layout of one label sheet. The zero value is
// not useful; start from NewGeometry and derive variants with the With*
// methods.
type Geometry struct {
	pageWidthMM    float64
	pageHeightMM   float64
	marginTopMM    float64
	marginLeftMM   float64
	marginBottomMM float64
	marginRightMM  float64
	gridRows       int
	gridColumns    int
	rowSpacingMM   float64
	colSpacingMM   float64
	skip           int
}

// NewGeometry creates a Geometry with the default A4 layout.
func NewGeometry() Geometry {
	return Geometry{
		pageWidthMM:    DefaultPageWidthMM,
		pageHeightMM:   DefaultPageHeightMM,
		marginTopMM:    DefaultMarginTopMM,
		marginLeftMM:   DefaultMarginLeftMM,
		marginBottomMM: DefaultMarginBottomMM,
		marginRightMM:  DefaultMarginRightMM,
		gridRows:       DefaultGridRows,
		gridColumns:    DefaultGridColumns,
		rowSpacingMM:   DefaultRowSpacingMM,
		colSpacingMM:   DefaultColSpacingMM,
	}
}

// PageWidthMM returns the page width in millimeters.
func (g Geometry) PageWidthMM() float64 { return g.pageWidthMM }

// PageHeightMM returns the page height in millimeters.
func (g Geometry) PageHeightMM() float64 { return g.pageHeightMM }

// MarginTopMM returns the margin above the first row.
func (g Geometry) MarginTopMM() float64 { return g.marginTopMM }

// MarginLeftMM returns the margin left of the first column.
func (g Geometry) MarginLeftMM() float64 { return g.marginLeftMM }

// MarginBottomMM returns the margin below the last row.
func (g Geometry) MarginBottomMM() float64 { return g.marginBottomMM }

// MarginRightMM returns the margin right of the last column.
func (g Geometry) MarginRightMM() float64 { return g.marginRightMM }

// GridRows returns the number of label rows per page.
func (g Geometry) GridRows() int { return g.gridRows }

// GridColumns returns the number of label columns per page.
func (g Geometry) GridColumns() int { return g.gridColumns }

// RowSpacingMM returns the gap between grid rows.
func (g Geometry) RowSpacingMM() float64 { return g.rowSpacingMM }

// ColSpacingMM returns the gap between grid columns.
func (g Geometry) ColSpacingMM() float64 { return g.colSpacingMM }

// Skip returns how many leading grid cells are left empty, for reusing
// partially printed sheets.
func (g Geometry) Skip() int { return g.skip }

// CellsPerPage returns the number of grid cells on one page.
func (g Geometry) CellsPerPage() int { return g.gridRows * g.gridColumns }

// WithPageSizeMM returns a copy with the given page dimensions.
func (g Geometry) WithPageSizeMM(width, height float64) Geometry {
	g.pageWidthMM = width
	g.pageHeightMM = height
	return g
}

// WithMarginsMM returns a copy with the given margins.
func (g Geometry) WithMarginsMM(top, left, bottom, right float64) Geometry {
	g.marginTopMM = top
	g.marginLeftMM = left
	g.marginBottomMM = bottom
	g.marginRightMM = right
	return g
}

// WithGrid returns a copy with the given grid dimensions.
func (g Geometry) WithGrid(rows, columns int) Geometry {
	g.gridRows = rows
	g.gridColumns = columns
	return g
}

// WithSpacingMM returns a copy with the given grid gaps.
func (g Geometry) WithSpacingMM(row, col float64) Geometry {
	g.rowSpacingMM = row
	g.colSpacingMM = col
	return g
}

// WithSkip returns a copy that leaves the first n grid cells empty.
func (g Geometry) WithSkip(n int) Geometry {
	g.skip = n
	return g
}

// Validate rejects layouts that cannot hold any label.
func (g Geometry) Validate() error {
	if g.pageWidthMM <= 0 || g.pageHeightMM <= 0 {
		return fmt.Errorf("page size must be positive, got %gx%g mm", g.pageWidthMM, g.pageHeightMM)
	}
	if g.gridRows < 1 || g.gridColumns < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", g.gridRows, g.gridColumns)
	}
	if g.rowSpacingMM < 0 || g.colSpacingMM < 0 {
		return fmt.Errorf("grid spacing must not be negative, got %g/%g mm", g.rowSpacingMM, g.colSpacingMM)
	}
	if g.skip < 0 {
		return fmt.Errorf("skip must not be negative, got %d", g.skip)
	}
	return nil
}

// PageCount returns how many pages n labels occupy, including the leading
// skipped cells.
func (g Geometry) PageCount(n int) int {
	cells := g.skip + n
	perPage := g.CellsPerPage()
	if cells == 0 {
		return 1
	}
	return (cells + perPage - 1) / perPage
}
