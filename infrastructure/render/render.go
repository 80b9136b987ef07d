// Package render assembles fetched label images into a printable HTML
// document: one CSS grid per page, each label embedded as a base64 data URL.
package render

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"

	"github.com/homeboxlabs/labelgen/domain/sheet"
)

//go:embed style.css notice.txt sheet.html.tmpl
var assets embed.FS

// Renderer writes label sheet documents.
type Renderer struct {
	tmpl   *template.Template
	style  string
	notice string
}

// NewRenderer loads the embedded template and static assets.
func NewRenderer() (*Renderer, error) {
	style, err := assets.ReadFile("style.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	notice, err := assets.ReadFile("notice.txt")
	if err != nil {
		return nil, fmt.Errorf("read notice: %w", err)
	}
	tmpl, err := template.ParseFS(assets, "sheet.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Renderer{
		tmpl:   tmpl,
		style:  string(style),
		notice: string(notice),
	}, nil
}

type cell struct {
	// Style is empty for skipped cells; label cells carry the
	// background-image declaration with the embedded PNG.
	Style template.CSS
}

type page struct {
	Cells []cell
}

type document struct {
	Title         string
	Style         template.CSS
	GeometryStyle template.CSS
	Notice        string
	Pages         []page
}

// Render writes the complete HTML document for the given labels to w. Labels
// flow into the grid in order, after geometry.Skip() empty cells on the
// first page.
func (r *Renderer) Render(w io.Writer, geometry sheet.Geometry, labels [][]byte) error {
	if err := geometry.Validate(); err != nil {
		return fmt.Errorf("invalid sheet geometry: %w", err)
	}

	perPage := geometry.CellsPerPage()
	cells := make([]cell, 0, geometry.Skip()+len(labels))
	for i := 0; i < geometry.Skip(); i++ {
		cells = append(cells, cell{})
	}
	for _, label := range labels {
		data := base64.StdEncoding.EncodeToString(label)
		cells = append(cells, cell{
			Style: template.CSS(fmt.Sprintf("background-image: url(data:image/png;base64,%s)", data)),
		})
	}

	pages := make([]page, 0, geometry.PageCount(len(labels)))
	for start := 0; start < len(cells) || len(pages) == 0; start += perPage {
		end := start + perPage
		if end > len(cells) {
			end = len(cells)
		}
		pages = append(pages, page{Cells: cells[start:end]})
	}

	doc := document{
		Title:         "Homebox Labels",
		Style:         template.CSS(r.style),
		GeometryStyle: geometryStyle(geometry),
		Notice:        r.notice,
		Pages:         pages,
	}
	if err := r.tmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// geometryStyle produces the .page rule derived from the sheet geometry.
// Margins become CSS custom properties so the fixed stylesheet can reuse
// them.
func geometryStyle(g sheet.Geometry) template.CSS {
	return template.CSS(fmt.Sprintf(`
.page {
    --pad-top: %gmm;
    --pad-left: %gmm;
    --pad-bottom: %gmm;
    --pad-right: %gmm;
    width: calc(%gmm - var(--pad-left) - var(--pad-right));
    height: calc(%gmm - var(--pad-top) - var(--pad-bottom));
    padding-top: var(--pad-top);
    padding-left: var(--pad-left);
    padding-bottom: var(--pad-bottom);
    padding-right: var(--pad-right);
    grid-template-columns: repeat(%d, 1fr);
    grid-template-rows: repeat(%d, 1fr);
    row-gap: %gmm;
    column-gap: %gmm;
}
`,
		g.MarginTopMM(),
		g.MarginLeftMM(),
		g.MarginBottomMM(),
		g.MarginRightMM(),
		g.PageWidthMM(),
		g.PageHeightMM(),
		g.GridColumns(),
		g.GridRows(),
		g.RowSpacingMM(),
		g.ColSpacingMM(),
	))
}
