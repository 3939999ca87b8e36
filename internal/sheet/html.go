package sheet

import (
	"bytes"
	"fmt"
	"html/template"
)

// File is one rendered sheet ready to be written to disk.
type File struct {
	Name    string
	Content []byte
}

// variant describes one presentation of the mapping sheet.
type variant struct {
	filename string
	title    string
	columns  int
	// reverse flips the row order so the grid reads bottom-up like the
	// physical device when several page blocks fit on one screen.
	reverse  bool
	viewport bool
	css      string
}

var variants = []variant{
	{
		filename: "mapping_sheet_print.html",
		title:    "Soundboard Mapping Sheet (Print)",
		columns:  3,
		reverse:  true,
		css:      printCSS,
	},
	{
		filename: "mapping_sheet.html",
		title:    "Soundboard Mapping Sheet",
		columns:  3,
		reverse:  true,
		css:      desktopCSS,
	},
	{
		filename: "mapping_sheet_mobile.html",
		title:    "Soundboard Mapping Sheet",
		columns:  1,
		reverse:  false,
		viewport: true,
		css:      mobileCSS,
	},
}

// pageBlock is one page's grid in template form. A placeholder pads the
// last grid row so flex layout keeps real blocks aligned.
type pageBlock struct {
	Title       string
	Rows        [][]string
	Placeholder bool
}

type sheetData struct {
	Title    string
	Viewport bool
	CSS      template.CSS
	Rows     [][]pageBlock
}

var sheetTmpl = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
{{if .Viewport}}<meta name="viewport" content="width=device-width, initial-scale=1">
{{end}}<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
{{range .Rows}}<div class="table-row">
{{range .}}{{if .Placeholder}}<div class="page-block placeholder"></div>
{{else}}<div class="page-block">
  <div class="page-title">{{.Title}}</div>
  <table>
{{range .Rows}}    <tr>
{{range .}}      {{if .}}<td>{{.}}</td>{{else}}<td class="empty"></td>{{end}}
{{end}}    </tr>
{{end}}  </table>
</div>
{{end}}{{end}}</div>
{{end}}</body>
</html>
`))

// Generate renders all three sheet variants from the page model.
func Generate(s *Sheet) ([]File, error) {
	files := make([]File, 0, len(variants))

	for _, v := range variants {
		content, err := render(s, v)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", v.filename, err)
		}
		files = append(files, File{Name: v.filename, Content: content})
	}

	return files, nil
}

func render(s *Sheet, v variant) ([]byte, error) {
	blocks := make([]pageBlock, 0, len(s.Order))
	for _, page := range s.Order {
		blocks = append(blocks, buildBlock(page, s.Labels[page]))
	}

	data := sheetData{
		Title:    v.title,
		Viewport: v.viewport,
		CSS:      template.CSS(v.css),
		Rows:     buildGrid(blocks, v.columns, v.reverse),
	}

	var buf bytes.Buffer
	if err := sheetTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func buildBlock(page string, labels map[int]string) pageBlock {
	block := pageBlock{Title: page}

	for _, row := range buttonRows {
		cells := make([]string, len(row))
		for i, btn := range row {
			cells[i] = labels[btn]
		}
		block.Rows = append(block.Rows, cells)
	}

	return block
}

// buildGrid arranges page blocks into rows of the given width, padding the
// last row with placeholders and optionally reversing row order.
func buildGrid(blocks []pageBlock, columns int, reverse bool) [][]pageBlock {
	for len(blocks)%columns != 0 {
		blocks = append(blocks, pageBlock{Placeholder: true})
	}

	var rows [][]pageBlock
	for i := 0; i < len(blocks); i += columns {
		rows = append(rows, blocks[i:i+columns])
	}

	if reverse {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	return rows
}
