// Package notebook loads example notebooks and executes their code cells in
// order, in one shared interpreter scope, so examples can run as smoke tests.
//
// Code cells hold Go source. A cell may start with import declarations
// followed by statements; variables, functions and types defined by one cell
// are visible to every later cell of the same run.
package notebook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// CellTypeCode is the cell type executed by Run.
const CellTypeCode = "code"

// Notebook is a parsed notebook document.
type Notebook struct {
	// Format is the nbformat major version (3 or 4).
	Format     int
	Worksheets []Worksheet
}

// Worksheet is an ordered list of cells.
type Worksheet struct {
	Cells []Cell
}

// Cell is one notebook cell.
type Cell struct {
	Type  string
	Input []string
}

// Source returns the cell's source lines concatenated.
func (c Cell) Source() string {
	return strings.Join(c.Input, "")
}

// IsCode reports whether the cell is a code cell.
func (c Cell) IsCode() bool {
	return c.Type == CellTypeCode
}

// CodeCells returns the number of code cells across all worksheets.
func (nb *Notebook) CodeCells() int {
	n := 0
	for _, ws := range nb.Worksheets {
		for _, c := range ws.Cells {
			if c.IsCode() {
				n++
			}
		}
	}
	return n
}

// lines decodes either a JSON string or an array of strings.
type lines []string

func (l *lines) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = lines{s}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("cell source must be a string or array of strings: %w", err)
	}
	*l = arr
	return nil
}

type rawCell struct {
	CellType string `json:"cell_type"`
	Input    lines  `json:"input"`
	Source   lines  `json:"source"`
}

type rawNotebook struct {
	NBFormat   int `json:"nbformat"`
	Worksheets []struct {
		Cells []rawCell `json:"cells"`
	} `json:"worksheets"`
	Cells []rawCell `json:"cells"`
}

func (rc rawCell) cell() Cell {
	input := rc.Input
	if input == nil {
		input = rc.Source
	}
	return Cell{Type: rc.CellType, Input: input}
}

// Parse decodes a notebook. nbformat 3 documents carry worksheets of cells
// with "input" lines; nbformat 4 documents carry top-level cells with
// "source" and are returned as a single worksheet.
func Parse(r io.Reader) (*Notebook, error) {
	var raw rawNotebook
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("notebook: decode: %w", err)
	}

	nb := &Notebook{Format: raw.NBFormat}
	switch {
	case raw.Worksheets != nil:
		for _, ws := range raw.Worksheets {
			w := Worksheet{Cells: make([]Cell, 0, len(ws.Cells))}
			for _, rc := range ws.Cells {
				w.Cells = append(w.Cells, rc.cell())
			}
			nb.Worksheets = append(nb.Worksheets, w)
		}
	case raw.Cells != nil:
		w := Worksheet{Cells: make([]Cell, 0, len(raw.Cells))}
		for _, rc := range raw.Cells {
			w.Cells = append(w.Cells, rc.cell())
		}
		nb.Worksheets = []Worksheet{w}
	default:
		return nil, fmt.Errorf("notebook: no worksheets or cells")
	}
	return nb, nil
}

// Load reads and parses the notebook file at filename.
func Load(filename string) (*Notebook, error) {
	f, err := os.Open(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("notebook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	nb, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return nb, nil
}
