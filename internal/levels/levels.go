// Package levels supplies brick layouts to the game engine, either parsed
// from per-level text files or procedurally generated. The procedural
// generator is a pure function of the level index so that fallback layouts
// are reproducible.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Characters recognized in level files. Anything else marks an empty cell.
const (
	CharBrick   = '#' // Ordinary live brick
	CharSpecial = 'A' // Live brick that drops a collectible
)

// Cell describes one slot of a level's brick grid.
type Cell struct {
	Alive   bool
	Special bool
	Color   int // Palette index, 0..9
}

// Layout is a rectangular brick grid for one level, row-major.
type Layout struct {
	Rows, Cols int
	Cells      []Cell
}

// At returns the cell at (row, col). Out-of-range cells are empty.
func (l Layout) At(row, col int) Cell {
	if row < 0 || row >= l.Rows || col < 0 || col >= l.Cols {
		return Cell{}
	}
	return l.Cells[row*l.Cols+col]
}

// CountAlive returns the number of live cells in the layout.
func (l Layout) CountAlive() int {
	count := 0
	for _, c := range l.Cells {
		if c.Alive {
			count++
		}
	}
	return count
}

// Provider supplies the brick layout for a given level index.
// Level indices start at 1.
type Provider interface {
	LayoutFor(level int) Layout
}

// FileProvider loads layouts from level%d.txt files in a directory and falls
// back to the procedural generator when a file is missing or unreadable.
// An empty directory means always-procedural.
type FileProvider struct {
	dir  string
	rows int
	cols int
}

// NewFileProvider creates a provider for a rows x cols brick grid.
func NewFileProvider(dir string, rows, cols int) *FileProvider {
	return &FileProvider{dir: dir, rows: rows, cols: cols}
}

// LayoutFor implements Provider.
func (p *FileProvider) LayoutFor(level int) Layout {
	if p.dir != "" {
		if layout, ok := p.loadFile(level); ok {
			return layout
		}
	}
	return Generate(level, p.rows, p.cols)
}

// loadFile parses level%d.txt. Rows and columns beyond the provided data
// default to empty; unexpected characters mark empty cells. A missing file
// reports ok=false so the caller can fall back.
func (p *FileProvider) loadFile(level int) (Layout, bool) {
	name := filepath.Join(p.dir, fmt.Sprintf("level%d.txt", level))
	data, err := os.ReadFile(name)
	if err != nil {
		return Layout{}, false
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	layout := Layout{
		Rows:  p.rows,
		Cols:  p.cols,
		Cells: make([]Cell, p.rows*p.cols),
	}

	for r := 0; r < p.rows; r++ {
		var line string
		if r < len(lines) {
			line = lines[r]
		}
		for c := 0; c < p.cols; c++ {
			cell := Cell{Color: colorIndex(r, c, level)}
			if c < len(line) {
				switch line[c] {
				case CharBrick:
					cell.Alive = true
				case CharSpecial:
					cell.Alive = true
					cell.Special = true
				}
			}
			layout.Cells[r*p.cols+c] = cell
		}
	}
	return layout, true
}

// Generate builds a deterministic procedural layout for the given level.
// Level 1 fills the whole grid; later levels carve a pattern keyed only by
// (row, col, level), so the same level always produces the same layout.
func Generate(level, rows, cols int) Layout {
	layout := Layout{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := Cell{Color: colorIndex(r, c, level)}
			if level <= 1 || (r+c+level)%(1+level/2) != 0 {
				cell.Alive = true
				cell.Special = (r*cols+c+level)%18 == 0
			}
			layout.Cells[r*cols+c] = cell
		}
	}
	return layout
}

func colorIndex(r, c, level int) int {
	return (r + c + level) % 10
}
