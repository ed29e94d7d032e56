//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"testing"

	ved "ved/types"
)

func TestLoadBytesTrailingNewline(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("alpha\nbeta\n"))
	if count := b.GetRowCount(); count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}
	if text := b.GetRowText(1); text != "beta" {
		t.Errorf("unexpected row text: %q", text)
	}
	if got := string(b.Bytes()); got != "alpha\nbeta\n" {
		t.Errorf("load/save not stable: %q", got)
	}
}

func TestLoadBytesEmpty(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes(nil)
	if count := b.GetRowCount(); count != 0 {
		t.Errorf("expected empty buffer, got %d rows", count)
	}
	if got := string(b.Bytes()); got != "" {
		t.Errorf("unexpected bytes: %q", got)
	}
}

func TestInsertCharacter(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("abc\n"))
	b.InsertCharacter(0, 1, 'x')
	if text := b.GetRowText(0); text != "axbc" {
		t.Errorf("unexpected row after mid insert: %q", text)
	}
	b.InsertCharacter(0, 4, 'y')
	if text := b.GetRowText(0); text != "axbcy" {
		t.Errorf("unexpected row after append: %q", text)
	}
}

func TestDeleteRow(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("one\ntwo\nthree\n"))
	b.DeleteRow(1)
	if count := b.GetRowCount(); count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}
	if text := b.GetRowText(1); text != "three" {
		t.Errorf("rows did not shift up: %q", text)
	}
}

func TestRowAccessorsOutOfRange(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("abc\n"))
	for _, row := range []int{-1, 1, 100} {
		if length := b.GetRowLength(row); length != 0 {
			t.Errorf("GetRowLength(%d) = %d, want 0", row, length)
		}
		if text := b.GetRowText(row); text != "" {
			t.Errorf("GetRowText(%d) = %q, want empty", row, text)
		}
	}
}

func TestRowSplitJoin(t *testing.T) {
	r := NewRow("hello")
	rest := r.Split(2)
	if r.DisplayText() != "he" || rest.DisplayText() != "llo" {
		t.Errorf("split produced %q / %q", r.DisplayText(), rest.DisplayText())
	}
	r.Join(rest)
	if r.DisplayText() != "hello" {
		t.Errorf("join produced %q", r.DisplayText())
	}
}

func TestLineCapacity(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < MaxLines; i++ {
		if err := b.AppendBlankRow(); err != nil {
			t.Fatalf("append failed below capacity at %d: %v", i, err)
		}
	}
	if err := b.AppendBlankRow(); err != ErrTooManyLines {
		t.Errorf("expected ErrTooManyLines, got %v", err)
	}
	if err := b.InsertRow(0, NewRow("x")); err != ErrTooManyLines {
		t.Errorf("expected ErrTooManyLines from InsertRow, got %v", err)
	}
	if count := b.GetRowCount(); count != MaxLines {
		t.Errorf("capacity overflow changed row count: %d", count)
	}
}

// a Display that records what was drawn where
type gridCell struct {
	ch rune
	hl bool
}

type gridDisplay struct {
	cells map[ved.Point]gridCell
}

func newGridDisplay() *gridDisplay {
	return &gridDisplay{cells: make(map[ved.Point]gridCell)}
}

func (g *gridDisplay) SetCell(col int, row int, c rune, highlighted bool) {
	g.cells[ved.Point{Row: row, Col: col}] = gridCell{ch: c, hl: highlighted}
}

func TestRenderPlaceholderRows(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("only\n"))
	d := newGridDisplay()
	b.Render(ved.Point{}, ved.Size{Rows: 3, Cols: 10}, ved.Size{}, nil, d)

	if cell := d.cells[ved.Point{Row: 0, Col: 0}]; cell.ch != 'o' {
		t.Errorf("row 0 not drawn: %+v", cell)
	}
	for row := 1; row < 3; row++ {
		if cell := d.cells[ved.Point{Row: row, Col: 0}]; cell.ch != '~' {
			t.Errorf("row %d should be a placeholder, got %+v", row, cell)
		}
	}
}

func TestRenderRowOffset(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("aaa\nbbb\nccc\n"))
	d := newGridDisplay()
	b.Render(ved.Point{}, ved.Size{Rows: 2, Cols: 10}, ved.Size{Rows: 1}, nil, d)

	if cell := d.cells[ved.Point{Row: 0, Col: 0}]; cell.ch != 'b' {
		t.Errorf("scrolled row 0 should show 'b', got %q", cell.ch)
	}
	if cell := d.cells[ved.Point{Row: 1, Col: 0}]; cell.ch != 'c' {
		t.Errorf("scrolled row 1 should show 'c', got %q", cell.ch)
	}
}

func TestRenderHighlightsSpan(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("hello\nmiddle\nworld\n"))
	span := &ved.Span{Start: ved.Point{Row: 0, Col: 2}, End: ved.Point{Row: 2, Col: 3}}
	d := newGridDisplay()
	b.Render(ved.Point{}, ved.Size{Rows: 3, Cols: 10}, ved.Size{}, span, d)

	// start row: [2, len) highlighted
	for col := 0; col < 5; col++ {
		want := col >= 2
		if got := d.cells[ved.Point{Row: 0, Col: col}].hl; got != want {
			t.Errorf("row 0 col %d highlight = %v, want %v", col, got, want)
		}
	}
	// interior row: fully highlighted
	for col := 0; col < 6; col++ {
		if !d.cells[ved.Point{Row: 1, Col: col}].hl {
			t.Errorf("interior row col %d should be highlighted", col)
		}
	}
	// end row: [0, 3) highlighted
	for col := 0; col < 5; col++ {
		want := col < 3
		if got := d.cells[ved.Point{Row: 2, Col: col}].hl; got != want {
			t.Errorf("row 2 col %d highlight = %v, want %v", col, got, want)
		}
	}
}

func TestRenderSingleRowSpan(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("abcdef\n"))
	span := &ved.Span{Start: ved.Point{Row: 0, Col: 1}, End: ved.Point{Row: 0, Col: 3}}
	d := newGridDisplay()
	b.Render(ved.Point{}, ved.Size{Rows: 1, Cols: 10}, ved.Size{}, span, d)

	for col := 0; col < 6; col++ {
		want := col >= 1 && col < 3
		if got := d.cells[ved.Point{Row: 0, Col: col}].hl; got != want {
			t.Errorf("col %d highlight = %v, want %v", col, got, want)
		}
	}
}
