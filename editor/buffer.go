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
	"errors"
	"strings"

	ved "ved/types"
)

// MaxLines caps the number of rows a buffer will hold. Operations
// that would grow past it fail with ErrTooManyLines, which callers
// report in the message bar.
const MaxLines = 1024

var ErrTooManyLines = errors.New("buffer is at its line capacity")

// A Buffer holds the rows of a file being edited.
type Buffer struct {
	rows     []*Row
	fileName string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// LoadBytes replaces the buffer contents. A trailing newline marks
// the end of the last row; it does not open an empty row after it.
func (b *Buffer) LoadBytes(bytes []byte) {
	s := strings.TrimSuffix(string(bytes), "\n")
	b.rows = make([]*Row, 0)
	if s == "" {
		return
	}
	for _, line := range strings.Split(s, "\n") {
		b.rows = append(b.rows, NewRow(line))
	}
}

// Bytes returns the buffer in its persisted form: every row
// newline-terminated, nothing else.
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for _, row := range b.rows {
		sb.WriteString(string(row.Text))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRowText(i int) string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].DisplayText()
	}
	return ""
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

func (b *Buffer) DeleteRow(row int) {
	if row < len(b.rows) {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
}

// InsertRow places r at index i, shifting later rows down.
func (b *Buffer) InsertRow(i int, r *Row) error {
	if len(b.rows) >= MaxLines {
		return ErrTooManyLines
	}
	if i > len(b.rows) {
		i = len(b.rows)
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = r
	return nil
}

func (b *Buffer) AppendBlankRow() error {
	if len(b.rows) >= MaxLines {
		return ErrTooManyLines
	}
	b.rows = append(b.rows, NewRow(""))
	return nil
}

// draw text in an area defined by origin and size with a specified
// offset into the buffer, highlighting the cells covered by span
func (b *Buffer) Render(origin ved.Point, size ved.Size, offset ved.Size, span *ved.Span, display ved.Display) {
	for i := origin.Row; i < origin.Row+size.Rows; i++ {
		fileRow := i - origin.Row + offset.Rows
		if fileRow >= len(b.rows) {
			display.SetCell(origin.Col, i, '~', false)
			continue
		}
		row := b.rows[fileRow]
		hs, he := 0, 0
		if span != nil && fileRow >= span.Start.Row && fileRow <= span.End.Row {
			hs, he = spanColumns(*span, fileRow, row.Length())
		}
		for x := offset.Cols; x < row.Length(); x++ {
			col := x - offset.Cols
			if col >= size.Cols {
				break
			}
			display.SetCell(col+origin.Col, i, row.Text[x], x >= hs && x < he)
		}
	}
}
