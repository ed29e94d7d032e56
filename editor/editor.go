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
	"os"

	ved "ved/types"
)

// The Editor manages the editing of text in a Buffer. It owns the
// cursor, the scroll offset, the selection anchor, and the clipboard;
// the single control loop is its only client, so none of this state
// is guarded.
type Editor struct {
	Cursor    ved.Point // cursor position
	Offset    ved.Size  // display offset
	Buffer    *Buffer   // buffer being edited
	size      ved.Size  // size of editing area
	pasteText string    // clipboard, written by copy/cut and read by paste
	anchor    ved.Point // selection anchor, valid while selecting
	selecting bool      // a selection is active (visual mode)
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

// ReadFile loads path into the buffer. A file that doesn't exist yet
// is created empty; if even that fails the error is returned and the
// caller treats it as fatal.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		f, cerr := os.Create(path)
		if cerr != nil {
			return cerr
		}
		f.Close()
		b = nil
	}
	e.Buffer.LoadBytes(b)
	e.Buffer.SetFileName(path)
	e.KeepCursorInRow()
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(e.Bytes())
	return err
}

// Scroll clamps the display offset so the cursor stays visible. The
// adjustment is a single-step clamp, not a recentering: a long cursor
// jump moves the offset just far enough to satisfy the invariant.
func (e *Editor) Scroll() {
	if e.size.Rows > 0 {
		if e.Cursor.Row < e.Offset.Rows {
			e.Offset.Rows = e.Cursor.Row
		}
		if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
			e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
		}
	}
	if e.size.Cols > 0 {
		if e.Cursor.Col < e.Offset.Cols {
			e.Offset.Cols = e.Cursor.Col
		}
		if e.Cursor.Col-e.Offset.Cols >= e.size.Cols {
			e.Offset.Cols = e.Cursor.Col - e.size.Cols + 1
		}
	}
}

// MoveCursor applies one step in a direction. The column may rest one
// past the last character (the end-of-line insert position); after
// any row change it is clamped back into the new row.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case ved.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case ved.MoveRight:
		if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		}
	case ved.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case ved.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
	}
	// don't go past the end of the current line
	if e.Cursor.Col > e.Buffer.GetRowLength(e.Cursor.Row) {
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	}
	e.Scroll()
}

// InsertChar inserts c at the cursor; a newline is an InsertNewline.
func (e *Editor) InsertChar(c rune) error {
	if c == '\n' {
		return e.InsertNewline()
	}
	// an empty document grows its first row on demand
	for e.Cursor.Row >= e.Buffer.GetRowCount() {
		if err := e.Buffer.AppendBlankRow(); err != nil {
			return err
		}
	}
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
	e.Scroll()
	return nil
}

// InsertNewline splits the current row at the cursor. [0,col) stays
// in place, [col,end) becomes the row below, and the cursor moves to
// the start of it.
func (e *Editor) InsertNewline() error {
	for e.Cursor.Row >= e.Buffer.GetRowCount() {
		if err := e.Buffer.AppendBlankRow(); err != nil {
			return err
		}
	}
	if e.Buffer.GetRowCount() >= MaxLines {
		return ErrTooManyLines
	}
	newRow := e.Buffer.rows[e.Cursor.Row].Split(e.Cursor.Col)
	if err := e.Buffer.InsertRow(e.Cursor.Row+1, newRow); err != nil {
		return err
	}
	e.Cursor.Row++
	e.Cursor.Col = 0
	e.Scroll()
	return nil
}

// BackspaceChar deletes the character before the cursor, merging with
// the previous row at the start of a line. Returns the removed
// character, or 0 when nothing happened.
func (e *Editor) BackspaceChar() rune {
	if e.Buffer.GetRowCount() == 0 {
		return 0
	}
	if e.Cursor.Col > 0 {
		c := e.Buffer.rows[e.Cursor.Row].DeleteChar(e.Cursor.Col - 1)
		e.Cursor.Col--
		return c
	}
	if e.Cursor.Row > 0 {
		prev := e.Buffer.rows[e.Cursor.Row-1]
		newCol := prev.Length()
		prev.Join(e.Buffer.rows[e.Cursor.Row])
		e.Buffer.DeleteRow(e.Cursor.Row)
		e.Cursor.Row--
		e.Cursor.Col = newCol
		e.Scroll()
		return '\n'
	}
	return 0
}

// InsertText replays a text blob at the cursor: embedded newlines
// split the line, everything else is a plain insert. It returns the
// number of characters inserted; a capacity failure stops the replay
// there and reports how far it got.
func (e *Editor) InsertText(text string) (int, error) {
	count := 0
	for _, c := range text {
		if err := e.InsertChar(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// Paste replays the clipboard at the cursor.
func (e *Editor) Paste() (int, error) {
	return e.InsertText(e.pasteText)
}

func (e *Editor) GetClipboard() string {
	return e.pasteText
}

// KeepCursorInRow clamps the cursor back into the document after the
// buffer has changed under it.
func (e *Editor) KeepCursorInRow() {
	if e.Buffer.GetRowCount() == 0 {
		e.Cursor.Row = 0
		e.Cursor.Col = 0
		return
	}
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.Cursor.Row = e.Buffer.GetRowCount() - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	if e.Cursor.Col > e.Buffer.GetRowLength(e.Cursor.Row) {
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
	e.Scroll()
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	e.Scroll()
}

func (e *Editor) PageUp() {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	// move up by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(ved.MoveUp)
	}
}

func (e *Editor) PageDown() {
	// move to the bottom of the screen
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	if e.Cursor.Row > e.Buffer.GetRowCount()-1 {
		e.Cursor.Row = e.Buffer.GetRowCount() - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	// move down by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(ved.MoveDown)
	}
}

func (e *Editor) GetCursor() ved.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor ved.Point) {
	e.Cursor = cursor
}

func (e *Editor) SetSize(s ved.Size) {
	e.size = s
}

func (e *Editor) GetOffset() ved.Size {
	return e.Offset
}

func (e *Editor) GetBuffer() ved.Buffer {
	return e.Buffer
}
