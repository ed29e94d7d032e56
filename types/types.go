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
package types

// Editor modes
const (
	ModeNormal = 0
	ModeVisual = 1
	ModeLisp   = 2
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

type Point struct {
	Row int
	Col int
}

// Less reports whether p comes before q in document order.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

type Size struct {
	Rows int
	Cols int
}

// A Span is the normalized boundary of a selection: Start never
// follows End in document order. End is exclusive on its column.
type Span struct {
	Start Point
	End   Point
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Keys recognized by the commander. The screen maps terminal input
// onto these symbols; anything it can't map becomes KeyUnsupported.
type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace2
	KeyCtrlE
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlV
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer

	MoveCursor(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	PageUp()
	PageDown()
	Scroll()
	KeepCursorInRow()

	InsertChar(c rune) error
	InsertNewline() error
	BackspaceChar() rune
	InsertText(text string) (int, error)

	BeginSelection()
	EndSelection()
	CurrentSpan() (Span, bool)
	CopySelection() int
	CutSelection() int
	DeleteSelection() int

	Paste() (int, error)
	GetClipboard() string

	ReadFile(path string) error
	WriteFile(path string) error
	Bytes() []byte
}

type Buffer interface {
	Render(origin Point, size Size, offset Size, span *Span, display Display)
	GetRowCount() int
	GetRowText(row int) string
	GetFileName() string
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetLispText() string
	GetMessage() string
}

// A Display accepts the draw instructions produced by buffer
// rendering. Highlighted cells belong to the active selection.
type Display interface {
	SetCell(col int, row int, c rune, highlighted bool)
}
