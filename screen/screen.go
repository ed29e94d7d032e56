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
package screen

import (
	"fmt"
	"log"
	"time"

	"github.com/nsf/termbox-go"
	ved "ved/types"
)

// inputTimeout bounds the wait in GetNextEvent so the control loop
// never blocks indefinitely on the keyboard.
const inputTimeout = 50 * time.Millisecond

// The Screen draws the state of an Editor and is the source of key
// events.
type Screen struct {
	size   ved.Size // screen size
	events chan termbox.Event
	done   chan struct{}
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	s := &Screen{
		events: make(chan termbox.Event),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			event := termbox.PollEvent()
			select {
			case s.events <- event:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func (s *Screen) Close() {
	close(s.done)
	termbox.Close()
}

// Render redraws the whole frame: buffer rows with any active
// selection inverted, the info bar, the message bar, and the cursor.
// Nothing is kept between frames.
func (s *Screen) Render(e ved.Editor, c ved.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize ved.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	editSize := screenSize
	editSize.Rows -= 2
	e.SetSize(editSize)

	e.Scroll()
	s.RenderInfoBar(e, c)
	s.RenderMessageBar(e, c)

	var span *ved.Span
	if c.GetMode() == ved.ModeVisual {
		if sp, ok := e.CurrentSpan(); ok {
			span = &sp
		}
	}
	bufferOrigin := ved.Point{Row: 0, Col: 0}
	bufferSize := ved.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols}
	e.GetBuffer().Render(bufferOrigin, bufferSize, e.GetOffset(), span, s)
	termbox.SetCursor(e.GetCursor().Col-e.GetOffset().Cols, e.GetCursor().Row-e.GetOffset().Rows)
	termbox.Flush()
}

func (s *Screen) SetCell(col int, row int, c rune, highlighted bool) {
	if highlighted {
		termbox.SetCell(col, row, c, termbox.ColorBlack, termbox.ColorWhite)
	} else {
		termbox.SetCell(col, row, c, termbox.ColorWhite, termbox.ColorBlack)
	}
}

func (s *Screen) RenderInfoBar(e ved.Editor, c ved.Commander) {
	finalText := fmt.Sprintf(" %d/%d ", e.GetCursor().Row, e.GetBuffer().GetRowCount())
	text := " ved - " + e.GetBuffer().GetFileName() + " "
	for len(text) < s.size.Cols-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) RenderMessageBar(e ved.Editor, c ved.Commander) {
	var line string
	switch c.GetMode() {
	case ved.ModeLisp:
		line += c.GetLispText()
	default:
		line += c.GetMessage()
	}
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
}

// GetNextEvent waits for input for a bounded interval and returns nil
// when nothing arrived, keeping the caller's loop responsive.
func (s *Screen) GetNextEvent() *ved.Event {
	select {
	case event := <-s.events:
		if event.Type == termbox.EventResize {
			termbox.Flush()
			return &ved.Event{Type: ved.EventResize}
		}
		return &ved.Event{
			Type: ved.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}
	case <-time.After(inputTimeout):
		return nil
	}
}

func key(k termbox.Key) ved.Key {
	switch k {
	case termbox.KeyArrowDown:
		return ved.KeyArrowDown
	case termbox.KeyArrowLeft:
		return ved.KeyArrowLeft
	case termbox.KeyArrowRight:
		return ved.KeyArrowRight
	case termbox.KeyArrowUp:
		return ved.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return ved.KeyBackspace2
	case termbox.KeyCtrlE:
		return ved.KeyCtrlE
	case termbox.KeyCtrlO:
		return ved.KeyCtrlO
	case termbox.KeyCtrlQ:
		return ved.KeyCtrlQ
	case termbox.KeyCtrlS:
		return ved.KeyCtrlS
	case termbox.KeyCtrlV:
		return ved.KeyCtrlV
	case termbox.KeyEnd:
		return ved.KeyEnd
	case termbox.KeyEnter:
		return ved.KeyEnter
	case termbox.KeyEsc:
		return ved.KeyEsc
	case termbox.KeyHome:
		return ved.KeyHome
	case termbox.KeyPgdn:
		return ved.KeyPgdn
	case termbox.KeyPgup:
		return ved.KeyPgup
	case termbox.KeySpace:
		return ved.KeySpace
	case termbox.KeyTab:
		return ved.KeyTab
	default:
		return ved.KeyUnsupported
	}
}
