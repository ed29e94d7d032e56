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
package commander

import (
	"fmt"

	ved "ved/types"
)

// The Commander converts user input into commands for the Editor. It
// owns the mode state machine: Normal edits, Visual extends a
// selection, Lisp line-edits an expression in the message bar.
type Commander struct {
	editor   ved.Editor
	mode     int    // editor mode
	lispText string // lisp command as it is being typed
	message  string // status message
}

func NewCommander(e ved.Editor) *Commander {
	c := &Commander{editor: e, mode: ved.ModeNormal, message: "[Normal Mode]"}
	bindLisp(c)
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != ved.ModeQuit
}

// ProcessEvent handles one event from the key source. A nil event is
// the bounded-wait "no input" sentinel and does nothing.
func (c *Commander) ProcessEvent(event *ved.Event) error {
	if event == nil {
		return nil
	}
	switch event.Type {
	case ved.EventKey:
		return c.ProcessKey(event)
	case ved.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *ved.Event) error {
	return nil
}

func (c *Commander) ProcessKey(event *ved.Event) error {
	var err error
	switch c.mode {
	case ved.ModeNormal:
		err = c.ProcessKeyNormalMode(event)
	case ved.ModeVisual:
		err = c.ProcessKeyVisualMode(event)
	case ved.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) ProcessKeyNormalMode(event *ved.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ved.KeyEsc:
			c.message = "[Normal Mode]"
		case ved.KeyCtrlQ:
			c.mode = ved.ModeQuit
		case ved.KeyCtrlV:
			c.enterVisualMode()
		case ved.KeyCtrlE:
			c.mode = ved.ModeLisp
			c.lispText = "("
		case ved.KeyCtrlS:
			c.save()
		case ved.KeyCtrlO:
			c.reload()
		case ved.KeyEnter:
			c.reportCapacity(e.InsertNewline())
		case ved.KeyBackspace2:
			e.BackspaceChar()
		case ved.KeySpace:
			c.reportCapacity(e.InsertChar(' '))
		case ved.KeyTab:
			// expand to the next tab stop
			if err := e.InsertChar(' '); err != nil {
				c.reportCapacity(err)
				break
			}
			for e.GetCursor().Col%8 != 0 {
				if err := e.InsertChar(' '); err != nil {
					break
				}
			}
		case ved.KeyArrowUp:
			e.MoveCursor(ved.MoveUp)
		case ved.KeyArrowDown:
			e.MoveCursor(ved.MoveDown)
		case ved.KeyArrowLeft:
			e.MoveCursor(ved.MoveLeft)
		case ved.KeyArrowRight:
			e.MoveCursor(ved.MoveRight)
		case ved.KeyHome:
			e.MoveToBeginningOfLine()
		case ved.KeyEnd:
			e.MoveToEndOfLine()
		case ved.KeyPgup:
			e.PageUp()
		case ved.KeyPgdn:
			e.PageDown()
		}
	}
	if ch != 0 {
		switch ch {
		case 'v':
			c.enterVisualMode()
		case 'p':
			n, err := e.Paste()
			if err != nil {
				c.reportCapacity(err)
				break
			}
			c.message = fmt.Sprintf("[Pasted %d chars]", n)
		default:
			c.reportCapacity(e.InsertChar(ch))
		}
	}
	return nil
}

func (c *Commander) ProcessKeyVisualMode(event *ved.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ved.KeyEsc:
			e.EndSelection()
			c.mode = ved.ModeNormal
			c.message = "[Normal Mode]"
		case ved.KeyArrowUp:
			e.MoveCursor(ved.MoveUp)
		case ved.KeyArrowDown:
			e.MoveCursor(ved.MoveDown)
		case ved.KeyArrowLeft:
			e.MoveCursor(ved.MoveLeft)
		case ved.KeyArrowRight:
			e.MoveCursor(ved.MoveRight)
		case ved.KeyHome:
			e.MoveToBeginningOfLine()
		case ved.KeyEnd:
			e.MoveToEndOfLine()
		case ved.KeyPgup:
			e.PageUp()
		case ved.KeyPgdn:
			e.PageDown()
		}
	}
	if ch != 0 {
		switch ch {
		case 'y':
			n := e.CopySelection()
			c.mode = ved.ModeNormal
			c.message = fmt.Sprintf("[Copied %d chars]", n)
		case 'c':
			n := e.CutSelection()
			c.mode = ved.ModeNormal
			c.message = fmt.Sprintf("[Cut %d chars]", n)
		case 'd':
			n := e.DeleteSelection()
			c.mode = ved.ModeNormal
			c.message = fmt.Sprintf("[Deleted %d chars]", n)
		}
		// anything else is ignored while a selection is active
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *ved.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ved.KeyEsc:
			c.mode = ved.ModeNormal
		case ved.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			if c.mode == ved.ModeLisp {
				c.mode = ved.ModeNormal
			}
		case ved.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case ved.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) enterVisualMode() {
	c.editor.BeginSelection()
	c.mode = ved.ModeVisual
	c.message = "[Visual Mode]"
}

func (c *Commander) save() {
	filename := c.editor.GetBuffer().GetFileName()
	if err := c.editor.WriteFile(filename); err != nil {
		c.message = fmt.Sprintf("Can't save! %s", err)
		return
	}
	c.message = fmt.Sprintf("[Saved to %s]", filename)
}

func (c *Commander) reload() {
	filename := c.editor.GetBuffer().GetFileName()
	if err := c.editor.ReadFile(filename); err != nil {
		c.message = err.Error()
		return
	}
	c.message = fmt.Sprintf("[Opened %s]", filename)
}

// capacity violations surface here instead of no-opping silently
func (c *Commander) reportCapacity(err error) {
	if err != nil {
		c.message = err.Error()
	}
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetMessage() string {
	return c.message
}
