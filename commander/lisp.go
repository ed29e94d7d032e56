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
	"errors"
	"os"

	"github.com/steelseries/golisp"
	ved "ved/types"
)

// The lisp surface exposes editor commands as golisp primitives, used
// from the interactive prompt (ctrl-E) and from --eval scripts.
//
// golisp primitives are process-global, so they reach the editor
// through the commander most recently bound here.
var lispCommander *Commander

func bindLisp(c *Commander) {
	lispCommander = c
}

func init() {
	golisp.MakePrimitiveFunction("cursor-row", "0", cursorRowImpl)
	golisp.MakePrimitiveFunction("cursor-col", "0", cursorColImpl)
	golisp.MakePrimitiveFunction("move-to", "2", moveToImpl)
	golisp.MakePrimitiveFunction("line-count", "0", lineCountImpl)
	golisp.MakePrimitiveFunction("line-text", "1", lineTextImpl)
	golisp.MakePrimitiveFunction("insert-text", "1", insertTextImpl)
	golisp.MakePrimitiveFunction("mark", "0", markImpl)
	golisp.MakePrimitiveFunction("copy-selection", "0", copySelectionImpl)
	golisp.MakePrimitiveFunction("cut-selection", "0", cutSelectionImpl)
	golisp.MakePrimitiveFunction("delete-selection", "0", deleteSelectionImpl)
	golisp.MakePrimitiveFunction("paste", "0", pasteImpl)
	golisp.MakePrimitiveFunction("clipboard-text", "0", clipboardTextImpl)
	golisp.MakePrimitiveFunction("save-file", "0", saveFileImpl)
	golisp.MakePrimitiveFunction("quit-editor", "0", quitEditorImpl)
}

func cursorRowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(lispCommander.editor.GetCursor().Row)), nil
}

func cursorColImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(lispCommander.editor.GetCursor().Col)), nil
}

func moveToImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	row := golisp.Car(args)
	col := golisp.Cadr(args)
	if !golisp.IntegerP(row) || !golisp.IntegerP(col) {
		return nil, errors.New("move-to requires two integer arguments")
	}
	e := lispCommander.editor
	e.SetCursor(ved.Point{Row: int(golisp.IntegerValue(row)), Col: int(golisp.IntegerValue(col))})
	e.KeepCursorInRow()
	e.Scroll()
	return nil, nil
}

func lineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(lispCommander.editor.GetBuffer().GetRowCount())), nil
}

func lineTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	row := golisp.Car(args)
	if !golisp.IntegerP(row) {
		return nil, errors.New("line-text requires an integer argument")
	}
	text := lispCommander.editor.GetBuffer().GetRowText(int(golisp.IntegerValue(row)))
	return golisp.StringWithValue(text), nil
}

func insertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text := golisp.Car(args)
	if !golisp.StringP(text) {
		return nil, errors.New("insert-text requires a string argument")
	}
	n, err := lispCommander.editor.InsertText(golisp.StringValue(text))
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(n)), nil
}

func markImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.editor.BeginSelection()
	return nil, nil
}

func copySelectionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(lispCommander.editor.CopySelection())), nil
}

func cutSelectionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(lispCommander.editor.CutSelection())), nil
}

func deleteSelectionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(lispCommander.editor.DeleteSelection())), nil
}

func pasteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	n, err := lispCommander.editor.Paste()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(n)), nil
}

func clipboardTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(lispCommander.editor.GetClipboard()), nil
}

func saveFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e := lispCommander.editor
	filename := e.GetBuffer().GetFileName()
	if err := e.WriteFile(filename); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(filename), nil
}

func quitEditorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.mode = ved.ModeQuit
	return nil, nil
}

// ParseEval evaluates a lisp expression against the bound editor and
// returns a printable result or error for the message bar.
func (c *Commander) ParseEval(program string) string {
	bindLisp(c)
	value, err := golisp.ParseAndEval(program)
	if err != nil {
		return err.Error()
	}
	return golisp.String(value)
}

// ParseEvalFile runs a script, used by --eval batch invocations.
func (c *Commander) ParseEvalFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return c.ParseEval(string(b)), nil
}
