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
	"strings"

	ved "ved/types"
)

// The selection engine. Copy, cut, and delete share one span
// normalization, one extraction walk, and one splice; highlighting
// uses the same column rule through spanColumns, so what the screen
// inverts is exactly what a cut removes.

// normalizeSpan orders an anchor/cursor pair into a span.
func normalizeSpan(anchor, cursor ved.Point) ved.Span {
	if cursor.Less(anchor) {
		anchor, cursor = cursor, anchor
	}
	return ved.Span{Start: anchor, End: cursor}
}

// spanColumns returns the half-open column range a span covers on a
// row of the given length: the full row for interior rows, a partial
// range on the boundary rows.
func spanColumns(span ved.Span, row, length int) (int, int) {
	start, end := 0, length
	if row == span.Start.Row {
		start = span.Start.Col
	}
	if row == span.End.Row {
		end = span.End.Col
	}
	if start > length {
		start = length
	}
	if end > length {
		end = length
	}
	if start > end {
		start = end
	}
	return start, end
}

// BeginSelection anchors a selection at the cursor.
func (e *Editor) BeginSelection() {
	e.anchor = e.Cursor
	e.selecting = true
}

// EndSelection discards the selection without committing anything.
func (e *Editor) EndSelection() {
	e.selecting = false
}

// CurrentSpan returns the normalized span between the anchor and the
// cursor, and whether a selection is active at all.
func (e *Editor) CurrentSpan() (ved.Span, bool) {
	if !e.selecting {
		return ved.Span{}, false
	}
	return normalizeSpan(e.anchor, e.Cursor), true
}

// extractSpan collects the text a span covers, rows joined by '\n'.
func (e *Editor) extractSpan(span ved.Span) string {
	var sb strings.Builder
	for y := span.Start.Row; y <= span.End.Row; y++ {
		if y >= e.Buffer.GetRowCount() {
			break
		}
		row := e.Buffer.rows[y]
		start, end := spanColumns(span, y, row.Length())
		sb.WriteString(string(row.Text[start:end]))
		if y < span.End.Row {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// removeSpan splices the span's text out of the buffer. A single-row
// span collapses to prefix+suffix; a multi-row span truncates the
// boundary rows, joins them into one, and drops everything between.
// The cursor lands on the span start and the viewport is re-clamped.
func (e *Editor) removeSpan(span ved.Span) {
	b := e.Buffer
	if span.Start.Row == span.End.Row {
		if span.Start.Row < b.GetRowCount() {
			row := b.rows[span.Start.Row]
			start, end := spanColumns(span, span.Start.Row, row.Length())
			row.RemoveRange(start, end)
		}
	} else {
		startRow := b.rows[span.Start.Row]
		endRow := b.rows[span.End.Row]
		startRow.Truncate(span.Start.Col)
		startRow.Join(NewRow(endRow.TextAfter(span.End.Col)))
		b.rows = append(b.rows[0:span.Start.Row+1], b.rows[span.End.Row+1:]...)
	}
	e.Cursor = span.Start
	e.Scroll()
}

// CopySelection stores the selected text on the clipboard and returns
// its length. The document is never touched; an empty selection still
// overwrites the clipboard with the empty string.
func (e *Editor) CopySelection() int {
	span, ok := e.CurrentSpan()
	if !ok {
		return 0
	}
	e.pasteText = e.extractSpan(span)
	e.selecting = false
	return len(e.pasteText)
}

// CutSelection is CopySelection followed by the shared splice.
func (e *Editor) CutSelection() int {
	span, ok := e.CurrentSpan()
	if !ok {
		return 0
	}
	e.pasteText = e.extractSpan(span)
	if !span.Empty() {
		e.removeSpan(span)
	}
	e.selecting = false
	return len(e.pasteText)
}

// DeleteSelection performs the same splice as cut but leaves the
// clipboard alone; the count only feeds the status message.
func (e *Editor) DeleteSelection() int {
	span, ok := e.CurrentSpan()
	if !ok {
		return 0
	}
	count := len(e.extractSpan(span))
	if !span.Empty() {
		e.removeSpan(span)
	}
	e.selecting = false
	return count
}
