package core

import "unicode/utf8"

// editOp records one reversible edit: at rune offset, removed was replaced by
// inserted. Undo applies the inverse replacement.
type editOp struct {
	offset       int
	removed      string
	inserted     string
	cursorBefore Position
	cursorAfter  Position
}

func (op editOp) insertedEnd() int {
	return op.offset + utf8.RuneCountInString(op.inserted)
}

func (op editOp) removedEnd() int {
	return op.offset + utf8.RuneCountInString(op.removed)
}

// history is an undo stack and a redo stack of edit operations.
type history struct {
	undo  []editOp
	redo  []editOp
	limit int

	// sealed stops the next typed insertion from merging into the last entry.
	sealed bool
}

func newHistory(limit int) *history {
	return &history{limit: limit, sealed: true}
}

// record pushes op and clears the redo stack. When mergeable, contiguous
// typing is folded into the previous entry so a single undo removes a whole
// run of typed characters (and the selection it replaced, if any).
func (h *history) record(op editOp, mergeable bool) {
	h.redo = nil

	if mergeable && !h.sealed && len(h.undo) > 0 {
		last := &h.undo[len(h.undo)-1]
		if op.removed == "" && last.insertedEnd() == op.offset {
			last.inserted += op.inserted
			last.cursorAfter = op.cursorAfter
			return
		}
	}

	h.pushUndo(op)
	h.sealed = !mergeable
}

func (h *history) pushUndo(op editOp) {
	if h.limit <= 0 {
		return
	}
	h.undo = append(h.undo, op)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

func (h *history) popUndo() (editOp, bool) {
	if len(h.undo) == 0 {
		return editOp{}, false
	}
	i := len(h.undo) - 1
	op := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, op)
	h.sealed = true
	return op, true
}

func (h *history) popRedo() (editOp, bool) {
	if len(h.redo) == 0 {
		return editOp{}, false
	}
	i := len(h.redo) - 1
	op := h.redo[i]
	h.redo = h.redo[:i]
	h.pushUndo(op)
	h.sealed = true
	return op, true
}

func (h *history) seal() {
	h.sealed = true
}

func (h *history) reset() {
	h.undo = nil
	h.redo = nil
	h.sealed = true
}

func (h *history) setLimit(limit int) {
	h.limit = limit
	if len(h.undo) > limit {
		h.undo = h.undo[len(h.undo)-limit:]
	}
}
