package main

// History records the seeds of past build generations so a regenerate can be
// stepped back and forth.
type History struct {
	undoStack []int64
	redoStack []int64
}

// Record pushes the seed that is being replaced and drops any redo entries.
func (h *History) Record(previous int64) {
	h.undoStack = append(h.undoStack, previous)
	h.redoStack = h.redoStack[:0]
}

// Undo returns the seed to go back to, pushing current onto the redo stack.
func (h *History) Undo(current int64) (int64, bool) {
	if len(h.undoStack) == 0 {
		return 0, false
	}
	lastIndex := len(h.undoStack) - 1
	seed := h.undoStack[lastIndex]
	h.undoStack = h.undoStack[:lastIndex]
	h.redoStack = append(h.redoStack, current)
	return seed, true
}

func (h *History) Redo(current int64) (int64, bool) {
	if len(h.redoStack) == 0 {
		return 0, false
	}
	lastIndex := len(h.redoStack) - 1
	seed := h.redoStack[lastIndex]
	h.redoStack = h.redoStack[:lastIndex]
	h.undoStack = append(h.undoStack, current)
	return seed, true
}

func (h *History) Len() int {
	return len(h.undoStack)
}
