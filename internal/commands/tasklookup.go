package commands

import (
	"errors"
	"fmt"

	"todo/internal/task"
)

// errOutOfRange is returned when a numeric reference is past the list.
var errOutOfRange = errors.New("task number out of range")

// resolveTaskID turns a reference into a task id.
// Numbers index the rendered order (newest first), the same numbering
// `todo list` prints. id: references are passed through unchecked; an
// unknown id is a no-op for the store.
func resolveTaskID(st *task.Store, ref TaskRef) (string, error) {
	if ref.ByID {
		return ref.ID, nil
	}

	items := st.View().Items
	if ref.Num < 1 || ref.Num > len(items) {
		return "", fmt.Errorf("%w: %d", errOutOfRange, ref.Num)
	}
	return items[ref.Num-1].ID, nil
}
