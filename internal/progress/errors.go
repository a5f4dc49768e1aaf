package progress

import "fmt"

// PersistenceError indicates a save or load of the aggregate failed.
// It is recoverable: the in-memory aggregate keeps all applied results
// and the caller may retry the save.
type PersistenceError struct {
	Op  string // "save" or "load"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("progress %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
