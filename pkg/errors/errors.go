package errors

import "errors"

// ErrOptimisticLock: the row was modified by another operation in between.
var ErrOptimisticLock = errors.New("record was modified by another operation, refresh and retry")
