package datastruct

import "go.llib.dev/frameless/pkg/errorkit"

// ErrConcurrentModification is reported by a borrowing iterator
// when its Stack was pushed, popped or cleared while the iterator was still in use.
const ErrConcurrentModification errorkit.Error = "datastruct: stack was modified during iteration"
