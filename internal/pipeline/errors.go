package pipeline

import "errors"

// ErrNoCollection indicates an export or preview was requested before
// any tokens were imported.
var ErrNoCollection = errors.New("no token collection imported")
