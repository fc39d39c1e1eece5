package ledger

import "errors"

// Sentinel errors for expected failure scenarios. An unknown student
// id is not one of these: Pay reports it as ok=false, no error.
var (
	ErrMalformedAmount = errors.New("billing: malformed numeric input")
	ErrStorage         = errors.New("billing: storage unavailable")
)
