package service

// DeletePolicy controls how a composer handles DeleteByID/DeleteByKey. The
// source services disagree on this, so it is injected per resource instead
// of unified by guesswork.
type DeletePolicy int

const (
	// DeleteVerify re-fetches the record first and fails with the resource's
	// not-found error when it is absent.
	DeleteVerify DeletePolicy = iota
	// DeleteDirect issues the delete unconditionally; deleting a missing
	// record succeeds.
	DeleteDirect
)
