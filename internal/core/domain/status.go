package domain

// ExitStatus encodes the aggregate outcome of a comparison session
// as a process exit code, so the tool can gate CI pipelines.
type ExitStatus int

const (
	// StatusIdentical means both files hold the same keys with the same content.
	StatusIdentical ExitStatus = 0

	// 1 is left to the runtime (panics).

	// StatusUsageError means the arguments were unusable: a missing or
	// duplicated file, or a selection regexp that matched nothing.
	StatusUsageError ExitStatus = 2

	// StatusInternalError means something unexpected failed (unreadable
	// file, I/O error).
	StatusInternalError ExitStatus = 3

	// StatusEitherMissing means both files are missing keys the other has.
	StatusEitherMissing ExitStatus = 10

	// StatusFirstMissing means the first file is missing keys.
	StatusFirstMissing ExitStatus = 11

	// StatusSecondMissing means the second file is missing keys.
	StatusSecondMissing ExitStatus = 12

	// StatusContentDiffers means at least one common object has different
	// content. This is the worst outcome: the files claim the same keys
	// but disagree on the numbers.
	StatusContentDiffers ExitStatus = 13
)

// StatusError carries an ExitStatus across the cobra error path.
// Message may be empty for outcome statuses that were already reported.
type StatusError struct {
	Status  ExitStatus
	Message string
}

func (e *StatusError) Error() string { return e.Message }

// NewStatusError builds a StatusError with a message.
func NewStatusError(status ExitStatus, msg string) *StatusError {
	return &StatusError{Status: status, Message: msg}
}
