package flatfat

import "fmt"

// Result is the kind of outcome an engine call produced. It implements
// the error interface so it can be returned and compared directly, in
// the style of the teacher's fileResult/frOK pair.
type Result int8

const (
	resultOK Result = iota
	resultInvalidArgument
	resultNotFound
	resultAlreadyExists
	resultNoSpace
	resultNoHandles
	resultNotMounted
	resultIoError
	resultCorruption
)

func (r Result) Error() string {
	switch r {
	case resultOK:
		return "ok"
	case resultInvalidArgument:
		return "invalid argument"
	case resultNotFound:
		return "not found"
	case resultAlreadyExists:
		return "already exists"
	case resultNoSpace:
		return "no space left on device"
	case resultNoHandles:
		return "no available descriptors"
	case resultNotMounted:
		return "filesystem not mounted"
	case resultIoError:
		return "block device i/o error"
	case resultCorruption:
		return "fat chain corruption"
	default:
		return "unknown result"
	}
}

// Sentinel errors callers can match with errors.Is. Each is the
// corresponding Result value, so errors.Is(err, ErrIoError) matches both
// the sentinel itself and a block-device failure wrapped by ioError.
var (
	ErrInvalidArgument = resultInvalidArgument
	ErrNotFound        = resultNotFound
	ErrAlreadyExists   = resultAlreadyExists
	ErrNoSpace         = resultNoSpace
	ErrNoHandles       = resultNoHandles
	ErrNotMounted      = resultNotMounted
	ErrIoError         = resultIoError
	ErrCorruption      = resultCorruption
)

// ioError wraps a failing block device call with the engine's IoError
// kind while keeping the underlying error inspectable via errors.Is and
// errors.As.
func ioError(op string, block int64, cause error) error {
	return fmt.Errorf("%w: %s block %d: %w", ErrIoError, op, block, cause)
}
