// Package usage holds user-facing CLI errors and their exit codes.
package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrInvalidValue
	ErrMissingArgument
	ErrUnexpectedArgument
	ErrUnknownCommand
	ErrInvalidConfigKey
	ErrInvalidBackendURL
)

// Exit codes:
//
//	Exit 1: environment errors (unknown command, bad config key, bad backend url)
//	Exit 2: user input errors (flags and arguments)
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrInvalidFlag:        2,
	ErrInvalidValue:       2,
	ErrMissingArgument:    2,
	ErrUnexpectedArgument: 2,
	ErrUnknownCommand:     1,
	ErrInvalidConfigKey:   1,
	ErrInvalidBackendURL:  1,
}

// Error is a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the Kind-derived code when non-zero
}

func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns ExitCode when set, otherwise the code for Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
