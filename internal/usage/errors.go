package usage

import (
	"fmt"
	"strings"
)

func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("hw: invalid flag '%s'", flag),
	}
}

// InvalidValue reports a flag or argument whose value cannot be used.
func InvalidValue(name, value, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("hw: invalid value '%s' for %s: %s", value, name, reason),
	}
}

func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("hw: missing required argument '%s'", arg),
	}
}

func UnexpectedArgument(arg string) *Error {
	return &Error{
		Kind:    ErrUnexpectedArgument,
		Message: fmt.Sprintf("hw: unexpected argument '%s'", arg),
	}
}

// UnknownCommand lists close matches, git style, when there are any.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("hw: '%s' is not a hw command. See 'hw --help'.", command)
	switch len(suggestions) {
	case 0:
	case 1:
		msg += "\n\nThe most similar command is\n\t" + suggestions[0]
	default:
		msg += "\n\nThe most similar commands are\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{Kind: ErrUnknownCommand, Message: msg}
}

func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("hw: unknown config key '%s'. See 'hw config list'.", key),
	}
}

func InvalidBackendURL(err error) *Error {
	return &Error{
		Kind:    ErrInvalidBackendURL,
		Message: "hw: " + err.Error(),
	}
}
