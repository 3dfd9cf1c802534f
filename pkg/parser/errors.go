package parser

import "errors"

// Recognizer errors. They tell the caller to try the next alternative and
// never escape the top-level parse functions.
var (
	// ErrNoContent reports a delimited span with nothing between the
	// delimiters.
	ErrNoContent = errors.New("no content")

	// ErrInvalidWhiteSpaceFound reports delimited content that starts or
	// ends with whitespace.
	ErrInvalidWhiteSpaceFound = errors.New("invalid whitespace found")

	// ErrNoElement reports that no recognizer matched at this position.
	ErrNoElement = errors.New("no element")

	// ErrInvalidEmail reports a rejected email address candidate.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrUnexpectedContent reports a delimited construct that left
	// characters unconsumed, such as "<https://delta.chat x>".
	ErrUnexpectedContent = errors.New("unexpected content")

	// ErrPrecedingWhitespaceMissing reports a bot command inside a word.
	ErrPrecedingWhitespaceMissing = errors.New("preceding whitespace missing")

	// ErrInternal marks a violated parser invariant. The driver degrades
	// it to plain text.
	ErrInternal = errors.New("internal parser error")
)
