package parser

import (
	"fmt"
	"net/mail"
	"strings"
)

// EmailValidator decides whether a structurally plausible candidate is a
// real email address.
type EmailValidator interface {
	ValidateEmail(address string) error
}

// EmailValidatorFunc adapts a function to EmailValidator.
type EmailValidatorFunc func(address string) error

// ValidateEmail calls f(address).
func (f EmailValidatorFunc) ValidateEmail(address string) error {
	return f(address)
}

// MailValidator accepts bare RFC 5322 addr-specs as understood by
// net/mail. Display names and angle brackets are rejected.
type MailValidator struct{}

// ValidateEmail implements EmailValidator.
func (MailValidator) ValidateEmail(address string) error {
	addr, err := mail.ParseAddress(address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	if addr.Name != "" || addr.Address != address {
		return fmt.Errorf("%w: %q is not a bare address", ErrInvalidEmail, address)
	}
	return nil
}

func isEmailPartChar(r rune) bool {
	switch r {
	case '@', '\n', '\r', '\t', ' ', ':', ';', '!', '?', ',',
		'(', ')', '{', '}', '[', ']', '"', '<', '>':
		return false
	default:
		return true
	}
}

// maxEmailLength is the longest address an SMTP path can carry.
const maxEmailLength = 254

// scanEmail returns the length of the email address candidate at the start
// of s: local part, "@", domain, with trailing dots dropped. Candidates
// longer than maxEmailLength are rejected. It does not validate.
func scanEmail(s string) (int, bool) {
	isStop := func(r rune) bool { return !isEmailPartChar(r) }
	window := s[:min(len(s), maxEmailLength+1)]

	at := strings.IndexFunc(window, isStop)
	if at <= 0 || window[at] != '@' {
		return 0, false
	}

	end := len(window)
	if i := strings.IndexFunc(window[at+1:], isStop); i >= 0 {
		end = at + 1 + i
	}
	if end > maxEmailLength {
		return 0, false
	}
	for end > at+1 && s[end-1] == '.' {
		end--
	}
	if end == at+1 {
		return 0, false
	}
	return end, true
}

// matchEmail scans and validates the address at the start of s.
func (p *Parser) matchEmail(s string) (int, error) {
	n, ok := scanEmail(s)
	if !ok {
		return 0, ErrInvalidEmail
	}
	if err := p.validator.ValidateEmail(s[:n]); err != nil {
		return 0, err
	}
	return n, nil
}
