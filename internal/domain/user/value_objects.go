package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidName  = errors.New("invalid display name")
)

const MaxNameLength = 200

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is compared case-insensitively; the stored value is lower-cased.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) LocalPart() string {
	at := strings.IndexByte(e.value, '@')
	if at < 0 {
		return e.value
	}
	return e.value[:at]
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

// NameOrDefault falls back to the mailbox name when the provider sent no usable name.
func NameOrDefault(s string, email Email) Name {
	if n, err := NewName(s); err == nil {
		return n
	}
	return Name{value: email.LocalPart()}
}

func (n Name) Value() string {
	return n.value
}
