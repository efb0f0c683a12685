package guest

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmptyName   = errors.New("guest name is required")
	ErrNameTooLong = errors.New("guest name is too long (max 255 characters)")
	ErrInvalidMail = errors.New("invalid guest email")
)

const MaxNameLength = 255

// Info identifies the person a room is held for. Only the name is required.
type Info struct {
	name  string
	phone string
	email string
}

func New(name, phone, email string) (Info, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Info{}, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return Info{}, ErrNameTooLong
	}
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Info{}, ErrInvalidMail
		}
	}
	return Info{name: name, phone: strings.TrimSpace(phone), email: email}, nil
}

// Reconstruct skips validation for values already persisted.
func Reconstruct(name, phone, email string) Info {
	return Info{name: name, phone: phone, email: email}
}

func (g Info) Name() string  { return g.name }
func (g Info) Phone() string { return g.phone }
func (g Info) Email() string { return g.email }
