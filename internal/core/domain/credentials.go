package domain

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPassphraseTooShort = errors.New("passphrase must be at least 8 characters long")
)

const (
	// OwnerSubject is the token subject of the single calendar owner.
	OwnerSubject = "owner"

	passphraseCost = 12
)

// Credentials guard the API of a single-owner calendar.
type Credentials struct {
	PassphraseHash string
}

func HashPassphrase(plain string) (string, error) {
	if utf8.RuneCountInString(plain) < 8 {
		return "", ErrPassphraseTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), passphraseCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (c Credentials) Check(plain string) error {
	if c.PassphraseHash == "" {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PassphraseHash), []byte(plain)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
