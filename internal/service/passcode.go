package service

import (
	"errors"

	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"golang.org/x/crypto/bcrypt"
)

// PasscodeHasher is the one-way transform guarding the parent PIN.
type PasscodeHasher interface {
	Hash(passcode string) (string, error)
	Matches(hash, passcode string) bool
}

type BcryptPasscodes struct {
	cost int
}

func NewBcryptPasscodes(cost int) *BcryptPasscodes {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasscodes{cost: cost}
}

func (b *BcryptPasscodes) Hash(passcode string) (string, error) {
	if !IsPasscode(passcode) {
		return "", errorvalues.ErrInvalidPasscodeFormat
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), b.cost)
	if err != nil {
		return "", errors.New("hashing passcode error: " + err.Error())
	}
	return string(hash), nil
}

func (b *BcryptPasscodes) Matches(hash, passcode string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}

// IsPasscode reports whether s is exactly four ASCII digits.
func IsPasscode(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
