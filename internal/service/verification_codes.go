package service

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"
)

// maxCodeAttempts is how many wrong guesses a code survives.
const maxCodeAttempts = 5

type issuedCode struct {
	code      string
	expiresAt time.Time
	failures  int
}

// VerificationCodes keeps six digit, time boxed codes per email address.
// A new code replaces the previous one. A matching code is consumed, and
// a code is dropped after maxCodeAttempts wrong guesses.
type VerificationCodes struct {
	mu    sync.Mutex
	clock Clock
	ttl   time.Duration
	codes map[string]issuedCode
}

func NewVerificationCodes(clock Clock, ttl time.Duration) *VerificationCodes {
	if clock == nil {
		clock = SystemClock{}
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &VerificationCodes{
		clock: clock,
		ttl:   ttl,
		codes: make(map[string]issuedCode),
	}
}

// NewVerificationCode returns a random six digit code.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", errors.New("generating code error: " + err.Error())
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Store makes code the live code for email and returns its expiry.
func (vc *VerificationCodes) Store(email, code string) time.Time {
	expiresAt := vc.clock.Now().Add(vc.ttl)
	vc.mu.Lock()
	vc.codes[normalizeEmail(email)] = issuedCode{code: code, expiresAt: expiresAt}
	vc.mu.Unlock()
	return expiresAt
}

// Check reports whether code is the live code for email.
func (vc *VerificationCodes) Check(email, code string) bool {
	key := normalizeEmail(email)
	now := vc.clock.Now()
	vc.mu.Lock()
	defer vc.mu.Unlock()
	issued, ok := vc.codes[key]
	if !ok {
		return false
	}
	if !now.Before(issued.expiresAt) {
		delete(vc.codes, key)
		return false
	}
	if subtle.ConstantTimeCompare([]byte(issued.code), []byte(code)) != 1 {
		issued.failures++
		if issued.failures >= maxCodeAttempts {
			delete(vc.codes, key)
		} else {
			vc.codes[key] = issued
		}
		return false
	}
	delete(vc.codes, key)
	return true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
