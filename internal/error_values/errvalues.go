package errorvalues

import "errors"

var (
	ErrAccountExists         = errors.New("account with such email already exists")
	ErrAccountNotFound       = errors.New("account doesn't exist")
	ErrChildNotFound         = errors.New("child doesn't exist")
	ErrTaskNotFound          = errors.New("task doesn't exist")
	ErrTaskExists            = errors.New("task already exists for that day")
	ErrInvalidTransition     = errors.New("task is not in the expected state")
	ErrNotOwned              = errors.New("resource is owned by someone else")
	ErrInvalidPasscode       = errors.New("wrong passcode")
	ErrInvalidPasscodeFormat = errors.New("passcode must be 4 digits")
	ErrQuotaExceeded         = errors.New("subscription quota exceeded")
	ErrRateLimited           = errors.New("too many requests, try again later")
	ErrTaskNotDue            = errors.New("task is not due yet")
	ErrInvalidAge            = errors.New("child age must be between 5 and 17")
	ErrInvalidTier           = errors.New("unknown subscription tier")
	ErrNotVerified           = errors.New("email verification required")
	ErrInvalidToken          = errors.New("invalid token")
	ErrValidation            = errors.New("validation error")
)

// Category groups errors by what the caller should do about them.
type Category int

const (
	CategoryInternal Category = iota
	// Nothing happened, the same call may succeed later.
	CategoryRetry
	// The action is not allowed in the current state of the account.
	CategoryNotAllowed
	// The caller acted on outdated data and should refresh.
	CategoryStale
	CategoryNotFound
	CategoryInvalid
)

func (c Category) String() string {
	switch c {
	case CategoryRetry:
		return "retry"
	case CategoryNotAllowed:
		return "not_allowed"
	case CategoryStale:
		return "stale"
	case CategoryNotFound:
		return "not_found"
	case CategoryInvalid:
		return "invalid"
	default:
		return "internal"
	}
}

func CategoryOf(err error) Category {
	switch {
	case err == nil:
		return CategoryInternal
	case errors.Is(err, ErrInvalidPasscode), errors.Is(err, ErrRateLimited):
		return CategoryRetry
	case errors.Is(err, ErrQuotaExceeded), errors.Is(err, ErrNotOwned),
		errors.Is(err, ErrTaskNotDue), errors.Is(err, ErrNotVerified):
		return CategoryNotAllowed
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrTaskExists):
		return CategoryStale
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrChildNotFound), errors.Is(err, ErrTaskNotFound):
		return CategoryNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidAge), errors.Is(err, ErrInvalidTier),
		errors.Is(err, ErrInvalidPasscodeFormat), errors.Is(err, ErrAccountExists):
		return CategoryInvalid
	default:
		return CategoryInternal
	}
}
