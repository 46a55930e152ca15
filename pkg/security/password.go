package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/jwalitptl/passcheck/pkg/errors"
	"github.com/jwalitptl/passcheck/pkg/password"
)

// MaxHashLength is the longest password, in bytes, bcrypt accepts.
const MaxHashLength = 72

var (
	ErrHashingFailed = errors.New("password hashing failed")
	ErrMismatch      = errors.New("password does not match")
	ErrTooLong       = errors.New("password exceeds 72 bytes")
)

// PasswordHasher provides interface for password operations
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new password hasher using bcrypt
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash refuses any password the policy does not accept, and any password too long
// for bcrypt.
func (b *bcryptHasher) Hash(plain string) (string, error) {
	if status := password.Validate(plain); !status.IsValid() {
		return "", apperrors.WeakPassword(status)
	}
	if len(plain) > MaxHashLength {
		return "", apperrors.BadRequest("password too long to hash", ErrTooLong)
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", apperrors.Internal(errors.Join(ErrHashingFailed, err))
	}
	return string(bytes), nil
}

func (b *bcryptHasher) Compare(hashedPassword, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
