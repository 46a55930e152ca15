package password

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/passcheck/pkg/logger"
	"github.com/jwalitptl/passcheck/pkg/metrics"
	"github.com/jwalitptl/passcheck/pkg/password"
	"github.com/jwalitptl/passcheck/pkg/security"
)

// Result is the outcome of checking one password.
type Result struct {
	Status  password.Status `json:"status"`
	Valid   bool            `json:"valid"`
	Message string          `json:"message"`
}

type Service struct {
	validator password.FieldValidator[password.Status]
	hasher    security.PasswordHasher
	metrics   *metrics.Metrics
	log       *logger.Logger
}

func NewService(hasher security.PasswordHasher, m *metrics.Metrics, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		validator: password.Validator{},
		hasher:    hasher,
		metrics:   m,
		log:       log,
	}
}

// Check validates a single password. The password itself is never logged.
func (s *Service) Check(input string) Result {
	start := time.Now()
	status := s.validator.Validate(input)
	if s.metrics != nil {
		s.metrics.Observe(status, time.Since(start))
	}
	s.log.Debug("password checked", "status", status.String())

	return Result{
		Status:  status,
		Valid:   status.IsValid(),
		Message: Message(status),
	}
}

// CheckAll validates inputs in order, stopping early if ctx is cancelled.
func (s *Service) CheckAll(ctx context.Context, inputs []string) ([]Result, error) {
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}
		results = append(results, s.Check(in))
	}
	return results, nil
}

// Hash validates input and returns its bcrypt hash.
func (s *Service) Hash(ctx context.Context, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	hash, err := s.hasher.Hash(input)
	if err != nil {
		s.log.Warn("refused to hash password", "status", password.Validate(input).String())
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// Message returns the English text shown to a user for status.
func Message(status password.Status) string {
	switch status {
	case password.TooShort:
		return fmt.Sprintf("Password must be at least %d characters long.", password.MinLength)
	case password.NoLowercase:
		return "Password must contain at least one lowercase letter."
	case password.NoUppercase:
		return "Password must contain at least one uppercase letter."
	case password.NoDigit:
		return "Password must contain at least one digit."
	case password.NoSpecialChar:
		return "Password must contain at least one special character (" + password.SpecialCharacters + ")."
	case password.Valid:
		return "Password is valid."
	}
	return ""
}
