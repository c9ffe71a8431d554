package account

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"accountd/internal/dependencies/clock"
	"accountd/internal/model"
	"accountd/internal/validate"
)

// Service manages the single in-memory account. Mutating operations are
// serialized internally; there is no registry and no persistence.
type Service struct {
	clock  clock.Clock
	logger *slog.Logger

	mu      sync.Mutex
	account *model.Account
}

// New creates a new account Service
func New(clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		clock:  clk,
		logger: logger,
	}
}

// Create validates all inputs and constructs the account. Every check runs
// before any field is committed, so a failure leaves no partial state.
func (s *Service) Create(username, password, email string, age int) (*model.Account, error) {
	if err := validate.Username(username); err != nil {
		return nil, err
	}
	if err := validate.Password(password); err != nil {
		return nil, err
	}
	if err := validate.Email(email); err != nil {
		return nil, err
	}
	if err := validate.Age(age); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account != nil {
		return nil, model.ErrAccountExists
	}

	acct := &model.Account{
		Username:  strings.TrimSpace(username),
		Password:  password,
		Email:     validate.NormalizeEmail(email),
		Age:       age,
		CreatedAt: s.clock.Now(),
		Active:    true,
	}
	s.account = acct

	s.logger.Info("account created", slog.String("username", acct.Username))

	return acct, nil
}

// Current returns the managed account, or ErrNoAccount if none was created.
func (s *Service) Current() (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return nil, model.ErrNoAccount
	}
	return s.account, nil
}

// Login authenticates with the given password. On success LastLogin is set
// to the current time; on failure nothing is mutated. There is no lockout
// or attempt counting.
func (s *Service) Login(password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == nil {
		return false, model.ErrNoAccount
	}

	// Plaintext equality; hashing is an explicit non-goal.
	if password != s.account.Password {
		s.logger.Info("login failed", slog.String("username", s.account.Username))
		return false, nil
	}

	s.account.LastLogin = s.clock.Now()
	s.logger.Info("login succeeded", slog.String("username", s.account.Username))
	return true, nil
}

// UpdatePassword replaces the stored password iff the old one matches.
// The new password is stored without re-validation; the minimum-length
// check applies only at creation.
func (s *Service) UpdatePassword(oldPassword, newPassword string) (bool, error) {
	ok, err := s.Login(oldPassword)
	if err != nil || !ok {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.account.Password = newPassword
	return true, nil
}

// Info returns the public snapshot of the account.
func (s *Service) Info() (model.AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return model.AccountInfo{}, model.ErrNoAccount
	}
	return s.account.Info(), nil
}

// AgeDays returns the account's age in whole days.
func (s *Service) AgeDays() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return 0, model.ErrNoAccount
	}
	return AgeInDays(s.account.CreatedAt, s.clock.Now()), nil
}

// AgeInDays returns the number of whole days between created and now,
// floored. A creation timestamp in the future yields a negative count;
// that quirk is deliberate and not rejected.
func AgeInDays(created, now time.Time) int {
	const day = 24 * time.Hour
	diff := now.Sub(created)
	days := diff / day
	// Integer division truncates toward zero; floor instead so a partial
	// day in the past counts as -1, matching whole-day semantics.
	if diff < 0 && diff%day != 0 {
		days--
	}
	return int(days)
}
