package account

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"accountd/internal/dependencies/mocks"
	"accountd/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Create tests

func (s *ServiceSuite) TestCreateSucceeds() {
	acct, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	s.Equal("john_doe", acct.Username)
	s.Equal("secret123", acct.Password)
	s.Equal("john@example.com", acct.Email)
	s.Equal(25, acct.Age)
	s.True(acct.Active)
	s.Equal(s.clock.CurrentTime, acct.CreatedAt)
	s.False(acct.HasLoggedIn())
}

func (s *ServiceSuite) TestCreateNormalizesUsernameAndEmail() {
	acct, err := s.service.Create("  john_doe  ", "secret123", "  John@Example.COM ", 25)
	s.Require().NoError(err)

	s.Equal("john_doe", acct.Username)
	s.Equal("john@example.com", acct.Email)
}

func (s *ServiceSuite) TestCreateFailsWithEmptyUsername() {
	_, err := s.service.Create("   ", "secret123", "john@example.com", 25)
	s.ErrorIs(err, model.ErrInvalidUsername)
}

func (s *ServiceSuite) TestCreateFailsWithShortPassword() {
	_, err := s.service.Create("john_doe", "short", "john@example.com", 25)
	s.ErrorIs(err, model.ErrInvalidPassword)
}

func (s *ServiceSuite) TestCreateFailsWithInvalidEmail() {
	_, err := s.service.Create("john_doe", "secret123", "not-an-email", 25)
	s.ErrorIs(err, model.ErrInvalidEmail)
}

func (s *ServiceSuite) TestCreateFailsWithAgeOutOfRange() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 151)
	s.ErrorIs(err, model.ErrInvalidAge)

	_, err = s.service.Create("john_doe", "secret123", "john@example.com", -1)
	s.ErrorIs(err, model.ErrInvalidAge)
}

func (s *ServiceSuite) TestCreateFailureLeavesNoAccount() {
	_, err := s.service.Create("john_doe", "secret123", "invalid", 25)
	s.Require().Error(err)

	_, err = s.service.Current()
	s.ErrorIs(err, model.ErrNoAccount)
}

func (s *ServiceSuite) TestCreateFailsIfAccountExists() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	_, err = s.service.Create("jane_doe", "secret456", "jane@example.com", 30)
	s.ErrorIs(err, model.ErrAccountExists)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceedsAndSetsLastLogin() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)

	ok, err := s.service.Login("secret123")
	s.Require().NoError(err)
	s.True(ok)

	acct, err := s.service.Current()
	s.Require().NoError(err)
	s.Equal(s.clock.CurrentTime, acct.LastLogin)
	s.True(acct.LastLogin.After(acct.CreatedAt))
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	ok, err := s.service.Login("wrong")
	s.Require().NoError(err)
	s.False(ok)

	acct, err := s.service.Current()
	s.Require().NoError(err)
	s.False(acct.HasLoggedIn())
}

func (s *ServiceSuite) TestLoginIsCaseSensitive() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	ok, err := s.service.Login("SECRET123")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ServiceSuite) TestLoginFailureLeavesLastLoginUnchanged() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	ok, _ := s.service.Login("secret123")
	s.Require().True(ok)
	first := s.clock.CurrentTime

	s.clock.Advance(time.Hour)
	ok, err = s.service.Login("wrong")
	s.Require().NoError(err)
	s.False(ok)

	acct, _ := s.service.Current()
	s.Equal(first, acct.LastLogin)
}

func (s *ServiceSuite) TestLoginWithoutAccount() {
	_, err := s.service.Login("secret123")
	s.ErrorIs(err, model.ErrNoAccount)
}

// UpdatePassword tests

func (s *ServiceSuite) TestUpdatePasswordSucceeds() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	ok, err := s.service.UpdatePassword("secret123", "newpass1")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.Login("newpass1")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.Login("secret123")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ServiceSuite) TestUpdatePasswordFailsWithWrongOldPassword() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	ok, err := s.service.UpdatePassword("wrong", "newpass1")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.service.Login("secret123")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ServiceSuite) TestUpdatePasswordDoesNotRevalidateNewPassword() {
	// The minimum-length check applies only at creation; a short new
	// password is accepted on update.
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	ok, err := s.service.UpdatePassword("secret123", "x")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.Login("x")
	s.Require().NoError(err)
	s.True(ok)
}

// Info tests

func (s *ServiceSuite) TestInfoReturnsPublicSnapshot() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	info, err := s.service.Info()
	s.Require().NoError(err)
	s.Equal(model.AccountInfo{
		Username: "john_doe",
		Email:    "john@example.com",
		Age:      25,
		Active:   true,
	}, info)
}

func (s *ServiceSuite) TestInfoWithoutAccount() {
	_, err := s.service.Info()
	s.ErrorIs(err, model.ErrNoAccount)
}

// Account age tests

func (s *ServiceSuite) TestAgeDaysAfterTenDays() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	s.clock.Advance(10 * 24 * time.Hour)

	days, err := s.service.AgeDays()
	s.Require().NoError(err)
	s.Equal(10, days)
}

func (s *ServiceSuite) TestAgeInDaysFloorsPartialDays() {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(10*24*time.Hour + 23*time.Hour)
	s.Equal(10, AgeInDays(created, now))
}

func (s *ServiceSuite) TestAgeInDaysNegativeForFutureTimestamp() {
	// A future creation timestamp is not rejected; the count goes negative.
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Equal(-1, AgeInDays(now.Add(12*time.Hour), now))
	s.Equal(-3, AgeInDays(now.Add(3*24*time.Hour), now))
}

// End-to-end scenario

func (s *ServiceSuite) TestAccountLifecycle() {
	_, err := s.service.Create("john_doe", "secret123", "john@example.com", 25)
	s.Require().NoError(err)

	info, err := s.service.Info()
	s.Require().NoError(err)
	s.Equal(model.AccountInfo{Username: "john_doe", Email: "john@example.com", Age: 25, Active: true}, info)

	ok, err := s.service.Login("secret123")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.Login("wrong")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.service.UpdatePassword("secret123", "newpass1")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.Login("newpass1")
	s.Require().NoError(err)
	s.True(ok)
}
