package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/internal/core/token"
	"todoapi/internal/core/util"
	"todoapi/pkg/test"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	db     *sqlite.DB
	users  port.UserRepository
	tokens port.TokenService
	svc    *service.AccountService
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = test.InitTestDB()
	s.users = repository.NewUserRepository(s.db)

	tokens, err := token.New("test-secret", "HS256", 30)
	s.Require().NoError(err)

	s.tokens = tokens
	s.svc = service.NewAccountService(s.users, s.tokens)
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *AccountServiceTestSuite) signUp(username, email, password string) *domain.User {
	user, err := s.svc.Register(s.ctx, &request.SignUpRequest{
		Username: username,
		Email:    email,
		Password: password,
	})

	s.Require().NoError(err)

	return user
}

func (s *AccountServiceTestSuite) TestRegister() {
	user := s.signUp("alice", "alice@example.com", "supersecret")

	assert.NotEmpty(s.T(), user.ID)
	assert.Equal(s.T(), "alice", user.Username)
	assert.Equal(s.T(), "alice@example.com", user.Email)
	assert.True(s.T(), user.IsActive)
	assert.NotEqual(s.T(), "supersecret", user.PasswordHash)
	assert.NoError(s.T(), util.ComparePassword("supersecret", user.PasswordHash))
}

func (s *AccountServiceTestSuite) TestRegisterDuplicateEmail() {
	s.signUp("alice", "alice@example.com", "supersecret")

	_, err := s.svc.Register(s.ctx, &request.SignUpRequest{
		Username: "alice-again",
		Email:    "alice@example.com",
		Password: "othersecret",
	})

	assert.Error(s.T(), err)
	assert.Equal(s.T(), domain.KindConflict, domain.KindOf(err))
}

func (s *AccountServiceTestSuite) TestLogin() {
	registered := s.signUp("alice", "alice@example.com", "supersecret")

	user, accessToken, err := s.svc.Login(s.ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), registered.ID, user.ID)
	assert.NotEmpty(s.T(), accessToken)

	identity, err := s.tokens.Verify(accessToken)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), registered.ID, identity.UserID)
	assert.Equal(s.T(), "alice@example.com", identity.Email)
}

func (s *AccountServiceTestSuite) TestLoginBadCredentials() {
	s.signUp("alice", "alice@example.com", "supersecret")

	_, _, wrongPassword := s.svc.Login(s.ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	_, _, unknownEmail := s.svc.Login(s.ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})

	assert.Error(s.T(), wrongPassword)
	assert.Error(s.T(), unknownEmail)
	assert.Equal(s.T(), domain.KindUnauthorized, domain.KindOf(wrongPassword))
	assert.Equal(s.T(), domain.KindUnauthorized, domain.KindOf(unknownEmail))

	// The two failures must be indistinguishable to the caller.
	assert.Equal(s.T(), wrongPassword.Error(), unknownEmail.Error())
}

func (s *AccountServiceTestSuite) TestLoginDeactivatedAccount() {
	s.signUp("alice", "alice@example.com", "supersecret")

	_, err := s.db.ExecContext(s.ctx, "UPDATE users SET is_active = 0 WHERE email = ?", "alice@example.com")
	s.Require().NoError(err)

	_, _, err = s.svc.Login(s.ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	assert.Error(s.T(), err)
	assert.Equal(s.T(), domain.KindUnauthorized, domain.KindOf(err))
	assert.Equal(s.T(), "account deactivated", err.Error())
}

func (s *AccountServiceTestSuite) TestGetAccount() {
	registered := s.signUp("alice", "alice@example.com", "supersecret")

	user, err := s.svc.GetAccount(s.ctx, registered.ID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), registered.Email, user.Email)
}

func (s *AccountServiceTestSuite) TestGetAccountUnknownID() {
	_, err := s.svc.GetAccount(s.ctx, "missing-id")

	assert.Error(s.T(), err)
	assert.Equal(s.T(), domain.KindNotFound, domain.KindOf(err))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
