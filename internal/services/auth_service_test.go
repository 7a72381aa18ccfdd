package services

import (
	"testing"
	"time"

	"github.com/arjunm/skillsprint/internal/models"
	"github.com/arjunm/skillsprint/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
	secret  []byte
}

// SetupTest runs before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{})
	suite.Require().NoError(err)

	suite.secret = []byte("test-secret")
	suite.service = NewAuthService(repository.NewUserRepository(suite.db), suite.secret, time.Hour)
}

// TearDownTest runs after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthServiceTestSuite) signup(email, username string) *models.User {
	user, err := suite.service.Signup(SignupInput{
		Email:    email,
		Username: username,
		Password: "password123",
	})
	suite.Require().NoError(err)
	return user
}

// TestSignup_Success verifies account creation
func (suite *AuthServiceTestSuite) TestSignup_Success() {
	user := suite.signup("new@example.com", "newuser")

	assert.NotZero(suite.T(), user.ID)
	assert.Equal(suite.T(), "new@example.com", user.Email)
	// Password is stored hashed, never verbatim
	assert.NotEqual(suite.T(), "password123", user.PasswordHash)
	assert.NotEmpty(suite.T(), user.PasswordHash)
}

// TestSignup_NormalizesEmail verifies case and whitespace handling
func (suite *AuthServiceTestSuite) TestSignup_NormalizesEmail() {
	user, err := suite.service.Signup(SignupInput{
		Email:    "  Mixed@Example.COM ",
		Username: "mixed",
		Password: "password123",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "mixed@example.com", user.Email)
}

// TestSignup_DuplicateEmail verifies the email uniqueness check
func (suite *AuthServiceTestSuite) TestSignup_DuplicateEmail() {
	suite.signup("dup@example.com", "first")

	_, err := suite.service.Signup(SignupInput{
		Email:    "dup@example.com",
		Username: "second",
		Password: "password123",
	})
	assert.ErrorIs(suite.T(), err, ErrEmailTaken)
}

// TestSignup_DuplicateUsername verifies the username uniqueness check
func (suite *AuthServiceTestSuite) TestSignup_DuplicateUsername() {
	suite.signup("a@example.com", "taken")

	_, err := suite.service.Signup(SignupInput{
		Email:    "b@example.com",
		Username: "taken",
		Password: "password123",
	})
	assert.ErrorIs(suite.T(), err, ErrUsernameTaken)
}

// TestSignup_ShortPassword verifies the minimum password length
func (suite *AuthServiceTestSuite) TestSignup_ShortPassword() {
	_, err := suite.service.Signup(SignupInput{
		Email:    "short@example.com",
		Username: "short",
		Password: "1234567",
	})
	assert.ErrorIs(suite.T(), err, ErrPasswordTooShort)
}

// TestLogin_Success verifies credentials and the issued token
func (suite *AuthServiceTestSuite) TestLogin_Success() {
	created := suite.signup("login@example.com", "login")

	user, token, err := suite.service.Login(LoginInput{
		Email:    "login@example.com",
		Password: "password123",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), created.ID, user.ID)
	assert.NotEmpty(suite.T(), token)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return suite.secret, nil
	})
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(suite.T(), float64(created.ID), claims["sub"])
}

// TestLogin_WrongPassword verifies rejection without leaking which part failed
func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	suite.signup("wrong@example.com", "wrong")

	_, _, err := suite.service.Login(LoginInput{
		Email:    "wrong@example.com",
		Password: "not-the-password",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestLogin_UnknownEmail verifies the same error as a bad password
func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	_, _, err := suite.service.Login(LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
