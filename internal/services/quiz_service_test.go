package services

import (
	"context"
	"testing"
	"time"

	"github.com/arjunm/skillsprint/internal/models"
	"github.com/arjunm/skillsprint/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// QuizServiceTestSuite defines the test suite for QuizService
type QuizServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *QuizService
}

// SetupTest runs before each test
func (suite *QuizServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.UserProgress{},
		&models.Streak{},
		&models.QuizAttempt{},
	)
	suite.Require().NoError(err)

	progressRepo := repository.NewProgressRepository(suite.db)
	progressService := NewProgressService(progressRepo)
	progressService.now = func() time.Time {
		return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	}

	suite.service = NewQuizService(progressRepo, progressService, nil)
}

// TearDownTest runs after each test
func (suite *QuizServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *QuizServiceTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

// TestSubmitQuiz_AwardsXPAndStreak verifies the scoring path
func (suite *QuizServiceTestSuite) TestSubmitQuiz_AwardsXPAndStreak() {
	user := suite.createTestUser("quizzer")

	result, err := suite.service.SubmitQuiz(SubmitQuizInput{
		UserID:         user.ID,
		Category:       "Go",
		Score:          4,
		TotalQuestions: 5,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 40, result.XPEarned)
	assert.Equal(suite.T(), 40, result.TotalXP)
	assert.Equal(suite.T(), 1, result.CurrentStreak)

	var attempt models.QuizAttempt
	err = suite.db.Where("user_id = ?", user.ID).First(&attempt).Error
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Go", attempt.Category)
	assert.Equal(suite.T(), 4, attempt.Score)
	assert.Equal(suite.T(), 40, attempt.XPEarned)
}

// TestSubmitQuiz_ZeroScore records the attempt without XP
func (suite *QuizServiceTestSuite) TestSubmitQuiz_ZeroScore() {
	user := suite.createTestUser("zero")

	result, err := suite.service.SubmitQuiz(SubmitQuizInput{
		UserID:         user.ID,
		Category:       "Go",
		Score:          0,
		TotalQuestions: 5,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, result.XPEarned)
	assert.Equal(suite.T(), 0, result.TotalXP)
	// A finished quiz still counts toward the streak
	assert.Equal(suite.T(), 1, result.CurrentStreak)
}

// TestSubmitQuiz_AccumulatesAcrossAttempts verifies the running XP total
func (suite *QuizServiceTestSuite) TestSubmitQuiz_AccumulatesAcrossAttempts() {
	user := suite.createTestUser("repeat")

	_, err := suite.service.SubmitQuiz(SubmitQuizInput{
		UserID: user.ID, Category: "Go", Score: 3, TotalQuestions: 5,
	})
	assert.NoError(suite.T(), err)

	result, err := suite.service.SubmitQuiz(SubmitQuizInput{
		UserID: user.ID, Category: "SQL", Score: 5, TotalQuestions: 5,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 50, result.XPEarned)
	assert.Equal(suite.T(), 80, result.TotalXP)
}

// TestSubmitQuiz_InvalidSubmissions verifies score bounds
func (suite *QuizServiceTestSuite) TestSubmitQuiz_InvalidSubmissions() {
	user := suite.createTestUser("invalid")

	cases := []SubmitQuizInput{
		{UserID: user.ID, Category: "Go", Score: 6, TotalQuestions: 5},
		{UserID: user.ID, Category: "Go", Score: -1, TotalQuestions: 5},
		{UserID: user.ID, Category: "Go", Score: 0, TotalQuestions: 0},
	}
	for _, input := range cases {
		_, err := suite.service.SubmitQuiz(input)
		assert.ErrorIs(suite.T(), err, ErrInvalidSubmission)
	}

	var count int64
	suite.db.Model(&models.QuizAttempt{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestGenerateQuiz_LLMNotConfigured verifies generation fails closed
func (suite *QuizServiceTestSuite) TestGenerateQuiz_LLMNotConfigured() {
	_, err := suite.service.GenerateQuiz(context.Background(), GenerateQuizInput{Category: "Go"})
	assert.ErrorIs(suite.T(), err, ErrLLMNotConfigured)
}

// TestQuizServiceTestSuite runs the test suite
func TestQuizServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuizServiceTestSuite))
}
