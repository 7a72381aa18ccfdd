package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/arjunm/skillsprint/internal/models"
	"github.com/arjunm/skillsprint/internal/repository"
	"github.com/arjunm/skillsprint/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RoadmapHandlerTestSuite defines the test suite for RoadmapHandler
type RoadmapHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *RoadmapHandler
}

// SetupTest runs before each test
func (suite *RoadmapHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Roadmap{},
		&models.RoadmapTask{},
		&models.UserProgress{},
		&models.Streak{},
	)
	suite.Require().NoError(err)

	progressService := services.NewProgressService(repository.NewProgressRepository(suite.db))
	roadmapService := services.NewRoadmapService(repository.NewRoadmapRepository(suite.db), progressService, nil)
	suite.handler = NewRoadmapHandler(roadmapService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *RoadmapHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper to create test data
func (suite *RoadmapHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Email:        email,
		Username:     email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *RoadmapHandlerTestSuite) createTestRoadmap(userID uint64, numDays int) *models.Roadmap {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	roadmap := &models.Roadmap{
		UserID:     userID,
		Role:       "Backend Developer",
		SkillLevel: "Beginner",
		StartDate:  today,
		EndDate:    today.AddDate(0, 0, numDays-1),
		IsActive:   true,
	}
	suite.db.Create(roadmap)

	for i := 0; i < numDays; i++ {
		suite.db.Create(&models.RoadmapTask{
			RoadmapID:    roadmap.ID,
			DayNumber:    i + 1,
			ModuleName:   "Module",
			Topic:        "Topic",
			DateAssigned: today.AddDate(0, 0, i),
			Status:       models.TaskStatusPending,
		})
	}
	return roadmap
}

// Helper function to create authenticated context
func (suite *RoadmapHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", userID)

	return c, w
}

// TestDashboard_NoRoadmap tests the empty-state response
func (suite *RoadmapHandlerTestSuite) TestDashboard_NoRoadmap() {
	user := suite.createTestUser("empty@example.com")

	c, w := suite.createAuthContext("GET", "/api/roadmap/dashboard", nil, user.ID)
	suite.handler.Dashboard(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "no_roadmap", response["status"])
	assert.NotContains(suite.T(), response, "roadmap_details")
}

// TestDashboard_Active tests the calendar projection
func (suite *RoadmapHandlerTestSuite) TestDashboard_Active() {
	user := suite.createTestUser("active@example.com")
	suite.createTestRoadmap(user.ID, 7)

	c, w := suite.createAuthContext("GET", "/api/roadmap/dashboard", nil, user.ID)
	suite.handler.Dashboard(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "active", response["status"])
	assert.Contains(suite.T(), response, "roadmap_details")

	tasks := response["all_tasks"].([]interface{})
	assert.Len(suite.T(), tasks, 7)
}

// TestComplete_Success tests completing a task over HTTP
func (suite *RoadmapHandlerTestSuite) TestComplete_Success() {
	user := suite.createTestUser("complete@example.com")
	roadmap := suite.createTestRoadmap(user.ID, 7)

	var task models.RoadmapTask
	err := suite.db.Where("roadmap_id = ? AND day_number = ?", roadmap.ID, 1).First(&task).Error
	suite.Require().NoError(err)

	c, w := suite.createAuthContext("POST", "/api/roadmap/complete/1", nil, user.ID)
	c.Params = gin.Params{{Key: "task_id", Value: strconv.FormatUint(task.ID, 10)}}
	suite.handler.Complete(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	taskBody := response["task"].(map[string]interface{})
	assert.Equal(suite.T(), "COMPLETED", taskBody["status"])
}

// TestComplete_NotFound tests completing a task the user does not own
func (suite *RoadmapHandlerTestSuite) TestComplete_NotFound() {
	owner := suite.createTestUser("owner@example.com")
	other := suite.createTestUser("other@example.com")
	roadmap := suite.createTestRoadmap(owner.ID, 7)

	var task models.RoadmapTask
	err := suite.db.Where("roadmap_id = ?", roadmap.ID).First(&task).Error
	suite.Require().NoError(err)

	c, w := suite.createAuthContext("POST", "/api/roadmap/complete/1", nil, other.ID)
	c.Params = gin.Params{{Key: "task_id", Value: strconv.FormatUint(task.ID, 10)}}
	suite.handler.Complete(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestComplete_InvalidID tests a non-numeric task id
func (suite *RoadmapHandlerTestSuite) TestComplete_InvalidID() {
	user := suite.createTestUser("badid@example.com")

	c, w := suite.createAuthContext("POST", "/api/roadmap/complete/abc", nil, user.ID)
	c.Params = gin.Params{{Key: "task_id", Value: "abc"}}
	suite.handler.Complete(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGenerate_LLMNotConfigured tests the 503 when generation is disabled
func (suite *RoadmapHandlerTestSuite) TestGenerate_LLMNotConfigured() {
	user := suite.createTestUser("gen@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"role":        "Backend Developer",
		"skill_level": "Beginner",
		"end_date":    time.Now().AddDate(0, 0, 30).Format("2006-01-02"),
	})

	c, w := suite.createAuthContext("POST", "/api/roadmap/generate", body, user.ID)
	suite.handler.Generate(c)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

// TestGenerate_BadDate tests date format validation
func (suite *RoadmapHandlerTestSuite) TestGenerate_BadDate() {
	user := suite.createTestUser("baddate@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"role":        "Backend Developer",
		"skill_level": "Beginner",
		"end_date":    "30/06/2025",
	})

	c, w := suite.createAuthContext("POST", "/api/roadmap/generate", body, user.ID)
	suite.handler.Generate(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestTogglePause_Success tests pausing over HTTP
func (suite *RoadmapHandlerTestSuite) TestTogglePause_Success() {
	user := suite.createTestUser("pause@example.com")
	roadmap := suite.createTestRoadmap(user.ID, 7)

	c, w := suite.createAuthContext("POST", "/api/roadmap/pause/1", nil, user.ID)
	c.Params = gin.Params{{Key: "roadmap_id", Value: strconv.FormatUint(roadmap.ID, 10)}}
	suite.handler.TogglePause(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "paused", response["status"])
}

// TestArchive_NoActiveRoadmap tests archiving with nothing active
func (suite *RoadmapHandlerTestSuite) TestArchive_NoActiveRoadmap() {
	user := suite.createTestUser("none@example.com")

	c, w := suite.createAuthContext("DELETE", "/api/roadmap/archive", nil, user.ID)
	suite.handler.Archive(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestRoadmapHandlerTestSuite runs the test suite
func TestRoadmapHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoadmapHandlerTestSuite))
}
