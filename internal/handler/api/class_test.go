//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fitbooking/internal/handler/api"
	resdto "fitbooking/internal/handler/dto/response"
	"fitbooking/internal/pkg/config"
	"fitbooking/internal/pkg/timezone"
	"fitbooking/internal/usecase/queries"
	"fitbooking/tests/common/httptest"
	queriesmock "fitbooking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClassHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockClassQueries
	handler     *api.ClassHandler
}

func (s *ClassHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockClassQueries(s.mockCtrl)
	s.handler = api.NewClassHandler(s.mockQueries, config.NewTestConfig())

	s.router.GET("/api/classes", s.handler.List)
	s.router.GET("/api/classes/:id", s.handler.Get)
	s.router.GET("/api/classes/:id/availability", s.handler.Availability)
}

func (s *ClassHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClassHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClassHandlerTestSuite))
}

func sampleClassView(id int64) *queries.ClassView {
	return &queries.ClassView{
		ID:             id,
		Name:           "Morning Yoga",
		Instructor:     "Priya Sharma",
		ScheduledLocal: time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC),
		Timezone:       "Asia/Kolkata",
		TotalSlots:     10,
		AvailableSlots: 4,
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *ClassHandlerTestSuite) TestList() {
	url := "/api/classes"

	s.Run("success: returns class list with default timezone", func() {
		views := []*queries.ClassView{sampleClassView(1), sampleClassView(2)}
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), "Asia/Kolkata").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ClassListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
		s.Equal("Morning Yoga", response.Classes[0].Name)
	})

	s.Run("success: empty list when nothing upcoming", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), "Asia/Kolkata").
			Return([]*queries.ClassView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ClassListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.Count)
		s.Empty(response.Classes)
	})

	s.Run("success: timezone query parameter is forwarded", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), "Europe/London").
			Return([]*queries.ClassView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?timezone=Europe/London", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown timezone", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), "Mars/Olympus").
			Return(nil, timezone.ErrUnknownTimezone).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?timezone=Mars/Olympus", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown timezone")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), "Asia/Kolkata").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ClassHandlerTestSuite) TestGet() {
	url := "/api/classes/1"

	s.Run("success: returns 200 OK with class view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1), "Asia/Kolkata").
			Return(sampleClassView(1), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response queries.ClassView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1), response.ID)
		s.Equal("Asia/Kolkata", response.Timezone)
	})

	s.Run("error: 400 Bad Request for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/classes/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid class ID format")
	})

	s.Run("error: 400 Bad Request for non-positive id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/classes/0", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid class ID format")
	})

	s.Run("error: 404 Not Found for missing class", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1), "Asia/Kolkata").
			Return(nil, queries.ErrClassNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Class not found")
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *ClassHandlerTestSuite) TestAvailability() {
	url := "/api/classes/1/availability"

	s.Run("success: returns 200 OK with availability view", func() {
		view := &queries.AvailabilityView{
			ClassID:        1,
			ClassName:      "Morning Yoga",
			TotalSlots:     10,
			AvailableSlots: 4,
			BookedSlots:    6,
			IsAvailable:    true,
		}
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), int64(1)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1), response.ClassID)
		s.Equal(int32(6), response.BookedSlots)
		s.True(response.IsAvailable)
	})

	s.Run("error: 400 Bad Request for invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/classes/-1/availability", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid class ID format")
	})

	s.Run("error: 404 Not Found for missing class", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), int64(1)).
			Return(nil, queries.ErrClassNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Class not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), int64(1)).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
