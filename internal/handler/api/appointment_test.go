//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/handler/api"
	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/tests/common/builder"
	"barbershop-booking/tests/common/httptest"
	"barbershop-booking/tests/common/testutil"
	commandsmock "barbershop-booking/tests/mock/commands"
	queriesmock "barbershop-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.AppointmentHandler
	caller       user.Identity
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	s.caller = builder.NewUserBuilder().BuildIdentity()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetIdentity(c, s.caller)
		c.Next()
	}

	s.router.POST("/appointments", authMiddleware, s.handler.Book)
	s.router.POST("/appointments/cancel", authMiddleware, s.handler.Cancel)
	s.router.GET("/appointments/mine", authMiddleware, s.handler.Mine)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

type testCaseAppointment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestBook
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestBook() {
	url := "/appointments"

	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildBookDTO()
	result := b.BuildResult()

	s.Run("success: returns 201 Created with the appointment", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), commands.BookRequest{
			Date:     "2024-06-01",
			TimeSlot: "09:00 AM",
			BarberID: 1,
		}, s.caller).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.ID, body.ID)
		s.Equal("09:00 AM", body.TimeSlot)
		s.Equal("booked", body.Status)
		s.Equal("alice@example.com", body.UserEmail)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseAppointment{
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: timeSlot", mutate: testutil.Field("timeSlot", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: barberId", mutate: testutil.Field("barberId", nil), expectCode: http.StatusBadRequest},
			{name: "barberId must be positive", mutate: testutil.Field("barberId", -1), expectCode: http.StatusBadRequest},
			{name: "barberId wrong type", mutate: testutil.Field("barberId", "one"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown time slot",
				commandsError:  errs.Mark(commands.ErrUnknownTimeSlot, errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "date in the past",
				commandsError:  errs.Mark(commands.ErrDateInPast, errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "slot already booked",
				commandsError:  errs.Mark(commands.ErrSlotTaken, errs.ErrSlotUnavailable),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				name:           "store unavailable",
				commandsError:  errs.Mark(errors.New("connection refused"), errs.ErrStoreUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "temporarily unavailable",
			},
			{
				name:           "unclassified error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCancel() {
	url := "/appointments/cancel"

	b := builder.NewAppointmentBuilder().AsCancelled()
	reqBody := b.BuildCancelDTO()
	result := b.BuildResult()

	s.Run("success: returns 200 OK with the cancelled appointment", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), commands.CancelRequest{
			Date:     "2024-06-01",
			TimeSlot: "09:00 AM",
		}, s.caller).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 400 Bad Request when timeSlot is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("timeSlot", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"another user's booking", errs.Mark(commands.ErrNotOwner, errs.ErrForbidden), http.StatusForbidden, "Forbidden"},
			{"nothing at the slot", errs.Mark(commands.ErrNoAppointment, errs.ErrNotFound), http.StatusNotFound, "Not found"},
			{"cancelled twice", errs.Mark(commands.ErrCancelledTwice, errs.ErrAlreadyCancelled), http.StatusConflict, "already cancelled"},
			{"malformed date", errs.Mark(commands.ErrInvalidDate, errs.ErrValidation), http.StatusBadRequest, "Invalid request"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestMine
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestMine() {
	url := "/appointments/mine"

	s.Run("success: returns the caller's reservations", func() {
		views := []*queries.ReservationView{
			builder.NewAppointmentBuilder().BuildReservationView(),
			builder.NewAppointmentBuilder().WithTimeSlot("10:00 AM").AsCancelled().BuildReservationView(),
		}
		s.mockQueries.EXPECT().GetUserReservations(gomock.Any(), "alice@example.com").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("10:00 AM", body[1].TimeSlot)
		s.Equal("cancelled", body[1].Status)
	})

	s.Run("success: empty list is an empty JSON array", func() {
		s.mockQueries.EXPECT().GetUserReservations(gomock.Any(), gomock.Any()).Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 503 when the store is down", func() {
		s.mockQueries.EXPECT().GetUserReservations(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("timeout"), errs.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}
