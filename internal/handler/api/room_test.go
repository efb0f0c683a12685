//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/handler/api"
	reqdto "room-stay-engine/internal/handler/dto/request"
	"room-stay-engine/internal/usecase/commands"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/tests/common/builder"
	"room-stay-engine/tests/common/httptest"
	"room-stay-engine/tests/common/testutil"
	commandsmock "room-stay-engine/tests/mock/commands"
	queriesmock "room-stay-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	actor        actor.Actor
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.actor = newActor(actor.RoleAdmin)
	handler := api.NewRoomHandler(s.mockCommands, s.mockQueries)

	auth := stubAuth(&s.actor)
	s.router.POST("/rooms", auth, handler.CreateRoom)
	s.router.GET("/rooms", auth, handler.ListRooms)
	s.router.GET("/rooms/:ref", auth, handler.GetRoom)
	s.router.POST("/rooms/:ref/ready", auth, handler.MarkReady)
	s.router.POST("/rooms/:ref/out-of-service", auth, handler.TakeOutOfService)
	s.router.POST("/rooms/:ref/back-in-service", auth, handler.ReturnToService)
	s.router.POST("/rooms/:ref/maintenance", auth, handler.ScheduleMaintenance)
	s.router.DELETE("/maintenance/:id", auth, handler.ClearMaintenance)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func roomView(status room.Status) *queries.RoomView {
	return queries.RoomViewFrom(builder.NewRoomBuilder().WithStatus(status).BuildDomain())
}

// ================================================================================
// TestCreateRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestCreateRoom() {
	url := "/rooms"
	reqBody := reqdto.CreateRoomRequest{Number: "305", Type: "suite", Floor: "3", Capacity: 4, Tariff: 6500, Amenities: []string{"wifi", " ", "tv"}}

	s.Run("success: 201 Created with blank amenities dropped", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, commands.CreateRoomInput{
			Number: "305", Type: "suite", Floor: "3", Capacity: 4, Tariff: 6500, Amenities: []string{"wifi", "tv"},
		}).Return(roomView(room.StatusAvailable), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearerToken)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("available", body["status"])
		s.NotContains(body, "property_id")
	})

	cases := []testCaseBooking{
		{name: "missing field: number (required)", mutate: testutil.Field("number", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: type (required)", mutate: testutil.Field("type", nil), expectCode: http.StatusBadRequest},
		{name: "capacity boundary invalid (0)", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
		{name: "negative tariff", mutate: testutil.Field("tariff", -100), expectCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), bearerToken)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: 409 on a duplicate number", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrDuplicateRoomNumber)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room number already exists")
	})
}

// ================================================================================
// TestListRooms / TestGetRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.Run("success: empty amenities render as a list", func() {
		v := roomView(room.StatusCleaning)
		v.Amenities = nil
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor.PropertyID).Return([]*queries.RoomView{v}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, bearerToken)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal([]any{}, body[0]["amenities"])
	})
}

func (s *RoomHandlerTestSuite) TestGetRoom() {
	s.Run("success: by number", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor.PropertyID, room.ByNumber("101")).Return(roomView(room.StatusAvailable), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/101", nil, bearerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: by id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor.PropertyID, room.ByID(id)).Return(roomView(room.StatusAvailable), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String(), nil, bearerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/999", nil, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *RoomHandlerTestSuite) TestTransitions() {
	s.Run("success: mark ready", func() {
		s.mockCommands.EXPECT().MarkReady(gomock.Any(), s.actor, room.ByNumber("101")).Return(roomView(room.StatusAvailable), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/101/ready", nil, bearerToken)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("available", body["status"])
	})

	s.Run("success: out of service and back", func() {
		s.mockCommands.EXPECT().TakeOutOfService(gomock.Any(), s.actor, room.ByNumber("101")).Return(roomView(room.StatusOutOfService), nil)
		s.mockCommands.EXPECT().ReturnToService(gomock.Any(), s.actor, room.ByNumber("101")).Return(roomView(room.StatusAvailable), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/101/out-of-service", nil, bearerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/101/back-in-service", nil, bearerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 on an invalid transition", func() {
		s.mockCommands.EXPECT().MarkReady(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidRoomTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/101/ready", nil, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "invalid room status transition")
	})
}

// ================================================================================
// TestMaintenance
// ================================================================================

func (s *RoomHandlerTestSuite) TestMaintenance() {
	id := uuid.New()
	view := &queries.MaintenanceView{ID: id, RoomID: uuid.New(), StartDate: builder.Today, EndDate: builder.Today.AddDays(2), Reason: "plumbing", Active: true}

	s.Run("success: schedule returns 201", func() {
		s.mockCommands.EXPECT().ScheduleMaintenance(gomock.Any(), s.actor, commands.ScheduleMaintenanceInput{
			Room: room.ByNumber("101"), StartDate: builder.Today, EndDate: builder.Today.AddDays(2), Reason: "plumbing",
		}).Return(view, nil)

		req := reqdto.ScheduleMaintenanceRequest{StartDate: builder.Today, EndDate: builder.Today.AddDays(2), Reason: " plumbing "}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/101/maintenance", req, bearerToken)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("2025-03-10", body["start_date"])
		s.Equal("2025-03-12", body["end_date"])
	})

	s.Run("error: 400 without a reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/101/maintenance",
			map[string]any{"start_date": "2025-03-10", "end_date": "2025-03-12"}, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("success: clear returns the inactive window", func() {
		cleared := *view
		cleared.Active = false
		s.mockCommands.EXPECT().ClearMaintenance(gomock.Any(), s.actor, id).Return(&cleared, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/maintenance/"+id.String(), nil, bearerToken)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(false, body["active"])
	})

	s.Run("error: 409 when already cleared", func() {
		s.mockCommands.EXPECT().ClearMaintenance(gomock.Any(), gomock.Any(), id).Return(nil, commands.ErrMaintenanceInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/maintenance/"+id.String(), nil, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cleared")
	})
}
