package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"expertbook/models"
	"expertbook/services/reschedule"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// stubRescheduleService returns canned results per method.
type stubRescheduleService struct {
	createRequestErr error
	createdOptions   *models.ReschedulingOptions
	createOptionsErr error
	activeOptions    *models.ReschedulingOptions
	activeOptionsErr error
	summaries        []reschedule.RequestSummary
	listErr          error
	resolved         *models.Booking
	resolveErr       error

	lastResolve reschedule.ResolveInput
}

func (s *stubRescheduleService) CreateRequest(input reschedule.CreateRequestInput) error {
	return s.createRequestErr
}

func (s *stubRescheduleService) CreateOptions(input reschedule.CreateOptionsInput) (*models.ReschedulingOptions, error) {
	return s.createdOptions, s.createOptionsErr
}

func (s *stubRescheduleService) ActiveOptions(bookingID string) (*models.ReschedulingOptions, error) {
	return s.activeOptions, s.activeOptionsErr
}

func (s *stubRescheduleService) ListRequests() ([]reschedule.RequestSummary, error) {
	return s.summaries, s.listErr
}

func (s *stubRescheduleService) ListRequestsByExpert(expertID string) ([]reschedule.RequestSummary, error) {
	return s.summaries, s.listErr
}

func (s *stubRescheduleService) Resolve(input reschedule.ResolveInput) (*models.Booking, error) {
	s.lastResolve = input
	return s.resolved, s.resolveErr
}

func rescheduleRouter(svc reschedule.RescheduleService) *gin.Engine {
	h := NewRescheduleHandler(svc)
	r := gin.New()
	r.POST("/booking/reschedule", h.CreateRequest)
	r.POST("/reschedule-options", h.CreateOptions)
	r.GET("/reschedule-options/:bookingId", h.GetActiveOptions)
	r.GET("/reschedule-requests", h.ListRequests)
	r.POST("/handle-reschedule", h.Resolve)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRequestEndpoint(t *testing.T) {
	svc := &stubRescheduleService{}
	r := rescheduleRouter(svc)

	w := postJSON(t, r, "/booking/reschedule", gin.H{
		"currentBookingId": primitive.NewObjectID().Hex(),
		"requestedBy":      "User",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "created")
}

func TestCreateRequestEndpointDuplicate(t *testing.T) {
	svc := &stubRescheduleService{createRequestErr: reschedule.ErrDuplicateRequest}
	r := rescheduleRouter(svc)

	w := postJSON(t, r, "/booking/reschedule", gin.H{
		"currentBookingId": primitive.NewObjectID().Hex(),
		"requestedBy":      "User",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateRequestEndpointValidation(t *testing.T) {
	svc := &stubRescheduleService{}
	r := rescheduleRouter(svc)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing booking", gin.H{"requestedBy": "User"}},
		{"bad booking ref", gin.H{"currentBookingId": "short", "requestedBy": "User"}},
		{"bad requester", gin.H{"currentBookingId": primitive.NewObjectID().Hex(), "requestedBy": "Robot"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, "/booking/reschedule", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp utils.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Fields)
		})
	}
}

func TestCreateOptionsEndpointRejectsShortList(t *testing.T) {
	svc := &stubRescheduleService{}
	r := rescheduleRouter(svc)

	pair := gin.H{"dateId": primitive.NewObjectID().Hex(), "slotId": primitive.NewObjectID().Hex()}
	w := postJSON(t, r, "/reschedule-options", gin.H{
		"currentBookingId": primitive.NewObjectID().Hex(),
		"availableSlots":   []gin.H{pair, pair},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOptionsEndpoint(t *testing.T) {
	bookingID := primitive.NewObjectID()
	expiry := time.Now().Add(24 * time.Hour).UTC()
	svc := &stubRescheduleService{
		createdOptions: &models.ReschedulingOptions{
			ID:               primitive.NewObjectID(),
			CurrentBookingID: bookingID,
			AvailableSlots: []models.SlotOption{
				{DateID: primitive.NewObjectID(), SlotID: primitive.NewObjectID()},
				{DateID: primitive.NewObjectID(), SlotID: primitive.NewObjectID()},
				{DateID: primitive.NewObjectID(), SlotID: primitive.NewObjectID()},
			},
			ExpiryDate: expiry,
		},
	}
	r := rescheduleRouter(svc)

	slots := make([]gin.H, 3)
	for i := range slots {
		slots[i] = gin.H{
			"dateId": primitive.NewObjectID().Hex(),
			"slotId": primitive.NewObjectID().Hex(),
		}
	}
	w := postJSON(t, r, "/reschedule-options", gin.H{
		"currentBookingId": bookingID.Hex(),
		"availableSlots":   slots,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		CurrentBookingID string    `json:"currentBookingId"`
		ExpiryDate       time.Time `json:"expiryDate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID.Hex(), resp.CurrentBookingID)
	assert.WithinDuration(t, expiry, resp.ExpiryDate, time.Second)
}

func TestGetActiveOptionsEndpointExpired(t *testing.T) {
	svc := &stubRescheduleService{activeOptionsErr: reschedule.ErrNoActiveOptions}
	r := rescheduleRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/reschedule-options/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveEndpointStatusMapping(t *testing.T) {
	bookingID := primitive.NewObjectID().Hex()
	target := gin.H{
		"currentBookingId": bookingID,
		"requestedDateId":  primitive.NewObjectID().Hex(),
		"requestedSlotId":  primitive.NewObjectID().Hex(),
	}

	cases := []struct {
		name   string
		action string
		err    error
		want   int
	}{
		{"accepted", "accepted", nil, http.StatusOK},
		{"rejected", "rejected", nil, http.StatusOK},
		{"invalid action", "postponed", reschedule.ErrInvalidAction, http.StatusBadRequest},
		{"missing booking", "accepted", reschedule.ErrBookingNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubRescheduleService{
				resolved:   &models.Booking{Status: models.StatusRescheduled},
				resolveErr: tc.err,
			}
			r := rescheduleRouter(svc)

			body := gin.H{"action": tc.action}
			for k, v := range target {
				body[k] = v
			}
			w := postJSON(t, r, "/handle-reschedule", body)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestResolveEndpointAcceptEchoesBooking(t *testing.T) {
	svc := &stubRescheduleService{
		resolved: &models.Booking{
			ID:     primitive.NewObjectID(),
			Status: models.StatusRescheduled,
		},
	}
	r := rescheduleRouter(svc)

	w := postJSON(t, r, "/handle-reschedule", gin.H{
		"currentBookingId": primitive.NewObjectID().Hex(),
		"requestedDateId":  primitive.NewObjectID().Hex(),
		"requestedSlotId":  primitive.NewObjectID().Hex(),
		"action":           "accepted",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Booking *models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Booking)
	assert.Equal(t, models.StatusRescheduled, resp.Booking.Status)
}

func TestListRequestsEndpoint(t *testing.T) {
	svc := &stubRescheduleService{
		summaries: []reschedule.RequestSummary{
			{CurrentBookingID: primitive.NewObjectID().Hex(), RequestedBy: "User"},
		},
	}
	r := rescheduleRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/reschedule-requests", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		List []reschedule.RequestSummary `json:"list"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.List, 1)
}
