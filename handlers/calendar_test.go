package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expertbook/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubCatalogService struct {
	view *catalog.CalendarView
	err  error

	lastPlanID string
}

func (s *stubCatalogService) Calendar(planID string) (*catalog.CalendarView, error) {
	s.lastPlanID = planID
	return s.view, s.err
}

func calendarRouter(svc catalog.CatalogService) *gin.Engine {
	h := NewCalendarHandler(svc)
	r := gin.New()
	r.POST("/calendar", h.Calendar)
	return r
}

func postCalendar(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/calendar", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalendarHandlerReturnsView(t *testing.T) {
	planID := primitive.NewObjectID()
	svc := &stubCatalogService{view: &catalog.CalendarView{
		Plan:   catalog.CalendarPlan{ID: planID, Name: "Evening consult"},
		Expert: catalog.CalendarExpert{Fullname: "Dr. Meera Shah"},
	}}

	w := postCalendar(t, calendarRouter(svc), gin.H{"plan_id": planID.Hex()})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, planID.Hex(), svc.lastPlanID)

	var got catalog.CalendarView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Evening consult", got.Plan.Name)
	assert.Equal(t, "Dr. Meera Shah", got.Expert.Fullname)
}

func TestCalendarHandlerPlanNotFound(t *testing.T) {
	svc := &stubCatalogService{err: catalog.ErrPlanNotFound}

	w := postCalendar(t, calendarRouter(svc), gin.H{"plan_id": primitive.NewObjectID().Hex()})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Plan not found")
}

func TestCalendarHandlerExpertNotFound(t *testing.T) {
	svc := &stubCatalogService{err: catalog.ErrExpertNotFound}

	w := postCalendar(t, calendarRouter(svc), gin.H{"plan_id": primitive.NewObjectID().Hex()})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Expert not found")
}

func TestCalendarHandlerRejectsMalformedPlanID(t *testing.T) {
	svc := &stubCatalogService{}

	w := postCalendar(t, calendarRouter(svc), gin.H{"plan_id": "not-an-id"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.lastPlanID)
}

func TestCalendarHandlerRequiresPlanID(t *testing.T) {
	svc := &stubCatalogService{}

	w := postCalendar(t, calendarRouter(svc), gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.lastPlanID)
}
