package list_events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/service/events"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

type fakeEventsService struct {
	resp     *models.EventListResponse
	err      error
	lastDate time.Time
}

func (f *fakeEventsService) GetByDate(_ context.Context, date time.Time) (*models.EventListResponse, error) {
	f.lastDate = date
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, query string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/events"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &fakeEventsService{
		resp: &models.EventListResponse{
			Events: []models.EventResponse{
				{ID: 1, Date: date, StartTime: "08:00", ClientName: "Anna", Service: "Haircut", CreatedAt: createdAt},
			},
		},
	}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "?date=2024-06-10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, date, svc.lastDate)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, float64(1), body[0]["id"])
	assert.Equal(t, "2024-06-10", body[0]["date"])
	assert.Equal(t, "08:00", body[0]["time"])
	assert.Equal(t, "Anna", body[0]["clientName"])
	assert.Equal(t, "Haircut", body[0]["service"])
	assert.Equal(t, "2024-06-01T12:00:00Z", body[0]["createdAt"])
}

func TestHandler_EmptyDay(t *testing.T) {
	svc := &fakeEventsService{resp: &models.EventListResponse{}}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "?date=2024-06-10")

	require.Equal(t, http.StatusOK, rec.Code)

	// Пустой день сериализуется как [], а не null
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_MissingDate(t *testing.T) {
	h := NewHandler(&fakeEventsService{}, nopLogger{})

	rec := doRequest(t, h, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "date is required", body["error"])
}

func TestHandler_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeEventsService{}, nopLogger{})

	rec := doRequest(t, h, "?date=June-10")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ZeroDateRejectedByService(t *testing.T) {
	// "0001-01-01" проходит парсинг как нулевое time.Time;
	// отказ сервиса должен вернуться клиенту как 400, а не 500
	svc := &fakeEventsService{err: events.ErrInvalidInput}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "?date=0001-01-01")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestHandler_InternalError(t *testing.T) {
	svc := &fakeEventsService{err: errors.New("boom")}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "?date=2024-06-10")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
