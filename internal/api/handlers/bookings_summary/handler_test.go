package bookings_summary

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
	resp *models.SummaryResponse
	err  error
}

func (f *fakeEventsService) SummaryByRange(_ context.Context, _, _ time.Time) (*models.SummaryResponse, error) {
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

	req := httptest.NewRequest(http.MethodGet, "/bookings-summary"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := &fakeEventsService{
		resp: &models.SummaryResponse{
			Counts: map[string]int{
				"2024-06-01": 2,
				"2024-06-03": 1,
			},
		},
	}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "?startDate=2024-06-01&endDate=2024-06-03")

	require.Equal(t, http.StatusOK, rec.Code)

	// Ответ - плоский объект дата -> количество, без обертки
	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]int{"2024-06-01": 2, "2024-06-03": 1}, body)
}

func TestHandler_MissingParams(t *testing.T) {
	h := NewHandler(&fakeEventsService{}, nopLogger{})

	for _, query := range []string{"", "?startDate=2024-06-01", "?endDate=2024-06-03"} {
		rec := doRequest(t, h, query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
	}
}

func TestHandler_InvalidDateFormat(t *testing.T) {
	h := NewHandler(&fakeEventsService{}, nopLogger{})

	rec := doRequest(t, h, "?startDate=01.06.2024&endDate=2024-06-03")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InvalidRange(t *testing.T) {
	svc := &fakeEventsService{err: events.ErrInvalidDateRange}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "?startDate=2024-06-10&endDate=2024-06-01")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InternalError(t *testing.T) {
	svc := &fakeEventsService{err: errors.New("boom")}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "?startDate=2024-06-01&endDate=2024-06-03")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
