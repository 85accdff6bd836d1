package get_available_times

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableTimes "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_times"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableTimes.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableTimes.Request) (*getAvailableTimes.Response, error) {
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

	req := httptest.NewRequest(http.MethodGet, "/available-times"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableTimes.Response{
			Times: []types.TimeString{"08:00", "08:30", "17:00"},
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, "?date=2024-06-10")

	require.Equal(t, http.StatusOK, rec.Code)

	// Ответ - плоский массив строк "HH:MM"
	var times []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &times))
	assert.Equal(t, []string{"08:00", "08:30", "17:00"}, times)
}

func TestHandler_EmptyDay(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableTimes.Response{}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, "?date=2024-06-10")

	require.Equal(t, http.StatusOK, rec.Code)

	var times []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &times))
	assert.Empty(t, times)
}

func TestHandler_MissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "date is required", body["error"])
}

func TestHandler_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, "?date=10.06.2024")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, "?date=2024-06-10")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
