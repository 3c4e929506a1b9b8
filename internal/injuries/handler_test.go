package injuries_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stridecoach/backend/internal/injuries"
	"github.com/stridecoach/backend/internal/telemetry/metrics"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*injuries.Handler, *MockinjuryService, *MockhistoryAnalyzer, *metrics.Manager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serviceMock := NewMockinjuryService(ctrl)
	analyzerMock := NewMockhistoryAnalyzer(ctrl)
	metricsManager := metrics.NewTestManager()
	return injuries.NewHandler(serviceMock, analyzerMock, metricsManager), serviceMock, analyzerMock, metricsManager
}

func TestHandler_HandleReport(t *testing.T) {
	handler, serviceMock, _, metricsManager := newTestHandler(t)

	params := injuries.ReportParams{
		InjuryType:   "shin splints",
		AffectedArea: "left shin",
		Severity:     injuries.SeverityModerate,
		PainLevel:    5,
	}
	paramsJson, err := json.Marshal(params)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/users/runner1/injuries", bytes.NewReader(paramsJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = mux.SetURLVars(req, map[string]string{"userId": "runner1"})
	rec := httptest.NewRecorder()

	serviceMock.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, got injuries.ReportParams) (*injuries.Injury, error) {
			assert.Equal(t, "runner1", got.UserID)
			assert.Equal(t, "shin splints", got.InjuryType)
			return &injuries.Injury{
				ID:          "inj1",
				UserID:      got.UserID,
				InjuryType:  got.InjuryType,
				Status:      injuries.StatusActive,
				CurrentPain: got.PainLevel,
			}, nil
		})

	handler.HandleReport(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var injury injuries.Injury
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&injury))
	assert.Equal(t, "inj1", injury.ID)
	assert.Equal(t, injuries.StatusActive, injury.Status)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterInjuriesReported))
}

func TestHandler_HandleReport_InvalidContentType(t *testing.T) {
	handler, _, _, _ := newTestHandler(t)

	req, err := http.NewRequest("POST", "/users/runner1/injuries", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	handler.HandleReport(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleReport_ValidationError(t *testing.T) {
	handler, serviceMock, _, metricsManager := newTestHandler(t)

	paramsJson, err := json.Marshal(injuries.ReportParams{PainLevel: 22})
	require.NoError(t, err)
	req, err := http.NewRequest("POST", "/users/runner1/injuries", bytes.NewReader(paramsJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = mux.SetURLVars(req, map[string]string{"userId": "runner1"})
	rec := httptest.NewRecorder()

	serviceMock.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		Return(nil, &injuries.ValidationError{Field: "painLevel", Reason: "must be in [0, 10]"})

	handler.HandleReport(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "painLevel")
	assert.Zero(t, testutil.ToFloat64(metricsManager.CounterInjuriesReported))
}

func TestHandler_HandleAppendUpdate(t *testing.T) {
	handler, serviceMock, _, metricsManager := newTestHandler(t)

	pain := 3
	paramsJson, err := json.Marshal(injuries.UpdateParams{PainLevel: &pain})
	require.NoError(t, err)
	req, err := http.NewRequest("POST", "/users/runner1/injuries/inj1/updates", bytes.NewReader(paramsJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = mux.SetURLVars(req, map[string]string{"userId": "runner1", "id": "inj1"})
	rec := httptest.NewRecorder()

	serviceMock.EXPECT().
		AppendUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, got injuries.UpdateParams) (*injuries.AppendUpdateResult, error) {
			assert.Equal(t, "inj1", got.InjuryID)
			assert.Equal(t, "runner1", got.UserID)
			require.NotNil(t, got.PainLevel)
			assert.Equal(t, 3, *got.PainLevel)
			return &injuries.AppendUpdateResult{
				Injury:   injuries.Injury{ID: "inj1", CurrentPain: 3, Version: 2},
				UpdateID: "u1",
			}, nil
		})

	handler.HandleAppendUpdate(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var result injuries.AppendUpdateResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "u1", result.UpdateID)
	assert.Equal(t, 3, result.Injury.CurrentPain)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterInjuryUpdates))
}

func TestHandler_HandleAppendUpdate_ErrorMapping(t *testing.T) {
	for name, tc := range map[string]struct {
		serviceErr error
		wantStatus int
	}{
		"not found": {
			serviceErr: injuries.ErrInjuryNotFound,
			wantStatus: http.StatusNotFound,
		},
		"invalid transition": {
			serviceErr: &injuries.InvalidTransitionError{From: injuries.StatusRecovered, To: injuries.StatusActive},
			wantStatus: http.StatusConflict,
		},
		"out of order": {
			serviceErr: &injuries.OutOfOrderError{Latest: time.Now(), Got: time.Now().Add(-time.Hour)},
			wantStatus: http.StatusConflict,
		},
		"concurrency conflict": {
			serviceErr: injuries.ErrConcurrencyConflict,
			wantStatus: http.StatusConflict,
		},
		"validation": {
			serviceErr: &injuries.ValidationError{Field: "improvement", Reason: "unknown"},
			wantStatus: http.StatusBadRequest,
		},
	} {
		t.Run(name, func(t *testing.T) {
			handler, serviceMock, _, _ := newTestHandler(t)

			req, err := http.NewRequest("POST", "/users/runner1/injuries/inj1/updates", bytes.NewReader([]byte("{}")))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			req = mux.SetURLVars(req, map[string]string{"userId": "runner1", "id": "inj1"})
			rec := httptest.NewRecorder()

			serviceMock.EXPECT().
				AppendUpdate(gomock.Any(), gomock.Any()).
				Return(nil, tc.serviceErr)

			handler.HandleAppendUpdate(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandler_HandleActive(t *testing.T) {
	handler, serviceMock, _, _ := newTestHandler(t)

	req, err := http.NewRequest("GET", "/users/runner1/injuries/active?includeRecovering=false", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"userId": "runner1"})
	rec := httptest.NewRecorder()

	active := injuries.Injury{ID: "inj1", CurrentPain: 6, Status: injuries.StatusActive}
	serviceMock.EXPECT().
		ActiveInjuries(gomock.Any(), "runner1", false).
		Return(&injuries.ActiveInjuriesResult{
			Injuries:   []injuries.Injury{active},
			MostSevere: &active,
		}, nil)

	handler.HandleActive(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result injuries.ActiveInjuriesResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	require.NotNil(t, result.MostSevere)
	assert.Equal(t, "inj1", result.MostSevere.ID)
}

func TestHandler_HandleHistory(t *testing.T) {
	handler, _, analyzerMock, metricsManager := newTestHandler(t)

	req, err := http.NewRequest("GET", "/users/runner1/injuries/history?daysBack=90&includeRecovered=true", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"userId": "runner1"})
	rec := httptest.NewRecorder()

	analyzerMock.EXPECT().
		AnalyzeHistory(gomock.Any(), "runner1", 90, true).
		Return(&injuries.HistoryAnalysis{
			WindowDays:    90,
			TotalInjuries: 2,
			StatusBreakdown: map[injuries.Status]int{
				injuries.StatusActive:    1,
				injuries.StatusRecovered: 1,
			},
		}, nil)

	handler.HandleHistory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp injuries.HistoryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 90, resp.Analysis.WindowDays)
	assert.Equal(t, 2, resp.Analysis.TotalInjuries)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterInjuryAnalyses))
}

func TestHandler_HandleHistory_BadDaysBack(t *testing.T) {
	handler, _, _, _ := newTestHandler(t)

	req, err := http.NewRequest("GET", "/users/runner1/injuries/history?daysBack=soon", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"userId": "runner1"})
	rec := httptest.NewRecorder()

	handler.HandleHistory(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleGet(t *testing.T) {
	handler, serviceMock, _, _ := newTestHandler(t)

	req, err := http.NewRequest("GET", "/users/runner1/injuries/inj1", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"userId": "runner1", "id": "inj1"})
	rec := httptest.NewRecorder()

	serviceMock.EXPECT().
		Timeline(gomock.Any(), "inj1", "runner1").
		Return(&injuries.TimelineResult{
			Injury:  injuries.Injury{ID: "inj1"},
			Updates: []injuries.Update{{ID: "u1"}, {ID: "u2"}},
		}, nil)

	handler.HandleGet(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var timeline injuries.TimelineResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&timeline))
	assert.Equal(t, "inj1", timeline.Injury.ID)
	assert.Len(t, timeline.Updates, 2)
}

func TestHandler_HandleDelete(t *testing.T) {
	handler, serviceMock, _, _ := newTestHandler(t)

	req, err := http.NewRequest("DELETE", "/users/runner1/injuries/inj1", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"userId": "runner1", "id": "inj1"})
	rec := httptest.NewRecorder()

	serviceMock.EXPECT().
		Delete(gomock.Any(), "inj1", "runner1").
		Return(nil)

	handler.HandleDelete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp injuries.DeleteInjuryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "inj1", resp.DeletedID)
}

func TestHandler_HandleDelete_NotFound(t *testing.T) {
	handler, serviceMock, _, _ := newTestHandler(t)

	req, err := http.NewRequest("DELETE", "/users/runner1/injuries/nope", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"userId": "runner1", "id": "nope"})
	rec := httptest.NewRecorder()

	serviceMock.EXPECT().
		Delete(gomock.Any(), "nope", "runner1").
		Return(injuries.ErrInjuryNotFound)

	handler.HandleDelete(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
