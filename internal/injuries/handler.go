package injuries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/stridecoach/backend/internal/telemetry/metrics"
	"github.com/stridecoach/backend/internal/telemetry/tracing"
	"github.com/stridecoach/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=injuries_test

type injuryService interface {
	Report(ctx context.Context, params ReportParams) (*Injury, error)
	AppendUpdate(ctx context.Context, params UpdateParams) (*AppendUpdateResult, error)
	ActiveInjuries(ctx context.Context, userID string, includeRecovering bool) (*ActiveInjuriesResult, error)
	Timeline(ctx context.Context, injuryID, userID string) (*TimelineResult, error)
	Delete(ctx context.Context, injuryID, userID string) error
}

type historyAnalyzer interface {
	AnalyzeHistory(ctx context.Context, userID string, windowDays int, includeRecovered bool) (*HistoryAnalysis, error)
}

type Handler struct {
	service  injuryService
	analyzer historyAnalyzer
	metrics  *metrics.Manager
}

func NewHandler(service injuryService, analyzer historyAnalyzer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:  service,
		analyzer: analyzer,
		metrics:  metricsManager,
	}
}

const defaultHistoryWindowDays = 180

type HistoryResponse struct {
	Analysis HistoryAnalysis `json:"analysis"`
}

type DeleteInjuryResponse struct {
	DeletedID string `json:"deletedId"`
}

func (handler *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.report")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var params ReportParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("report injury, unmarshal json params: %s", err)
		http.Error(w, "report injury failed", http.StatusBadRequest)
		return
	}
	params.UserID = mux.Vars(r)["userId"]

	injury, err := handler.service.Report(ctx, params)
	if err != nil {
		log.Errorf("failed to report injury [%s] [%s]: %s", params.InjuryType, params.AffectedArea, err)
		handler.writeError(w, err)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterInjuriesReported.Inc()
	}

	injuryJson, err := json.Marshal(injury)
	if err != nil {
		log.Errorf("failed to marshal reported injury: %s", err)
		http.Error(w, "error, failed to report injury", http.StatusInternalServerError)
		return
	}

	log.Debugf("new injury reported: [%s] [%s]: %s", injury.InjuryType, injury.AffectedArea, injury.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, injuryJson, http.StatusCreated)
}

func (handler *Handler) HandleAppendUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.appendUpdate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("update injury, unmarshal json params: %s", err)
		http.Error(w, "update injury failed", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	params.InjuryID = vars["id"]
	params.UserID = vars["userId"]

	result, err := handler.service.AppendUpdate(ctx, params)
	if err != nil {
		log.Errorf("failed to update injury [%s]: %s", params.InjuryID, err)
		handler.writeError(w, err)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterInjuryUpdates.Inc()
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal injury update result: %s", err)
		http.Error(w, "error, failed to update injury", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.active")
	defer span.End()

	includeRecovering := true
	if includeRecoveringParam := r.URL.Query().Get("includeRecovering"); includeRecoveringParam != "" {
		var err error
		includeRecovering, err = strconv.ParseBool(includeRecoveringParam)
		if err != nil {
			http.Error(w, "error, includeRecovering invalid", http.StatusBadRequest)
			return
		}
	}

	result, err := handler.service.ActiveInjuries(ctx, mux.Vars(r)["userId"], includeRecovering)
	if err != nil {
		log.Errorf("failed to get active injuries: %s", err)
		handler.writeError(w, err)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal active injuries: %s", err)
		http.Error(w, "failed to get active injuries", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.history")
	defer span.End()

	daysBack := defaultHistoryWindowDays
	if daysBackParam := r.URL.Query().Get("daysBack"); daysBackParam != "" {
		var err error
		daysBack, err = strconv.Atoi(daysBackParam)
		if err != nil {
			http.Error(w, "error, daysBack NaN", http.StatusBadRequest)
			return
		}
	}

	includeRecovered := true
	if includeRecoveredParam := r.URL.Query().Get("includeRecovered"); includeRecoveredParam != "" {
		var err error
		includeRecovered, err = strconv.ParseBool(includeRecoveredParam)
		if err != nil {
			http.Error(w, "error, includeRecovered invalid", http.StatusBadRequest)
			return
		}
	}

	analysis, err := handler.analyzer.AnalyzeHistory(ctx, mux.Vars(r)["userId"], daysBack, includeRecovered)
	if err != nil {
		log.Errorf("failed to analyze injury history: %s", err)
		handler.writeError(w, err)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterInjuryAnalyses.Inc()
	}

	analysisJson, err := json.Marshal(HistoryResponse{Analysis: *analysis})
	if err != nil {
		log.Errorf("failed to marshal injury history: %s", err)
		http.Error(w, "failed to get injury history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, analysisJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.get")
	defer span.End()

	vars := mux.Vars(r)
	timeline, err := handler.service.Timeline(ctx, vars["id"], vars["userId"])
	if err != nil {
		log.Errorf("failed to get injury %s: %s", vars["id"], err)
		handler.writeError(w, err)
		return
	}

	timelineJson, err := json.Marshal(timeline)
	if err != nil {
		log.Errorf("failed to marshal injury timeline: %s", err)
		http.Error(w, "failed to get injury", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, timelineJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.delete")
	defer span.End()

	vars := mux.Vars(r)
	if err := handler.service.Delete(ctx, vars["id"], vars["userId"]); err != nil {
		log.Errorf("failed to delete injury %s: %s", vars["id"], err)
		handler.writeError(w, err)
		return
	}

	respJson, err := json.Marshal(DeleteInjuryResponse{DeletedID: vars["id"]})
	if err != nil {
		log.Errorf("failed to marshal delete injury response: %s", err)
		http.Error(w, "failed to delete injury", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// writeError maps the error taxonomy to HTTP status codes without leaking
// internals for unexpected failures.
func (handler *Handler) writeError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	var transitionErr *InvalidTransitionError
	var outOfOrderErr *OutOfOrderError

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInjuryNotFound):
		http.Error(w, "injury not found", http.StatusNotFound)
	case errors.As(err, &transitionErr):
		http.Error(w, transitionErr.Error(), http.StatusConflict)
	case errors.As(err, &outOfOrderErr):
		http.Error(w, outOfOrderErr.Error(), http.StatusConflict)
	case errors.Is(err, ErrConcurrencyConflict):
		http.Error(w, "injury was modified concurrently, retry", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
