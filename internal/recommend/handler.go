package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/stridecoach/backend/internal/injuries"
	"github.com/stridecoach/backend/internal/telemetry/tracing"
	"github.com/stridecoach/backend/internal/training"
	"github.com/stridecoach/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=recommend_test

type activeInjuriesService interface {
	ActiveInjuries(ctx context.Context, userID string, includeRecovering bool) (*injuries.ActiveInjuriesResult, error)
}

type loadEvaluator interface {
	Evaluate(ctx context.Context, userID string, lookbackDays int) (*training.LoadSignal, error)
}

type Handler struct {
	injuries  activeInjuriesService
	evaluator loadEvaluator
}

func NewHandler(injuriesService activeInjuriesService, evaluator loadEvaluator) *Handler {
	return &Handler{
		injuries:  injuriesService,
		evaluator: evaluator,
	}
}

const defaultLookbackDays = 7

// ConstraintsResponse bundles the derived constraints with the inputs they
// came from, so the client can show the reasoning alongside the verdict.
type ConstraintsResponse struct {
	Constraints    Constraints         `json:"constraints"`
	ActiveInjuries []injuries.Injury   `json:"activeInjuries"`
	Load           training.LoadSignal `json:"load"`
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recommend.constraints")
	defer span.End()

	lookbackDays := defaultLookbackDays
	if lookbackParam := r.URL.Query().Get("lookbackDays"); lookbackParam != "" {
		var err error
		lookbackDays, err = strconv.Atoi(lookbackParam)
		if err != nil {
			http.Error(w, "error, lookbackDays NaN", http.StatusBadRequest)
			return
		}
	}

	userID := mux.Vars(r)["userId"]

	active, err := handler.injuries.ActiveInjuries(ctx, userID, true)
	if err != nil {
		log.Errorf("workout constraints, get active injuries: %s", err)
		http.Error(w, "failed to get workout constraints", http.StatusInternalServerError)
		return
	}

	load, err := handler.evaluator.Evaluate(ctx, userID, lookbackDays)
	if err != nil {
		if errors.Is(err, training.ErrInvalidLookback) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("workout constraints, evaluate training load: %s", err)
		http.Error(w, "failed to get workout constraints", http.StatusInternalServerError)
		return
	}

	resp := ConstraintsResponse{
		Constraints:    ConstrainWorkout(active.Injuries, *load),
		ActiveInjuries: active.Injuries,
		Load:           *load,
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal workout constraints: %s", err)
		http.Error(w, "failed to get workout constraints", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
