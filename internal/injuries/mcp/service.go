package mcp

import (
	"context"

	"github.com/stridecoach/backend/internal/injuries"
	"github.com/stridecoach/backend/internal/recommend"
	"github.com/stridecoach/backend/internal/training"
)

// injuriesService provides injury lifecycle operations (for dependency injection and testing).
type injuriesService interface {
	Report(ctx context.Context, params injuries.ReportParams) (*injuries.Injury, error)
	AppendUpdate(ctx context.Context, params injuries.UpdateParams) (*injuries.AppendUpdateResult, error)
	ActiveInjuries(ctx context.Context, userID string, includeRecovering bool) (*injuries.ActiveInjuriesResult, error)
}

// historyAnalyzer provides injury history analytics (for dependency injection and testing).
type historyAnalyzer interface {
	AnalyzeHistory(ctx context.Context, userID string, windowDays int, includeRecovered bool) (*injuries.HistoryAnalysis, error)
}

// loadEvaluator provides recent training load signals (for dependency injection and testing).
type loadEvaluator interface {
	Evaluate(ctx context.Context, userID string, lookbackDays int) (*training.LoadSignal, error)
}

// coachService provides the coaching context data exposed over MCP.
// Used by Handler for testability.
type coachService interface {
	ReportInjury(ctx context.Context, params injuries.ReportParams) (*injuries.Injury, error)
	UpdateInjury(ctx context.Context, params injuries.UpdateParams) (*injuries.AppendUpdateResult, error)
	GetActiveInjuries(ctx context.Context, userID string, includeRecovering bool) (*injuries.ActiveInjuriesResult, error)
	GetInjuryHistory(ctx context.Context, userID string, daysBack int, includeRecovered bool) (*injuries.HistoryAnalysis, error)
	GetWorkoutConstraints(ctx context.Context, userID string, lookbackDays int) (*WorkoutConstraintsContext, error)
}

// WorkoutConstraintsContext bundles the derived workout constraints together
// with the inputs they were derived from, so the calling agent can explain
// the recommendation, not just repeat it.
type WorkoutConstraintsContext struct {
	Constraints    recommend.Constraints `json:"constraints"`
	ActiveInjuries []injuries.Injury     `json:"activeInjuries"`
	Load           training.LoadSignal   `json:"load"`
}

// CoachService holds dependencies and implements the coaching context business logic.
type CoachService struct {
	injuries injuriesService
	analyzer historyAnalyzer
	load     loadEvaluator
}

// NewCoachService builds a CoachService with the given dependencies.
func NewCoachService(injuriesService injuriesService, analyzer historyAnalyzer, load loadEvaluator) *CoachService {
	return &CoachService{
		injuries: injuriesService,
		analyzer: analyzer,
		load:     load,
	}
}

// ReportInjury records a new injury for the user.
func (s *CoachService) ReportInjury(ctx context.Context, params injuries.ReportParams) (*injuries.Injury, error) {
	return s.injuries.Report(ctx, params)
}

// UpdateInjury appends a progress update (pain, status, notes) to an injury.
func (s *CoachService) UpdateInjury(ctx context.Context, params injuries.UpdateParams) (*injuries.AppendUpdateResult, error) {
	return s.injuries.AppendUpdate(ctx, params)
}

// GetActiveInjuries returns the user's current active (and optionally
// recovering) injuries plus the most severe one.
func (s *CoachService) GetActiveInjuries(ctx context.Context, userID string, includeRecovering bool) (*injuries.ActiveInjuriesResult, error) {
	return s.injuries.ActiveInjuries(ctx, userID, includeRecovering)
}

// GetInjuryHistory returns the analyzed injury history for the given window.
func (s *CoachService) GetInjuryHistory(ctx context.Context, userID string, daysBack int, includeRecovered bool) (*injuries.HistoryAnalysis, error) {
	return s.analyzer.AnalyzeHistory(ctx, userID, daysBack, includeRecovered)
}

// GetWorkoutConstraints derives what today's workout may contain from the
// user's active injuries and recent training load.
func (s *CoachService) GetWorkoutConstraints(ctx context.Context, userID string, lookbackDays int) (*WorkoutConstraintsContext, error) {
	active, err := s.injuries.ActiveInjuries(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	load, err := s.load.Evaluate(ctx, userID, lookbackDays)
	if err != nil {
		return nil, err
	}

	return &WorkoutConstraintsContext{
		Constraints:    recommend.ConstrainWorkout(active.Injuries, *load),
		ActiveInjuries: active.Injuries,
		Load:           *load,
	}, nil
}
