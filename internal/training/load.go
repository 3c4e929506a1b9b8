package training

import (
	"context"
	"errors"
	"time"

	"github.com/stridecoach/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=load_mocks_test.go -package=training_test

var ErrInvalidLookback = errors.New("lookback days must be greater than 0")

type PlanStatus string

const (
	PlanStatusPending   PlanStatus = "pending"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusSkipped   PlanStatus = "skipped"
)

// Session is one workout-plan completion record: what was planned for a day
// and whether the user did it.
type Session struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	Date            time.Time  `json:"date"`
	Status          PlanStatus `json:"status"`
	WorkoutType     string     `json:"workoutType"`
	DurationMinutes int        `json:"durationMinutes"`
	HighIntensity   bool       `json:"highIntensity"`
}

// Config holds the fatigue heuristic thresholds. The signal fires when the
// user completed at least MinCompleted sessions, at least MinHardSessions of
// them high-intensity, within the last LookbackDays days.
type Config struct {
	LookbackDays    int
	MinCompleted    int
	MinHardSessions int
}

func DefaultConfig() Config {
	return Config{
		LookbackDays:    7,
		MinCompleted:    4,
		MinHardSessions: 2,
	}
}

type LoadSignal struct {
	LookbackDays     int     `json:"lookbackDays"`
	CompletedCount   int     `json:"completedCount"`
	SkippedCount     int     `json:"skippedCount"`
	ComplianceRate   float64 `json:"complianceRate"`
	HardSessionCount int     `json:"hardSessionCount"`
	FatigueSignal    bool    `json:"fatigueSignal"`
}

type completionsRepo interface {
	ListCompletions(ctx context.Context, userID string, from time.Time) ([]Session, error)
}

// Evaluator computes recent training load signals from workout-plan
// completion history.
type Evaluator struct {
	repo completionsRepo
	cfg  Config
}

func NewEvaluator(repo completionsRepo, cfg Config) *Evaluator {
	return &Evaluator{
		repo: repo,
		cfg:  cfg,
	}
}

func (e *Evaluator) Evaluate(ctx context.Context, userID string, lookbackDays int) (_ *LoadSignal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "evaluator.training.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("lookback_days", lookbackDays))

	if lookbackDays <= 0 {
		return nil, ErrInvalidLookback
	}

	now := time.Now().UTC()
	lookbackFrom := now.AddDate(0, 0, -lookbackDays)
	fatigueFrom := now.AddDate(0, 0, -e.cfg.LookbackDays)
	from := lookbackFrom
	if fatigueFrom.Before(from) {
		from = fatigueFrom
	}

	sessions, err := e.repo.ListCompletions(ctx, userID, from)
	if err != nil {
		return nil, err
	}

	signal := ComputeLoadSignal(sessions, now, lookbackDays, e.cfg)
	return &signal, nil
}

// ComputeLoadSignal is the pure part of the evaluation: completion counts and
// compliance over the lookback window, plus the fatigue heuristic over the
// configured fatigue window. Sessions outside both windows are ignored.
func ComputeLoadSignal(sessions []Session, now time.Time, lookbackDays int, cfg Config) LoadSignal {
	lookbackFrom := now.AddDate(0, 0, -lookbackDays)
	fatigueFrom := now.AddDate(0, 0, -cfg.LookbackDays)

	var completed, skipped, hard int
	var fatigueCompleted, fatigueHard int
	for _, s := range sessions {
		if s.Date.After(now) {
			continue
		}

		if !s.Date.Before(lookbackFrom) {
			switch s.Status {
			case PlanStatusCompleted:
				completed++
				if s.HighIntensity {
					hard++
				}
			case PlanStatusSkipped:
				skipped++
			}
		}

		if !s.Date.Before(fatigueFrom) && s.Status == PlanStatusCompleted {
			fatigueCompleted++
			if s.HighIntensity {
				fatigueHard++
			}
		}
	}

	// guard the empty window, 0/0 is not a compliance rate
	var complianceRate float64
	if completed+skipped > 0 {
		complianceRate = float64(completed) / float64(completed+skipped)
	}

	return LoadSignal{
		LookbackDays:     lookbackDays,
		CompletedCount:   completed,
		SkippedCount:     skipped,
		ComplianceRate:   complianceRate,
		HardSessionCount: hard,
		FatigueSignal:    fatigueCompleted >= cfg.MinCompleted && fatigueHard >= cfg.MinHardSessions,
	}
}
