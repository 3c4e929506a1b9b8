package injuries

import (
	"context"
	"fmt"
	"time"

	"github.com/stridecoach/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=injuries_test

type injuriesRepo interface {
	Add(ctx context.Context, injury Injury) (*Injury, error)
	Get(ctx context.Context, injuryID, userID string) (*Injury, error)
	ListForUser(ctx context.Context, userID string, statuses []Status) ([]Injury, error)
	AppendUpdate(ctx context.Context, injury *Injury, update Update) error
	ListUpdates(ctx context.Context, injuryID, userID string) ([]Update, error)
	History(ctx context.Context, userID string, from time.Time, includeRecovered bool) ([]Injury, error)
	Delete(ctx context.Context, injuryID, userID string) error
}

type Service struct {
	repo injuriesRepo
}

func NewService(repo injuriesRepo) *Service {
	return &Service{
		repo: repo,
	}
}

type ReportParams struct {
	UserID        string       `json:"userId"`
	InjuryType    string       `json:"injuryType"`
	AffectedArea  string       `json:"affectedArea"`
	Severity      Severity     `json:"severity"`
	PainLevel     int          `json:"painLevel"`
	Description   string       `json:"description"`
	Symptoms      string       `json:"symptoms,omitempty"`
	TreatmentPlan string       `json:"treatmentPlan,omitempty"`
	Restrictions  Restrictions `json:"restrictions"`
	// InjuryDate is when the injury occurred; zero means "today".
	InjuryDate time.Time `json:"injuryDate,omitempty"`
	// ExpectedRecoveryDate is an optional caller-supplied estimate.
	ExpectedRecoveryDate *time.Time `json:"expectedRecoveryDate,omitempty"`
}

// Report creates a new injury record in state active, with
// currentPain == initialPain == params.PainLevel.
func (s *Service) Report(ctx context.Context, params ReportParams) (_ *Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.injuries.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.UserID == "" {
		return nil, &ValidationError{Field: "userId", Reason: "must not be empty"}
	}
	if params.InjuryType == "" {
		return nil, &ValidationError{Field: "injuryType", Reason: "must not be empty"}
	}
	if params.AffectedArea == "" {
		return nil, &ValidationError{Field: "affectedArea", Reason: "must not be empty"}
	}
	if !params.Severity.Valid() {
		return nil, &ValidationError{Field: "severity", Reason: "must be one of mild, moderate, severe"}
	}
	if params.PainLevel < MinPainLevel || params.PainLevel > MaxPainLevel {
		return nil, &ValidationError{
			Field:  "painLevel",
			Reason: fmt.Sprintf("must be in [%d, %d]", MinPainLevel, MaxPainLevel),
		}
	}

	now := time.Now().UTC()
	injuryDate := params.InjuryDate
	if injuryDate.IsZero() {
		injuryDate = now
	}
	if injuryDate.After(now) {
		return nil, &ValidationError{Field: "injuryDate", Reason: "must not be in the future"}
	}

	injury := Injury{
		ID:                   uuid.NewString(),
		UserID:               params.UserID,
		InjuryType:           params.InjuryType,
		AffectedArea:         params.AffectedArea,
		Severity:             params.Severity,
		InitialPain:          params.PainLevel,
		CurrentPain:          params.PainLevel,
		Status:               StatusActive,
		InjuryDate:           injuryDate,
		ReportedDate:         now,
		ExpectedRecoveryDate: params.ExpectedRecoveryDate,
		Description:          params.Description,
		Symptoms:             params.Symptoms,
		TreatmentPlan:        params.TreatmentPlan,
		Restrictions:         params.Restrictions,
	}

	span.SetAttributes(attribute.String("injury.type", injury.InjuryType))
	span.SetAttributes(attribute.String("injury.area", injury.AffectedArea))

	added, err := s.repo.Add(ctx, injury)
	if err != nil {
		return nil, fmt.Errorf("add injury: %w", err)
	}
	return added, nil
}

type UpdateParams struct {
	InjuryID string `json:"injuryId"`
	UserID   string `json:"userId"`

	PainLevel   *int         `json:"painLevel,omitempty"`
	Improvement *Improvement `json:"improvement,omitempty"`
	Status      *Status      `json:"status,omitempty"`

	Notes               string `json:"notes,omitempty"`
	ActivitiesPerformed string `json:"activitiesPerformed,omitempty"`
	PainTriggers        string `json:"painTriggers,omitempty"`

	// AsOf is the update timestamp; zero means "now". Must not precede the
	// injury's latest existing update.
	AsOf time.Time `json:"asOf,omitempty"`
}

type AppendUpdateResult struct {
	Injury   Injury `json:"injury"`
	UpdateID string `json:"updateId"`
}

// AppendUpdate appends one timeline entry to the injury and recomputes the
// record's derived fields: currentPain (when painLevel supplied) and status
// (when status supplied, validated against the state machine). The repo call
// runs the append and the record mutation in one transaction, guarded by the
// record version, so a concurrent append fails with ErrConcurrencyConflict
// instead of silently losing an update.
func (s *Service) AppendUpdate(ctx context.Context, params UpdateParams) (_ *AppendUpdateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.injuries.appendUpdate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("injury.id", params.InjuryID))

	if params.PainLevel != nil && (*params.PainLevel < MinPainLevel || *params.PainLevel > MaxPainLevel) {
		return nil, &ValidationError{
			Field:  "painLevel",
			Reason: fmt.Sprintf("must be in [%d, %d]", MinPainLevel, MaxPainLevel),
		}
	}
	if params.Improvement != nil && !params.Improvement.Valid() {
		return nil, &ValidationError{Field: "improvement", Reason: "must be one of improving, same, worse"}
	}

	injury, err := s.repo.Get(ctx, params.InjuryID, params.UserID)
	if err != nil {
		return nil, err
	}

	asOf := params.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	if params.Status != nil {
		if err := Transition(injury, *params.Status, asOf); err != nil {
			return nil, err
		}
	}
	if params.PainLevel != nil {
		injury.CurrentPain = *params.PainLevel
	}
	injury.LastUpdateDate = &asOf

	update := Update{
		ID:                  uuid.NewString(),
		InjuryID:            injury.ID,
		UserID:              injury.UserID,
		Timestamp:           asOf,
		PainLevel:           params.PainLevel,
		Status:              params.Status,
		Improvement:         params.Improvement,
		Notes:               params.Notes,
		ActivitiesPerformed: params.ActivitiesPerformed,
		PainTriggers:        params.PainTriggers,
	}

	if err := s.repo.AppendUpdate(ctx, injury, update); err != nil {
		return nil, err
	}

	return &AppendUpdateResult{
		Injury:   *injury,
		UpdateID: update.ID,
	}, nil
}

type ActiveInjuriesResult struct {
	Injuries []Injury `json:"injuries"`
	// MostSevere is the injury with the highest current pain, ties broken
	// by the most recent reported date. Nil when there are no injuries.
	MostSevere *Injury `json:"mostSevere,omitempty"`
}

func (s *Service) ActiveInjuries(ctx context.Context, userID string, includeRecovering bool) (_ *ActiveInjuriesResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.injuries.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("include_recovering", includeRecovering))

	statuses := []Status{StatusActive}
	if includeRecovering {
		statuses = append(statuses, StatusRecovering)
	}

	list, err := s.repo.ListForUser(ctx, userID, statuses)
	if err != nil {
		return nil, fmt.Errorf("list injuries: %w", err)
	}

	result := &ActiveInjuriesResult{Injuries: list}
	for i := range list {
		if result.MostSevere == nil {
			result.MostSevere = &list[i]
			continue
		}
		if list[i].CurrentPain > result.MostSevere.CurrentPain {
			result.MostSevere = &list[i]
			continue
		}
		if list[i].CurrentPain == result.MostSevere.CurrentPain &&
			list[i].ReportedDate.After(result.MostSevere.ReportedDate) {
			result.MostSevere = &list[i]
		}
	}

	return result, nil
}

type TimelineResult struct {
	Injury  Injury   `json:"injury"`
	Updates []Update `json:"updates"`
}

// Timeline returns the injury record with its ordered progress updates.
func (s *Service) Timeline(ctx context.Context, injuryID, userID string) (_ *TimelineResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.injuries.timeline")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("injury.id", injuryID))

	injury, err := s.repo.Get(ctx, injuryID, userID)
	if err != nil {
		return nil, err
	}

	updates, err := s.repo.ListUpdates(ctx, injuryID, userID)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}

	return &TimelineResult{
		Injury:  *injury,
		Updates: updates,
	}, nil
}

// Delete removes an injury record together with its timeline.
func (s *Service) Delete(ctx context.Context, injuryID, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.injuries.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("injury.id", injuryID))

	return s.repo.Delete(ctx, injuryID, userID)
}
