package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stridecoach/backend/internal/injuries"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service coachService
}

// NewHandler builds a handler with the given service.
func NewHandler(service coachService) *Handler {
	return &Handler{
		service: service,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil
	}
	return textResult(string(raw)), nil
}

// ReportInjuryInput is the input for report_injury.
type ReportInjuryInput struct {
	UserID             string   `json:"user_id" jsonschema:"ID of the user reporting the injury"`
	InjuryType         string   `json:"injury_type" jsonschema:"Kind of injury (e.g. shin splints, plantar fasciitis)"`
	AffectedArea       string   `json:"affected_area" jsonschema:"Body area affected (e.g. left shin, right heel)"`
	Severity           string   `json:"severity" jsonschema:"One of: mild, moderate, severe"`
	PainLevel          int      `json:"pain_level" jsonschema:"Current pain on a 0-10 scale"`
	Description        string   `json:"description,omitempty" jsonschema:"Free-text description of the injury"`
	Symptoms           string   `json:"symptoms,omitempty" jsonschema:"Observed symptoms"`
	TreatmentPlan      string   `json:"treatment_plan,omitempty" jsonschema:"Planned or prescribed treatment"`
	InjuryDate         string   `json:"injury_date,omitempty" jsonschema:"When the injury occurred (YYYY-MM-DD), defaults to today"`
	NoRunning          bool     `json:"no_running,omitempty" jsonschema:"Whether running should be avoided entirely"`
	AvoidHills         bool     `json:"avoid_hills,omitempty" jsonschema:"Whether hill running should be avoided"`
	MaxDistanceKm      *float64 `json:"max_distance_km,omitempty" jsonschema:"Maximum run distance in km while injured"`
	MaxDurationMinutes *int     `json:"max_duration_minutes,omitempty" jsonschema:"Maximum workout duration in minutes while injured"`
}

// ReportInjuryTool returns the MCP tool handler for report_injury.
func (h *Handler) ReportInjuryTool() func(context.Context, *mcp.CallToolRequest, ReportInjuryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ReportInjuryInput) (*mcp.CallToolResult, any, error) {
		params := injuries.ReportParams{
			UserID:        in.UserID,
			InjuryType:    in.InjuryType,
			AffectedArea:  in.AffectedArea,
			Severity:      injuries.Severity(in.Severity),
			PainLevel:     in.PainLevel,
			Description:   in.Description,
			Symptoms:      in.Symptoms,
			TreatmentPlan: in.TreatmentPlan,
			Restrictions: injuries.Restrictions{
				NoRunning:          in.NoRunning,
				AvoidHills:         in.AvoidHills,
				MaxDistanceKm:      in.MaxDistanceKm,
				MaxDurationMinutes: in.MaxDurationMinutes,
			},
		}

		if in.InjuryDate != "" {
			injuryDate, err := time.Parse("2006-01-02", in.InjuryDate)
			if err != nil {
				return errorResult("Invalid injury_date: use YYYY-MM-DD"), nil, nil
			}
			params.InjuryDate = injuryDate
		}

		injury, err := h.service.ReportInjury(ctx, params)
		if err != nil {
			return errorResult("Error reporting injury: " + err.Error()), nil, nil
		}
		res, err := jsonResult(injury)
		return res, nil, err
	}
}

// UpdateInjuryInput is the input for update_injury_status.
type UpdateInjuryInput struct {
	UserID              string `json:"user_id" jsonschema:"ID of the user owning the injury"`
	InjuryID            string `json:"injury_id" jsonschema:"ID of the injury to update"`
	PainLevel           *int   `json:"pain_level,omitempty" jsonschema:"New current pain on a 0-10 scale"`
	Status              string `json:"status,omitempty" jsonschema:"New status, one of: active, recovering, recovered, chronic"`
	Improvement         string `json:"improvement,omitempty" jsonschema:"Subjective trend, one of: improving, same, worse"`
	Notes               string `json:"notes,omitempty" jsonschema:"Free-text progress notes"`
	ActivitiesPerformed string `json:"activities_performed,omitempty" jsonschema:"What the user did since the last update"`
	PainTriggers        string `json:"pain_triggers,omitempty" jsonschema:"What provoked the pain, if anything"`
}

// UpdateInjuryStatusTool returns the MCP tool handler for update_injury_status.
func (h *Handler) UpdateInjuryStatusTool() func(context.Context, *mcp.CallToolRequest, UpdateInjuryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UpdateInjuryInput) (*mcp.CallToolResult, any, error) {
		params := injuries.UpdateParams{
			InjuryID:            in.InjuryID,
			UserID:              in.UserID,
			PainLevel:           in.PainLevel,
			Notes:               in.Notes,
			ActivitiesPerformed: in.ActivitiesPerformed,
			PainTriggers:        in.PainTriggers,
		}
		if in.Status != "" {
			status := injuries.Status(in.Status)
			params.Status = &status
		}
		if in.Improvement != "" {
			improvement := injuries.Improvement(in.Improvement)
			params.Improvement = &improvement
		}

		result, err := h.service.UpdateInjury(ctx, params)
		if err != nil {
			return errorResult("Error updating injury: " + err.Error()), nil, nil
		}
		res, err := jsonResult(result)
		return res, nil, err
	}
}

// ActiveInjuriesInput is the input for get_active_injuries.
type ActiveInjuriesInput struct {
	UserID            string `json:"user_id" jsonschema:"ID of the user"`
	ExcludeRecovering bool   `json:"exclude_recovering,omitempty" jsonschema:"Only return injuries in status active, skip recovering ones"`
}

// GetActiveInjuriesTool returns the MCP tool handler for get_active_injuries.
func (h *Handler) GetActiveInjuriesTool() func(context.Context, *mcp.CallToolRequest, ActiveInjuriesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ActiveInjuriesInput) (*mcp.CallToolResult, any, error) {
		result, err := h.service.GetActiveInjuries(ctx, in.UserID, !in.ExcludeRecovering)
		if err != nil {
			return errorResult("Error fetching active injuries: " + err.Error()), nil, nil
		}
		res, err := jsonResult(result)
		return res, nil, err
	}
}

// InjuryHistoryInput is the input for get_injury_history.
type InjuryHistoryInput struct {
	UserID           string `json:"user_id" jsonschema:"ID of the user"`
	DaysBack         int    `json:"days_back,omitempty" jsonschema:"How many days back to analyze (1-365), defaults to 180"`
	ExcludeRecovered bool   `json:"exclude_recovered,omitempty" jsonschema:"Skip recovered injuries in the analysis"`
}

const defaultHistoryDaysBack = 180

// GetInjuryHistoryTool returns the MCP tool handler for get_injury_history.
func (h *Handler) GetInjuryHistoryTool() func(context.Context, *mcp.CallToolRequest, InjuryHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in InjuryHistoryInput) (*mcp.CallToolResult, any, error) {
		daysBack := in.DaysBack
		if daysBack == 0 {
			daysBack = defaultHistoryDaysBack
		}

		analysis, err := h.service.GetInjuryHistory(ctx, in.UserID, daysBack, !in.ExcludeRecovered)
		if err != nil {
			return errorResult("Error analyzing injury history: " + err.Error()), nil, nil
		}
		res, err := jsonResult(analysis)
		return res, nil, err
	}
}

// WorkoutConstraintsInput is the input for get_workout_constraints.
type WorkoutConstraintsInput struct {
	UserID       string `json:"user_id" jsonschema:"ID of the user"`
	LookbackDays int    `json:"lookback_days,omitempty" jsonschema:"Training load lookback window in days, defaults to 7"`
}

const defaultLoadLookbackDays = 7

// GetWorkoutConstraintsTool returns the MCP tool handler for get_workout_constraints.
func (h *Handler) GetWorkoutConstraintsTool() func(context.Context, *mcp.CallToolRequest, WorkoutConstraintsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutConstraintsInput) (*mcp.CallToolResult, any, error) {
		lookbackDays := in.LookbackDays
		if lookbackDays == 0 {
			lookbackDays = defaultLoadLookbackDays
		}

		constraints, err := h.service.GetWorkoutConstraints(ctx, in.UserID, lookbackDays)
		if err != nil {
			return errorResult("Error deriving workout constraints: " + err.Error()), nil, nil
		}
		res, err := jsonResult(constraints)
		return res, nil, err
	}
}
