package mcp

import (
	"github.com/stridecoach/backend/internal/injuries"
	"github.com/stridecoach/backend/internal/training"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with coaching tools: report injury, update
// injury, active injuries, injury history, workout constraints.
// Used by the main backend when mounting MCP at /mcp (internal/server).
func NewServer(
	injuriesService *injuries.Service,
	analyzer *injuries.Analyzer,
	evaluator *training.Evaluator,
) *mcp.Server {
	svc := NewCoachService(injuriesService, analyzer, evaluator)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "coach-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "report_injury",
		Description: "Records a new injury for a user. Args: user_id, injury_type (e.g. shin splints), affected_area (e.g. left shin), severity (mild | moderate | severe), pain_level (0-10); optional: description, symptoms, treatment_plan, injury_date (YYYY-MM-DD), training restrictions (no_running, avoid_hills, max_distance_km, max_duration_minutes). Use when the user tells you about a new injury.",
	}, h.ReportInjuryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "update_injury_status",
		Description: "Appends a progress update to an existing injury: new pain level, status change (active | recovering | recovered | chronic), subjective trend (improving | same | worse) and notes. Args: user_id, injury_id; all others optional. Use when the user reports how an injury is doing.",
	}, h.UpdateInjuryStatusTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_active_injuries",
		Description: "Returns the user's current active and recovering injuries, plus the most severe one (highest current pain). Arg: user_id; optional: exclude_recovering. Use before suggesting any workout.",
	}, h.GetActiveInjuriesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_injury_history",
		Description: "Analyzes the user's injury history: totals, status breakdown, recurring injury patterns (same type and area at least twice) and average recovery time in days. Args: user_id; optional: days_back (1-365, default 180), exclude_recovered. Use when assessing injury risk or discussing long-term patterns.",
	}, h.GetInjuryHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_constraints",
		Description: "Derives what today's workout may contain from active injuries and recent training load: intensity tier (rest-or-alternative | modified | recovery-recommended | normal), mandatory rest, no-running / avoid-hills flags and distance/duration caps, together with the inputs used. Args: user_id; optional: lookback_days (default 7). Use right before generating a workout suggestion.",
	}, h.GetWorkoutConstraintsTool())

	return s
}
