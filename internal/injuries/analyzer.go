package injuries

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stridecoach/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// MaxHistoryWindowDays caps how far back the history analysis can reach.
const MaxHistoryWindowDays = 365

type historyRepo interface {
	History(ctx context.Context, userID string, from time.Time, includeRecovered bool) ([]Injury, error)
}

// Analyzer scans a user's injury history for recurring patterns and
// recovery-time statistics.
type Analyzer struct {
	repo historyRepo
}

func NewAnalyzer(repo historyRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// RecurringPattern is a group of at least two injuries sharing injury type
// and affected area (compared case-insensitively).
type RecurringPattern struct {
	InjuryType     string `json:"injuryType"`
	AffectedArea   string `json:"affectedArea"`
	Occurrences    int    `json:"occurrences"`
	MostCommonArea string `json:"mostCommonArea"`
}

type HistoryAnalysis struct {
	WindowDays        int                `json:"windowDays"`
	TotalInjuries     int                `json:"totalInjuries"`
	Injuries          []Injury           `json:"injuries"`
	StatusBreakdown   map[Status]int     `json:"statusBreakdown"`
	InjuryTypeCounts  map[string]int     `json:"injuryTypeCounts"`
	RecurringPatterns []RecurringPattern `json:"recurringPatterns"`
	// AvgRecoveryDays is the mean of (actualRecoveryDate - injuryDate) over
	// all recovered injuries in the window. Nil when no injury in the window
	// has recovered yet - zero is a valid observed value and must not stand
	// in for "no data".
	AvgRecoveryDays *float64 `json:"avgRecoveryDays,omitempty"`
}

// AnalyzeHistory fetches the user's injuries reported within the last
// windowDays days and computes pattern groups, per-type counts and the
// average recovery time. Output ordering is deterministic: recurring groups
// are sorted by occurrences descending, then by the group's earliest
// reported date.
func (a *Analyzer) AnalyzeHistory(
	ctx context.Context,
	userID string,
	windowDays int,
	includeRecovered bool,
) (_ *HistoryAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.injuries.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("window_days", windowDays))
	span.SetAttributes(attribute.Bool("include_recovered", includeRecovered))

	if windowDays <= 0 || windowDays > MaxHistoryWindowDays {
		return nil, &ValidationError{
			Field:  "daysBack",
			Reason: fmt.Sprintf("must be in (0, %d]", MaxHistoryWindowDays),
		}
	}

	from := time.Now().UTC().AddDate(0, 0, -windowDays)
	history, err := a.repo.History(ctx, userID, from, includeRecovered)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}

	analysis := &HistoryAnalysis{
		WindowDays:       windowDays,
		TotalInjuries:    len(history),
		Injuries:         history,
		StatusBreakdown:  make(map[Status]int),
		InjuryTypeCounts: make(map[string]int),
	}

	for _, injury := range history {
		analysis.StatusBreakdown[injury.Status]++
		analysis.InjuryTypeCounts[injury.InjuryType]++
	}

	analysis.RecurringPatterns = recurringPatterns(history)
	analysis.AvgRecoveryDays = avgRecoveryDays(history)

	return analysis, nil
}

func patternKey(injuryType, affectedArea string) string {
	return strings.ToLower(strings.TrimSpace(injuryType)) + "|" + strings.ToLower(strings.TrimSpace(affectedArea))
}

func recurringPatterns(history []Injury) []RecurringPattern {
	key2injuries := make(map[string][]Injury)
	for _, injury := range history {
		key := patternKey(injury.InjuryType, injury.AffectedArea)
		key2injuries[key] = append(key2injuries[key], injury)
	}

	var patterns []RecurringPattern
	key2earliest := make(map[string]time.Time)
	for key, group := range key2injuries {
		if len(group) < 2 {
			continue
		}

		earliest := group[0]
		for _, injury := range group[1:] {
			if injury.ReportedDate.Before(earliest.ReportedDate) {
				earliest = injury
			}
		}
		key2earliest[key] = earliest.ReportedDate

		patterns = append(patterns, RecurringPattern{
			InjuryType:     earliest.InjuryType,
			AffectedArea:   earliest.AffectedArea,
			Occurrences:    len(group),
			MostCommonArea: mostCommonArea(group),
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Occurrences != patterns[j].Occurrences {
			return patterns[i].Occurrences > patterns[j].Occurrences
		}
		iKey := patternKey(patterns[i].InjuryType, patterns[i].AffectedArea)
		jKey := patternKey(patterns[j].InjuryType, patterns[j].AffectedArea)
		if !key2earliest[iKey].Equal(key2earliest[jKey]) {
			return key2earliest[iKey].Before(key2earliest[jKey])
		}
		// map iteration order must not leak into the output on full ties
		return iKey < jKey
	})

	return patterns
}

// mostCommonArea returns the mode of the affected area spellings within a
// group. Ties are broken by the spelling of the earliest reported injury.
func mostCommonArea(group []Injury) string {
	area2count := make(map[string]int)
	area2earliest := make(map[string]time.Time)
	for _, injury := range group {
		area2count[injury.AffectedArea]++
		earliest, ok := area2earliest[injury.AffectedArea]
		if !ok || injury.ReportedDate.Before(earliest) {
			area2earliest[injury.AffectedArea] = injury.ReportedDate
		}
	}

	var best string
	for area, count := range area2count {
		if best == "" {
			best = area
			continue
		}
		switch {
		case count > area2count[best]:
			best = area
		case count == area2count[best] && area2earliest[area].Before(area2earliest[best]):
			best = area
		}
	}
	return best
}

func avgRecoveryDays(history []Injury) *float64 {
	var totalDays float64
	var recovered int
	for _, injury := range history {
		if injury.ActualRecoveryDate == nil {
			continue
		}
		totalDays += injury.ActualRecoveryDate.Sub(injury.InjuryDate).Hours() / 24
		recovered++
	}

	if recovered == 0 {
		return nil
	}

	avg := totalDays / float64(recovered)
	return &avg
}
