package injuries

import "time"

type Status string

const (
	StatusActive     Status = "active"
	StatusRecovering Status = "recovering"
	StatusRecovered  Status = "recovered"
	StatusChronic    Status = "chronic"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusRecovering, StatusRecovered, StatusChronic:
		return true
	}
	return false
}

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

type Improvement string

const (
	ImprovementImproving Improvement = "improving"
	ImprovementSame      Improvement = "same"
	ImprovementWorse     Improvement = "worse"
)

func (i Improvement) Valid() bool {
	switch i {
	case ImprovementImproving, ImprovementSame, ImprovementWorse:
		return true
	}
	return false
}

const (
	MinPainLevel = 0
	MaxPainLevel = 10
)

// Restrictions are per-injury activity limits. Advisory for the caller,
// merged across injuries by the recommend package (most restrictive wins).
type Restrictions struct {
	NoRunning          bool     `json:"noRunning"`
	AvoidHills         bool     `json:"avoidHills"`
	MaxDistanceKm      *float64 `json:"maxDistanceKm,omitempty"`
	MaxDurationMinutes *int     `json:"maxDurationMinutes,omitempty"`
}

// Injury is one tracked physical injury instance.
// InjuryType and AffectedArea are immutable after creation; reclassification
// means reporting a new injury.
type Injury struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	InjuryType   string   `json:"injuryType"`
	AffectedArea string   `json:"affectedArea"`
	Severity     Severity `json:"severity"`

	InitialPain int    `json:"initialPain"`
	CurrentPain int    `json:"currentPain"`
	Status      Status `json:"status"`

	InjuryDate           time.Time  `json:"injuryDate"`
	ReportedDate         time.Time  `json:"reportedDate"`
	ExpectedRecoveryDate *time.Time `json:"expectedRecoveryDate,omitempty"`
	ActualRecoveryDate   *time.Time `json:"actualRecoveryDate,omitempty"`
	LastUpdateDate       *time.Time `json:"lastUpdateDate,omitempty"`

	Description   string `json:"description"`
	Symptoms      string `json:"symptoms,omitempty"`
	TreatmentPlan string `json:"treatmentPlan,omitempty"`

	Restrictions Restrictions `json:"restrictions"`

	// Version guards concurrent record mutations (optimistic locking).
	Version int `json:"version"`
}

// Update is one immutable entry of an injury's progress timeline.
type Update struct {
	ID       string `json:"id"`
	InjuryID string `json:"injuryId"`
	UserID   string `json:"userId"`

	Timestamp   time.Time    `json:"timestamp"`
	PainLevel   *int         `json:"painLevel,omitempty"`
	Status      *Status      `json:"status,omitempty"`
	Improvement *Improvement `json:"improvement,omitempty"`

	Notes               string `json:"notes,omitempty"`
	ActivitiesPerformed string `json:"activitiesPerformed,omitempty"`
	PainTriggers        string `json:"painTriggers,omitempty"`
}
