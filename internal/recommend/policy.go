package recommend

import (
	"github.com/stridecoach/backend/internal/injuries"
	"github.com/stridecoach/backend/internal/training"
)

// Tier classifies how much training intensity is currently permissible.
type Tier string

const (
	// TierRestOrAlternative: no running or loaded activity at all.
	TierRestOrAlternative Tier = "rest-or-alternative"
	// TierModified: train, but with reduced intensity and volume.
	TierModified Tier = "modified"
	// TierRecoveryRecommended: uninjured but fatigued, easy day advised.
	TierRecoveryRecommended Tier = "recovery-recommended"
	TierNormal              Tier = "normal"
)

const (
	restPainThreshold     = 7
	modifiedPainThreshold = 3
)

// Constraints bound what a workout may contain. This is not a workout:
// generating one from the constraints is the recommendation layer's job.
type Constraints struct {
	Tier Tier `json:"tier"`

	MandatoryRest      bool     `json:"mandatoryRest"`
	NoRunning          bool     `json:"noRunning"`
	AvoidHills         bool     `json:"avoidHills"`
	MaxDistanceKm      *float64 `json:"maxDistanceKm,omitempty"`
	MaxDurationMinutes *int     `json:"maxDurationMinutes,omitempty"`
}

// ConstrainWorkout merges the per-injury restrictions of all active and
// recovering injuries (most restrictive wins per dimension) and derives the
// intensity tier from current pain and the training load signal.
func ConstrainWorkout(activeInjuries []injuries.Injury, load training.LoadSignal) Constraints {
	constraints := Constraints{
		Tier: TierNormal,
	}

	maxPain := -1
	maxActivePain := -1
	for _, injury := range activeInjuries {
		if injury.CurrentPain > maxPain {
			maxPain = injury.CurrentPain
		}
		// only a currently active injury can force full rest; a recovering
		// one caps out at the modified tier no matter the pain
		if injury.Status == injuries.StatusActive && injury.CurrentPain > maxActivePain {
			maxActivePain = injury.CurrentPain
		}
		constraints.mergeRestrictions(injury.Restrictions)
	}

	switch {
	case maxActivePain >= restPainThreshold:
		constraints.Tier = TierRestOrAlternative
		constraints.MandatoryRest = true
		constraints.NoRunning = true
	case maxPain >= modifiedPainThreshold:
		constraints.Tier = TierModified
	case len(activeInjuries) == 0 && load.FatigueSignal:
		constraints.Tier = TierRecoveryRecommended
	}

	return constraints
}

func (c *Constraints) mergeRestrictions(r injuries.Restrictions) {
	c.NoRunning = c.NoRunning || r.NoRunning
	c.AvoidHills = c.AvoidHills || r.AvoidHills

	if r.MaxDistanceKm != nil && (c.MaxDistanceKm == nil || *r.MaxDistanceKm < *c.MaxDistanceKm) {
		maxDistance := *r.MaxDistanceKm
		c.MaxDistanceKm = &maxDistance
	}
	if r.MaxDurationMinutes != nil && (c.MaxDurationMinutes == nil || *r.MaxDurationMinutes < *c.MaxDurationMinutes) {
		maxDuration := *r.MaxDurationMinutes
		c.MaxDurationMinutes = &maxDuration
	}
}
