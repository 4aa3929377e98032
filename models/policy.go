package models

import (
	"fmt"
	"time"
)

const (
	MetricKindCPU    = "cpu"
	MetricKindMemory = "memory"
)

// ScalingDirection is the outcome of a threshold evaluation.
type ScalingDirection int

const (
	ScalingDirectionNone ScalingDirection = iota
	ScalingDirectionUp
	ScalingDirectionDown
)

func (d ScalingDirection) String() string {
	switch d {
	case ScalingDirectionUp:
		return "up"
	case ScalingDirectionDown:
		return "down"
	default:
		return "none"
	}
}

// ScalingPolicy drives the coarse-grained instance-count control loop of a
// fleet. LowThreshold defaults to half of HighThreshold when left unset; both
// are independently configurable.
type ScalingPolicy struct {
	MetricKind            string  `json:"metric_kind"`
	HighThreshold         float64 `json:"high_threshold"`
	LowThreshold          float64 `json:"low_threshold,omitempty"`
	StepSize              int     `json:"step_size"`
	CoolDownSeconds       int     `json:"cooldown_seconds"`
	BreachDurationSeconds int     `json:"breach_duration_seconds,omitempty"`

	// Binding is the managed-scaling companion of the policy: it is created
	// with the policy and updated only through policy changes.
	Binding *CapacityBinding `json:"capacity_binding,omitempty"`
}

func (p *ScalingPolicy) EffectiveLowThreshold() float64 {
	if p.LowThreshold > 0 {
		return p.LowThreshold
	}
	return p.HighThreshold / 2
}

func (p *ScalingPolicy) Validate() error {
	if p.MetricKind != MetricKindCPU && p.MetricKind != MetricKindMemory {
		return fmt.Errorf("unsupported metric kind %q", p.MetricKind)
	}
	if p.HighThreshold <= 0 || p.HighThreshold > 100 {
		return fmt.Errorf("high_threshold %v is outside (0, 100]", p.HighThreshold)
	}
	if p.EffectiveLowThreshold() >= p.HighThreshold {
		return fmt.Errorf("low_threshold %v is not less than high_threshold %v", p.LowThreshold, p.HighThreshold)
	}
	if p.StepSize < 1 {
		return fmt.Errorf("step_size %d is less than 1", p.StepSize)
	}
	if p.CoolDownSeconds < 0 {
		return fmt.Errorf("cooldown_seconds %d is negative", p.CoolDownSeconds)
	}
	if p.Binding != nil {
		if err := p.Binding.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FleetPolicy pairs a fleet with its scaling policy, as returned by the
// policy database.
type FleetPolicy struct {
	FleetID string
	GUID    string
	Policy  *ScalingPolicy
}

type GetPolicies func() map[string]*FleetPolicy

// Trigger is one evaluated scaling rule on its way to the actuator.
// Adjustment is the signed step applied to the desired size.
type Trigger struct {
	FleetID               string  `json:"fleet_id"`
	MetricKind            string  `json:"metric_kind"`
	Threshold             float64 `json:"threshold"`
	Operator              string  `json:"operator"`
	Adjustment            int     `json:"adjustment"`
	BreachDurationSeconds int     `json:"breach_duration_seconds"`
	CoolDownSeconds       int     `json:"cooldown_seconds"`
}

func (t *Trigger) BreachDuration(defaultSecs int) time.Duration {
	if t.BreachDurationSeconds <= 0 {
		return time.Duration(defaultSecs) * time.Second
	}
	return time.Duration(t.BreachDurationSeconds) * time.Second
}

func (t *Trigger) CoolDown(defaultSecs int) time.Duration {
	if t.CoolDownSeconds <= 0 {
		return time.Duration(defaultSecs) * time.Second
	}
	return time.Duration(t.CoolDownSeconds) * time.Second
}

func (t *Trigger) Direction() ScalingDirection {
	switch {
	case t.Adjustment > 0:
		return ScalingDirectionUp
	case t.Adjustment < 0:
		return ScalingDirectionDown
	default:
		return ScalingDirectionNone
	}
}
