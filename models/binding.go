package models

import "fmt"

// CapacityBinding maps fleet capacity to the cluster's workload scheduling.
// Managed scaling steers the published capacity target toward
// TargetUtilizationPercent, moving at most MaxStep and at least MinStep units
// per adjustment. It lives and dies with the fleet's policy.
type CapacityBinding struct {
	FleetID                  string `json:"fleet_id,omitempty"`
	TargetUtilizationPercent int    `json:"target_utilization_percent"`
	MinStep                  int    `json:"min_step"`
	MaxStep                  int    `json:"max_step"`

	// CurrentTarget is the last capacity target published for the scheduler.
	CurrentTarget int   `json:"current_target,omitempty"`
	UpdatedAt     int64 `json:"updated_at,omitempty"`
}

func (b *CapacityBinding) Validate() error {
	if b.TargetUtilizationPercent <= 0 || b.TargetUtilizationPercent > 100 {
		return fmt.Errorf("target_utilization_percent %d is outside (0, 100]", b.TargetUtilizationPercent)
	}
	if b.MinStep < 1 {
		return fmt.Errorf("capacity binding min_step %d is less than 1", b.MinStep)
	}
	if b.MaxStep < b.MinStep {
		return fmt.Errorf("capacity binding max_step %d is less than min_step %d", b.MaxStep, b.MinStep)
	}
	return nil
}
