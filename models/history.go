package models

type ScalingStatus int

const (
	ScalingStatusSucceeded ScalingStatus = iota
	ScalingStatusFailed
	ScalingStatusIgnored
)

const (
	ScalingTypeDynamic = "dynamic"
	ScalingTypeManual  = "manual"
	ScalingTypeRolling = "rolling"
)

// FleetScalingHistory records one actuation attempt, including the ones that
// were ignored because of cooldown or bounds.
type FleetScalingHistory struct {
	FleetID     string        `json:"fleet_id"`
	Timestamp   int64         `json:"timestamp"`
	ScalingType string        `json:"scaling_type"`
	Status      ScalingStatus `json:"status"`
	OldSize     int           `json:"old_size"`
	NewSize     int           `json:"new_size"`
	Reason      string        `json:"reason"`
	Message     string        `json:"message,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// FleetScalingResult is returned to the evaluator so it can honor the
// actuator's cooldown without re-sending triggers.
type FleetScalingResult struct {
	FleetID           string        `json:"fleet_id"`
	Status            ScalingStatus `json:"status"`
	Adjustment        int           `json:"adjustment"`
	CooldownExpiredAt int64         `json:"cooldown_expired_at"`
}
