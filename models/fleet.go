package models

import (
	"fmt"
	"time"
)

type InstanceState string

const (
	InstanceStatePending     InstanceState = "pending"
	InstanceStateHealthy     InstanceState = "healthy"
	InstanceStateUnhealthy   InstanceState = "unhealthy"
	InstanceStateTerminating InstanceState = "terminating"
)

// LaunchSpec describes how new fleet instances are provisioned. A spec is
// immutable per version; bumping Version triggers a rolling replacement of
// instances carrying older versions.
type LaunchSpec struct {
	Version          int      `json:"version"`
	MachineImage     string   `json:"machine_image"`
	InstanceType     string   `json:"instance_type"`
	StorageGiB       int      `json:"storage_gib"`
	BootstrapScript  string   `json:"bootstrap_script,omitempty"`
	SubnetIDs        []string `json:"subnet_ids,omitempty"`
	SecurityGroupIDs []string `json:"security_group_ids,omitempty"`
}

// HealthCheckPolicy controls how instance health drives replacement.
// Failures within the grace period after launch are ignored.
type HealthCheckPolicy struct {
	GracePeriodSeconds   int `json:"grace_period_seconds"`
	MinHealthyPercentage int `json:"min_healthy_percentage"`
	ReplaceRetryLimit    int `json:"replace_retry_limit"`
}

func (p HealthCheckPolicy) GracePeriod() time.Duration {
	return time.Duration(p.GracePeriodSeconds) * time.Second
}

type Instance struct {
	ID                string        `json:"id"`
	FleetID           string        `json:"fleet_id"`
	LaunchSpecVersion int           `json:"launch_spec_version"`
	LaunchedAt        int64         `json:"launched_at"`
	State             InstanceState `json:"state"`
}

// Active reports whether the instance still counts against the fleet's
// desired size.
func (i *Instance) Active() bool {
	return i.State != InstanceStateTerminating
}

type Fleet struct {
	ID          string            `json:"id"`
	MinSize     int               `json:"min_size"`
	MaxSize     int               `json:"max_size"`
	DesiredSize int               `json:"desired_size"`
	LaunchSpec  LaunchSpec        `json:"launch_spec"`
	HealthCheck HealthCheckPolicy `json:"health_check"`
}

func (f *Fleet) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fleet id is empty")
	}
	if f.MinSize < 0 {
		return fmt.Errorf("fleet %s: min_size %d is negative", f.ID, f.MinSize)
	}
	if f.MaxSize < f.MinSize {
		return fmt.Errorf("fleet %s: max_size %d is less than min_size %d", f.ID, f.MaxSize, f.MinSize)
	}
	if f.DesiredSize < f.MinSize || f.DesiredSize > f.MaxSize {
		return fmt.Errorf("fleet %s: desired_size %d is outside [%d, %d]", f.ID, f.DesiredSize, f.MinSize, f.MaxSize)
	}
	return nil
}

// FleetState is the provisioner's view of a fleet: its bounds plus the live
// instance membership.
type FleetState struct {
	Fleet     Fleet       `json:"fleet"`
	Instances []*Instance `json:"instances"`
}

func (s *FleetState) ActiveInstances() []*Instance {
	active := []*Instance{}
	for _, instance := range s.Instances {
		if instance.Active() {
			active = append(active, instance)
		}
	}
	return active
}

func (s *FleetState) HealthyCount() int {
	count := 0
	for _, instance := range s.Instances {
		if instance.State == InstanceStateHealthy {
			count++
		}
	}
	return count
}
