package cloud

import (
	"github.com/fleetscaler/fleetscaler/models"
)

// MetricSource supplies time-series utilization samples for a fleet. The
// reconciler never queries the cloud metric store directly; an external
// collector sits behind this interface.
type MetricSource interface {
	GetMetric(fleetId string, metricKind string, start int64, end int64) ([]*models.FleetMetric, error)
}

// FleetAPI is the provisioning engine owning the actual compute. All calls
// are requests to an external orchestrator: resize and replace are
// fire-and-forget, the orchestrator converges on its own schedule.
type FleetAPI interface {
	DescribeFleet(fleetId string) (*models.FleetState, error)
	ResizeFleet(fleetId string, target int) error
	LaunchInstances(fleetId string, spec models.LaunchSpec, count int) error
	TerminateInstance(fleetId string, instanceId string) error
	ReplaceInstance(fleetId string, instanceId string) error
}

// CapacityPublisher pushes the managed-scaling capacity target to the
// workload scheduler.
type CapacityPublisher interface {
	SetCapacity(fleetId string, target int) error
}
