package models

import "time"

// FleetMetric is one aggregated utilization sample for a fleet: the average
// reservation percentage across instances over one evaluation period.
type FleetMetric struct {
	FleetID    string  `json:"fleet_id"`
	MetricKind string  `json:"metric_kind"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Timestamp  int64   `json:"timestamp"`
}

func (m *FleetMetric) GetTimestamp() int64 {
	return m.Timestamp
}

func (m *FleetMetric) HasLabels(labels map[string]string) bool {
	for key, value := range labels {
		switch key {
		case "fleet_id":
			if m.FleetID != value {
				return false
			}
		case "metric_kind":
			if m.MetricKind != value {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// FleetMonitor is a unit of observation work: poll one metric kind of one
// fleet over the stat window.
type FleetMonitor struct {
	FleetID    string
	MetricKind string
	StatWindow time.Duration
}
