package capacity

import (
	"math"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fleetscaler/fleetscaler/cloud"
	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/models"
	"github.com/fleetscaler/fleetscaler/observer"
)

// Reconciler is the managed-scaling loop: independently of the coarse
// instance-count actuator it steers each fleet's published schedulable
// capacity toward the binding's target utilization set-point, moving in
// bounded steps. The workload scheduler consumes the published target.
type Reconciler struct {
	logger         lager.Logger
	cclock         clock.Clock
	interval       time.Duration
	bindingDB      db.BindingDB
	fleetAPI       cloud.FleetAPI
	publisher      cloud.CapacityPublisher
	queryMetrics   observer.QueryMetricsFunc
	doneChan       chan bool
	capacityTarget *prometheus.GaugeVec
}

func NewReconciler(logger lager.Logger, cclock clock.Clock, interval time.Duration,
	bindingDB db.BindingDB, fleetAPI cloud.FleetAPI, publisher cloud.CapacityPublisher,
	queryMetrics observer.QueryMetricsFunc, capacityTarget *prometheus.GaugeVec) *Reconciler {
	return &Reconciler{
		logger:         logger.Session("capacity-reconciler"),
		cclock:         cclock,
		interval:       interval,
		bindingDB:      bindingDB,
		fleetAPI:       fleetAPI,
		publisher:      publisher,
		queryMetrics:   queryMetrics,
		doneChan:       make(chan bool),
		capacityTarget: capacityTarget,
	}
}

func (r *Reconciler) Start() {
	go r.startReconcile()
	r.logger.Info("started", lager.Data{"interval": r.interval})
}

func (r *Reconciler) Stop() {
	close(r.doneChan)
	r.logger.Info("stopped")
}

func (r *Reconciler) startReconcile() {
	ticker := r.cclock.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.doneChan:
			return
		case <-ticker.C():
			r.reconcileAll()
		}
	}
}

func (r *Reconciler) reconcileAll() {
	bindings, err := r.bindingDB.GetBindings()
	if err != nil {
		r.logger.Error("retrieve-bindings", err)
		return
	}
	for _, binding := range bindings {
		r.ReconcileBinding(binding)
	}
}

// ReconcileBinding computes and publishes one capacity adjustment for a
// binding. Adjustments smaller than MinStep are skipped, larger ones are
// capped at MaxStep, and the result is clamped to the fleet bounds.
func (r *Reconciler) ReconcileBinding(binding *models.CapacityBinding) {
	logger := r.logger.WithData(lager.Data{"fleetId": binding.FleetID})

	state, err := r.fleetAPI.DescribeFleet(binding.FleetID)
	if err != nil {
		logger.Error("failed-to-describe-fleet", err)
		return
	}
	fleet := state.Fleet

	utilization, ok := r.latestUtilization(binding.FleetID)
	if !ok {
		logger.Debug("no-utilization-sample")
		return
	}

	current := binding.CurrentTarget
	if current <= 0 {
		current = fleet.DesiredSize
	}

	target := desiredCapacity(current, utilization, binding)
	if target < fleet.MinSize {
		target = fleet.MinSize
	} else if target > fleet.MaxSize {
		target = fleet.MaxSize
	}
	if target == binding.CurrentTarget {
		return
	}

	if err := r.publisher.SetCapacity(binding.FleetID, target); err != nil {
		logger.Error("failed-to-publish-capacity-target", err, lager.Data{"target": target})
		return
	}

	now := r.cclock.Now().UnixNano()
	if err := r.bindingDB.UpdateBindingTarget(binding.FleetID, target, now); err != nil {
		logger.Error("failed-to-persist-capacity-target", err, lager.Data{"target": target})
	}
	r.capacityTarget.WithLabelValues(binding.FleetID).Set(float64(target))
	logger.Info("capacity-target-adjusted", lager.Data{
		"utilization": utilization,
		"setPoint":    binding.TargetUtilizationPercent,
		"from":        binding.CurrentTarget,
		"to":          target,
	})
}

// desiredCapacity scales the current capacity by the ratio of observed
// utilization to the set-point, then bounds the move to the binding's step
// limits.
func desiredCapacity(current int, utilization float64, binding *models.CapacityBinding) int {
	raw := int(math.Ceil(float64(current) * utilization / float64(binding.TargetUtilizationPercent)))
	delta := raw - current

	if delta > binding.MaxStep {
		delta = binding.MaxStep
	} else if delta < -binding.MaxStep {
		delta = -binding.MaxStep
	}
	if delta > -binding.MinStep && delta < binding.MinStep {
		return current
	}
	return current + delta
}

func (r *Reconciler) latestUtilization(fleetId string) (float64, bool) {
	end := r.cclock.Now()
	start := end.Add(-2 * r.interval)

	for _, kind := range []string{models.MetricKindCPU, models.MetricKindMemory} {
		metrics, err := r.queryMetrics(fleetId, kind, start.UnixNano(), end.UnixNano(), db.DESC)
		if err != nil {
			r.logger.Error("query-metrics", err, lager.Data{"fleetId": fleetId, "metricKind": kind})
			continue
		}
		if len(metrics) > 0 {
			return metrics[0].Value, true
		}
	}
	return 0, false
}
