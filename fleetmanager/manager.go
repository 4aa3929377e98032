package fleetmanager

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fleetscaler/fleetscaler/cloud"
	"github.com/fleetscaler/fleetscaler/models"
)

type replaceState struct {
	attempts    int
	nextAttempt time.Time
	backoff     *backoff.ExponentialBackOff
	exhausted   bool
}

// FleetManager is the sole mutator of instance membership. On every
// reconcile interval it diffs each managed fleet's live instance set against
// its desired size and launch-spec version, replacing unhealthy instances
// past their grace period and rolling outdated instances without dropping
// the healthy count below the policy's minimum.
type FleetManager struct {
	logger      lager.Logger
	cclock      clock.Clock
	fleetAPI    cloud.FleetAPI
	getPolicies models.GetPolicies
	interval    time.Duration
	retryLimit  int
	doneChan    chan bool

	// replaceFailures is the operator alert for instances whose replacement
	// kept failing past the retry budget.
	replaceFailures *prometheus.CounterVec

	retries map[string]*replaceState
}

func New(logger lager.Logger, cclock clock.Clock, fleetAPI cloud.FleetAPI, getPolicies models.GetPolicies,
	interval time.Duration, retryLimit int, replaceFailures *prometheus.CounterVec) *FleetManager {
	return &FleetManager{
		logger:          logger.Session("fleet-manager"),
		cclock:          cclock,
		fleetAPI:        fleetAPI,
		getPolicies:     getPolicies,
		interval:        interval,
		retryLimit:      retryLimit,
		doneChan:        make(chan bool),
		replaceFailures: replaceFailures,
		retries:         map[string]*replaceState{},
	}
}

func (m *FleetManager) Start() {
	go m.startReconcile()
	m.logger.Info("started", lager.Data{"interval": m.interval})
}

func (m *FleetManager) Stop() {
	close(m.doneChan)
	m.logger.Info("stopped")
}

func (m *FleetManager) startReconcile() {
	ticker := m.cclock.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.doneChan:
			return
		case <-ticker.C():
			for fleetId := range m.getPolicies() {
				m.ReconcileFleet(fleetId)
			}
		}
	}
}

// ReconcileFleet runs one reconcile pass for a single fleet.
func (m *FleetManager) ReconcileFleet(fleetId string) {
	logger := m.logger.WithData(lager.Data{"fleetId": fleetId})

	state, err := m.fleetAPI.DescribeFleet(fleetId)
	if err != nil {
		logger.Error("failed-to-describe-fleet", err)
		return
	}
	fleet := state.Fleet
	if err := fleet.Validate(); err != nil {
		logger.Error("fleet-invariant-violated", err)
		return
	}

	m.dropStaleRetries(state)
	m.replaceUnhealthy(logger, state)
	m.rollOutdated(logger, state)
	m.reconcileSize(logger, state)
}

// replaceUnhealthy terminates-and-replaces instances that stayed unhealthy
// or never finished bootstrap past the grace period. Repeated failures back
// off exponentially; past the retry budget the instance is left alone and an
// alert counter is raised instead.
func (m *FleetManager) replaceUnhealthy(logger lager.Logger, state *models.FleetState) {
	now := m.cclock.Now()
	grace := state.Fleet.HealthCheck.GracePeriod()

	for _, instance := range state.Instances {
		if instance.State != models.InstanceStateUnhealthy && instance.State != models.InstanceStatePending {
			continue
		}
		age := now.Sub(time.Unix(0, instance.LaunchedAt))
		if age <= grace {
			continue
		}

		retry := m.retries[instance.ID]
		if retry == nil {
			retry = &replaceState{backoff: newReplaceBackOff()}
			m.retries[instance.ID] = retry
		}
		if retry.exhausted || now.Before(retry.nextAttempt) {
			continue
		}
		if retry.attempts >= m.retryLimit {
			retry.exhausted = true
			m.replaceFailures.WithLabelValues(state.Fleet.ID).Inc()
			logger.Error("instance-replacement-retry-budget-exhausted", nil,
				lager.Data{"instanceId": instance.ID, "attempts": retry.attempts})
			continue
		}

		retry.attempts++
		retry.nextAttempt = now.Add(retry.backoff.NextBackOff())
		if err := m.fleetAPI.ReplaceInstance(state.Fleet.ID, instance.ID); err != nil {
			logger.Error("failed-to-replace-instance", err, lager.Data{"instanceId": instance.ID, "attempt": retry.attempts})
			continue
		}
		logger.Info("replacing-unhealthy-instance", lager.Data{"instanceId": instance.ID, "state": instance.State, "age": age.String()})
	}
}

// rollOutdated replaces healthy instances carrying an older launch-spec
// version, bounded so the healthy count never drops below
// minHealthyPercentage of the desired size.
func (m *FleetManager) rollOutdated(logger lager.Logger, state *models.FleetState) {
	currentVersion := state.Fleet.LaunchSpec.Version

	outdated := []*models.Instance{}
	for _, instance := range state.Instances {
		if instance.State == models.InstanceStateHealthy && instance.LaunchSpecVersion < currentVersion {
			outdated = append(outdated, instance)
		}
	}
	if len(outdated) == 0 {
		return
	}

	minHealthy := minHealthyCount(state.Fleet)
	budget := state.HealthyCount() - minHealthy
	if budget <= 0 {
		logger.Info("rolling-replacement-deferred", lager.Data{"healthy": state.HealthyCount(), "minHealthy": minHealthy})
		return
	}
	if budget > len(outdated) {
		budget = len(outdated)
	}

	for _, instance := range selectForTermination(outdated, budget) {
		if err := m.fleetAPI.ReplaceInstance(state.Fleet.ID, instance.ID); err != nil {
			logger.Error("failed-to-replace-outdated-instance", err, lager.Data{"instanceId": instance.ID})
			continue
		}
		logger.Info("rolling-outdated-instance", lager.Data{
			"instanceId":     instance.ID,
			"specVersion":    instance.LaunchSpecVersion,
			"currentVersion": currentVersion,
		})
	}
}

// reconcileSize launches or terminates instances to meet the desired size.
func (m *FleetManager) reconcileSize(logger lager.Logger, state *models.FleetState) {
	active := state.ActiveInstances()
	diff := state.Fleet.DesiredSize - len(active)

	switch {
	case diff > 0:
		if err := m.fleetAPI.LaunchInstances(state.Fleet.ID, state.Fleet.LaunchSpec, diff); err != nil {
			logger.Error("failed-to-launch-instances", err, lager.Data{"count": diff})
			return
		}
		logger.Info("launching-instances", lager.Data{"count": diff, "specVersion": state.Fleet.LaunchSpec.Version})
	case diff < 0:
		for _, instance := range selectForTermination(active, -diff) {
			if err := m.fleetAPI.TerminateInstance(state.Fleet.ID, instance.ID); err != nil {
				logger.Error("failed-to-terminate-instance", err, lager.Data{"instanceId": instance.ID})
				continue
			}
			logger.Info("terminating-instance", lager.Data{"instanceId": instance.ID, "specVersion": instance.LaunchSpecVersion})
		}
	}
}

func (m *FleetManager) dropStaleRetries(state *models.FleetState) {
	present := make(map[string]bool, len(state.Instances))
	for _, instance := range state.Instances {
		present[instance.ID] = true
	}
	for id := range m.retries {
		if !present[id] {
			delete(m.retries, id)
		}
	}
}

func minHealthyCount(fleet models.Fleet) int {
	percentage := fleet.HealthCheck.MinHealthyPercentage
	if percentage <= 0 {
		return 0
	}
	// ceiling, so 50% of 3 keeps 2 healthy
	return (fleet.DesiredSize*percentage + 99) / 100
}

func newReplaceBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 30 * time.Second
	b.MaxInterval = 10 * time.Minute
	b.MaxElapsedTime = 0
	return b
}
