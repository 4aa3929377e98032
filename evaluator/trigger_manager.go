package evaluator

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/fleetscaler/fleetscaler/models"
)

// TriggerManager turns the policy map into trigger batches on the evaluation
// interval. For every fleet it emits the scale-up rule first, then the
// scale-down rule, so that under simultaneous breach (impossible while
// low < high, but cheap to order anyway) up wins deterministically.
//
// It also tracks the cooldown hints returned by the actuator and holds the
// per-fleet circuit breakers guarding actuator calls.
type TriggerManager struct {
	logger           lager.Logger
	evaluateInterval time.Duration
	cclock           clock.Clock
	doneChan         chan bool
	triggerChan      chan []*models.Trigger
	getPolicies      models.GetPolicies
	consecFailures   int64

	breakerLock  sync.RWMutex
	breakers     map[string]*circuit.Breaker
	cooldownLock sync.RWMutex
	cooldowns    map[string]int64
}

func NewTriggerManager(logger lager.Logger, evaluateInterval time.Duration, cclock clock.Clock,
	triggerChan chan []*models.Trigger, getPolicies models.GetPolicies, consecutiveFailureCount int64) *TriggerManager {
	return &TriggerManager{
		logger:           logger.Session("trigger-manager"),
		evaluateInterval: evaluateInterval,
		cclock:           cclock,
		doneChan:         make(chan bool),
		triggerChan:      triggerChan,
		getPolicies:      getPolicies,
		consecFailures:   consecutiveFailureCount,
		breakers:         map[string]*circuit.Breaker{},
		cooldowns:        map[string]int64{},
	}
}

func (m *TriggerManager) Start() {
	go m.doEvaluate()
	m.logger.Info("started", lager.Data{"interval": m.evaluateInterval})
}

func (m *TriggerManager) Stop() {
	close(m.doneChan)
	m.logger.Info("stopped")
}

func (m *TriggerManager) GetBreaker(fleetId string) *circuit.Breaker {
	m.breakerLock.Lock()
	defer m.breakerLock.Unlock()

	breaker, exists := m.breakers[fleetId]
	if !exists {
		breaker = circuit.NewConsecutiveBreaker(m.consecFailures)
		m.breakers[fleetId] = breaker
	}
	return breaker
}

// SetCoolDownExpired records the actuator's cooldown hint so trigger
// generation pauses for the fleet until it expires. The actuator remains the
// authority; this only avoids pointless sends.
func (m *TriggerManager) SetCoolDownExpired(fleetId string, expiredAt int64) {
	m.cooldownLock.Lock()
	defer m.cooldownLock.Unlock()
	m.cooldowns[fleetId] = expiredAt
}

func (m *TriggerManager) isCoolingDown(fleetId string) bool {
	m.cooldownLock.RLock()
	defer m.cooldownLock.RUnlock()
	expiredAt, exists := m.cooldowns[fleetId]
	return exists && m.cclock.Now().UnixNano() < expiredAt
}

func (m *TriggerManager) doEvaluate() {
	ticker := m.cclock.NewTicker(m.evaluateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.doneChan:
			return
		case <-ticker.C():
			for _, triggers := range m.getTriggers(m.getPolicies()) {
				m.triggerChan <- triggers
			}
		}
	}
}

func (m *TriggerManager) getTriggers(policyMap map[string]*models.FleetPolicy) map[string][]*models.Trigger {
	if policyMap == nil {
		return nil
	}

	triggersByFleet := make(map[string][]*models.Trigger)
	for fleetId, fleetPolicy := range policyMap {
		policy := fleetPolicy.Policy
		if policy == nil {
			continue
		}
		if m.isCoolingDown(fleetId) {
			m.logger.Debug("skip-fleet-in-cooldown", lager.Data{"fleetId": fleetId})
			continue
		}
		triggersByFleet[fleetId] = []*models.Trigger{
			{
				FleetID:               fleetId,
				MetricKind:            policy.MetricKind,
				Threshold:             policy.HighThreshold,
				Operator:              ">",
				Adjustment:            policy.StepSize,
				BreachDurationSeconds: policy.BreachDurationSeconds,
				CoolDownSeconds:       policy.CoolDownSeconds,
			},
			{
				FleetID:               fleetId,
				MetricKind:            policy.MetricKind,
				Threshold:             policy.EffectiveLowThreshold(),
				Operator:              "<",
				Adjustment:            -policy.StepSize,
				BreachDurationSeconds: policy.BreachDurationSeconds,
				CoolDownSeconds:       policy.CoolDownSeconds,
			},
		}
	}
	return triggersByFleet
}
