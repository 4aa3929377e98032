package observer

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/models"
)

// PolicyPoller keeps an in-memory copy of all fleet scaling policies,
// refreshed from the policy database on a fixed interval. Everything else in
// the control loop reads policies through GetPolicies, never from the
// database directly.
type PolicyPoller struct {
	logger   lager.Logger
	interval time.Duration
	policyDB db.PolicyDB
	clock    clock.Clock
	doneChan chan bool

	lock     sync.RWMutex
	policies map[string]*models.FleetPolicy
}

func NewPolicyPoller(logger lager.Logger, clock clock.Clock, interval time.Duration, policyDB db.PolicyDB) *PolicyPoller {
	return &PolicyPoller{
		logger:   logger.Session("policy-poller"),
		interval: interval,
		policyDB: policyDB,
		clock:    clock,
		doneChan: make(chan bool),
		policies: map[string]*models.FleetPolicy{},
	}
}

func (p *PolicyPoller) Start() {
	go p.startPolicyRetrieve()
	p.logger.Info("started", lager.Data{"interval": p.interval})
}

func (p *PolicyPoller) Stop() {
	close(p.doneChan)
	p.logger.Info("stopped")
}

func (p *PolicyPoller) GetPolicies() map[string]*models.FleetPolicy {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.policies
}

func (p *PolicyPoller) startPolicyRetrieve() {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.refreshPolicies()
		select {
		case <-p.doneChan:
			return
		case <-ticker.C():
		}
	}
}

func (p *PolicyPoller) refreshPolicies() {
	policies, err := p.policyDB.GetPolicies()
	if err != nil {
		p.logger.Error("retrieve-policies", err)
		return
	}

	p.lock.Lock()
	p.policies = policies
	p.lock.Unlock()
	p.logger.Debug("policies-refreshed", lager.Data{"count": len(policies)})
}
