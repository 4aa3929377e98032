package evaluator

import (
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/models"
	"github.com/fleetscaler/fleetscaler/observer"
)

var validOperators = []string{">", "<"}

// ScaleFunc hands a breached trigger to the scaling actuator.
type ScaleFunc func(fleetId string, trigger *models.Trigger) (*models.FleetScalingResult, error)

// Evaluator consumes trigger batches and decides ScaleUp, ScaleDown or
// NoAction. A direction fires only when every sample in the breach window
// crosses its threshold; the first breached trigger of a batch is actuated
// and the rest of the batch is dropped.
type Evaluator struct {
	logger                    lager.Logger
	cclock                    clock.Clock
	triggerChan               chan []*models.Trigger
	doneChan                  chan bool
	defaultBreachDurationSecs int
	queryMetrics              observer.QueryMetricsFunc
	scale                     ScaleFunc
	getBreaker                func(string) *circuit.Breaker
	setCoolDownExpired        func(string, int64)
}

func NewEvaluator(logger lager.Logger, cclock clock.Clock, triggerChan chan []*models.Trigger,
	defaultBreachDurationSecs int, queryMetrics observer.QueryMetricsFunc, scale ScaleFunc,
	getBreaker func(string) *circuit.Breaker, setCoolDownExpired func(string, int64)) *Evaluator {
	return &Evaluator{
		logger:                    logger.Session("evaluator"),
		cclock:                    cclock,
		triggerChan:               triggerChan,
		doneChan:                  make(chan bool),
		defaultBreachDurationSecs: defaultBreachDurationSecs,
		queryMetrics:              queryMetrics,
		scale:                     scale,
		getBreaker:                getBreaker,
		setCoolDownExpired:        setCoolDownExpired,
	}
}

func (e *Evaluator) Start() {
	go e.start()
	e.logger.Info("started")
}

func (e *Evaluator) Stop() {
	close(e.doneChan)
	e.logger.Info("stopped")
}

func (e *Evaluator) start() {
	for {
		select {
		case <-e.doneChan:
			return
		case triggerArray := <-e.triggerChan:
			e.doEvaluate(triggerArray)
		}
	}
}

// Evaluate runs one trigger batch synchronously and reports the direction
// taken. Exported for the manual-scale path and tests; the run loop uses it
// through doEvaluate.
func (e *Evaluator) Evaluate(triggerArray []*models.Trigger) models.ScalingDirection {
	for _, trigger := range triggerArray {
		if !e.isValidOperator(trigger.Operator) {
			e.logger.Error("operator-is-invalid", nil, lager.Data{"trigger": trigger})
			continue
		}

		metrics, err := e.retrieveMetrics(trigger)
		if err != nil {
			continue
		}
		if len(metrics) == 0 {
			e.logger.Debug("breach-window-not-covered", lager.Data{"trigger": trigger})
			continue
		}

		if !allBreached(metrics, trigger) {
			e.logger.Debug("no-breach", lager.Data{"trigger": trigger})
			continue
		}

		direction := trigger.Direction()
		e.logger.Info("sending-trigger-to-actuator", lager.Data{"trigger": trigger, "direction": direction.String()})
		e.sendTrigger(trigger)
		return direction
	}
	return models.ScalingDirectionNone
}

func (e *Evaluator) doEvaluate(triggerArray []*models.Trigger) {
	e.Evaluate(triggerArray)
}

// retrieveMetrics returns the samples inside [now-breachDuration, now],
// but only when the series reaches back far enough to cover the whole
// breach window. A short series means "not enough evidence yet".
func (e *Evaluator) retrieveMetrics(trigger *models.Trigger) ([]*models.FleetMetric, error) {
	queryEndTime := e.cclock.Now()
	breachDuration := trigger.BreachDuration(e.defaultBreachDurationSecs)
	queryStartTime := queryEndTime.Add(0 - 2*breachDuration)
	breachStartTime := queryEndTime.Add(0 - breachDuration)

	metrics, err := e.queryMetrics(trigger.FleetID, trigger.MetricKind, queryStartTime.UnixNano(), queryEndTime.UnixNano(), db.ASC)
	if err != nil {
		e.logger.Error("retrieve-metrics", err, lager.Data{"trigger": trigger})
		return nil, err
	}

	result := []*models.FleetMetric{}
	if len(metrics) > 0 && metrics[0].Timestamp < breachStartTime.UnixNano() {
		for i := len(metrics) - 1; i >= 0; i-- {
			if metrics[i].Timestamp < breachStartTime.UnixNano() {
				break
			}
			result = append(result, metrics[i])
		}
	}
	return result, nil
}

func allBreached(metrics []*models.FleetMetric, trigger *models.Trigger) bool {
	for _, metric := range metrics {
		switch trigger.Operator {
		case ">":
			if metric.Value <= trigger.Threshold {
				return false
			}
		case "<":
			if metric.Value >= trigger.Threshold {
				return false
			}
		}
	}
	return true
}

func (e *Evaluator) sendTrigger(trigger *models.Trigger) {
	call := func() error {
		result, err := e.scale(trigger.FleetID, trigger)
		if err != nil {
			return err
		}
		if result.CooldownExpiredAt != 0 {
			e.setCoolDownExpired(trigger.FleetID, result.CooldownExpiredAt)
		}
		return nil
	}

	if breaker := e.getBreaker(trigger.FleetID); breaker != nil {
		if breaker.Tripped() {
			e.logger.Info("circuit-tripped", lager.Data{"fleetId": trigger.FleetID, "consecutiveFailures": breaker.ConsecFailures()})
		}
		if err := breaker.Call(call, 0); err != nil {
			e.logger.Error("scale-fleet-failed", err, lager.Data{"fleetId": trigger.FleetID})
		}
		return
	}

	if err := call(); err != nil {
		e.logger.Error("scale-fleet-failed", err, lager.Data{"fleetId": trigger.FleetID})
	}
}

func (e *Evaluator) isValidOperator(operator string) bool {
	for _, o := range validOperators {
		if o == operator {
			return true
		}
	}
	return false
}
