package actuator

import (
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	gocache "github.com/patrickmn/go-cache"

	"github.com/fleetscaler/fleetscaler/cloud"
	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/models"
)

// Actuator applies bounded desired-size changes to fleets. It is the only
// component issuing resize requests for dynamic and manual scaling.
type Actuator interface {
	Scale(fleetId string, trigger *models.Trigger) (*models.FleetScalingResult, error)
	Resize(fleetId string, target int) (*models.FleetScalingResult, error)
}

type actuator struct {
	logger              lager.Logger
	fleetAPI            cloud.FleetAPI
	historyDB           db.ScalingHistoryDB
	fleetLock           *stripedLock
	clock               clock.Clock
	defaultCoolDownSecs int

	// cooldowns holds the expiry timestamp per fleet and direction; up and
	// down cool down independently.
	cooldowns *gocache.Cache
}

func New(logger lager.Logger, fleetAPI cloud.FleetAPI, historyDB db.ScalingHistoryDB,
	clock clock.Clock, defaultCoolDownSecs int, lockSize int) Actuator {
	return &actuator{
		logger:              logger.Session("actuator"),
		fleetAPI:            fleetAPI,
		historyDB:           historyDB,
		fleetLock:           newStripedLock(lockSize),
		clock:               clock,
		defaultCoolDownSecs: defaultCoolDownSecs,
		cooldowns:           gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (a *actuator) Scale(fleetId string, trigger *models.Trigger) (*models.FleetScalingResult, error) {
	logger := a.logger.WithData(lager.Data{"fleetId": fleetId})

	a.fleetLock.getLock(fleetId).Lock()
	defer a.fleetLock.getLock(fleetId).Unlock()

	now := a.clock.Now()
	history := &models.FleetScalingHistory{
		FleetID:     fleetId,
		Timestamp:   now.UnixNano(),
		ScalingType: models.ScalingTypeDynamic,
		OldSize:     -1,
		NewSize:     -1,
		Reason:      getDynamicScalingReason(trigger),
	}
	defer a.saveHistory(history)

	result := &models.FleetScalingResult{FleetID: fleetId}

	state, err := a.fleetAPI.DescribeFleet(fleetId)
	if err != nil {
		logger.Error("failed-to-describe-fleet", err)
		history.Status = models.ScalingStatusFailed
		history.Error = "failed to describe fleet: " + err.Error()
		return nil, err
	}
	fleet := state.Fleet
	history.OldSize = fleet.DesiredSize

	direction := trigger.Direction()
	if direction == models.ScalingDirectionNone {
		logger.Info("ignoring-zero-adjustment", lager.Data{"trigger": trigger})
		history.Status = models.ScalingStatusIgnored
		history.NewSize = fleet.DesiredSize
		history.Message = "trigger carries no adjustment"
		result.Status = history.Status
		return result, nil
	}

	if expiredAt, cooling := a.coolingDown(fleetId, direction, now); cooling {
		logger.Info("scaling-ignored-in-cooldown", lager.Data{"direction": direction.String()})
		history.Status = models.ScalingStatusIgnored
		history.NewSize = fleet.DesiredSize
		history.Message = fmt.Sprintf("fleet in %s cooldown period", direction)
		result.Status = history.Status
		result.CooldownExpiredAt = expiredAt
		return result, nil
	}

	newSize := fleet.DesiredSize + trigger.Adjustment
	if newSize < fleet.MinSize {
		newSize = fleet.MinSize
		history.Message = fmt.Sprintf("limited by min size %d", fleet.MinSize)
	} else if newSize > fleet.MaxSize {
		newSize = fleet.MaxSize
		history.Message = fmt.Sprintf("limited by max size %d", fleet.MaxSize)
	}
	history.NewSize = newSize

	if newSize == fleet.DesiredSize {
		logger.Info("ignoring-scale-fleet-already-at-bound", lager.Data{"desiredSize": newSize})
		history.Status = models.ScalingStatusIgnored
		result.Status = history.Status
		return result, nil
	}

	err = a.fleetAPI.ResizeFleet(fleetId, newSize)
	if err != nil {
		logger.Error("failed-to-resize-fleet", err, lager.Data{"newSize": newSize})
		history.Status = models.ScalingStatusFailed
		history.Error = "failed to resize fleet: " + err.Error()
		return nil, err
	}

	coolDown := trigger.CoolDown(a.defaultCoolDownSecs)
	expiredAt := now.Add(coolDown).UnixNano()
	a.cooldowns.Set(cooldownKey(fleetId, direction), expiredAt, coolDown)

	history.Status = models.ScalingStatusSucceeded
	result.Status = history.Status
	result.Adjustment = newSize - fleet.DesiredSize
	result.CooldownExpiredAt = expiredAt
	return result, nil
}

func (a *actuator) Resize(fleetId string, target int) (*models.FleetScalingResult, error) {
	logger := a.logger.WithData(lager.Data{"fleetId": fleetId})

	a.fleetLock.getLock(fleetId).Lock()
	defer a.fleetLock.getLock(fleetId).Unlock()

	history := &models.FleetScalingHistory{
		FleetID:     fleetId,
		Timestamp:   a.clock.Now().UnixNano(),
		ScalingType: models.ScalingTypeManual,
		OldSize:     -1,
		NewSize:     -1,
		Reason:      fmt.Sprintf("manual resize to %d", target),
	}
	defer a.saveHistory(history)

	result := &models.FleetScalingResult{FleetID: fleetId}

	state, err := a.fleetAPI.DescribeFleet(fleetId)
	if err != nil {
		logger.Error("failed-to-describe-fleet", err)
		history.Status = models.ScalingStatusFailed
		history.Error = "failed to describe fleet: " + err.Error()
		return nil, err
	}
	fleet := state.Fleet
	history.OldSize = fleet.DesiredSize

	newSize := target
	if newSize < fleet.MinSize {
		newSize = fleet.MinSize
		history.Message = fmt.Sprintf("limited by min size %d", fleet.MinSize)
	} else if newSize > fleet.MaxSize {
		newSize = fleet.MaxSize
		history.Message = fmt.Sprintf("limited by max size %d", fleet.MaxSize)
	}
	history.NewSize = newSize

	if newSize == fleet.DesiredSize {
		history.Status = models.ScalingStatusIgnored
		result.Status = history.Status
		return result, nil
	}

	err = a.fleetAPI.ResizeFleet(fleetId, newSize)
	if err != nil {
		logger.Error("failed-to-resize-fleet", err, lager.Data{"newSize": newSize})
		history.Status = models.ScalingStatusFailed
		history.Error = "failed to resize fleet: " + err.Error()
		return nil, err
	}

	history.Status = models.ScalingStatusSucceeded
	result.Status = history.Status
	result.Adjustment = newSize - fleet.DesiredSize
	return result, nil
}

func (a *actuator) coolingDown(fleetId string, direction models.ScalingDirection, now time.Time) (int64, bool) {
	value, found := a.cooldowns.Get(cooldownKey(fleetId, direction))
	if !found {
		return 0, false
	}
	expiredAt := value.(int64)
	return expiredAt, now.UnixNano() < expiredAt
}

func (a *actuator) saveHistory(history *models.FleetScalingHistory) {
	if err := a.historyDB.SaveScalingHistory(history); err != nil {
		a.logger.Error("failed-to-save-scaling-history", err)
	}
}

func cooldownKey(fleetId string, direction models.ScalingDirection) string {
	return fleetId + "#" + direction.String()
}

func getDynamicScalingReason(trigger *models.Trigger) string {
	return fmt.Sprintf("%+d instance(s) because %s %s %v for %d seconds",
		trigger.Adjustment,
		trigger.MetricKind,
		trigger.Operator,
		trigger.Threshold,
		trigger.BreachDurationSeconds)
}
