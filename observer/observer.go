package observer

import (
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/fleetscaler/fleetscaler/collection"
	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/models"
)

type QueryMetricsFunc func(fleetId string, metricKind string, start int64, end int64, orderType db.OrderType) ([]*models.FleetMetric, error)

// Observer is the capacity-observation half of the control loop. On every
// poll interval it fans fleet monitors out to the metric pollers, then folds
// the aggregated samples back into a per-fleet time-series cache and, in
// batches, into the metric database.
type Observer struct {
	logger            lager.Logger
	clock             clock.Clock
	pollInterval      time.Duration
	saveInterval      time.Duration
	doneChan          chan bool
	doneSaveChan      chan bool
	fleetMonitorsChan chan *models.FleetMonitor
	fleetMetricChan   chan *models.FleetMetric
	metricDB          db.MetricDB
	getPolicies       models.GetPolicies
	defaultStatWindow time.Duration

	cacheLock    sync.RWMutex
	metricCache  map[string]*collection.TSDCache
	cacheSize    int
	pendingLock  sync.Mutex
	pendingSaves []*models.FleetMetric
}

func NewObserver(logger lager.Logger, clock clock.Clock, pollInterval time.Duration, saveInterval time.Duration,
	fleetMonitorsChan chan *models.FleetMonitor, fleetMetricChan chan *models.FleetMetric,
	metricDB db.MetricDB, getPolicies models.GetPolicies, defaultStatWindowSecs int, cacheSizePerFleet int) *Observer {
	return &Observer{
		logger:            logger.Session("observer"),
		clock:             clock,
		pollInterval:      pollInterval,
		saveInterval:      saveInterval,
		doneChan:          make(chan bool),
		doneSaveChan:      make(chan bool),
		fleetMonitorsChan: fleetMonitorsChan,
		fleetMetricChan:   fleetMetricChan,
		metricDB:          metricDB,
		getPolicies:       getPolicies,
		defaultStatWindow: time.Duration(defaultStatWindowSecs) * time.Second,
		metricCache:       map[string]*collection.TSDCache{},
		cacheSize:         cacheSizePerFleet,
	}
}

func (o *Observer) Start() {
	go o.startWork()
	go o.startSave()
	o.logger.Info("started", lager.Data{"pollInterval": o.pollInterval})
}

func (o *Observer) Stop() {
	close(o.doneChan)
	close(o.doneSaveChan)
	o.logger.Info("stopped")
}

func (o *Observer) startWork() {
	ticker := o.clock.NewTicker(o.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-o.doneChan:
			return
		case <-ticker.C():
			o.enqueueMonitors()
		case metric := <-o.fleetMetricChan:
			o.consumeMetric(metric)
		}
	}
}

func (o *Observer) startSave() {
	ticker := o.clock.NewTicker(o.saveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-o.doneSaveChan:
			o.flushPending()
			return
		case <-ticker.C():
			o.flushPending()
		}
	}
}

func (o *Observer) enqueueMonitors() {
	for fleetId, fleetPolicy := range o.getPolicies() {
		if fleetPolicy.Policy == nil {
			continue
		}
		statWindow := o.defaultStatWindow
		if fleetPolicy.Policy.BreachDurationSeconds > 0 {
			statWindow = time.Duration(fleetPolicy.Policy.BreachDurationSeconds) * time.Second
		}
		o.fleetMonitorsChan <- &models.FleetMonitor{
			FleetID:    fleetId,
			MetricKind: fleetPolicy.Policy.MetricKind,
			StatWindow: statWindow,
		}
	}
}

func (o *Observer) consumeMetric(metric *models.FleetMetric) {
	if metric == nil {
		return
	}

	o.cacheLock.Lock()
	cache, exists := o.metricCache[cacheKey(metric.FleetID, metric.MetricKind)]
	if !exists {
		cache = collection.NewTSDCache(o.cacheSize)
		o.metricCache[cacheKey(metric.FleetID, metric.MetricKind)] = cache
	}
	o.cacheLock.Unlock()
	cache.Put(metric)

	o.pendingLock.Lock()
	o.pendingSaves = append(o.pendingSaves, metric)
	o.pendingLock.Unlock()
}

func (o *Observer) flushPending() {
	o.pendingLock.Lock()
	metrics := o.pendingSaves
	o.pendingSaves = nil
	o.pendingLock.Unlock()

	if len(metrics) == 0 {
		return
	}
	if err := o.metricDB.SaveMetricsInBulk(metrics); err != nil {
		o.logger.Error("save-metrics-in-bulk", err, lager.Data{"count": len(metrics)})
	}
}

// QueryMetrics serves the evaluator cache-first, falling back to the metric
// database when the cache cannot cover the requested window.
func (o *Observer) QueryMetrics(fleetId string, metricKind string, start int64, end int64, orderType db.OrderType) ([]*models.FleetMetric, error) {
	o.cacheLock.RLock()
	cache, exists := o.metricCache[cacheKey(fleetId, metricKind)]
	o.cacheLock.RUnlock()

	if exists {
		queryEnd := end
		if queryEnd >= 0 {
			// TSDCache query intervals are half-open
			queryEnd = end + 1
		} else {
			queryEnd = o.clock.Now().UnixNano() + 1
		}
		data, covered := cache.Query(start, queryEnd, map[string]string{})
		if covered {
			metrics := make([]*models.FleetMetric, 0, len(data))
			for _, d := range data {
				metrics = append(metrics, d.(*models.FleetMetric))
			}
			if orderType == db.DESC {
				for i, j := 0, len(metrics)-1; i < j; i, j = i+1, j-1 {
					metrics[i], metrics[j] = metrics[j], metrics[i]
				}
			}
			return metrics, nil
		}
	}

	return o.metricDB.RetrieveMetrics(fleetId, metricKind, start, end, orderType)
}

func cacheKey(fleetId, metricKind string) string {
	return fmt.Sprintf("%s#%s", fleetId, metricKind)
}
