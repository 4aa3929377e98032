package observer

import (
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/fleetscaler/fleetscaler/cloud"
	"github.com/fleetscaler/fleetscaler/models"
)

// MetricPoller drains fleet monitors off the shared channel, queries the
// metric source over the stat window and emits one aggregated utilization
// sample per poll. A fetch failure drops the sample; the next cycle retries.
type MetricPoller struct {
	logger            lager.Logger
	metricSource      cloud.MetricSource
	doneChan          chan bool
	fleetMonitorsChan chan *models.FleetMonitor
	fleetMetricChan   chan *models.FleetMetric
}

func NewMetricPoller(logger lager.Logger, metricSource cloud.MetricSource,
	fleetMonitorsChan chan *models.FleetMonitor, fleetMetricChan chan *models.FleetMetric) *MetricPoller {
	return &MetricPoller{
		logger:            logger.Session("metric-poller"),
		metricSource:      metricSource,
		doneChan:          make(chan bool),
		fleetMonitorsChan: fleetMonitorsChan,
		fleetMetricChan:   fleetMetricChan,
	}
}

func (m *MetricPoller) Start() {
	go m.startMetricRetrieve()
	m.logger.Info("started")
}

func (m *MetricPoller) Stop() {
	close(m.doneChan)
}

func (m *MetricPoller) startMetricRetrieve() {
	for {
		select {
		case <-m.doneChan:
			m.logger.Info("stopped")
			return
		case monitor := <-m.fleetMonitorsChan:
			m.retrieveMetric(monitor)
		}
	}
}

func (m *MetricPoller) retrieveMetric(monitor *models.FleetMonitor) {
	endTime := time.Now()
	startTime := endTime.Add(0 - monitor.StatWindow)

	metrics, err := m.metricSource.GetMetric(monitor.FleetID, monitor.MetricKind, startTime.UnixNano(), endTime.UnixNano())
	if err != nil {
		m.logger.Error("retrieve-metric", err, lager.Data{"fleetId": monitor.FleetID, "metricKind": monitor.MetricKind})
		return
	}
	if len(metrics) == 0 {
		m.logger.Debug("no-metrics-in-stat-window", lager.Data{"fleetId": monitor.FleetID, "metricKind": monitor.MetricKind})
		return
	}

	m.fleetMetricChan <- aggregate(metrics, monitor, endTime.UnixNano())
}

// aggregate averages the raw samples of the stat window into a single fleet
// utilization value.
func aggregate(metrics []*models.FleetMetric, monitor *models.FleetMonitor, timestamp int64) *models.FleetMetric {
	var sum float64
	for _, metric := range metrics {
		sum += metric.Value
	}
	return &models.FleetMetric{
		FleetID:    monitor.FleetID,
		MetricKind: monitor.MetricKind,
		Value:      sum / float64(len(metrics)),
		Unit:       "percent",
		Timestamp:  timestamp,
	}
}
