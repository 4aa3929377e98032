package observer_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fleetscaler/fleetscaler/fakes"
	"github.com/fleetscaler/fleetscaler/models"
	. "github.com/fleetscaler/fleetscaler/observer"
)

var _ = Describe("MetricPoller", func() {
	const testFleetId = "fleet-a"

	var (
		logger            *lagertest.TestLogger
		metricSource      *fakes.FakeMetricSource
		fleetMonitorsChan chan *models.FleetMonitor
		fleetMetricChan   chan *models.FleetMetric
		poller            *MetricPoller
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("metric-poller-test")
		metricSource = &fakes.FakeMetricSource{}
		fleetMonitorsChan = make(chan *models.FleetMonitor, 1)
		fleetMetricChan = make(chan *models.FleetMetric, 1)

		poller = NewMetricPoller(logger, metricSource, fleetMonitorsChan, fleetMetricChan)
		poller.Start()
	})

	AfterEach(func() {
		poller.Stop()
	})

	It("averages the stat window samples into one fleet metric", func() {
		metricSource.GetMetricReturns([]*models.FleetMetric{
			{FleetID: testFleetId, MetricKind: models.MetricKindCPU, Value: 80, Timestamp: time.Now().UnixNano()},
			{FleetID: testFleetId, MetricKind: models.MetricKindCPU, Value: 90, Timestamp: time.Now().UnixNano()},
		}, nil)

		fleetMonitorsChan <- &models.FleetMonitor{FleetID: testFleetId, MetricKind: models.MetricKindCPU, StatWindow: 2 * time.Minute}

		var metric *models.FleetMetric
		Eventually(fleetMetricChan).Should(Receive(&metric))
		Expect(metric.FleetID).To(Equal(testFleetId))
		Expect(metric.MetricKind).To(Equal(models.MetricKindCPU))
		Expect(metric.Value).To(Equal(85.0))
		Expect(metric.Unit).To(Equal("percent"))
	})

	It("queries the configured stat window", func() {
		metricSource.GetMetricReturns([]*models.FleetMetric{
			{FleetID: testFleetId, MetricKind: models.MetricKindCPU, Value: 80, Timestamp: time.Now().UnixNano()},
		}, nil)

		fleetMonitorsChan <- &models.FleetMonitor{FleetID: testFleetId, MetricKind: models.MetricKindCPU, StatWindow: 2 * time.Minute}
		Eventually(fleetMetricChan).Should(Receive())

		fleetId, metricKind, start, end := metricSource.GetMetricArgsForCall(0)
		Expect(fleetId).To(Equal(testFleetId))
		Expect(metricKind).To(Equal(models.MetricKindCPU))
		Expect(end - start).To(Equal(int64(2 * time.Minute)))
	})

	It("drops the sample when the metric source fails", func() {
		metricSource.GetMetricReturns(nil, errors.New("source down"))

		fleetMonitorsChan <- &models.FleetMonitor{FleetID: testFleetId, MetricKind: models.MetricKindCPU, StatWindow: 2 * time.Minute}
		Consistently(fleetMetricChan).ShouldNot(Receive())
	})

	It("drops the sample when the stat window is empty", func() {
		metricSource.GetMetricReturns([]*models.FleetMetric{}, nil)

		fleetMonitorsChan <- &models.FleetMonitor{FleetID: testFleetId, MetricKind: models.MetricKindCPU, StatWindow: 2 * time.Minute}
		Consistently(fleetMetricChan).ShouldNot(Receive())
	})
})
