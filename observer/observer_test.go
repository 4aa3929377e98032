package observer_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"

	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/fakes"
	"github.com/fleetscaler/fleetscaler/models"
	. "github.com/fleetscaler/fleetscaler/observer"
)

var _ = Describe("Observer", func() {
	const (
		testFleetId      = "fleet-a"
		testPollInterval = 30 * time.Second
		testSaveInterval = time.Minute
		testStatWindow   = 60
		testCacheSize    = 10
	)

	var (
		logger            *lagertest.TestLogger
		fclock            *fakeclock.FakeClock
		fleetMonitorsChan chan *models.FleetMonitor
		fleetMetricChan   chan *models.FleetMetric
		metricDB          *fakes.FakeMetricDB
		policies          map[string]*models.FleetPolicy
		capacityObserver  *Observer
	)

	metric := func(value float64, timestamp int64) *models.FleetMetric {
		return &models.FleetMetric{
			FleetID:    testFleetId,
			MetricKind: models.MetricKindCPU,
			Value:      value,
			Unit:       "percent",
			Timestamp:  timestamp,
		}
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("observer-test")
		fclock = fakeclock.NewFakeClock(time.Now())
		fleetMonitorsChan = make(chan *models.FleetMonitor, 10)
		fleetMetricChan = make(chan *models.FleetMetric, 10)
		metricDB = &fakes.FakeMetricDB{}
		policies = map[string]*models.FleetPolicy{
			testFleetId: {
				FleetID: testFleetId,
				Policy: &models.ScalingPolicy{
					MetricKind:            models.MetricKindCPU,
					HighThreshold:         80,
					StepSize:              1,
					BreachDurationSeconds: 120,
				},
			},
		}
		getPolicies := func() map[string]*models.FleetPolicy { return policies }

		capacityObserver = NewObserver(logger, fclock, testPollInterval, testSaveInterval,
			fleetMonitorsChan, fleetMetricChan, metricDB, getPolicies, testStatWindow, testCacheSize)
		capacityObserver.Start()
	})

	AfterEach(func() {
		capacityObserver.Stop()
	})

	Describe("enqueueing monitors", func() {
		It("emits one monitor per fleet policy on the poll tick", func() {
			fclock.WaitForWatcherAndIncrement(testPollInterval)

			var monitor *models.FleetMonitor
			Eventually(fleetMonitorsChan).Should(Receive(&monitor))
			Expect(monitor.FleetID).To(Equal(testFleetId))
			Expect(monitor.MetricKind).To(Equal(models.MetricKindCPU))
			Expect(monitor.StatWindow).To(Equal(120 * time.Second))
		})

		It("falls back to the default stat window when the policy has no breach duration", func() {
			policies[testFleetId].Policy.BreachDurationSeconds = 0
			fclock.WaitForWatcherAndIncrement(testPollInterval)

			var monitor *models.FleetMonitor
			Eventually(fleetMonitorsChan).Should(Receive(&monitor))
			Expect(monitor.StatWindow).To(Equal(time.Duration(testStatWindow) * time.Second))
		})

		It("skips fleets without a policy", func() {
			policies[testFleetId].Policy = nil
			fclock.WaitForWatcherAndIncrement(testPollInterval)

			Consistently(fleetMonitorsChan).ShouldNot(Receive())
		})
	})

	Describe("persisting metrics", func() {
		It("saves consumed metrics in bulk on the save tick", func() {
			fleetMetricChan <- metric(50, fclock.Now().UnixNano())
			fleetMetricChan <- metric(60, fclock.Now().UnixNano())
			Eventually(fleetMetricChan).Should(BeEmpty())

			fclock.WaitForNWatchersAndIncrement(testSaveInterval, 2)

			Eventually(metricDB.SaveMetricsInBulkCallCount).Should(Equal(1))
			saved := metricDB.SaveMetricsInBulkArgsForCall(0)
			Expect(saved).To(HaveLen(2))
			Expect(saved[0].Value).To(Equal(50.0))
			Expect(saved[1].Value).To(Equal(60.0))
		})

		It("does not call the database when there is nothing pending", func() {
			fclock.WaitForNWatchersAndIncrement(testSaveInterval, 2)
			Consistently(metricDB.SaveMetricsInBulkCallCount).Should(BeZero())
		})

		It("flushes pending metrics on Stop", func() {
			fleetMetricChan <- metric(50, fclock.Now().UnixNano())
			Eventually(fleetMetricChan).Should(BeEmpty())

			capacityObserver.Stop()
			Eventually(metricDB.SaveMetricsInBulkCallCount).Should(Equal(1))

			capacityObserver = NewObserver(logger, fclock, testPollInterval, testSaveInterval,
				fleetMonitorsChan, fleetMetricChan, metricDB,
				func() map[string]*models.FleetPolicy { return policies }, testStatWindow, testCacheSize)
			capacityObserver.Start()
		})

		It("logs and carries on when the bulk save fails", func() {
			metricDB.SaveMetricsInBulkReturns(errors.New("db down"))
			fleetMetricChan <- metric(50, fclock.Now().UnixNano())
			Eventually(fleetMetricChan).Should(BeEmpty())

			fclock.WaitForNWatchersAndIncrement(testSaveInterval, 2)
			Eventually(logger.Buffer).Should(Say("save-metrics-in-bulk"))
		})
	})

	Describe("QueryMetrics", func() {
		var baseTime int64

		BeforeEach(func() {
			baseTime = fclock.Now().UnixNano()
			fleetMetricChan <- metric(50, baseTime)
			fleetMetricChan <- metric(60, baseTime+int64(30*time.Second))
			fleetMetricChan <- metric(70, baseTime+int64(60*time.Second))
			Eventually(fleetMetricChan).Should(BeEmpty())
		})

		It("serves covered windows from the cache in ascending order", func() {
			var result []*models.FleetMetric
			Eventually(func() ([]*models.FleetMetric, error) {
				var err error
				result, err = capacityObserver.QueryMetrics(testFleetId, models.MetricKindCPU,
					baseTime, baseTime+int64(60*time.Second), db.ASC)
				return result, err
			}).Should(HaveLen(3))

			Expect(result[0].Value).To(Equal(50.0))
			Expect(result[2].Value).To(Equal(70.0))
			Expect(metricDB.RetrieveMetricsCallCount()).To(BeZero())
		})

		It("reverses cached results for descending queries", func() {
			var result []*models.FleetMetric
			Eventually(func() ([]*models.FleetMetric, error) {
				var err error
				result, err = capacityObserver.QueryMetrics(testFleetId, models.MetricKindCPU,
					baseTime, baseTime+int64(60*time.Second), db.DESC)
				return result, err
			}).Should(HaveLen(3))

			Expect(result[0].Value).To(Equal(70.0))
			Expect(result[2].Value).To(Equal(50.0))
		})

		It("queries up to now when the end of the window is open", func() {
			fclock.WaitForNWatchersAndIncrement(2*time.Minute, 2)

			var result []*models.FleetMetric
			Eventually(func() ([]*models.FleetMetric, error) {
				var err error
				result, err = capacityObserver.QueryMetrics(testFleetId, models.MetricKindCPU,
					baseTime, -1, db.ASC)
				return result, err
			}).Should(HaveLen(3))
		})

		It("falls back to the database when the cache does not cover the window", func() {
			dbMetrics := []*models.FleetMetric{metric(40, baseTime - int64(time.Minute))}
			metricDB.RetrieveMetricsReturns(dbMetrics, nil)

			Eventually(func() int {
				_, err := capacityObserver.QueryMetrics(testFleetId, models.MetricKindCPU,
					baseTime-int64(time.Minute), baseTime, db.ASC)
				Expect(err).NotTo(HaveOccurred())
				return metricDB.RetrieveMetricsCallCount()
			}).Should(BeNumerically(">=", 1))

			fleetId, metricKind, start, end, order := metricDB.RetrieveMetricsArgsForCall(0)
			Expect(fleetId).To(Equal(testFleetId))
			Expect(metricKind).To(Equal(models.MetricKindCPU))
			Expect(start).To(Equal(baseTime - int64(time.Minute)))
			Expect(end).To(Equal(baseTime))
			Expect(order).To(Equal(db.ASC))
		})

		It("falls back to the database for fleets it has never cached", func() {
			metricDB.RetrieveMetricsReturns([]*models.FleetMetric{}, nil)

			_, err := capacityObserver.QueryMetrics("fleet-unknown", models.MetricKindCPU, 0, -1, db.ASC)
			Expect(err).NotTo(HaveOccurred())
			Expect(metricDB.RetrieveMetricsCallCount()).To(Equal(1))
		})
	})
})
