package fleetmanager_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/fleetscaler/fleetscaler/fakes"
	. "github.com/fleetscaler/fleetscaler/fleetmanager"
	"github.com/fleetscaler/fleetscaler/models"
)

var _ = Describe("FleetManager", func() {
	const (
		testFleetId = "fleet-a"
		retryLimit  = 3
	)

	var (
		logger          *lagertest.TestLogger
		fclock          *fakeclock.FakeClock
		fleetAPI        *fakes.FakeFleetAPI
		replaceFailures *prometheus.CounterVec
		manager         *FleetManager

		state *models.FleetState
	)

	getPolicies := func() map[string]*models.FleetPolicy {
		return map[string]*models.FleetPolicy{testFleetId: {FleetID: testFleetId}}
	}

	launchedAgo := func(d time.Duration) int64 {
		return fclock.Now().Add(-d).UnixNano()
	}

	counterValue := func() float64 {
		m := &dto.Metric{}
		c, err := replaceFailures.GetMetricWithLabelValues(testFleetId)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Write(m)).To(Succeed())
		return m.GetCounter().GetValue()
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("fleet-manager-test")
		fclock = fakeclock.NewFakeClock(time.Now())
		fleetAPI = &fakes.FakeFleetAPI{}
		replaceFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "replace_failures_total",
		}, []string{"fleet_id"})

		state = &models.FleetState{
			Fleet: models.Fleet{
				ID:          testFleetId,
				MinSize:     1,
				MaxSize:     10,
				DesiredSize: 3,
				LaunchSpec:  models.LaunchSpec{Version: 2},
				HealthCheck: models.HealthCheckPolicy{
					GracePeriodSeconds:   300,
					MinHealthyPercentage: 50,
					ReplaceRetryLimit:    retryLimit,
				},
			},
		}
		fleetAPI.DescribeFleetStub = func(string) (*models.FleetState, error) {
			return state, nil
		}

		manager = New(logger, fclock, fleetAPI, getPolicies, time.Minute, retryLimit, replaceFailures)
	})

	healthy := func(id string, version int, age time.Duration) *models.Instance {
		return &models.Instance{ID: id, FleetID: testFleetId, LaunchSpecVersion: version,
			LaunchedAt: launchedAgo(age), State: models.InstanceStateHealthy}
	}

	Describe("replacing unhealthy instances", func() {
		BeforeEach(func() {
			state.Instances = []*models.Instance{
				healthy("i-1", 2, time.Hour),
				healthy("i-2", 2, time.Hour),
				{ID: "i-3", FleetID: testFleetId, LaunchSpecVersion: 2,
					LaunchedAt: launchedAgo(time.Hour), State: models.InstanceStateUnhealthy},
			}
		})

		It("replaces an instance unhealthy past the grace period", func() {
			manager.ReconcileFleet(testFleetId)

			Expect(fleetAPI.ReplaceInstanceCallCount()).To(Equal(1))
			fleetId, instanceId := fleetAPI.ReplaceInstanceArgsForCall(0)
			Expect(fleetId).To(Equal(testFleetId))
			Expect(instanceId).To(Equal("i-3"))
		})

		It("leaves instances alone inside the grace period", func() {
			state.Instances[2].LaunchedAt = launchedAgo(time.Minute)
			manager.ReconcileFleet(testFleetId)
			Expect(fleetAPI.ReplaceInstanceCallCount()).To(BeZero())
		})

		It("treats pending instances past the grace period as stuck", func() {
			state.Instances[2].State = models.InstanceStatePending
			manager.ReconcileFleet(testFleetId)
			Expect(fleetAPI.ReplaceInstanceCallCount()).To(Equal(1))
		})

		Context("when replacement keeps failing", func() {
			BeforeEach(func() {
				fleetAPI.ReplaceInstanceReturns(errors.New("replace rejected"))
			})

			It("backs off between attempts", func() {
				manager.ReconcileFleet(testFleetId)
				manager.ReconcileFleet(testFleetId)
				Expect(fleetAPI.ReplaceInstanceCallCount()).To(Equal(1))

				fclock.Increment(time.Hour)
				manager.ReconcileFleet(testFleetId)
				Expect(fleetAPI.ReplaceInstanceCallCount()).To(Equal(2))
			})

			It("stops after the retry budget and raises the alert counter", func() {
				for i := 0; i < retryLimit+2; i++ {
					manager.ReconcileFleet(testFleetId)
					fclock.Increment(time.Hour)
				}

				Expect(fleetAPI.ReplaceInstanceCallCount()).To(Equal(retryLimit))
				Expect(counterValue()).To(Equal(1.0))
				Eventually(logger.Buffer).Should(Say("instance-replacement-retry-budget-exhausted"))
			})

			It("raises the alert only once per instance", func() {
				for i := 0; i < retryLimit+4; i++ {
					manager.ReconcileFleet(testFleetId)
					fclock.Increment(time.Hour)
				}
				Expect(counterValue()).To(Equal(1.0))
			})
		})
	})

	Describe("rolling replacement of outdated instances", func() {
		BeforeEach(func() {
			state.Fleet.DesiredSize = 4
			state.Instances = []*models.Instance{
				healthy("i-1", 1, 4*time.Hour),
				healthy("i-2", 1, 3*time.Hour),
				healthy("i-3", 2, 2*time.Hour),
				healthy("i-4", 2, time.Hour),
			}
		})

		It("replaces outdated instances within the healthy budget", func() {
			// 4 healthy, min healthy is ceil(50% of 4) = 2, budget 2
			manager.ReconcileFleet(testFleetId)

			Expect(fleetAPI.ReplaceInstanceCallCount()).To(Equal(2))
			_, first := fleetAPI.ReplaceInstanceArgsForCall(0)
			_, second := fleetAPI.ReplaceInstanceArgsForCall(1)
			Expect(first).To(Equal("i-1"))
			Expect(second).To(Equal("i-2"))
		})

		It("prefers the oldest instance on the oldest spec version", func() {
			state.Fleet.HealthCheck.MinHealthyPercentage = 75
			// budget is 1, so only the oldest goes
			manager.ReconcileFleet(testFleetId)

			Expect(fleetAPI.ReplaceInstanceCallCount()).To(Equal(1))
			_, instanceId := fleetAPI.ReplaceInstanceArgsForCall(0)
			Expect(instanceId).To(Equal("i-1"))
		})

		It("defers the roll when the healthy count is already at the floor", func() {
			state.Fleet.HealthCheck.MinHealthyPercentage = 100
			manager.ReconcileFleet(testFleetId)

			Expect(fleetAPI.ReplaceInstanceCallCount()).To(BeZero())
			Eventually(logger.Buffer).Should(Say("rolling-replacement-deferred"))
		})
	})

	Describe("reconciling the instance count", func() {
		It("launches the missing instances", func() {
			state.Instances = []*models.Instance{healthy("i-1", 2, time.Hour)}
			manager.ReconcileFleet(testFleetId)

			Expect(fleetAPI.LaunchInstancesCallCount()).To(Equal(1))
			fleetId, spec, count := fleetAPI.LaunchInstancesArgsForCall(0)
			Expect(fleetId).To(Equal(testFleetId))
			Expect(spec.Version).To(Equal(2))
			Expect(count).To(Equal(2))
		})

		It("terminates surplus instances, oldest spec version first", func() {
			state.Fleet.DesiredSize = 2
			state.Instances = []*models.Instance{
				healthy("i-1", 2, 3*time.Hour),
				healthy("i-2", 1, time.Hour),
				healthy("i-3", 2, 2*time.Hour),
			}
			manager.ReconcileFleet(testFleetId)

			Expect(fleetAPI.TerminateInstanceCallCount()).To(Equal(1))
			_, instanceId := fleetAPI.TerminateInstanceArgsForCall(0)
			Expect(instanceId).To(Equal("i-2"))
		})

		It("does not count terminating instances against the desired size", func() {
			state.Instances = []*models.Instance{
				healthy("i-1", 2, time.Hour),
				healthy("i-2", 2, time.Hour),
				healthy("i-3", 2, time.Hour),
				{ID: "i-4", FleetID: testFleetId, LaunchSpecVersion: 2,
					LaunchedAt: launchedAgo(time.Hour), State: models.InstanceStateTerminating},
			}
			manager.ReconcileFleet(testFleetId)

			Expect(fleetAPI.LaunchInstancesCallCount()).To(BeZero())
			Expect(fleetAPI.TerminateInstanceCallCount()).To(BeZero())
		})
	})

	Describe("guard rails", func() {
		It("skips a fleet whose reported state violates the size invariant", func() {
			state.Fleet.DesiredSize = 20
			manager.ReconcileFleet(testFleetId)

			Expect(fleetAPI.LaunchInstancesCallCount()).To(BeZero())
			Eventually(logger.Buffer).Should(Say("fleet-invariant-violated"))
		})

		It("skips the pass when the fleet cannot be described", func() {
			fleetAPI.DescribeFleetStub = nil
			fleetAPI.DescribeFleetReturns(nil, errors.New("unreachable"))
			manager.ReconcileFleet(testFleetId)

			Expect(fleetAPI.LaunchInstancesCallCount()).To(BeZero())
			Expect(fleetAPI.ReplaceInstanceCallCount()).To(BeZero())
		})
	})

	Describe("the reconcile loop", func() {
		BeforeEach(func() {
			state.Instances = []*models.Instance{healthy("i-1", 2, time.Hour)}
			manager.Start()
		})

		AfterEach(func() {
			manager.Stop()
		})

		It("reconciles every policied fleet on the interval", func() {
			fclock.WaitForWatcherAndIncrement(time.Minute)
			Eventually(fleetAPI.DescribeFleetCallCount).Should(Equal(1))
			Eventually(fleetAPI.LaunchInstancesCallCount).Should(Equal(1))
		})
	})
})
