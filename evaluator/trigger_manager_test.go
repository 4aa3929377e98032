package evaluator_test

import (
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/fleetscaler/fleetscaler/evaluator"
	"github.com/fleetscaler/fleetscaler/models"
)

var _ = Describe("TriggerManager", func() {
	const testFleetId = "fleet-a"

	var (
		logger      *lagertest.TestLogger
		fclock      *fakeclock.FakeClock
		triggerChan chan []*models.Trigger
		manager     *TriggerManager
		policies    map[string]*models.FleetPolicy
	)

	getPolicies := func() map[string]*models.FleetPolicy {
		return policies
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("trigger-manager-test")
		fclock = fakeclock.NewFakeClock(time.Now())
		triggerChan = make(chan []*models.Trigger, 10)
		policies = map[string]*models.FleetPolicy{
			testFleetId: {
				FleetID: testFleetId,
				GUID:    "guid-1",
				Policy: &models.ScalingPolicy{
					MetricKind:            models.MetricKindCPU,
					HighThreshold:         75,
					StepSize:              2,
					CoolDownSeconds:       300,
					BreachDurationSeconds: 120,
				},
			},
		}
		manager = NewTriggerManager(logger, time.Minute, fclock, triggerChan, getPolicies, 3)
	})

	Describe("the evaluate tick", func() {
		BeforeEach(func() {
			manager.Start()
		})

		AfterEach(func() {
			manager.Stop()
		})

		It("emits an up rule and a down rule per policied fleet", func() {
			fclock.WaitForWatcherAndIncrement(time.Minute)

			var triggers []*models.Trigger
			Eventually(triggerChan).Should(Receive(&triggers))
			Expect(triggers).To(HaveLen(2))

			Expect(triggers[0].Operator).To(Equal(">"))
			Expect(triggers[0].Threshold).To(Equal(75.0))
			Expect(triggers[0].Adjustment).To(Equal(2))

			Expect(triggers[1].Operator).To(Equal("<"))
			Expect(triggers[1].Adjustment).To(Equal(-2))
		})

		It("defaults the low threshold to half the high threshold", func() {
			fclock.WaitForWatcherAndIncrement(time.Minute)

			var triggers []*models.Trigger
			Eventually(triggerChan).Should(Receive(&triggers))
			Expect(triggers[1].Threshold).To(Equal(37.5))
		})

		Context("when the policy sets its own low threshold", func() {
			BeforeEach(func() {
				policies[testFleetId].Policy.LowThreshold = 20
			})

			It("uses the configured value", func() {
				fclock.WaitForWatcherAndIncrement(time.Minute)

				var triggers []*models.Trigger
				Eventually(triggerChan).Should(Receive(&triggers))
				Expect(triggers[1].Threshold).To(Equal(20.0))
			})
		})

		Context("when the fleet is cooling down", func() {
			BeforeEach(func() {
				manager.SetCoolDownExpired(testFleetId, fclock.Now().Add(10*time.Minute).UnixNano())
			})

			It("emits no triggers for it", func() {
				fclock.WaitForWatcherAndIncrement(time.Minute)
				Consistently(triggerChan).ShouldNot(Receive())
			})
		})

		Context("when the cooldown has expired", func() {
			BeforeEach(func() {
				manager.SetCoolDownExpired(testFleetId, fclock.Now().Add(30*time.Second).UnixNano())
			})

			It("resumes emitting triggers", func() {
				fclock.WaitForWatcherAndIncrement(time.Minute)
				Eventually(triggerChan).Should(Receive())
			})
		})
	})

	Describe("GetBreaker", func() {
		It("returns one breaker per fleet", func() {
			b1 := manager.GetBreaker(testFleetId)
			b2 := manager.GetBreaker(testFleetId)
			other := manager.GetBreaker("fleet-b")
			Expect(b1).NotTo(BeNil())
			Expect(b1).To(BeIdenticalTo(b2))
			Expect(other).NotTo(BeIdenticalTo(b1))
		})
	})
})
