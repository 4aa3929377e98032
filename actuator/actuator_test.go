package actuator_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/fleetscaler/fleetscaler/actuator"
	"github.com/fleetscaler/fleetscaler/fakes"
	"github.com/fleetscaler/fleetscaler/models"
)

var _ = Describe("Actuator", func() {
	const (
		testFleetId         = "fleet-a"
		defaultCoolDownSecs = 300
		lockSize            = 32
	)

	var (
		logger    *lagertest.TestLogger
		fclock    *fakeclock.FakeClock
		fleetAPI  *fakes.FakeFleetAPI
		historyDB *fakes.FakeScalingHistoryDB
		act       Actuator

		fleet models.Fleet
	)

	newState := func() *models.FleetState {
		return &models.FleetState{Fleet: fleet}
	}

	upTrigger := func(step int) *models.Trigger {
		return &models.Trigger{
			FleetID:               testFleetId,
			MetricKind:            models.MetricKindCPU,
			Threshold:             75,
			Operator:              ">",
			Adjustment:            step,
			BreachDurationSeconds: 120,
			CoolDownSeconds:       defaultCoolDownSecs,
		}
	}

	downTrigger := func(step int) *models.Trigger {
		t := upTrigger(-step)
		t.Operator = "<"
		t.Threshold = 37.5
		return t
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("actuator-test")
		fclock = fakeclock.NewFakeClock(time.Now())
		fleetAPI = &fakes.FakeFleetAPI{}
		historyDB = &fakes.FakeScalingHistoryDB{}

		fleet = models.Fleet{
			ID:          testFleetId,
			MinSize:     2,
			MaxSize:     10,
			DesiredSize: 5,
		}
		fleetAPI.DescribeFleetStub = func(string) (*models.FleetState, error) {
			return newState(), nil
		}

		act = New(logger, fleetAPI, historyDB, fclock, defaultCoolDownSecs, lockSize)
	})

	Describe("Scale", func() {
		It("applies the adjustment and resizes the fleet", func() {
			result, err := act.Scale(testFleetId, upTrigger(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(models.ScalingStatusSucceeded))
			Expect(result.Adjustment).To(Equal(2))

			Expect(fleetAPI.ResizeFleetCallCount()).To(Equal(1))
			fleetId, newSize := fleetAPI.ResizeFleetArgsForCall(0)
			Expect(fleetId).To(Equal(testFleetId))
			Expect(newSize).To(Equal(7))
		})

		It("records a succeeded history entry", func() {
			_, err := act.Scale(testFleetId, upTrigger(2))
			Expect(err).NotTo(HaveOccurred())

			Expect(historyDB.SaveScalingHistoryCallCount()).To(Equal(1))
			history := historyDB.SaveScalingHistoryArgsForCall(0)
			Expect(history.ScalingType).To(Equal(models.ScalingTypeDynamic))
			Expect(history.Status).To(Equal(models.ScalingStatusSucceeded))
			Expect(history.OldSize).To(Equal(5))
			Expect(history.NewSize).To(Equal(7))
		})

		Context("when the adjustment would exceed the maximum size", func() {
			It("clamps to the maximum", func() {
				result, err := act.Scale(testFleetId, upTrigger(20))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Adjustment).To(Equal(5))

				_, newSize := fleetAPI.ResizeFleetArgsForCall(0)
				Expect(newSize).To(Equal(10))

				history := historyDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.Message).To(Equal("limited by max size 10"))
			})
		})

		Context("when the adjustment would undercut the minimum size", func() {
			It("clamps to the minimum", func() {
				result, err := act.Scale(testFleetId, downTrigger(20))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Adjustment).To(Equal(-3))

				_, newSize := fleetAPI.ResizeFleetArgsForCall(0)
				Expect(newSize).To(Equal(2))
			})
		})

		Context("when the fleet already sits at the bound", func() {
			BeforeEach(func() {
				fleet.DesiredSize = 10
			})

			It("records an ignored no-op without resizing", func() {
				result, err := act.Scale(testFleetId, upTrigger(2))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(models.ScalingStatusIgnored))

				Expect(fleetAPI.ResizeFleetCallCount()).To(BeZero())
				history := historyDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.Status).To(Equal(models.ScalingStatusIgnored))
				Expect(history.OldSize).To(Equal(10))
				Expect(history.NewSize).To(Equal(10))
			})
		})

		Context("when the trigger carries no adjustment", func() {
			It("is ignored", func() {
				result, err := act.Scale(testFleetId, upTrigger(0))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(models.ScalingStatusIgnored))
				Expect(fleetAPI.ResizeFleetCallCount()).To(BeZero())
			})
		})

		Describe("cooldown", func() {
			It("ignores a second scale-up inside the cooldown period", func() {
				_, err := act.Scale(testFleetId, upTrigger(1))
				Expect(err).NotTo(HaveOccurred())

				fclock.Increment(time.Minute)
				result, err := act.Scale(testFleetId, upTrigger(1))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(models.ScalingStatusIgnored))
				Expect(result.CooldownExpiredAt).To(BeNumerically(">", fclock.Now().UnixNano()))
				Expect(fleetAPI.ResizeFleetCallCount()).To(Equal(1))
			})

			It("cools down per direction, so a scale-down is still allowed", func() {
				_, err := act.Scale(testFleetId, upTrigger(1))
				Expect(err).NotTo(HaveOccurred())

				fclock.Increment(time.Minute)
				result, err := act.Scale(testFleetId, downTrigger(1))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(models.ScalingStatusSucceeded))
				Expect(fleetAPI.ResizeFleetCallCount()).To(Equal(2))
			})

			It("allows scaling again after the cooldown expires", func() {
				_, err := act.Scale(testFleetId, upTrigger(1))
				Expect(err).NotTo(HaveOccurred())

				fclock.Increment(defaultCoolDownSecs*time.Second + time.Second)
				result, err := act.Scale(testFleetId, upTrigger(1))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(models.ScalingStatusSucceeded))
				Expect(fleetAPI.ResizeFleetCallCount()).To(Equal(2))
			})

			It("does not start a cooldown when the resize fails", func() {
				fleetAPI.ResizeFleetReturnsOnCall(0, errors.New("throttled"))

				_, err := act.Scale(testFleetId, upTrigger(1))
				Expect(err).To(HaveOccurred())

				result, err := act.Scale(testFleetId, upTrigger(1))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(models.ScalingStatusSucceeded))
			})
		})

		Context("when describing the fleet fails", func() {
			BeforeEach(func() {
				fleetAPI.DescribeFleetStub = nil
				fleetAPI.DescribeFleetReturns(nil, errors.New("provisioner unreachable"))
			})

			It("surfaces the error and records a failed entry", func() {
				_, err := act.Scale(testFleetId, upTrigger(1))
				Expect(err).To(HaveOccurred())

				history := historyDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.Status).To(Equal(models.ScalingStatusFailed))
				Expect(history.Error).To(ContainSubstring("provisioner unreachable"))
			})
		})

		Context("when the resize fails", func() {
			BeforeEach(func() {
				fleetAPI.ResizeFleetReturns(errors.New("capacity error"))
			})

			It("surfaces the error and records a failed entry", func() {
				_, err := act.Scale(testFleetId, upTrigger(1))
				Expect(err).To(HaveOccurred())

				history := historyDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.Status).To(Equal(models.ScalingStatusFailed))
				Expect(history.Error).To(ContainSubstring("capacity error"))
			})
		})
	})

	Describe("Resize", func() {
		It("resizes to the requested target", func() {
			result, err := act.Resize(testFleetId, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(models.ScalingStatusSucceeded))
			Expect(result.Adjustment).To(Equal(3))

			_, newSize := fleetAPI.ResizeFleetArgsForCall(0)
			Expect(newSize).To(Equal(8))

			history := historyDB.SaveScalingHistoryArgsForCall(0)
			Expect(history.ScalingType).To(Equal(models.ScalingTypeManual))
		})

		It("clamps the target to the fleet bounds", func() {
			_, err := act.Resize(testFleetId, 100)
			Expect(err).NotTo(HaveOccurred())

			_, newSize := fleetAPI.ResizeFleetArgsForCall(0)
			Expect(newSize).To(Equal(10))
		})

		It("ignores a target equal to the current desired size", func() {
			result, err := act.Resize(testFleetId, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(models.ScalingStatusIgnored))
			Expect(fleetAPI.ResizeFleetCallCount()).To(BeZero())
		})

		It("is not blocked by a dynamic-scaling cooldown", func() {
			_, err := act.Scale(testFleetId, upTrigger(1))
			Expect(err).NotTo(HaveOccurred())

			result, err := act.Resize(testFleetId, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(models.ScalingStatusSucceeded))
		})
	})
})
