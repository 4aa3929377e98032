package cloud_test

import (
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	. "github.com/fleetscaler/fleetscaler/cloud"
	"github.com/fleetscaler/fleetscaler/models"
)

var _ = Describe("ProvisionerClient", func() {
	const testFleetId = "fleet-a"

	var (
		logger     *lagertest.TestLogger
		fakeServer *ghttp.Server
		client     *ProvisionerClient
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("provisioner-client-test")
		fakeServer = ghttp.NewServer()
		client = NewProvisionerClient(logger, fakeServer.URL(), &http.Client{Timeout: 5 * time.Second})
	})

	AfterEach(func() {
		fakeServer.Close()
	})

	Describe("DescribeFleet", func() {
		Context("when the provisioner responds", func() {
			BeforeEach(func() {
				fakeServer.AppendHandlers(ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodGet, "/v1/fleets/fleet-a"),
					ghttp.RespondWithJSONEncoded(http.StatusOK, models.FleetState{
						Fleet: models.Fleet{ID: testFleetId, MinSize: 1, MaxSize: 10, DesiredSize: 5},
						Instances: []*models.Instance{
							{ID: "i-1", State: models.InstanceStateHealthy},
						},
					}),
				))
			})

			It("returns the fleet state", func() {
				state, err := client.DescribeFleet(testFleetId)
				Expect(err).NotTo(HaveOccurred())
				Expect(state.Fleet.DesiredSize).To(Equal(5))
				Expect(state.Instances).To(HaveLen(1))
				Expect(state.Instances[0].ID).To(Equal("i-1"))
			})
		})

		Context("when the first attempts fail", func() {
			BeforeEach(func() {
				fakeServer.AppendHandlers(
					ghttp.RespondWith(http.StatusInternalServerError, "boom"),
					ghttp.RespondWithJSONEncoded(http.StatusOK, models.FleetState{
						Fleet: models.Fleet{ID: testFleetId, MinSize: 1, MaxSize: 10, DesiredSize: 5},
					}),
				)
			})

			It("retries and succeeds", func() {
				state, err := client.DescribeFleet(testFleetId)
				Expect(err).NotTo(HaveOccurred())
				Expect(state.Fleet.DesiredSize).To(Equal(5))
				Expect(fakeServer.ReceivedRequests()).To(HaveLen(2))
			})
		})

		Context("when the provisioner keeps failing", func() {
			BeforeEach(func() {
				fakeServer.AppendHandlers(
					ghttp.RespondWith(http.StatusInternalServerError, "boom"),
					ghttp.RespondWith(http.StatusInternalServerError, "boom"),
					ghttp.RespondWith(http.StatusInternalServerError, "boom"),
				)
			})

			It("gives up after the retry budget", func() {
				_, err := client.DescribeFleet(testFleetId)
				Expect(err).To(HaveOccurred())
				Expect(fakeServer.ReceivedRequests()).To(HaveLen(3))
			})
		})
	})

	Describe("ResizeFleet", func() {
		BeforeEach(func() {
			fakeServer.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPut, "/v1/fleets/fleet-a/resize"),
				ghttp.VerifyJSON(`{"target": 7}`),
				ghttp.RespondWith(http.StatusOK, ""),
			))
		})

		It("sends the target", func() {
			Expect(client.ResizeFleet(testFleetId, 7)).To(Succeed())
			Expect(fakeServer.ReceivedRequests()).To(HaveLen(1))
		})

		Context("when the provisioner rejects the resize", func() {
			BeforeEach(func() {
				fakeServer.SetHandler(0, ghttp.RespondWith(http.StatusConflict, "fleet busy"))
			})

			It("returns the failure without retrying", func() {
				err := client.ResizeFleet(testFleetId, 7)
				Expect(err).To(MatchError(ContainSubstring("fleet busy")))
				Expect(fakeServer.ReceivedRequests()).To(HaveLen(1))
			})
		})
	})

	Describe("LaunchInstances", func() {
		BeforeEach(func() {
			fakeServer.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/v1/fleets/fleet-a/instances"),
				ghttp.VerifyJSONRepresenting(struct {
					LaunchSpec models.LaunchSpec `json:"launch_spec"`
					Count      int               `json:"count"`
				}{
					LaunchSpec: models.LaunchSpec{Version: 2, MachineImage: "img-1", InstanceType: "m5.large"},
					Count:      3,
				}),
				ghttp.RespondWith(http.StatusAccepted, ""),
			))
		})

		It("sends the launch spec and count", func() {
			spec := models.LaunchSpec{Version: 2, MachineImage: "img-1", InstanceType: "m5.large"}
			Expect(client.LaunchInstances(testFleetId, spec, 3)).To(Succeed())
		})
	})

	Describe("TerminateInstance", func() {
		BeforeEach(func() {
			fakeServer.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodDelete, "/v1/fleets/fleet-a/instances/i-1"),
				ghttp.RespondWith(http.StatusOK, ""),
			))
		})

		It("terminates the instance", func() {
			Expect(client.TerminateInstance(testFleetId, "i-1")).To(Succeed())
		})
	})

	Describe("ReplaceInstance", func() {
		BeforeEach(func() {
			fakeServer.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/v1/fleets/fleet-a/instances/i-1/replace"),
				ghttp.RespondWith(http.StatusAccepted, ""),
			))
		})

		It("requests the replacement", func() {
			Expect(client.ReplaceInstance(testFleetId, "i-1")).To(Succeed())
		})
	})

	Describe("SetCapacity", func() {
		BeforeEach(func() {
			fakeServer.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPut, "/v1/fleets/fleet-a/capacity"),
				ghttp.VerifyJSON(`{"target": 12}`),
				ghttp.RespondWith(http.StatusOK, ""),
			))
		})

		It("publishes the capacity target", func() {
			Expect(client.SetCapacity(testFleetId, 12)).To(Succeed())
		})
	})

	Describe("GetMetric", func() {
		BeforeEach(func() {
			fakeServer.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/v1/fleets/fleet-a/metrics/cpu", "end=200&start=100"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, []*models.FleetMetric{
					{FleetID: testFleetId, MetricKind: models.MetricKindCPU, Value: 75, Unit: "percent", Timestamp: 150},
				}),
			))
		})

		It("returns the samples", func() {
			metrics, err := client.GetMetric(testFleetId, models.MetricKindCPU, 100, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics).To(HaveLen(1))
			Expect(metrics[0].Value).To(Equal(75.0))
		})
	})
})
