package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fleetscaler/fleetscaler/fakes"
	"github.com/fleetscaler/fleetscaler/models"
	. "github.com/fleetscaler/fleetscaler/server"
)

var _ = Describe("PolicyHandler", func() {
	const testFleetId = "fleet-a"

	const validPolicy = `{
		"metric_kind": "cpu",
		"high_threshold": 80,
		"low_threshold": 30,
		"step_size": 2,
		"cooldown_seconds": 300
	}`

	const validPolicyWithBinding = `{
		"metric_kind": "cpu",
		"high_threshold": 80,
		"step_size": 2,
		"cooldown_seconds": 300,
		"capacity_binding": {
			"target_utilization_percent": 60,
			"min_step": 1,
			"max_step": 5
		}
	}`

	var (
		logger    *lagertest.TestLogger
		policyDB  *fakes.FakePolicyDB
		bindingDB *fakes.FakeBindingDB
		handler   *PolicyHandler
		resp      *httptest.ResponseRecorder
		req       *http.Request
		vars      map[string]string
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("policy-handler-test")
		policyDB = &fakes.FakePolicyDB{}
		bindingDB = &fakes.FakeBindingDB{}
		handler = NewPolicyHandler(logger, policyDB, bindingDB)
		resp = httptest.NewRecorder()
		vars = map[string]string{"fleetid": testFleetId}
	})

	Describe("SetPolicy", func() {
		JustBeforeEach(func() {
			handler.SetPolicy(resp, req, vars)
		})

		Context("with a valid policy", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPut, "/v1/fleets/fleet-a/policy", bytes.NewReader([]byte(validPolicy)))
			})

			It("saves the policy and echoes it back", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(policyDB.SaveFleetPolicyCallCount()).To(Equal(1))

				fleetId, policy, guid := policyDB.SaveFleetPolicyArgsForCall(0)
				Expect(fleetId).To(Equal(testFleetId))
				Expect(policy.HighThreshold).To(Equal(80.0))
				Expect(guid).NotTo(BeEmpty())

				Expect(resp.Body.String()).To(MatchJSON(validPolicy))
			})

			It("deletes any stale capacity binding", func() {
				Expect(bindingDB.DeleteBindingCallCount()).To(Equal(1))
				Expect(bindingDB.DeleteBindingArgsForCall(0)).To(Equal(testFleetId))
				Expect(bindingDB.SaveBindingCallCount()).To(BeZero())
			})
		})

		Context("with a policy carrying a capacity binding", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPut, "/v1/fleets/fleet-a/policy", bytes.NewReader([]byte(validPolicyWithBinding)))
			})

			It("saves the binding against the fleet", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(bindingDB.SaveBindingCallCount()).To(Equal(1))

				binding := bindingDB.SaveBindingArgsForCall(0)
				Expect(binding.FleetID).To(Equal(testFleetId))
				Expect(binding.TargetUtilizationPercent).To(Equal(60))
				Expect(bindingDB.DeleteBindingCallCount()).To(BeZero())
			})
		})

		Context("with an invalid policy", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPut, "/v1/fleets/fleet-a/policy", bytes.NewReader([]byte(`{"metric_kind": "disk"}`)))
			})

			It("responds 400 without touching the database", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(policyDB.SaveFleetPolicyCallCount()).To(BeZero())
			})
		})

		Context("when saving the policy fails", func() {
			BeforeEach(func() {
				policyDB.SaveFleetPolicyReturns(errors.New("db down"))
				req = httptest.NewRequest(http.MethodPut, "/v1/fleets/fleet-a/policy", bytes.NewReader([]byte(validPolicy)))
			})

			It("responds 500", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		Context("when saving the binding fails", func() {
			BeforeEach(func() {
				bindingDB.SaveBindingReturns(errors.New("db down"))
				req = httptest.NewRequest(http.MethodPut, "/v1/fleets/fleet-a/policy", bytes.NewReader([]byte(validPolicyWithBinding)))
			})

			It("responds 500", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("GetPolicy", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/v1/fleets/fleet-a/policy", nil)
			handler.GetPolicy(resp, req, vars)
		})

		Context("when the policy exists", func() {
			BeforeEach(func() {
				policyDB.GetFleetPolicyReturns(&models.ScalingPolicy{
					MetricKind:      models.MetricKindCPU,
					HighThreshold:   80,
					StepSize:        2,
					CoolDownSeconds: 300,
				}, nil)
			})

			It("returns it", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(policyDB.GetFleetPolicyArgsForCall(0)).To(Equal(testFleetId))

				policy := &models.ScalingPolicy{}
				Expect(json.Unmarshal(resp.Body.Bytes(), policy)).To(Succeed())
				Expect(policy.HighThreshold).To(Equal(80.0))
			})
		})

		Context("when the fleet has no policy", func() {
			It("responds 404", func() {
				Expect(resp.Code).To(Equal(http.StatusNotFound))
				errResp := &models.ErrorResponse{}
				Expect(json.Unmarshal(resp.Body.Bytes(), errResp)).To(Succeed())
				Expect(errResp.Message).To(Equal("Policy not found"))
			})
		})

		Context("when the database fails", func() {
			BeforeEach(func() {
				policyDB.GetFleetPolicyReturns(nil, errors.New("db down"))
			})

			It("responds 500", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("DeletePolicy", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodDelete, "/v1/fleets/fleet-a/policy", nil)
			handler.DeletePolicy(resp, req, vars)
		})

		It("deletes the policy and its binding", func() {
			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(policyDB.DeleteFleetPolicyArgsForCall(0)).To(Equal(testFleetId))
			Expect(bindingDB.DeleteBindingArgsForCall(0)).To(Equal(testFleetId))
		})

		Context("when deleting the policy fails", func() {
			BeforeEach(func() {
				policyDB.DeleteFleetPolicyReturns(errors.New("db down"))
			})

			It("responds 500 and leaves the binding alone", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(bindingDB.DeleteBindingCallCount()).To(BeZero())
			})
		})
	})
})
