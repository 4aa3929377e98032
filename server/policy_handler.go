package server

import (
	"io"
	"net/http"

	"code.cloudfoundry.org/lager/v3"

	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/helpers"
	"github.com/fleetscaler/fleetscaler/helpers/handlers"
	"github.com/fleetscaler/fleetscaler/models"
	"github.com/fleetscaler/fleetscaler/policyvalidator"
)

type PolicyHandler struct {
	logger          lager.Logger
	policyDB        db.PolicyDB
	bindingDB       db.BindingDB
	policyValidator *policyvalidator.PolicyValidator
}

func NewPolicyHandler(logger lager.Logger, policyDB db.PolicyDB, bindingDB db.BindingDB) *PolicyHandler {
	return &PolicyHandler{
		logger:          logger.Session("policy-handler"),
		policyDB:        policyDB,
		bindingDB:       bindingDB,
		policyValidator: policyvalidator.NewPolicyValidator(),
	}
}

func (h *PolicyHandler) SetPolicy(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	fleetId := vars["fleetid"]
	logger := h.logger.Session("set-policy", lager.Data{"fleetId": fleetId})

	policyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("failed-to-read-request-body", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Failed to read request body"})
		return
	}

	policy, validationErrs := h.policyValidator.ValidatePolicy(policyBytes)
	if validationErrs != nil {
		logger.Info("failed-to-validate-policy", lager.Data{"errors": validationErrs})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, validationErrs)
		return
	}

	policyGuid, err := helpers.GenerateGUID()
	if err != nil {
		logger.Error("failed-to-generate-policy-guid", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error generating policy guid"})
		return
	}

	err = h.policyDB.SaveFleetPolicy(fleetId, policy, policyGuid)
	if err != nil {
		logger.Error("failed-to-save-policy", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error saving policy"})
		return
	}

	if policy.Binding != nil {
		policy.Binding.FleetID = fleetId
		err = h.bindingDB.SaveBinding(policy.Binding)
	} else {
		err = h.bindingDB.DeleteBinding(fleetId)
	}
	if err != nil {
		logger.Error("failed-to-save-capacity-binding", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error saving capacity binding"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(policyBytes)
	if err != nil {
		logger.Error("failed-to-write-response-body", err)
	}
}

func (h *PolicyHandler) GetPolicy(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	fleetId := vars["fleetid"]
	logger := h.logger.Session("get-policy", lager.Data{"fleetId": fleetId})

	policy, err := h.policyDB.GetFleetPolicy(fleetId)
	if err != nil {
		logger.Error("failed-to-retrieve-policy", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error retrieving scaling policy"})
		return
	}
	if policy == nil {
		handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "Not-Found",
			Message: "Policy not found"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, policy)
}

func (h *PolicyHandler) DeletePolicy(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	fleetId := vars["fleetid"]
	logger := h.logger.Session("delete-policy", lager.Data{"fleetId": fleetId})

	err := h.policyDB.DeleteFleetPolicy(fleetId)
	if err != nil {
		logger.Error("failed-to-delete-policy", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error deleting scaling policy"})
		return
	}

	err = h.bindingDB.DeleteBinding(fleetId)
	if err != nil {
		logger.Error("failed-to-delete-capacity-binding", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error deleting capacity binding"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, nil)
}
