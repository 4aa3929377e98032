package server

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"

	"github.com/fleetscaler/fleetscaler/cloud"
	"github.com/fleetscaler/fleetscaler/helpers/handlers"
	"github.com/fleetscaler/fleetscaler/models"
	"github.com/fleetscaler/fleetscaler/observer"
)

type FleetHandler struct {
	logger       lager.Logger
	fleetAPI     cloud.FleetAPI
	queryMetrics observer.QueryMetricsFunc
}

func NewFleetHandler(logger lager.Logger, fleetAPI cloud.FleetAPI, queryMetrics observer.QueryMetricsFunc) *FleetHandler {
	return &FleetHandler{
		logger:       logger.Session("fleet-handler"),
		fleetAPI:     fleetAPI,
		queryMetrics: queryMetrics,
	}
}

func (h *FleetHandler) GetFleet(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	fleetId := vars["fleetid"]
	logger := h.logger.Session("get-fleet", lager.Data{"fleetId": fleetId})

	state, err := h.fleetAPI.DescribeFleet(fleetId)
	if err != nil {
		logger.Error("failed-to-describe-fleet", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error describing fleet"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, state)
}

func (h *FleetHandler) GetMetricHistories(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	fleetId := vars["fleetid"]
	metricKind := vars["metrickind"]
	logger := h.logger.Session("get-metric-histories", lager.Data{"fleetId": fleetId, "metricKind": metricKind})

	if metricKind != models.MetricKindCPU && metricKind != models.MetricKindMemory {
		logger.Info("unsupported-metric-kind")
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Unsupported metric kind"})
		return
	}

	start, end, order, errResponse := parseRangeParams(r)
	if errResponse != nil {
		logger.Error("failed-to-parse-query-params", nil, lager.Data{"query": r.URL.RawQuery})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, *errResponse)
		return
	}

	metrics, err := h.queryMetrics(fleetId, metricKind, start, end, order)
	if err != nil {
		logger.Error("failed-to-retrieve-metrics", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error getting metric histories from database"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, metrics)
}
