package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"code.cloudfoundry.org/lager/v3"

	"github.com/fleetscaler/fleetscaler/actuator"
	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/helpers/handlers"
	"github.com/fleetscaler/fleetscaler/models"
)

type ScalingHandler struct {
	logger    lager.Logger
	historyDB db.ScalingHistoryDB
	actuator  actuator.Actuator
}

func NewScalingHandler(logger lager.Logger, historyDB db.ScalingHistoryDB, act actuator.Actuator) *ScalingHandler {
	return &ScalingHandler{
		logger:    logger.Session("scaling-handler"),
		historyDB: historyDB,
		actuator:  act,
	}
}

func (h *ScalingHandler) Scale(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	fleetId := vars["fleetid"]
	logger := h.logger.Session("scale", lager.Data{"fleetId": fleetId})

	trigger := &models.Trigger{}
	err := json.NewDecoder(r.Body).Decode(trigger)
	if err != nil {
		logger.Error("failed-to-decode", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect trigger in request body"})
		return
	}
	trigger.FleetID = fleetId

	logger.Debug("handling", lager.Data{"trigger": trigger})

	result, err := h.actuator.Scale(fleetId, trigger)
	if err != nil {
		logger.Error("failed-to-scale", err, lager.Data{"trigger": trigger})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error taking scaling action"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *ScalingHandler) Resize(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	fleetId := vars["fleetid"]
	logger := h.logger.Session("resize", lager.Data{"fleetId": fleetId})

	request := struct {
		Target *int `json:"target"`
	}{}
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil || request.Target == nil {
		logger.Error("failed-to-decode", err)
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "Bad-Request",
			Message: "Incorrect resize target in request body"})
		return
	}

	result, err := h.actuator.Resize(fleetId, *request.Target)
	if err != nil {
		logger.Error("failed-to-resize", err, lager.Data{"target": *request.Target})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error taking resize action"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *ScalingHandler) GetScalingHistories(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	fleetId := vars["fleetid"]
	logger := h.logger.Session("get-scaling-histories", lager.Data{"fleetId": fleetId})

	start, end, order, errResponse := parseRangeParams(r)
	if errResponse != nil {
		logger.Error("failed-to-parse-query-params", nil, lager.Data{"query": r.URL.RawQuery})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, *errResponse)
		return
	}

	histories, err := h.historyDB.RetrieveScalingHistories(fleetId, start, end, order)
	if err != nil {
		logger.Error("failed-to-retrieve-histories", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error getting scaling histories from database"})
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, histories)
}

func parseRangeParams(r *http.Request) (int64, int64, db.OrderType, *models.ErrorResponse) {
	start := int64(0)
	end := int64(-1)
	order := db.DESC

	if param := r.URL.Query().Get("start"); param != "" {
		parsed, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			return 0, 0, order, &models.ErrorResponse{Code: "Bad-Request", Message: "Error parsing start time"}
		}
		start = parsed
	}
	if param := r.URL.Query().Get("end"); param != "" {
		parsed, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			return 0, 0, order, &models.ErrorResponse{Code: "Bad-Request", Message: "Error parsing end time"}
		}
		end = parsed
	}
	switch r.URL.Query().Get("order") {
	case "", db.DESCSTR:
	case db.ASCSTR:
		order = db.ASC
	default:
		return 0, 0, order, &models.ErrorResponse{Code: "Bad-Request", Message: "Incorrect order parameter in query string"}
	}

	return start, end, order, nil
}
