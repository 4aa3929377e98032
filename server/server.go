package server

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"

	"net/http"

	"github.com/fleetscaler/fleetscaler/actuator"
	"github.com/fleetscaler/fleetscaler/cloud"
	"github.com/fleetscaler/fleetscaler/config"
	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/healthendpoint"
	"github.com/fleetscaler/fleetscaler/observer"
	"github.com/fleetscaler/fleetscaler/routes"
)

type VarsFunc func(w http.ResponseWriter, r *http.Request, vars map[string]string)

func (vh VarsFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vh(w, r, vars)
}

func NewServer(logger lager.Logger, conf *config.Config, act actuator.Actuator,
	policyDB db.PolicyDB, bindingDB db.BindingDB, historyDB db.ScalingHistoryDB,
	queryMetrics observer.QueryMetricsFunc, fleetAPI cloud.FleetAPI,
	httpStatusCollector healthendpoint.HTTPStatusCollector) (ifrit.Runner, error) {
	scalingHandler := NewScalingHandler(logger, historyDB, act)
	policyHandler := NewPolicyHandler(logger, policyDB, bindingDB)
	fleetHandler := NewFleetHandler(logger, fleetAPI, queryMetrics)

	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)
	r := routes.FleetScalerRoutes()
	r.Use(httpStatusCollectMiddleware.Collect)
	r.Get(routes.ScaleRouteName).Handler(VarsFunc(scalingHandler.Scale))
	r.Get(routes.ResizeRouteName).Handler(VarsFunc(scalingHandler.Resize))
	r.Get(routes.GetScalingHistoriesRouteName).Handler(VarsFunc(scalingHandler.GetScalingHistories))
	r.Get(routes.SetPolicyRouteName).Handler(VarsFunc(policyHandler.SetPolicy))
	r.Get(routes.GetPolicyRouteName).Handler(VarsFunc(policyHandler.GetPolicy))
	r.Get(routes.DeletePolicyRouteName).Handler(VarsFunc(policyHandler.DeletePolicy))
	r.Get(routes.GetMetricHistoriesRouteName).Handler(VarsFunc(fleetHandler.GetMetricHistories))
	r.Get(routes.GetFleetRouteName).Handler(VarsFunc(fleetHandler.GetFleet))

	addr := fmt.Sprintf("0.0.0.0:%d", conf.Server.Port)
	logger.Info("new-http-server", lager.Data{"serverConfig": conf.Server})

	return http_server.New(addr, r), nil
}
