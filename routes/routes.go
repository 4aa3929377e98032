package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	ScalePath      = "/v1/fleets/{fleetid}/scale"
	ScaleRouteName = "Scale"

	ResizePath      = "/v1/fleets/{fleetid}/resize"
	ResizeRouteName = "Resize"

	ScalingHistoriesPath         = "/v1/fleets/{fleetid}/scaling_histories"
	GetScalingHistoriesRouteName = "GetScalingHistories"

	PolicyPath            = "/v1/fleets/{fleetid}/policy"
	SetPolicyRouteName    = "SetPolicy"
	GetPolicyRouteName    = "GetPolicy"
	DeletePolicyRouteName = "DeletePolicy"

	FleetPath         = "/v1/fleets/{fleetid}"
	GetFleetRouteName = "GetFleet"

	MetricHistoriesPath         = "/v1/fleets/{fleetid}/metric_histories/{metrickind}"
	GetMetricHistoriesRouteName = "GetMetricHistories"
)

// Provisioner-side paths, served by the external fleet orchestrator and
// consumed by cloud.ProvisionerClient.
const (
	ProvisionerFleetPath            = "/v1/fleets/{fleetid}"
	ProvisionerFleetRouteName       = "DescribeFleet"
	ProvisionerResizePath           = "/v1/fleets/{fleetid}/resize"
	ProvisionerResizeRouteName      = "ResizeFleet"
	ProvisionerLaunchPath           = "/v1/fleets/{fleetid}/instances"
	ProvisionerLaunchRouteName      = "LaunchInstances"
	ProvisionerInstancePath         = "/v1/fleets/{fleetid}/instances/{instanceid}"
	ProvisionerTerminateRouteName   = "TerminateInstance"
	ProvisionerReplacePath          = "/v1/fleets/{fleetid}/instances/{instanceid}/replace"
	ProvisionerReplaceRouteName     = "ReplaceInstance"
	ProvisionerMetricPath           = "/v1/fleets/{fleetid}/metrics/{metrickind}"
	ProvisionerGetMetricRouteName   = "GetMetric"
	ProvisionerCapacityPath         = "/v1/fleets/{fleetid}/capacity"
	ProvisionerSetCapacityRouteName = "SetCapacity"
)

type fleetScalerRoute struct {
	apiRoutes         *mux.Router
	provisionerRoutes *mux.Router
}

var routeInstance = newRouters()

func newRouters() *fleetScalerRoute {
	instance := &fleetScalerRoute{
		apiRoutes:         mux.NewRouter(),
		provisionerRoutes: mux.NewRouter(),
	}

	instance.apiRoutes.Path(ScalePath).Methods(http.MethodPost).Name(ScaleRouteName)
	instance.apiRoutes.Path(ResizePath).Methods(http.MethodPut).Name(ResizeRouteName)
	instance.apiRoutes.Path(ScalingHistoriesPath).Methods(http.MethodGet).Name(GetScalingHistoriesRouteName)
	instance.apiRoutes.Path(PolicyPath).Methods(http.MethodPut).Name(SetPolicyRouteName)
	instance.apiRoutes.Path(PolicyPath).Methods(http.MethodGet).Name(GetPolicyRouteName)
	instance.apiRoutes.Path(PolicyPath).Methods(http.MethodDelete).Name(DeletePolicyRouteName)
	instance.apiRoutes.Path(MetricHistoriesPath).Methods(http.MethodGet).Name(GetMetricHistoriesRouteName)
	instance.apiRoutes.Path(FleetPath).Methods(http.MethodGet).Name(GetFleetRouteName)

	instance.provisionerRoutes.Path(ProvisionerResizePath).Methods(http.MethodPut).Name(ProvisionerResizeRouteName)
	instance.provisionerRoutes.Path(ProvisionerLaunchPath).Methods(http.MethodPost).Name(ProvisionerLaunchRouteName)
	instance.provisionerRoutes.Path(ProvisionerReplacePath).Methods(http.MethodPost).Name(ProvisionerReplaceRouteName)
	instance.provisionerRoutes.Path(ProvisionerInstancePath).Methods(http.MethodDelete).Name(ProvisionerTerminateRouteName)
	instance.provisionerRoutes.Path(ProvisionerMetricPath).Methods(http.MethodGet).Name(ProvisionerGetMetricRouteName)
	instance.provisionerRoutes.Path(ProvisionerCapacityPath).Methods(http.MethodPut).Name(ProvisionerSetCapacityRouteName)
	instance.provisionerRoutes.Path(ProvisionerFleetPath).Methods(http.MethodGet).Name(ProvisionerFleetRouteName)

	return instance
}

func FleetScalerRoutes() *mux.Router {
	return routeInstance.apiRoutes
}

func ProvisionerRoutes() *mux.Router {
	return routeInstance.provisionerRoutes
}
