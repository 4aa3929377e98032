package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_policy_db.go ../db PolicyDB
//counterfeiter:generate -o ./fake_scaling_history_db.go ../db ScalingHistoryDB
//counterfeiter:generate -o ./fake_metric_db.go ../db MetricDB
//counterfeiter:generate -o ./fake_binding_db.go ../db BindingDB
//counterfeiter:generate -o ./fake_fleet_api.go ../cloud FleetAPI
//counterfeiter:generate -o ./fake_metric_source.go ../cloud MetricSource
//counterfeiter:generate -o ./fake_capacity_publisher.go ../cloud CapacityPublisher
//counterfeiter:generate -o ./fake_actuator.go ../actuator Actuator
//counterfeiter:generate -o ./fake_httpstatus_collector.go ../healthendpoint HTTPStatusCollector
