package main

import (
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/fleetscaler/fleetscaler/actuator"
	"github.com/fleetscaler/fleetscaler/capacity"
	"github.com/fleetscaler/fleetscaler/cloud"
	"github.com/fleetscaler/fleetscaler/config"
	"github.com/fleetscaler/fleetscaler/db/sqldb"
	"github.com/fleetscaler/fleetscaler/evaluator"
	"github.com/fleetscaler/fleetscaler/fleetmanager"
	"github.com/fleetscaler/fleetscaler/healthendpoint"
	"github.com/fleetscaler/fleetscaler/helpers"
	"github.com/fleetscaler/fleetscaler/models"
	"github.com/fleetscaler/fleetscaler/observer"
	"github.com/fleetscaler/fleetscaler/pruner"
	"github.com/fleetscaler/fleetscaler/server"
)

func main() {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stdout, "missing config file\nUsage:use '-c' option to specify the config file path")
		os.Exit(1)
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to open config file %q: %s\n", path, err.Error())
		os.Exit(1)
	}
	conf, err := config.LoadConfig(configFile)
	configFile.Close()
	if err != nil {
		fmt.Fprintf(os.Stdout, "%s\n", err.Error())
		os.Exit(1)
	}
	err = conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration: %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "fleetscaler")
	fsClock := clock.NewClock()

	policyDB, err := sqldb.NewPolicySQLDB(conf.DB.PolicyDB, logger.Session("policy-db"))
	if err != nil {
		logger.Error("failed to connect policy database", err, lager.Data{"dbConfig": conf.DB.PolicyDB})
		os.Exit(1)
	}
	defer policyDB.Close()

	historyDB, err := sqldb.NewScalingHistorySQLDB(conf.DB.HistoryDB, logger.Session("history-db"))
	if err != nil {
		logger.Error("failed to connect scaling history database", err, lager.Data{"dbConfig": conf.DB.HistoryDB})
		os.Exit(1)
	}
	defer historyDB.Close()

	metricDB, err := sqldb.NewMetricSQLDB(conf.DB.MetricDB, logger.Session("metric-db"))
	if err != nil {
		logger.Error("failed to connect metric database", err, lager.Data{"dbConfig": conf.DB.MetricDB})
		os.Exit(1)
	}
	defer metricDB.Close()

	bindingDB, err := sqldb.NewBindingSQLDB(conf.DB.BindingDB, logger.Session("binding-db"))
	if err != nil {
		logger.Error("failed to connect capacity binding database", err, lager.Data{"dbConfig": conf.DB.BindingDB})
		os.Exit(1)
	}
	defer bindingDB.Close()

	httpStatusCollector := healthendpoint.NewHTTPStatusCollector("fleetscaler", "api")
	replaceFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fleetscaler",
		Subsystem: "fleetmanager",
		Name:      "replace_failures_total",
		Help:      "Number of instance replacements abandoned after exhausting the retry budget.",
	}, []string{"fleet_id"})
	capacityTarget := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fleetscaler",
		Subsystem: "capacity",
		Name:      "target",
		Help:      "Last capacity target published per fleet.",
	}, []string{"fleet_id"})

	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		healthendpoint.NewDatabaseStatusCollector("fleetscaler", "api", "policyDB", policyDB),
		healthendpoint.NewDatabaseStatusCollector("fleetscaler", "api", "historyDB", historyDB),
		healthendpoint.NewDatabaseStatusCollector("fleetscaler", "api", "metricDB", metricDB),
		healthendpoint.NewDatabaseStatusCollector("fleetscaler", "api", "bindingDB", bindingDB),
		httpStatusCollector,
		replaceFailures,
		capacityTarget,
	}, true, logger.Session("fleetscaler-prometheus"))

	httpClient := helpers.NewHTTPClient(conf.HTTPClientTimeout, helpers.DefaultMaxIdleConnsPerHost)
	provisionerClient := cloud.NewProvisionerClient(logger.Session("provisioner-client"), conf.Provisioner.URL, httpClient)

	policyPoller := observer.NewPolicyPoller(logger, fsClock, conf.Observer.PollInterval, policyDB)

	fleetMonitorsChan := make(chan *models.FleetMonitor, conf.Observer.FleetMonitorChannelSize)
	fleetMetricChan := make(chan *models.FleetMetric, conf.Observer.MetricChannelSize)
	metricPollers := make([]*observer.MetricPoller, 0, conf.Observer.MetricPollerCount)
	for i := 0; i < conf.Observer.MetricPollerCount; i++ {
		metricPollers = append(metricPollers, observer.NewMetricPoller(logger, provisionerClient, fleetMonitorsChan, fleetMetricChan))
	}

	capacityObserver := observer.NewObserver(logger, fsClock, conf.Observer.PollInterval, conf.Observer.SaveInterval,
		fleetMonitorsChan, fleetMetricChan, metricDB, policyPoller.GetPolicies,
		conf.DefaultStatWindowSecs, conf.Observer.MetricCacheSizePerFleet)

	act := actuator.New(logger, provisionerClient, historyDB, fsClock,
		conf.Actuator.DefaultCoolDownSecs, conf.Actuator.LockSize)

	triggerChan := make(chan []*models.Trigger, conf.Evaluator.TriggerArrayChannelSize)
	triggerManager := evaluator.NewTriggerManager(logger, conf.Evaluator.EvaluationInterval, fsClock,
		triggerChan, policyPoller.GetPolicies, conf.CircuitBreaker.ConsecutiveFailureCount)

	evaluators := make([]*evaluator.Evaluator, 0, conf.Evaluator.EvaluatorCount)
	for i := 0; i < conf.Evaluator.EvaluatorCount; i++ {
		evaluators = append(evaluators, evaluator.NewEvaluator(logger, fsClock, triggerChan,
			conf.DefaultBreachDurationSecs, capacityObserver.QueryMetrics, act.Scale,
			triggerManager.GetBreaker, triggerManager.SetCoolDownExpired))
	}

	fleetManager := fleetmanager.New(logger, fsClock, provisionerClient, policyPoller.GetPolicies,
		conf.FleetManager.ReconcileInterval, conf.FleetManager.ReplaceRetryLimit, replaceFailures)

	capacityReconciler := capacity.NewReconciler(logger, fsClock, conf.Capacity.AdjustInterval,
		bindingDB, provisionerClient, provisionerClient, capacityObserver.QueryMetrics, capacityTarget)

	metricPruner := pruner.NewMetricDBPruner(logger, metricDB, conf.Pruner.Interval, conf.Pruner.MetricCutoffDays, fsClock)
	historyPruner := pruner.NewHistoryDBPruner(logger, historyDB, conf.Pruner.Interval, conf.Pruner.HistoryCutoffDays, fsClock)

	controlLoop := ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		policyPoller.Start()
		for _, e := range evaluators {
			e.Start()
		}
		triggerManager.Start()
		for _, p := range metricPollers {
			p.Start()
		}
		capacityObserver.Start()
		fleetManager.Start()
		capacityReconciler.Start()
		metricPruner.Start()
		historyPruner.Start()

		close(ready)

		<-signals
		historyPruner.Stop()
		metricPruner.Stop()
		capacityReconciler.Stop()
		fleetManager.Stop()
		capacityObserver.Stop()
		for _, p := range metricPollers {
			p.Stop()
		}
		triggerManager.Stop()
		policyPoller.Stop()

		return nil
	})

	httpServer, err := server.NewServer(logger.Session("http-server"), conf, act, policyDB, bindingDB, historyDB,
		capacityObserver.QueryMetrics, provisionerClient, httpStatusCollector)
	if err != nil {
		logger.Error("failed to create http server", err)
		os.Exit(1)
	}
	healthServer, err := healthendpoint.NewServer(logger.Session("health-server"), conf.Health, promRegistry)
	if err != nil {
		logger.Error("failed to create health server", err)
		os.Exit(1)
	}

	members := grouper.Members{
		{Name: "control_loop", Runner: controlLoop},
		{Name: "http_server", Runner: httpServer},
		{Name: "health_server", Runner: healthServer},
	}

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started")

	err = <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}
	logger.Info("exited")
}
