package config_test

import (
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/fleetscaler/fleetscaler/config"
)

var _ = Describe("Config", func() {
	var (
		conf    *Config
		err     error
		confStr string
	)

	Describe("LoadConfig", func() {
		JustBeforeEach(func() {
			conf, err = LoadConfig(bytes.NewReader([]byte(confStr)))
		})

		Context("with a complete config file", func() {
			BeforeEach(func() {
				confStr = `
logging:
  level: debug
server:
  port: 9080
health:
  port: 9081
db:
  policy_db:
    url: postgres://fs:fs@localhost/fleetscaler
    max_open_connections: 10
  history_db:
    url: postgres://fs:fs@localhost/fleetscaler
  metric_db:
    url: postgres://fs:fs@localhost/fleetscaler
  binding_db:
    url: postgres://fs:fs@localhost/fleetscaler
observer:
  poll_interval: 30s
  save_interval: 10s
  metric_poller_count: 20
evaluator:
  evaluator_count: 8
  evaluation_interval: 30s
actuator:
  default_cooldown_secs: 600
  lock_size: 64
fleet_manager:
  reconcile_interval: 2m
  replace_retry_limit: 5
capacity:
  adjust_interval: 90s
pruner:
  interval: 30m
  metric_cutoff_days: 1
  history_cutoff_days: 10
provisioner:
  url: https://provisioner.example.com
circuit_breaker:
  consecutive_failure_count: 5
default_stat_window_secs: 300
default_breach_duration_secs: 600
http_client_timeout: 10s
`
			})

			It("loads every section", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(conf.Logging.Level).To(Equal("debug"))
				Expect(conf.Server.Port).To(Equal(9080))
				Expect(conf.Health.Port).To(Equal(9081))
				Expect(conf.DB.PolicyDB.URL).To(Equal("postgres://fs:fs@localhost/fleetscaler"))
				Expect(conf.DB.PolicyDB.MaxOpenConnections).To(Equal(10))
				Expect(conf.Observer.PollInterval).To(Equal(30 * time.Second))
				Expect(conf.Observer.SaveInterval).To(Equal(10 * time.Second))
				Expect(conf.Observer.MetricPollerCount).To(Equal(20))
				Expect(conf.Evaluator.EvaluatorCount).To(Equal(8))
				Expect(conf.Evaluator.EvaluationInterval).To(Equal(30 * time.Second))
				Expect(conf.Actuator.DefaultCoolDownSecs).To(Equal(600))
				Expect(conf.Actuator.LockSize).To(Equal(64))
				Expect(conf.FleetManager.ReconcileInterval).To(Equal(2 * time.Minute))
				Expect(conf.FleetManager.ReplaceRetryLimit).To(Equal(5))
				Expect(conf.Capacity.AdjustInterval).To(Equal(90 * time.Second))
				Expect(conf.Pruner.Interval).To(Equal(30 * time.Minute))
				Expect(conf.Pruner.MetricCutoffDays).To(Equal(1))
				Expect(conf.Pruner.HistoryCutoffDays).To(Equal(10))
				Expect(conf.Provisioner.URL).To(Equal("https://provisioner.example.com"))
				Expect(conf.CircuitBreaker.ConsecutiveFailureCount).To(Equal(int64(5)))
				Expect(conf.DefaultStatWindowSecs).To(Equal(300))
				Expect(conf.DefaultBreachDurationSecs).To(Equal(600))
				Expect(conf.HTTPClientTimeout).To(Equal(10 * time.Second))
			})
		})

		Context("with a minimal config file", func() {
			BeforeEach(func() {
				confStr = `
provisioner:
  url: https://provisioner.example.com
`
			})

			It("fills in the defaults", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(conf.Logging.Level).To(Equal(DefaultLoggingLevel))
				Expect(conf.Server.Port).To(Equal(DefaultServerPort))
				Expect(conf.Health.Port).To(Equal(DefaultHealthPort))
				Expect(conf.Observer.PollInterval).To(Equal(DefaultPollInterval))
				Expect(conf.Observer.SaveInterval).To(Equal(DefaultSaveInterval))
				Expect(conf.Observer.MetricPollerCount).To(Equal(DefaultMetricPollerCount))
				Expect(conf.Observer.FleetMonitorChannelSize).To(Equal(DefaultFleetMonitorChannelSize))
				Expect(conf.Observer.MetricChannelSize).To(Equal(DefaultMetricChannelSize))
				Expect(conf.Observer.MetricCacheSizePerFleet).To(Equal(DefaultMetricCacheSizePerFleet))
				Expect(conf.Evaluator.EvaluatorCount).To(Equal(DefaultEvaluatorCount))
				Expect(conf.Evaluator.TriggerArrayChannelSize).To(Equal(DefaultTriggerArrayChannelSize))
				Expect(conf.Evaluator.EvaluationInterval).To(Equal(DefaultEvaluationInterval))
				Expect(conf.Actuator.DefaultCoolDownSecs).To(Equal(DefaultCoolDownSecs))
				Expect(conf.Actuator.LockSize).To(Equal(DefaultLockSize))
				Expect(conf.FleetManager.ReconcileInterval).To(Equal(DefaultReconcileInterval))
				Expect(conf.FleetManager.ReplaceRetryLimit).To(Equal(DefaultReplaceRetryLimit))
				Expect(conf.Capacity.AdjustInterval).To(Equal(DefaultCapacityAdjustInterval))
				Expect(conf.Pruner.Interval).To(Equal(DefaultPruneInterval))
				Expect(conf.Pruner.MetricCutoffDays).To(Equal(DefaultMetricCutoffDays))
				Expect(conf.Pruner.HistoryCutoffDays).To(Equal(DefaultHistoryCutoffDays))
				Expect(conf.CircuitBreaker.ConsecutiveFailureCount).To(Equal(int64(DefaultConsecutiveFailures)))
				Expect(conf.DefaultStatWindowSecs).To(Equal(DefaultStatWindowSecs))
				Expect(conf.DefaultBreachDurationSecs).To(Equal(DefaultBreachDurationSecs))
				Expect(conf.HTTPClientTimeout).To(Equal(DefaultHTTPClientTimeout))
			})
		})

		Context("with an empty config file", func() {
			BeforeEach(func() {
				confStr = ""
			})

			It("returns the defaults", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(conf.Server.Port).To(Equal(DefaultServerPort))
			})
		})

		Context("with invalid yaml", func() {
			BeforeEach(func() {
				confStr = "server:\n  port: |||"
			})

			It("returns an error", func() {
				Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
			})
		})

		Context("with an unknown field", func() {
			BeforeEach(func() {
				confStr = "serverr:\n  port: 8080"
			})

			It("returns an error", func() {
				Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
			})
		})
	})

	Describe("Validate", func() {
		BeforeEach(func() {
			conf, err = LoadConfig(bytes.NewReader([]byte("")))
			Expect(err).NotTo(HaveOccurred())
			conf.Provisioner.URL = "https://provisioner.example.com"
			conf.DB.PolicyDB.URL = "postgres://localhost/fleetscaler"
			conf.DB.HistoryDB.URL = "postgres://localhost/fleetscaler"
			conf.DB.MetricDB.URL = "postgres://localhost/fleetscaler"
			conf.DB.BindingDB.URL = "postgres://localhost/fleetscaler"
		})

		It("accepts a complete configuration", func() {
			Expect(conf.Validate()).To(Succeed())
		})

		It("rejects a missing provisioner url", func() {
			conf.Provisioner.URL = ""
			Expect(conf.Validate()).To(MatchError("configuration error: provisioner.url is empty"))
		})

		It("rejects a missing policy db url", func() {
			conf.DB.PolicyDB.URL = ""
			Expect(conf.Validate()).To(MatchError("configuration error: db.policy_db.url is empty"))
		})

		It("rejects a missing history db url", func() {
			conf.DB.HistoryDB.URL = ""
			Expect(conf.Validate()).To(MatchError("configuration error: db.history_db.url is empty"))
		})

		It("rejects a missing metric db url", func() {
			conf.DB.MetricDB.URL = ""
			Expect(conf.Validate()).To(MatchError("configuration error: db.metric_db.url is empty"))
		})

		It("rejects a missing binding db url", func() {
			conf.DB.BindingDB.URL = ""
			Expect(conf.Validate()).To(MatchError("configuration error: db.binding_db.url is empty"))
		})

		It("rejects a non-positive poll interval", func() {
			conf.Observer.PollInterval = 0
			Expect(conf.Validate()).To(MatchError("configuration error: observer.poll_interval is not positive"))
		})

		It("rejects a non-positive metric poller count", func() {
			conf.Observer.MetricPollerCount = 0
			Expect(conf.Validate()).To(MatchError("configuration error: observer.metric_poller_count is not positive"))
		})

		It("rejects a non-positive evaluator count", func() {
			conf.Evaluator.EvaluatorCount = 0
			Expect(conf.Validate()).To(MatchError("configuration error: evaluator.evaluator_count is not positive"))
		})

		It("rejects a non-positive evaluation interval", func() {
			conf.Evaluator.EvaluationInterval = 0
			Expect(conf.Validate()).To(MatchError("configuration error: evaluator.evaluation_interval is not positive"))
		})

		It("rejects a negative default cooldown", func() {
			conf.Actuator.DefaultCoolDownSecs = -1
			Expect(conf.Validate()).To(MatchError("configuration error: actuator.default_cooldown_secs is negative"))
		})

		It("rejects a non-positive lock size", func() {
			conf.Actuator.LockSize = 0
			Expect(conf.Validate()).To(MatchError("configuration error: actuator.lock_size is not positive"))
		})

		It("rejects a non-positive reconcile interval", func() {
			conf.FleetManager.ReconcileInterval = 0
			Expect(conf.Validate()).To(MatchError("configuration error: fleet_manager.reconcile_interval is not positive"))
		})

		It("rejects a non-positive default breach duration", func() {
			conf.DefaultBreachDurationSecs = 0
			Expect(conf.Validate()).To(MatchError("configuration error: default_breach_duration_secs is not positive"))
		})

		It("rejects a non-positive default stat window", func() {
			conf.DefaultStatWindowSecs = 0
			Expect(conf.Validate()).To(MatchError("configuration error: default_stat_window_secs is not positive"))
		})

		It("rejects a health username without a password", func() {
			conf.Health.HealthCheckUsername = "admin"
			Expect(conf.Validate()).To(MatchError("health check username provided without password"))
		})
	})
})
