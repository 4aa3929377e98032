package config

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/helpers"
	"github.com/fleetscaler/fleetscaler/models"
)

const (
	DefaultLoggingLevel = "info"

	DefaultServerPort = 8080
	DefaultHealthPort = 8081

	DefaultPollInterval            = 60 * time.Second
	DefaultSaveInterval            = 5 * time.Second
	DefaultMetricPollerCount       = 10
	DefaultFleetMonitorChannelSize = 100
	DefaultMetricChannelSize       = 100
	DefaultMetricCacheSizePerFleet = 100

	DefaultEvaluatorCount          = 5
	DefaultTriggerArrayChannelSize = 100
	DefaultEvaluationInterval      = 60 * time.Second

	DefaultCoolDownSecs           = 300
	DefaultLockSize               = 32
	DefaultStatWindowSecs         = 120
	DefaultBreachDurationSecs     = 120
	DefaultConsecutiveFailures    = 3
	DefaultReconcileInterval      = 60 * time.Second
	DefaultReplaceRetryLimit      = 3
	DefaultCapacityAdjustInterval = 60 * time.Second
	DefaultPruneInterval          = time.Hour
	DefaultMetricCutoffDays       = 2
	DefaultHistoryCutoffDays      = 30
	DefaultHTTPClientTimeout      = 5 * time.Second
)

type ServerConfig struct {
	Port int `yaml:"port" json:"port"`
}

type DBConfig struct {
	PolicyDB  db.DatabaseConfig `yaml:"policy_db" json:"policy_db"`
	HistoryDB db.DatabaseConfig `yaml:"history_db" json:"history_db"`
	MetricDB  db.DatabaseConfig `yaml:"metric_db" json:"metric_db"`
	BindingDB db.DatabaseConfig `yaml:"binding_db" json:"binding_db"`
}

type ObserverConfig struct {
	PollInterval            time.Duration `yaml:"poll_interval" json:"poll_interval"`
	SaveInterval            time.Duration `yaml:"save_interval" json:"save_interval"`
	MetricPollerCount       int           `yaml:"metric_poller_count" json:"metric_poller_count"`
	FleetMonitorChannelSize int           `yaml:"fleet_monitor_channel_size" json:"fleet_monitor_channel_size"`
	MetricChannelSize       int           `yaml:"metric_channel_size" json:"metric_channel_size"`
	MetricCacheSizePerFleet int           `yaml:"metric_cache_size_per_fleet" json:"metric_cache_size_per_fleet"`
}

type EvaluatorConfig struct {
	EvaluatorCount          int           `yaml:"evaluator_count" json:"evaluator_count"`
	TriggerArrayChannelSize int           `yaml:"trigger_array_channel_size" json:"trigger_array_channel_size"`
	EvaluationInterval      time.Duration `yaml:"evaluation_interval" json:"evaluation_interval"`
}

type ActuatorConfig struct {
	DefaultCoolDownSecs int `yaml:"default_cooldown_secs" json:"default_cooldown_secs"`
	LockSize            int `yaml:"lock_size" json:"lock_size"`
}

type FleetManagerConfig struct {
	ReconcileInterval time.Duration `yaml:"reconcile_interval" json:"reconcile_interval"`
	ReplaceRetryLimit int           `yaml:"replace_retry_limit" json:"replace_retry_limit"`
}

type CapacityConfig struct {
	AdjustInterval time.Duration `yaml:"adjust_interval" json:"adjust_interval"`
}

type PrunerConfig struct {
	Interval          time.Duration `yaml:"interval" json:"interval"`
	MetricCutoffDays  int           `yaml:"metric_cutoff_days" json:"metric_cutoff_days"`
	HistoryCutoffDays int           `yaml:"history_cutoff_days" json:"history_cutoff_days"`
}

type ProvisionerConfig struct {
	URL string `yaml:"url" json:"url"`
}

type CircuitBreakerConfig struct {
	ConsecutiveFailureCount int64 `yaml:"consecutive_failure_count" json:"consecutive_failure_count"`
}

type Config struct {
	Logging                   helpers.LoggingConfig `yaml:"logging"`
	Server                    ServerConfig          `yaml:"server"`
	Health                    models.HealthConfig   `yaml:"health"`
	DB                        DBConfig              `yaml:"db"`
	Observer                  ObserverConfig        `yaml:"observer"`
	Evaluator                 EvaluatorConfig       `yaml:"evaluator"`
	Actuator                  ActuatorConfig        `yaml:"actuator"`
	FleetManager              FleetManagerConfig    `yaml:"fleet_manager"`
	Capacity                  CapacityConfig        `yaml:"capacity"`
	Pruner                    PrunerConfig          `yaml:"pruner"`
	Provisioner               ProvisionerConfig     `yaml:"provisioner"`
	CircuitBreaker            CircuitBreakerConfig  `yaml:"circuit_breaker"`
	DefaultStatWindowSecs     int                   `yaml:"default_stat_window_secs"`
	DefaultBreachDurationSecs int                   `yaml:"default_breach_duration_secs"`
	HTTPClientTimeout         time.Duration         `yaml:"http_client_timeout"`
}

func defaultConfig() Config {
	return Config{
		Logging: helpers.LoggingConfig{Level: DefaultLoggingLevel},
		Server:  ServerConfig{Port: DefaultServerPort},
		Health:  models.HealthConfig{Port: DefaultHealthPort},
		Observer: ObserverConfig{
			PollInterval:            DefaultPollInterval,
			SaveInterval:            DefaultSaveInterval,
			MetricPollerCount:       DefaultMetricPollerCount,
			FleetMonitorChannelSize: DefaultFleetMonitorChannelSize,
			MetricChannelSize:       DefaultMetricChannelSize,
			MetricCacheSizePerFleet: DefaultMetricCacheSizePerFleet,
		},
		Evaluator: EvaluatorConfig{
			EvaluatorCount:          DefaultEvaluatorCount,
			TriggerArrayChannelSize: DefaultTriggerArrayChannelSize,
			EvaluationInterval:      DefaultEvaluationInterval,
		},
		Actuator: ActuatorConfig{
			DefaultCoolDownSecs: DefaultCoolDownSecs,
			LockSize:            DefaultLockSize,
		},
		FleetManager: FleetManagerConfig{
			ReconcileInterval: DefaultReconcileInterval,
			ReplaceRetryLimit: DefaultReplaceRetryLimit,
		},
		Capacity: CapacityConfig{AdjustInterval: DefaultCapacityAdjustInterval},
		Pruner: PrunerConfig{
			Interval:          DefaultPruneInterval,
			MetricCutoffDays:  DefaultMetricCutoffDays,
			HistoryCutoffDays: DefaultHistoryCutoffDays,
		},
		CircuitBreaker:            CircuitBreakerConfig{ConsecutiveFailureCount: DefaultConsecutiveFailures},
		DefaultStatWindowSecs:     DefaultStatWindowSecs,
		DefaultBreachDurationSecs: DefaultBreachDurationSecs,
		HTTPClientTimeout:         DefaultHTTPClientTimeout,
	}
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := defaultConfig()

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	err := decoder.Decode(&conf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return &conf, nil
}

func (c *Config) Validate() error {
	if c.Provisioner.URL == "" {
		return fmt.Errorf("configuration error: provisioner.url is empty")
	}
	if c.DB.PolicyDB.URL == "" {
		return fmt.Errorf("configuration error: db.policy_db.url is empty")
	}
	if c.DB.HistoryDB.URL == "" {
		return fmt.Errorf("configuration error: db.history_db.url is empty")
	}
	if c.DB.MetricDB.URL == "" {
		return fmt.Errorf("configuration error: db.metric_db.url is empty")
	}
	if c.DB.BindingDB.URL == "" {
		return fmt.Errorf("configuration error: db.binding_db.url is empty")
	}
	if c.Observer.PollInterval <= 0 {
		return fmt.Errorf("configuration error: observer.poll_interval is not positive")
	}
	if c.Observer.MetricPollerCount <= 0 {
		return fmt.Errorf("configuration error: observer.metric_poller_count is not positive")
	}
	if c.Evaluator.EvaluatorCount <= 0 {
		return fmt.Errorf("configuration error: evaluator.evaluator_count is not positive")
	}
	if c.Evaluator.EvaluationInterval <= 0 {
		return fmt.Errorf("configuration error: evaluator.evaluation_interval is not positive")
	}
	if c.Actuator.DefaultCoolDownSecs < 0 {
		return fmt.Errorf("configuration error: actuator.default_cooldown_secs is negative")
	}
	if c.Actuator.LockSize <= 0 {
		return fmt.Errorf("configuration error: actuator.lock_size is not positive")
	}
	if c.FleetManager.ReconcileInterval <= 0 {
		return fmt.Errorf("configuration error: fleet_manager.reconcile_interval is not positive")
	}
	if c.DefaultBreachDurationSecs <= 0 {
		return fmt.Errorf("configuration error: default_breach_duration_secs is not positive")
	}
	if c.DefaultStatWindowSecs <= 0 {
		return fmt.Errorf("configuration error: default_stat_window_secs is not positive")
	}
	return c.Health.Validate()
}
