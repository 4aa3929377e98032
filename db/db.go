package db

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/fleetscaler/fleetscaler/models"
)

const (
	PostgresDriverName = "postgres"
	MysqlDriverName    = "mysql"
)

type OrderType uint8

const (
	DESC OrderType = iota
	ASC
)

const (
	DESCSTR string = "DESC"
	ASCSTR  string = "ASC"
)

var ErrDoesNotExist = fmt.Errorf("doesn't exist")

type DatabaseConfig struct {
	URL                   string        `yaml:"url" json:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections" json:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections" json:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime" json:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime" json:"connection_max_idletime"`
}

// DatabaseStatus is implemented by every SQL-backed store so the health
// endpoint can export connection-pool stats.
type DatabaseStatus interface {
	GetDBStatus() sql.DBStats
}

type PolicyDB interface {
	DatabaseStatus
	GetFleetIds() (map[string]bool, error)
	GetFleetPolicy(fleetId string) (*models.ScalingPolicy, error)
	SaveFleetPolicy(fleetId string, policy *models.ScalingPolicy, policyGuid string) error
	DeleteFleetPolicy(fleetId string) error
	GetPolicies() (map[string]*models.FleetPolicy, error)
	Ping() error
	io.Closer
}

type ScalingHistoryDB interface {
	DatabaseStatus
	SaveScalingHistory(history *models.FleetScalingHistory) error
	RetrieveScalingHistories(fleetId string, start int64, end int64, orderType OrderType) ([]*models.FleetScalingHistory, error)
	PruneScalingHistories(before int64) error
	io.Closer
}

type MetricDB interface {
	DatabaseStatus
	SaveMetric(metric *models.FleetMetric) error
	SaveMetricsInBulk(metrics []*models.FleetMetric) error
	RetrieveMetrics(fleetId string, metricKind string, start int64, end int64, orderType OrderType) ([]*models.FleetMetric, error)
	PruneMetrics(before int64) error
	io.Closer
}

type BindingDB interface {
	DatabaseStatus
	SaveBinding(binding *models.CapacityBinding) error
	GetBinding(fleetId string) (*models.CapacityBinding, error)
	GetBindings() ([]*models.CapacityBinding, error)
	UpdateBindingTarget(fleetId string, target int, updatedAt int64) error
	DeleteBinding(fleetId string) error
	io.Closer
}
