package healthendpoint

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

type DatabaseStatus interface {
	GetDBStatus() sql.DBStats
}

type databaseStatusCollector struct {
	namespace string
	subSystem string
	dbName    string
	dbStatus  DatabaseStatus

	openConnectionsDesc *prometheus.Desc
	inUseDesc           *prometheus.Desc
	idleDesc            *prometheus.Desc
	waitCountDesc       *prometheus.Desc
}

func NewDatabaseStatusCollector(namespace, subSystem, dbName string, dbStatus DatabaseStatus) prometheus.Collector {
	return &databaseStatusCollector{
		namespace: namespace,
		subSystem: subSystem,
		dbName:    dbName,
		dbStatus:  dbStatus,
		openConnectionsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subSystem, dbName+"_open_connections"),
			"The number of established connections both in use and idle",
			nil, nil),
		inUseDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subSystem, dbName+"_connections_in_use"),
			"The number of connections currently in use",
			nil, nil),
		idleDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subSystem, dbName+"_connections_idle"),
			"The number of idle connections",
			nil, nil),
		waitCountDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subSystem, dbName+"_connections_wait_count"),
			"The total number of connections waited for",
			nil, nil),
	}
}

func (c *databaseStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.openConnectionsDesc
	ch <- c.inUseDesc
	ch <- c.idleDesc
	ch <- c.waitCountDesc
}

func (c *databaseStatusCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.dbStatus.GetDBStatus()
	ch <- prometheus.MustNewConstMetric(c.openConnectionsDesc, prometheus.GaugeValue, float64(stats.OpenConnections))
	ch <- prometheus.MustNewConstMetric(c.inUseDesc, prometheus.GaugeValue, float64(stats.InUse))
	ch <- prometheus.MustNewConstMetric(c.idleDesc, prometheus.GaugeValue, float64(stats.Idle))
	ch <- prometheus.MustNewConstMetric(c.waitCountDesc, prometheus.CounterValue, float64(stats.WaitCount))
}
