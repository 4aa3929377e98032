package sqldb

import (
	"database/sql"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/models"
)

type MetricSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewMetricSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*MetricSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &MetricSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (mdb *MetricSQLDB) Close() error {
	err := mdb.sqldb.Close()
	if err != nil {
		mdb.logger.Error("close-metric-db", err, lager.Data{"dbConfig": mdb.dbConfig})
		return err
	}
	return nil
}

func (mdb *MetricSQLDB) SaveMetric(metric *models.FleetMetric) error {
	query := mdb.sqldb.Rebind("INSERT INTO fleet_metric(fleet_id, metric_kind, value, unit, timestamp) VALUES(?, ?, ?, ?, ?)")
	_, err := mdb.sqldb.Exec(query, metric.FleetID, metric.MetricKind, metric.Value, metric.Unit, metric.Timestamp)
	if err != nil {
		mdb.logger.Error("save-metric", err, lager.Data{"query": query, "metric": metric})
	}
	return err
}

func (mdb *MetricSQLDB) SaveMetricsInBulk(metrics []*models.FleetMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	txn, err := mdb.sqldb.Beginx()
	if err != nil {
		mdb.logger.Error("save-metrics-in-bulk-begin", err)
		return err
	}

	query := mdb.sqldb.Rebind("INSERT INTO fleet_metric(fleet_id, metric_kind, value, unit, timestamp) VALUES(?, ?, ?, ?, ?)")
	for _, metric := range metrics {
		if _, err = txn.Exec(query, metric.FleetID, metric.MetricKind, metric.Value, metric.Unit, metric.Timestamp); err != nil {
			mdb.logger.Error("save-metrics-in-bulk-exec", err, lager.Data{"metric": metric})
			_ = txn.Rollback()
			return err
		}
	}

	if err = txn.Commit(); err != nil {
		mdb.logger.Error("save-metrics-in-bulk-commit", err)
		return err
	}
	return nil
}

func (mdb *MetricSQLDB) RetrieveMetrics(fleetId string, metricKind string, start int64, end int64, orderType db.OrderType) ([]*models.FleetMetric, error) {
	orderStr := db.ASCSTR
	if orderType == db.DESC {
		orderStr = db.DESCSTR
	}
	if end < 0 {
		end = time.Now().UnixNano()
	}

	query := mdb.sqldb.Rebind("SELECT value, unit, timestamp FROM fleet_metric " +
		"WHERE fleet_id = ? AND metric_kind = ? AND timestamp >= ? AND timestamp <= ? " +
		"ORDER BY timestamp " + orderStr)

	rows, err := mdb.sqldb.Query(query, fleetId, metricKind, start, end)
	if err != nil {
		mdb.logger.Error("retrieve-metrics", err, lager.Data{"query": query, "fleetId": fleetId, "metricKind": metricKind})
		return nil, err
	}
	defer rows.Close()

	metrics := []*models.FleetMetric{}
	for rows.Next() {
		metric := &models.FleetMetric{FleetID: fleetId, MetricKind: metricKind}
		if err = rows.Scan(&metric.Value, &metric.Unit, &metric.Timestamp); err != nil {
			mdb.logger.Error("retrieve-metrics-scan", err)
			return nil, err
		}
		metrics = append(metrics, metric)
	}
	return metrics, rows.Err()
}

func (mdb *MetricSQLDB) PruneMetrics(before int64) error {
	query := mdb.sqldb.Rebind("DELETE FROM fleet_metric WHERE timestamp <= ?")
	_, err := mdb.sqldb.Exec(query, before)
	if err != nil {
		mdb.logger.Error("prune-metrics", err, lager.Data{"query": query, "before": before})
	}
	return err
}

func (mdb *MetricSQLDB) GetDBStatus() sql.DBStats {
	return mdb.sqldb.Stats()
}
