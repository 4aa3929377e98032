package sqldb

import (
	"database/sql"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/models"
)

type ScalingHistorySQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewScalingHistorySQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*ScalingHistorySQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &ScalingHistorySQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (hdb *ScalingHistorySQLDB) Close() error {
	err := hdb.sqldb.Close()
	if err != nil {
		hdb.logger.Error("close-scaling-history-db", err, lager.Data{"dbConfig": hdb.dbConfig})
		return err
	}
	return nil
}

func (hdb *ScalingHistorySQLDB) SaveScalingHistory(history *models.FleetScalingHistory) error {
	query := hdb.sqldb.Rebind("INSERT INTO scaling_history" +
		"(fleet_id, timestamp, scaling_type, status, old_size, new_size, reason, message, error) " +
		"VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)")
	_, err := hdb.sqldb.Exec(query, history.FleetID, history.Timestamp, history.ScalingType, history.Status,
		history.OldSize, history.NewSize, history.Reason, history.Message, history.Error)
	if err != nil {
		hdb.logger.Error("save-scaling-history", err, lager.Data{"query": query, "history": history})
	}
	return err
}

func (hdb *ScalingHistorySQLDB) RetrieveScalingHistories(fleetId string, start int64, end int64, orderType db.OrderType) ([]*models.FleetScalingHistory, error) {
	orderStr := db.ASCSTR
	if orderType == db.DESC {
		orderStr = db.DESCSTR
	}
	if end < 0 {
		end = time.Now().UnixNano()
	}

	query := hdb.sqldb.Rebind("SELECT timestamp, scaling_type, status, old_size, new_size, reason, message, error " +
		"FROM scaling_history " +
		"WHERE fleet_id = ? AND timestamp >= ? AND timestamp <= ? " +
		"ORDER BY timestamp " + orderStr)

	rows, err := hdb.sqldb.Query(query, fleetId, start, end)
	if err != nil {
		hdb.logger.Error("retrieve-scaling-histories", err, lager.Data{"query": query, "fleetId": fleetId})
		return nil, err
	}
	defer rows.Close()

	histories := []*models.FleetScalingHistory{}
	for rows.Next() {
		history := &models.FleetScalingHistory{FleetID: fleetId}
		err = rows.Scan(&history.Timestamp, &history.ScalingType, &history.Status,
			&history.OldSize, &history.NewSize, &history.Reason, &history.Message, &history.Error)
		if err != nil {
			hdb.logger.Error("retrieve-scaling-histories-scan", err)
			return nil, err
		}
		histories = append(histories, history)
	}
	return histories, rows.Err()
}

func (hdb *ScalingHistorySQLDB) PruneScalingHistories(before int64) error {
	query := hdb.sqldb.Rebind("DELETE FROM scaling_history WHERE timestamp <= ?")
	_, err := hdb.sqldb.Exec(query, before)
	if err != nil {
		hdb.logger.Error("prune-scaling-histories", err, lager.Data{"query": query, "before": before})
	}
	return err
}

func (hdb *ScalingHistorySQLDB) GetDBStatus() sql.DBStats {
	return hdb.sqldb.Stats()
}
