package sqldb

import (
	"database/sql"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/models"
)

type BindingSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewBindingSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*BindingSQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &BindingSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (bdb *BindingSQLDB) Close() error {
	err := bdb.sqldb.Close()
	if err != nil {
		bdb.logger.Error("close-binding-db", err, lager.Data{"dbConfig": bdb.dbConfig})
		return err
	}
	return nil
}

func (bdb *BindingSQLDB) SaveBinding(binding *models.CapacityBinding) error {
	query := bdb.sqldb.Rebind("DELETE FROM capacity_binding WHERE fleet_id = ?")
	if _, err := bdb.sqldb.Exec(query, binding.FleetID); err != nil {
		bdb.logger.Error("save-binding-delete-existing", err, lager.Data{"fleetId": binding.FleetID})
		return err
	}

	query = bdb.sqldb.Rebind("INSERT INTO capacity_binding" +
		"(fleet_id, target_utilization, min_step, max_step, current_target, updated_at) " +
		"VALUES(?, ?, ?, ?, ?, ?)")
	_, err := bdb.sqldb.Exec(query, binding.FleetID, binding.TargetUtilizationPercent,
		binding.MinStep, binding.MaxStep, binding.CurrentTarget, binding.UpdatedAt)
	if err != nil {
		bdb.logger.Error("save-binding", err, lager.Data{"query": query, "binding": binding})
	}
	return err
}

func (bdb *BindingSQLDB) GetBinding(fleetId string) (*models.CapacityBinding, error) {
	binding := &models.CapacityBinding{FleetID: fleetId}
	query := bdb.sqldb.Rebind("SELECT target_utilization, min_step, max_step, current_target, updated_at " +
		"FROM capacity_binding WHERE fleet_id = ?")
	err := bdb.sqldb.QueryRow(query, fleetId).Scan(&binding.TargetUtilizationPercent,
		&binding.MinStep, &binding.MaxStep, &binding.CurrentTarget, &binding.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, db.ErrDoesNotExist
	}
	if err != nil {
		bdb.logger.Error("get-binding", err, lager.Data{"query": query, "fleetId": fleetId})
		return nil, err
	}
	return binding, nil
}

func (bdb *BindingSQLDB) GetBindings() ([]*models.CapacityBinding, error) {
	query := "SELECT fleet_id, target_utilization, min_step, max_step, current_target, updated_at FROM capacity_binding"
	rows, err := bdb.sqldb.Query(query)
	if err != nil {
		bdb.logger.Error("get-bindings", err, lager.Data{"query": query})
		return nil, err
	}
	defer rows.Close()

	bindings := []*models.CapacityBinding{}
	for rows.Next() {
		binding := &models.CapacityBinding{}
		err = rows.Scan(&binding.FleetID, &binding.TargetUtilizationPercent,
			&binding.MinStep, &binding.MaxStep, &binding.CurrentTarget, &binding.UpdatedAt)
		if err != nil {
			bdb.logger.Error("get-bindings-scan", err)
			return nil, err
		}
		bindings = append(bindings, binding)
	}
	return bindings, rows.Err()
}

func (bdb *BindingSQLDB) UpdateBindingTarget(fleetId string, target int, updatedAt int64) error {
	query := bdb.sqldb.Rebind("UPDATE capacity_binding SET current_target = ?, updated_at = ? WHERE fleet_id = ?")
	_, err := bdb.sqldb.Exec(query, target, updatedAt, fleetId)
	if err != nil {
		bdb.logger.Error("update-binding-target", err, lager.Data{"query": query, "fleetId": fleetId, "target": target})
	}
	return err
}

func (bdb *BindingSQLDB) DeleteBinding(fleetId string) error {
	query := bdb.sqldb.Rebind("DELETE FROM capacity_binding WHERE fleet_id = ?")
	_, err := bdb.sqldb.Exec(query, fleetId)
	if err != nil {
		bdb.logger.Error("delete-binding", err, lager.Data{"query": query, "fleetId": fleetId})
	}
	return err
}

func (bdb *BindingSQLDB) GetDBStatus() sql.DBStats {
	return bdb.sqldb.Stats()
}
