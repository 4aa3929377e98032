package sqldb

import (
	"database/sql"
	"encoding/json"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/fleetscaler/fleetscaler/db"
	"github.com/fleetscaler/fleetscaler/models"
)

type PolicySQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewPolicySQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*PolicySQLDB, error) {
	sqldb, err := openSQLDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}
	return &PolicySQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (pdb *PolicySQLDB) Close() error {
	err := pdb.sqldb.Close()
	if err != nil {
		pdb.logger.Error("close-policy-db", err, lager.Data{"dbConfig": pdb.dbConfig})
		return err
	}
	return nil
}

func (pdb *PolicySQLDB) GetFleetIds() (map[string]bool, error) {
	fleetIds := make(map[string]bool)
	query := "SELECT fleet_id FROM fleet_policy"
	rows, err := pdb.sqldb.Query(query)
	if err != nil {
		pdb.logger.Error("get-fleet-ids", err, lager.Data{"query": query})
		return nil, err
	}
	defer rows.Close()

	var id string
	for rows.Next() {
		if err = rows.Scan(&id); err != nil {
			pdb.logger.Error("get-fleet-ids-scan", err)
			return nil, err
		}
		fleetIds[id] = true
	}
	return fleetIds, rows.Err()
}

func (pdb *PolicySQLDB) GetFleetPolicy(fleetId string) (*models.ScalingPolicy, error) {
	var policyJson []byte
	query := pdb.sqldb.Rebind("SELECT policy_json FROM fleet_policy WHERE fleet_id = ?")
	err := pdb.sqldb.QueryRow(query, fleetId).Scan(&policyJson)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pdb.logger.Error("get-fleet-policy", err, lager.Data{"query": query, "fleetId": fleetId})
		return nil, err
	}

	policy := &models.ScalingPolicy{}
	if err = json.Unmarshal(policyJson, policy); err != nil {
		pdb.logger.Error("get-fleet-policy-unmarshal", err, lager.Data{"policyJson": string(policyJson)})
		return nil, err
	}
	return policy, nil
}

func (pdb *PolicySQLDB) SaveFleetPolicy(fleetId string, policy *models.ScalingPolicy, policyGuid string) error {
	policyJson, err := json.Marshal(policy)
	if err != nil {
		pdb.logger.Error("save-fleet-policy-marshal", err, lager.Data{"fleetId": fleetId})
		return err
	}

	query := pdb.sqldb.Rebind("DELETE FROM fleet_policy WHERE fleet_id = ?")
	if _, err = pdb.sqldb.Exec(query, fleetId); err != nil {
		pdb.logger.Error("save-fleet-policy-delete-existing", err, lager.Data{"fleetId": fleetId})
		return err
	}

	query = pdb.sqldb.Rebind("INSERT INTO fleet_policy (fleet_id, guid, policy_json) VALUES (?, ?, ?)")
	_, err = pdb.sqldb.Exec(query, fleetId, policyGuid, policyJson)
	if err != nil {
		pdb.logger.Error("save-fleet-policy", err, lager.Data{"query": query, "fleetId": fleetId})
	}
	return err
}

func (pdb *PolicySQLDB) DeleteFleetPolicy(fleetId string) error {
	query := pdb.sqldb.Rebind("DELETE FROM fleet_policy WHERE fleet_id = ?")
	_, err := pdb.sqldb.Exec(query, fleetId)
	if err != nil {
		pdb.logger.Error("delete-fleet-policy", err, lager.Data{"query": query, "fleetId": fleetId})
	}
	return err
}

func (pdb *PolicySQLDB) GetPolicies() (map[string]*models.FleetPolicy, error) {
	policies := make(map[string]*models.FleetPolicy)
	query := "SELECT fleet_id, guid, policy_json FROM fleet_policy"
	rows, err := pdb.sqldb.Query(query)
	if err != nil {
		pdb.logger.Error("get-policies", err, lager.Data{"query": query})
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var fleetId, guid string
		var policyJson []byte
		if err = rows.Scan(&fleetId, &guid, &policyJson); err != nil {
			pdb.logger.Error("get-policies-scan", err)
			return nil, err
		}
		policy := &models.ScalingPolicy{}
		if err = json.Unmarshal(policyJson, policy); err != nil {
			pdb.logger.Error("get-policies-unmarshal", err, lager.Data{"fleetId": fleetId})
			continue
		}
		policies[fleetId] = &models.FleetPolicy{
			FleetID: fleetId,
			GUID:    guid,
			Policy:  policy,
		}
	}
	return policies, rows.Err()
}

func (pdb *PolicySQLDB) Ping() error {
	return pdb.sqldb.Ping()
}

func (pdb *PolicySQLDB) GetDBStatus() sql.DBStats {
	return pdb.sqldb.Stats()
}
