package db

import (
	"fmt"
	"time"

	"github.com/vburkalo/city-temperature-api/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const DuplicateEntry = 1062

func New(cfg config.Database) (*sqlx.DB, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time load location failed: %w", err)
	}
	conf := mysql.NewConfig()
	conf.Net = cfg.Net
	conf.Addr = cfg.Server
	conf.User = cfg.User
	conf.Passwd = cfg.Password
	conf.DBName = cfg.DBName
	conf.Timeout = cfg.Timeout
	conf.Loc = location
	conf.ParseTime = true

	dbConn, err := sqlx.Connect("mysql", conf.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConnections)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConnections)

	if err := dbConn.Ping(); err != nil {
		return nil, err
	}

	return dbConn, nil
}

// Migrate ensures the schema exists. The cascading foreign key is what
// enforces "deleting a city deletes its temperatures"; application code never
// deletes readings itself.
func Migrate(dbConn *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS cities (
			id BIGINT NOT NULL AUTO_INCREMENT,
			name VARCHAR(255) NOT NULL,
			additional_info TEXT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_cities_name (name)
		);`,
		`CREATE TABLE IF NOT EXISTS temperatures (
			id BIGINT NOT NULL AUTO_INCREMENT,
			city_id BIGINT NOT NULL,
			date_time DATETIME NOT NULL,
			temperature DOUBLE NOT NULL,
			PRIMARY KEY (id),
			KEY idx_temperatures_city_id (city_id),
			KEY idx_temperatures_date_time (date_time),
			CONSTRAINT fk_temperatures_city FOREIGN KEY (city_id)
				REFERENCES cities (id) ON DELETE CASCADE
		);`,
	}

	for _, stmt := range statements {
		if _, err := dbConn.Exec(stmt); err != nil {
			return fmt.Errorf("migrate failed: %w", err)
		}
	}

	return nil
}
