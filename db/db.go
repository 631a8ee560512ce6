package db

import (
	"errors"

	"planroster/config"
	"planroster/logger"
	"planroster/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect opens the configured database (sqlite3 by default) and migrates
// the schema when auto_migrate is set.
func Connect(log *logger.Logger) (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		log.Info("connecting to postgres", "db_host", conf.DbHost, "db_port", conf.DbPort, "db_name", conf.DbName)
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass + " sslmode=disable"
		db, err = gorm.Open("postgres", path)
	} else {
		log.Info("connecting to sqlite3", "db_path", conf.DbPath)
		db, err = gorm.Open("sqlite3", conf.DbPath)
		if err == nil {
			// sqlite serializes writers; a single connection avoids "database is locked".
			db.DB().SetMaxOpenConns(1)
		}
	}

	if err != nil {
		log.Error("database connection failed", "error", err)
		return nil, err
	}

	db.LogMode(conf.LogSQL)

	if conf.AutoMigrate {
		if err := Migrate(db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("migrate: nil database")
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Plan{},
		&models.Procedure{},
		&models.PlanProcedure{},
		&models.AssignedUser{},
	).Error
}
