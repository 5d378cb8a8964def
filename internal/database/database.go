package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/contentbridge/wpimport/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Page{},
		&entities.ImportRun{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedRoot(); err != nil {
		return nil, fmt.Errorf("failed to seed root page: %w", err)
	}

	logrus.WithField("path", dbPath).Info("database initialized")

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedRoot guarantees a tree root exists so imports always have a valid
// parent to attach under.
func (d *Database) seedRoot() error {
	var root entities.Page
	result := d.DB.Where("depth = 0").First(&root)
	if result.Error == gorm.ErrRecordNotFound {
		root = entities.Page{
			Title: "Root",
			Slug:  "root",
			Path:  "/",
			Depth: 0,
			Live:  true,
		}
		return d.DB.Create(&root).Error
	}
	return result.Error
}
