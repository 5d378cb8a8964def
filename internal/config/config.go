package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Import
	}

	Database struct {
		Path string
	}

	Import struct {
		Model        string // target page model, "app.Model" form
		ParentPageID uint
		PageTypes    string // comma-separated wp:post_type allow-list
		PageStatuses string // comma-separated wp:status allow-list
		BadDates     string // "fail" or "skip"
		Schedule     string // cron format, empty disables scheduling
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("import_model", DefaultPageModel)
	v.SetDefault("import_parent_page_id", 1)
	v.SetDefault("import_page_types", "post,page")
	v.SetDefault("import_page_statuses", "publish,draft")
	v.SetDefault("import_bad_dates", "fail")
	v.SetDefault("import_schedule", "")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Import: Import{
			Model:        v.GetString("IMPORT_MODEL"),
			ParentPageID: v.GetUint("IMPORT_PARENT_PAGE_ID"),
			PageTypes:    v.GetString("IMPORT_PAGE_TYPES"),
			PageStatuses: v.GetString("IMPORT_PAGE_STATUSES"),
			BadDates:     v.GetString("IMPORT_BAD_DATES"),
			Schedule:     v.GetString("IMPORT_SCHEDULE"),
		},
	}
}
