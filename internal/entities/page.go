package entities

import (
	"time"

	"gorm.io/gorm"
)

// PageStatus mirrors the wp:status values carried by a WXR export.
type PageStatus string

const (
	PageStatusPublish PageStatus = "publish"
	PageStatusDraft   PageStatus = "draft"
	PageStatusPrivate PageStatus = "private"
	PageStatusInherit PageStatus = "inherit"
)

// RunStatus tracks the lifecycle of one import run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Page is one migrated content page in the target store.
//
// WPPostID is the durable source identity: it is written once on create,
// never regenerated, and is the sole key the reconciler uses to decide
// between create and update across runs.
type Page struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ParentID uint   `gorm:"index" json:"parent_id"`
	Path     string `gorm:"index;size:1024" json:"path"`
	Depth    int    `json:"depth"`

	Title             string `gorm:"index;size:512" json:"title"`
	Slug              string `gorm:"index;size:256" json:"slug"`
	SearchDescription string `gorm:"type:text" json:"search_description,omitempty"`

	// Body holds the serialized block sequence; WPProcessedContent keeps the
	// intermediate HTML for diagnostics and WPBlockJSON the pretty-printed
	// block dump.
	Body               string `gorm:"type:text" json:"body,omitempty"`
	WPProcessedContent string `gorm:"type:text" json:"wp_processed_content,omitempty"`
	WPBlockJSON        string `gorm:"type:text" json:"wp_block_json,omitempty"`

	FirstPublishedAt        time.Time `json:"first_published_at,omitempty"`
	LastPublishedAt         time.Time `json:"last_published_at,omitempty"`
	LatestRevisionCreatedAt time.Time `json:"latest_revision_created_at,omitempty"`

	WPPostID   int    `gorm:"uniqueIndex" json:"wp_post_id"`
	WPPostType string `gorm:"size:50" json:"wp_post_type,omitempty"`
	WPLink     string `gorm:"size:2048" json:"wp_link,omitempty"`

	Live bool `json:"live"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// ImportRun records the aggregate outcome of one importer invocation.
type ImportRun struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	RunID       string     `gorm:"uniqueIndex;size:36" json:"run_id"`
	Source      string     `gorm:"size:1024" json:"source"`
	Status      RunStatus  `gorm:"size:20;default:'running'" json:"status"`
	Processed   int        `json:"processed"`
	Imported    int        `json:"imported"`
	Skipped     int        `json:"skipped"`
	Errors      string     `gorm:"type:text" json:"errors,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (Page) TableName() string {
	return "pages"
}

func (ImportRun) TableName() string {
	return "import_runs"
}
