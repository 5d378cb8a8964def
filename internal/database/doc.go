// Package database provides the data access layer for the page store.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, root page seeding
//	├── pages/           # Page persistence and tree insertion
//	└── runs/            # Import run bookkeeping
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	db, err := database.NewDatabase("./wpimport.db")
//
//	pageRepo := pages.NewRepository(db.DB)
//	runRepo := runs.NewRepository(db.DB)
//
//	page, err := pageRepo.FindByPostID(101)
//
// # Interface Implementations
//
//   - pages.Repository: implements wordpress.PageStore
//
// Each implementation carries a compile-time check:
//
//	var _ wordpress.PageStore = (*Repository)(nil)
//
// # Identity Contract
//
// Every migrated page stores its wp_post_id under a unique index. That
// column is written once on create and never regenerated; it is the only
// key the importer uses to decide between creating and updating, which is
// what makes re-imports idempotent.
package database
