package config

const (
	// DefaultDatabasePath is the default path for the target page store.
	DefaultDatabasePath = "./wpimport.db"

	// DefaultPageModel is the page model imports target unless overridden.
	DefaultPageModel = "pages.PostPage"
)
