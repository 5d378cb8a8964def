package entities

import "fmt"

// ErrModelNotFound is returned when an import targets an unknown page model.
var ErrModelNotFound = fmt.Errorf("page model not found")

// pageModels maps the externally-configurable model names to their tables.
// Mirrors the app/model pair the import command accepts: new target models
// register here.
var pageModels = map[string]string{
	"pages.PostPage": "pages",
}

// ResolvePageModel validates a configured "app.Model" selector and returns
// the backing table name. Unknown selectors are fatal to the whole run, so
// callers must check this before any record is processed.
func ResolvePageModel(name string) (string, error) {
	table, ok := pageModels[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (known: pages.PostPage)", ErrModelNotFound, name)
	}
	return table, nil
}
