package wordpress

import (
	"fmt"
	"strings"
)

// ErrDuplicateAlias is returned when two target fields claim the same
// source alias, which would make the inverse lookup ambiguous.
var ErrDuplicateAlias = fmt.Errorf("duplicate source alias in field map")

// MappingSpec declares how a raw WXR item maps onto page fields.
//
// FieldMap keys are target field names; values are comma-separated lists of
// source aliases (a target field may be fed by any of several source
// fields). DateFields, SlugFields and ContentFields name the target fields
// that need the corresponding normalizer.
//
// A MappingSpec is read-only after construction and is passed explicitly
// into every component that needs it.
type MappingSpec struct {
	FieldMap      map[string]string
	DateFields    []string
	SlugFields    []string
	ContentFields []string
}

// DefaultMapping covers a stock WordPress export feeding a PostPage model.
func DefaultMapping() MappingSpec {
	return MappingSpec{
		FieldMap: map[string]string{
			"title":                      "title",
			"slug":                       "wp:post_name",
			"first_published_at":         "wp:post_date_gmt",
			"last_published_at":          "wp:post_date",
			"latest_revision_created_at": "wp:post_modified",
			"body":                       "content:encoded",
			"search_description":         "description,excerpt:encoded",
			"wp_post_id":                 "wp:post_id",
			"wp_post_type":               "wp:post_type",
			"wp_link":                    "link",
		},
		DateFields:    []string{"first_published_at", "last_published_at", "latest_revision_created_at"},
		SlugFields:    []string{"slug"},
		ContentFields: []string{"body"},
	}
}

// Invert builds the source-alias -> target-field lookup used to resolve
// which raw field feeds each page field. Every alias in a comma-separated
// list registers against its target field. An alias claimed by more than
// one target field fails with ErrDuplicateAlias rather than silently
// letting the last registration win.
func (m MappingSpec) Invert() (map[string]string, error) {
	inverse := make(map[string]string, len(m.FieldMap))

	for field, aliases := range m.FieldMap {
		for _, alias := range strings.Split(aliases, ",") {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				continue
			}
			if owner, taken := inverse[alias]; taken && owner != field {
				return nil, fmt.Errorf("%w: %q claimed by both %q and %q", ErrDuplicateAlias, alias, owner, field)
			}
			inverse[alias] = field
		}
	}

	return inverse, nil
}
