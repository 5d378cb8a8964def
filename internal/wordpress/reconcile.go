package wordpress

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/contentbridge/wpimport/internal/entities"
)

// Outcome tags the terminal state of one reconciliation.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeSkipped Outcome = "skipped"
)

// PageStore is the target record store the reconciler writes through.
// FindByPostID returns (nil, nil) when no page carries the identity.
type PageStore interface {
	FindByPostID(postID int) (*entities.Page, error)
	ParentExists(id uint) (bool, error)
	AddChild(parentID uint, page *entities.Page) error
	Save(page *entities.Page) error
}

// Reconciler creates or updates exactly one target page per source
// identity. The wp:post_id identity is the sole reconciliation key; it is
// set on create and never touched again, which is what makes whole-run
// re-imports safe.
type Reconciler struct {
	store    PageStore
	parentID uint
}

func NewReconciler(store PageStore, parentID uint) *Reconciler {
	return &Reconciler{store: store, parentID: parentID}
}

// Reconcile looks the identity up and either creates a new page under the
// configured parent or fully overwrites the existing one. Status is
// applied the same way on both paths: draft pages end up not live,
// everything else live.
func (r *Reconciler) Reconcile(record TransformedRecord, postID int, status string) (*entities.Page, Outcome, error) {
	existing, err := r.store.FindByPostID(postID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up page for post %d: %w", postID, err)
	}

	if existing == nil {
		page := &entities.Page{}
		applyValues(page, record.Values)
		applyStatus(page, status)

		if err := r.store.AddChild(r.parentID, page); err != nil {
			return nil, "", fmt.Errorf("failed to create page for post %d: %w", postID, err)
		}
		return page, OutcomeCreated, nil
	}

	applyValues(existing, record.Values)
	applyStatus(existing, status)

	if err := r.store.Save(existing); err != nil {
		return nil, "", fmt.Errorf("failed to update page for post %d: %w", postID, err)
	}
	return existing, OutcomeUpdated, nil
}

func applyStatus(page *entities.Page, status string) {
	page.Live = status != string(entities.PageStatusDraft)
}

// applyValues overwrites every mapped page field from the transformed
// values. Keys without a matching page field are ignored.
func applyValues(page *entities.Page, values map[string]any) {
	for field, value := range values {
		switch field {
		case "title":
			page.Title = asString(value)
		case "slug":
			page.Slug = asString(value)
		case "search_description":
			page.SearchDescription = asString(value)
		case "body":
			page.Body = asString(value)
		case "wp_processed_content":
			page.WPProcessedContent = asString(value)
		case "wp_block_json":
			page.WPBlockJSON = asString(value)
		case "first_published_at":
			page.FirstPublishedAt = asTime(value)
		case "last_published_at":
			page.LastPublishedAt = asTime(value)
		case "latest_revision_created_at":
			page.LatestRevisionCreatedAt = asTime(value)
		case "wp_post_id":
			page.WPPostID = asInt(value)
		case "wp_post_type":
			page.WPPostType = asString(value)
		case "wp_link":
			page.WPLink = asString(value)
		}
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asTime(v any) time.Time {
	t, _ := v.(time.Time)
	return t
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case string:
		parsed, _ := strconv.Atoi(strings.TrimSpace(n))
		return parsed
	}
	return 0
}
