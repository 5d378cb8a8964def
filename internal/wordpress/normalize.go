package wordpress

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"github.com/contentbridge/wpimport/internal/markup"
)

// ErrDateFormat is returned for date strings that are neither the known
// invalid sentinel nor a well-formed WordPress timestamp.
var ErrDateFormat = fmt.Errorf("unexpected date format")

const (
	wpDateLayout = "2006-01-02 15:04:05"

	// invalidDateSentinel is what WordPress writes for posts that never
	// had a real date.
	invalidDateSentinel = "0000-00-00 00:00:00"
)

// fallbackDate keeps sentinel-dated pages savable and findable in the
// target admin.
var fallbackDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// SlugOutcome reports what the slug normalizer had to do.
type SlugOutcome string

const (
	SlugOK      SlugOutcome = "ok"
	SlugDerived SlugOutcome = "derived-from-title"
	SlugFixed   SlugOutcome = "illegal-characters-fixed"
)

// ParseDate normalizes a raw WordPress timestamp.
//
// The invalid sentinel maps to the fixed fallback date with valid=false so
// the record stays savable; every other well-formed value parses to a UTC
// timestamp with valid=true. Anything else fails with ErrDateFormat, and
// the importer's bad-date policy decides whether that aborts the run.
func ParseDate(value string) (time.Time, bool, error) {
	if value == invalidDateSentinel {
		return fallbackDate, false, nil
	}

	t, err := time.ParseInLocation(wpDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %q", ErrDateFormat, value)
	}

	return t, true, nil
}

// ParseSlug normalizes a raw slug, deriving one from the title when the
// raw value is empty. Slugifying is idempotent, so an already-valid slug
// passes through unchanged with outcome SlugOK; a non-empty value the
// slugifier had to change reports SlugFixed. Never fails.
func ParseSlug(value, title string) (string, SlugOutcome) {
	if value == "" {
		return slug.Make(title), SlugDerived
	}

	cleaned := slug.Make(value)
	if cleaned != value {
		return cleaned, SlugFixed
	}
	return cleaned, SlugOK
}

// ContentPipeline normalizes raw post markup into a serialized block
// sequence. The stages run in a fixed order: line-break conversion, then
// inline-style fixing, then sanitization, then block building. Style
// fixing must see the markup before the sanitizer strips it, so the order
// is a correctness requirement.
type ContentPipeline struct {
	Linebreaks markup.Filter
	Styles     markup.Filter
	Sanitize   markup.Filter
	Blocks     markup.BlockBuilder
}

// NewContentPipeline wires the default collaborator stages.
func NewContentPipeline() *ContentPipeline {
	return &ContentPipeline{
		Linebreaks: markup.FilterFunc(markup.Linebreaks),
		Styles:     markup.NewStyleFixer(),
		Sanitize:   markup.NewCleaner(),
		Blocks:     markup.NewBlockBuilder(),
	}
}

// Normalize runs the full pipeline over one raw content value and returns
// the serialized block JSON, the intermediate processed HTML and the block
// sequence itself.
func (p *ContentPipeline) Normalize(value string) (string, string, []markup.Block, error) {
	processed, err := p.Linebreaks.Filter(value)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to convert line breaks: %w", err)
	}

	processed, err = p.Styles.Filter(processed)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to fix styles: %w", err)
	}

	processed, err = p.Sanitize.Filter(processed)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to sanitize markup: %w", err)
	}

	blocks, err := p.Blocks.Build(processed)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to build blocks: %w", err)
	}

	serialized, err := json.Marshal(blocks)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to serialize blocks: %w", err)
	}

	return string(serialized), processed, blocks, nil
}
