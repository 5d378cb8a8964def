package wordpress

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentbridge/wpimport/internal/markup"
)

func TestParseDate_Sentinel(t *testing.T) {
	parsed, valid, err := ParseDate("0000-00-00 00:00:00")

	require.NoError(t, err)
	assert.False(t, valid)
	assert.Equal(t, time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDate_Valid(t *testing.T) {
	parsed, valid, err := ParseDate("2010-07-13 16:16:46")

	require.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, time.Date(2010, time.July, 13, 16, 16, 46, 0, time.UTC), parsed)
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestParseDate_Unparsable(t *testing.T) {
	_, _, err := ParseDate("13/07/2010")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateFormat)
}

func TestParseSlug_DerivedFromTitle(t *testing.T) {
	cleaned, outcome := ParseSlug("", "Hello World!")

	assert.Equal(t, "hello-world", cleaned)
	assert.Equal(t, SlugDerived, outcome)
}

func TestParseSlug_Passthrough(t *testing.T) {
	cleaned, outcome := ParseSlug("already-valid-slug", "Some Title")

	assert.Equal(t, "already-valid-slug", cleaned)
	assert.Equal(t, SlugOK, outcome)
}

func TestParseSlug_IllegalCharactersFixed(t *testing.T) {
	cleaned, outcome := ParseSlug("Bad Slug!", "Some Title")

	assert.Equal(t, "bad-slug", cleaned)
	assert.Equal(t, SlugFixed, outcome)
}

func TestContentPipeline_Normalize(t *testing.T) {
	pipeline := NewContentPipeline()

	raw := "Intro paragraph.\n\nStyled <span style=\"font-weight: bold;\">words</span> here."
	serialized, processed, blocks, err := pipeline.Normalize(raw)
	require.NoError(t, err)

	// Line breaks became paragraphs, styles became semantic markup, and
	// the style attribute itself did not survive sanitization.
	assert.Contains(t, processed, "<p>Intro paragraph.</p>")
	assert.Contains(t, processed, "<b>words</b>")
	assert.NotContains(t, processed, "style=")

	require.NotEmpty(t, blocks)
	assert.Equal(t, "rich_text", blocks[0].Type)

	var decoded []markup.Block
	require.NoError(t, json.Unmarshal([]byte(serialized), &decoded))
	assert.Len(t, decoded, len(blocks))
}

func TestContentPipeline_StageOrder(t *testing.T) {
	// The style fixer must see style attributes before the sanitizer
	// strips them: a bold inline style survives as a <b> tag only when
	// the ordering is right.
	pipeline := NewContentPipeline()

	_, processed, _, err := pipeline.Normalize(`<p style="font-weight: 700;">heavy</p>`)
	require.NoError(t, err)
	assert.Contains(t, processed, "<b>heavy</b>")
}

func TestContentPipeline_EmptyInput(t *testing.T) {
	pipeline := NewContentPipeline()

	serialized, processed, blocks, err := pipeline.Normalize("")
	require.NoError(t, err)
	assert.Equal(t, "[]", serialized)
	assert.Equal(t, "", processed)
	assert.Empty(t, blocks)
}
