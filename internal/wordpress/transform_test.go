package wordpress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem() RawRecord {
	return RawRecord{
		"title":            "Hello World",
		"link":             "https://example.com/hello-world/",
		"content:encoded":  "Welcome.\n\nThe <b>first</b> post.",
		"excerpt:encoded":  "Welcome excerpt",
		"wp:post_id":       "101",
		"wp:post_date":     "2010-07-13 16:16:46",
		"wp:post_date_gmt": "2010-07-13 15:16:46",
		"wp:post_modified": "2010-07-14 09:00:00",
		"wp:post_name":     "hello-world",
		"wp:status":        "publish",
		"wp:post_type":     "post",
	}
}

func TestTransformer_Transform(t *testing.T) {
	transformer, err := NewTransformer(DefaultMapping(), nil)
	require.NoError(t, err)

	record, err := transformer.Transform(testItem())
	require.NoError(t, err)

	assert.Equal(t, "Hello World", record.Values["title"])
	assert.Equal(t, "hello-world", record.Values["slug"])
	assert.Equal(t, "101", record.Values["wp_post_id"])
	assert.Equal(t, "post", record.Values["wp_post_type"])
	assert.True(t, record.DateValid)
	assert.Equal(t, SlugOK, record.SlugOutcome)

	assert.Equal(t, time.Date(2010, time.July, 13, 15, 16, 46, 0, time.UTC), record.Values["first_published_at"])
	assert.Equal(t, time.Date(2010, time.July, 13, 16, 16, 46, 0, time.UTC), record.Values["last_published_at"])

	// Content normalization populates the body plus both diagnostic fields.
	body, ok := record.Values["body"].(string)
	require.True(t, ok)
	assert.Contains(t, body, "rich_text")
	assert.Contains(t, record.Values["wp_processed_content"], "<b>first</b>")
	assert.Contains(t, record.Values["wp_block_json"], "rich_text")
}

func TestTransformer_NoTargetFieldDropped(t *testing.T) {
	transformer, err := NewTransformer(DefaultMapping(), nil)
	require.NoError(t, err)

	// A nearly empty item still yields a value under every mapped field,
	// except dates, which have no parseable fallback.
	item := RawRecord{
		"title":            "Sparse",
		"wp:post_date":     "2010-01-01 00:00:00",
		"wp:post_date_gmt": "2010-01-01 00:00:00",
		"wp:post_modified": "2010-01-01 00:00:00",
	}

	record, err := transformer.Transform(item)
	require.NoError(t, err)

	for field := range DefaultMapping().FieldMap {
		_, present := record.Values[field]
		assert.True(t, present, "missing target field %q", field)
	}
	assert.Equal(t, "", record.Values["wp_link"])
}

func TestTransformer_AliasFallback(t *testing.T) {
	transformer, err := NewTransformer(DefaultMapping(), nil)
	require.NoError(t, err)

	// search_description draws from "description" first, then
	// "excerpt:encoded"; with description absent the excerpt wins.
	item := testItem()
	delete(item, "description")

	record, err := transformer.Transform(item)
	require.NoError(t, err)
	assert.Equal(t, "Welcome excerpt", record.Values["search_description"])

	item["description"] = "An explicit description"
	record, err = transformer.Transform(item)
	require.NoError(t, err)
	assert.Equal(t, "An explicit description", record.Values["search_description"])
}

func TestTransformer_SlugDerivedAndDateFallback(t *testing.T) {
	transformer, err := NewTransformer(DefaultMapping(), nil)
	require.NoError(t, err)

	item := testItem()
	item["wp:post_name"] = ""
	item["wp:post_date_gmt"] = "0000-00-00 00:00:00"

	record, err := transformer.Transform(item)
	require.NoError(t, err)

	assert.Equal(t, "hello-world", record.Values["slug"])
	assert.Equal(t, SlugDerived, record.SlugOutcome)
	assert.False(t, record.DateValid, "one sentinel date fails the whole record's date check")
	assert.Equal(t, time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC), record.Values["first_published_at"])
}

func TestTransformer_UnparsableDate(t *testing.T) {
	transformer, err := NewTransformer(DefaultMapping(), nil)
	require.NoError(t, err)

	item := testItem()
	item["wp:post_modified"] = "July 14th 2010"

	_, err = transformer.Transform(item)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateFormat)
}
