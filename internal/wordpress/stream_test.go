package wordpress

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_FixtureExport(t *testing.T) {
	stream, err := Open("fixtures/export.xml")
	require.NoError(t, err)
	defer stream.Close()

	first, err := stream.Next()
	require.NoError(t, err)

	assert.Equal(t, "Hello World", first["title"])
	assert.Equal(t, "101", first["wp:post_id"])
	assert.Equal(t, "post", first["wp:post_type"])
	assert.Equal(t, "publish", first["wp:status"])
	assert.Equal(t, "hello-world", first["wp:post_name"])
	assert.Contains(t, first["content:encoded"], "<b>first</b>")
	assert.Equal(t, "Welcome excerpt", first["excerpt:encoded"])
	assert.Equal(t, "admin", first["dc:creator"])

	second, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "102", second["wp:post_id"])
	assert.Equal(t, "0000-00-00 00:00:00", second["wp:post_date_gmt"])
	assert.Equal(t, "", second["wp:post_name"])

	third, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "attachment", third["wp:post_type"])

	_, err = stream.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStream_DocumentOrder(t *testing.T) {
	stream, err := Open("fixtures/export.xml")
	require.NoError(t, err)
	defer stream.Close()

	var ids []string
	for {
		record, err := stream.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		ids = append(ids, record["wp:post_id"])
	}

	assert.Equal(t, []string{"101", "102", "103"}, ids)
}

func TestStream_MalformedDocument(t *testing.T) {
	stream := NewStream(strings.NewReader("<rss><channel><item><title>x</title>"))

	_, err := stream.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestStream_MissingFile(t *testing.T) {
	_, err := Open("fixtures/does-not-exist.xml")
	require.Error(t, err)
}

func TestStream_RepeatedChildLastWins(t *testing.T) {
	doc := `<rss><channel><item>
		<category>first</category>
		<category>second</category>
	</item></channel></rss>`
	stream := NewStream(strings.NewReader(doc))

	record, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "second", record["category"])
}

func TestQualifiedName_UnknownNamespaceFallback(t *testing.T) {
	doc := `<rss xmlns:geo="http://www.w3.org/2003/01/geo/"><channel><item>
		<geo:lat>51.5</geo:lat>
	</item></channel></rss>`
	stream := NewStream(strings.NewReader(doc))

	record, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "51.5", record["geo:lat"])
}
