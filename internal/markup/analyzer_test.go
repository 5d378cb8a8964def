package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLAnalyzer_Counts(t *testing.T) {
	analyzer := NewHTMLAnalyzer()

	require.NoError(t, analyzer.Analyze(`<p>one</p><p style="font-weight: bold;">two</p>`))
	require.NoError(t, analyzer.Analyze(`<h2>head</h2><p style="font-weight: bold; color: red;">three</p>`))

	assert.Equal(t, 3, analyzer.TagCounts["p"])
	assert.Equal(t, 1, analyzer.TagCounts["h2"])
	assert.Equal(t, 2, analyzer.StyleCounts["font-weight"])
	assert.Equal(t, 1, analyzer.StyleCounts["color"])
}

func TestHTMLAnalyzer_Report(t *testing.T) {
	analyzer := NewHTMLAnalyzer()
	require.NoError(t, analyzer.Analyze(`<p style="color: red;">x</p>`))

	report := analyzer.Report()
	assert.Contains(t, report, "Tags found:")
	assert.Contains(t, report, "p")
	assert.Contains(t, report, "color")
}

func TestHTMLAnalyzer_EmptyReport(t *testing.T) {
	analyzer := NewHTMLAnalyzer()

	assert.Contains(t, analyzer.Report(), "(none)")
}
