package markup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLAnalyzer accumulates tag and inline-style frequencies across many
// content fragments. Feed it the line-break-converted markup of each
// eligible item, then read the counts to see what a full import will face.
type HTMLAnalyzer struct {
	TagCounts   map[string]int
	StyleCounts map[string]int
}

func NewHTMLAnalyzer() *HTMLAnalyzer {
	return &HTMLAnalyzer{
		TagCounts:   make(map[string]int),
		StyleCounts: make(map[string]int),
	}
}

// Analyze counts every element tag and every inline style property in the
// fragment.
func (a *HTMLAnalyzer) Analyze(html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse markup: %w", err)
	}

	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		a.TagCounts[goquery.NodeName(sel)]++

		style, ok := sel.Attr("style")
		if !ok {
			return
		}
		for name := range parseDeclarations(style) {
			a.StyleCounts[name]++
		}
	})

	return nil
}

// Report renders the accumulated counts, most frequent first.
func (a *HTMLAnalyzer) Report() string {
	var sb strings.Builder

	sb.WriteString("Tags found:\n")
	writeCounts(&sb, a.TagCounts)
	sb.WriteString("\nInline styles found:\n")
	writeCounts(&sb, a.StyleCounts)

	return sb.String()
}

func writeCounts(sb *strings.Builder, counts map[string]int) {
	if len(counts) == 0 {
		sb.WriteString("  (none)\n")
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		fmt.Fprintf(sb, "  %-20s %d\n", name, counts[name])
	}
}
