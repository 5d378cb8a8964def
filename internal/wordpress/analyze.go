package wordpress

import (
	"io"
	"strings"

	"github.com/contentbridge/wpimport/internal/markup"
)

// AnalyzeHTML feeds the raw content of every eligible item through the
// line-break stage and into the analyzer, without writing anything. Useful
// for sizing up an export before a real import.
func AnalyzeHTML(source RecordSource, mapping MappingSpec, pageTypes, pageStatuses []string, analyzer *markup.HTMLAnalyzer) error {
	transformer, err := NewTransformer(mapping, NewContentPipeline())
	if err != nil {
		return err
	}

	types := toSet(pageTypes)
	statuses := toSet(pageStatuses)

	for {
		item, err := source.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if !types[item["wp:post_type"]] || !statuses[item["wp:status"]] {
			continue
		}

		for _, field := range mapping.ContentFields {
			value, err := markup.Linebreaks(transformer.resolve(item, field))
			if err != nil {
				return err
			}
			if strings.TrimSpace(value) == "" {
				continue
			}
			if err := analyzer.Analyze(value); err != nil {
				return err
			}
		}
	}
}
