package wordpress

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TransformedRecord is one raw item mapped and normalized into target page
// field values, plus the validity signals the audit log records.
type TransformedRecord struct {
	// Values maps every target field named by the MappingSpec to its
	// normalized value (string, time.Time or serialized block JSON). No
	// target field is ever omitted: an unresolved alias yields an empty
	// value under its key.
	Values map[string]any

	// DateValid is true only when every date field parsed without the
	// fallback substitution.
	DateValid bool

	SlugOutcome SlugOutcome
}

// Transformer applies a MappingSpec and the field normalizers to raw
// records, one at a time.
type Transformer struct {
	mapping MappingSpec
	content *ContentPipeline
}

// NewTransformer validates the mapping (duplicate aliases fail fast) and
// returns a transformer using the given content pipeline.
func NewTransformer(mapping MappingSpec, content *ContentPipeline) (*Transformer, error) {
	if _, err := mapping.Invert(); err != nil {
		return nil, err
	}
	if content == nil {
		content = NewContentPipeline()
	}
	return &Transformer{mapping: mapping, content: content}, nil
}

// Transform produces exactly one TransformedRecord from a raw item.
// Content fields run through the markup pipeline, date fields through the
// date normalizer (reduced to a single all-valid flag) and slug fields
// through the slug normalizer, with the title looked up directly off the
// record.
func (t *Transformer) Transform(item RawRecord) (TransformedRecord, error) {
	values := make(map[string]any, len(t.mapping.FieldMap)+2)

	for field := range t.mapping.FieldMap {
		values[field] = t.resolve(item, field)
	}

	for _, field := range t.mapping.ContentFields {
		serialized, processed, blocks, err := t.content.Normalize(t.resolve(item, field))
		if err != nil {
			return TransformedRecord{}, fmt.Errorf("failed to normalize %s: %w", field, err)
		}

		pretty, err := json.MarshalIndent(blocks, "", "    ")
		if err != nil {
			return TransformedRecord{}, fmt.Errorf("failed to serialize %s blocks: %w", field, err)
		}

		values[field] = serialized
		values["wp_processed_content"] = processed
		values["wp_block_json"] = string(pretty)
	}

	dateValid := true
	for _, field := range t.mapping.DateFields {
		parsed, valid, err := ParseDate(t.resolve(item, field))
		if err != nil {
			return TransformedRecord{}, err
		}
		values[field] = parsed
		dateValid = dateValid && valid
	}

	slugOutcome := SlugOK
	for _, field := range t.mapping.SlugFields {
		cleaned, outcome := ParseSlug(t.resolve(item, field), item["title"])
		values[field] = cleaned
		slugOutcome = outcome
	}

	return TransformedRecord{
		Values:      values,
		DateValid:   dateValid,
		SlugOutcome: slugOutcome,
	}, nil
}

// resolve returns the raw value feeding a target field: the first alias in
// the field's declared list that is present on the record, or the empty
// string when none match.
func (t *Transformer) resolve(item RawRecord, field string) string {
	for _, alias := range strings.Split(t.mapping.FieldMap[field], ",") {
		alias = strings.TrimSpace(alias)
		if value, ok := item[alias]; ok && value != "" {
			return value
		}
	}
	return ""
}
