package wordpress

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrParse wraps any structural failure while decoding the export document.
var ErrParse = fmt.Errorf("malformed export document")

// RawRecord is one flat WXR item: qualified source field name -> raw text.
// A missing field is simply an absent key.
type RawRecord map[string]string

// Stream lazily yields one RawRecord per <item> element of a WXR export.
// Exactly one item subtree is materialized at a time, so arbitrarily large
// exports stay memory-bounded. Records come back in document order.
//
// A Stream is not restartable; reopen the document for a second pass.
type Stream struct {
	dec    *xml.Decoder
	closer io.Closer
}

// Open opens the export document at path. A missing or unreadable file
// fails here, before any record is yielded.
func Open(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	s := NewStream(f)
	s.closer = f
	return s, nil
}

// NewStream wraps an already-open reader.
func NewStream(r io.Reader) *Stream {
	dec := xml.NewDecoder(r)
	dec.Entity = xml.HTMLEntity
	return &Stream{dec: dec}
}

// Next advances to the next <item> and returns it as a RawRecord.
// It returns io.EOF once the document is exhausted and a wrapped ErrParse
// on malformed markup.
func (s *Stream) Next() (RawRecord, error) {
	for {
		tok, err := s.dec.Token()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "item" {
			continue
		}

		record, err := s.expandItem()
		if err != nil {
			return nil, err
		}
		return record, nil
	}
}

// Close releases the underlying document handle, if the stream owns one.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// expandItem consumes tokens up to the matching </item>, flattening each
// direct child element into the record under its qualified name. Repeated
// child names overwrite: the last value wins.
func (s *Stream) expandItem() (RawRecord, error) {
	record := make(RawRecord)

	for {
		tok, err := s.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := qualifiedName(t.Name)
			text, err := s.collectText(t.Name)
			if err != nil {
				return nil, err
			}
			record[name] = text
		case xml.EndElement:
			if t.Name.Local == "item" {
				return record, nil
			}
		}
	}
}

// collectText gathers all character data (including CDATA) inside the
// element opened by start, through nested elements, until its end tag.
func (s *Stream) collectText(start xml.Name) (string, error) {
	var sb strings.Builder
	depth := 1

	for depth > 0 {
		tok, err := s.dec.Token()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(t)
		}
	}

	return sb.String(), nil
}

// wxrNamespaces maps the namespace URIs a WXR export declares back to the
// conventional prefixes the field mapping is written against.
var wxrNamespaces = map[string]string{
	"http://wordpress.org/export/1.0/":         "wp",
	"http://wordpress.org/export/1.1/":         "wp",
	"http://wordpress.org/export/1.2/":         "wp",
	"http://purl.org/rss/1.0/modules/content/": "content",
	"http://wordpress.org/export/1.0/excerpt/": "excerpt",
	"http://wordpress.org/export/1.1/excerpt/": "excerpt",
	"http://wordpress.org/export/1.2/excerpt/": "excerpt",
	"http://purl.org/dc/elements/1.1/":         "dc",
	"http://wellformedweb.org/CommentAPI/":     "wfw",
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if prefix, ok := wxrNamespaces[n.Space]; ok {
		return prefix + ":" + n.Local
	}
	// The decoder leaves unbound prefixes as-is; a resolved but unknown
	// URI falls back to its trailing path segment.
	if strings.Contains(n.Space, "/") {
		trimmed := strings.TrimRight(n.Space, "/")
		return trimmed[strings.LastIndex(trimmed, "/")+1:] + ":" + n.Local
	}
	return n.Space + ":" + n.Local
}
