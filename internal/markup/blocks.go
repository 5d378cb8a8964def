package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Block is one typed unit of structured content extracted from sanitized
// markup. Value shape depends on Type.
type Block struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// HeadingValue is the payload of a "heading" block.
type HeadingValue struct {
	Importance string `json:"importance"`
	Text       string `json:"text"`
}

// ImageValue is the payload of an "image" block.
type ImageValue struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// BlockBuilder turns a sanitized HTML fragment into an ordered block
// sequence. Headings, standalone images and iframes become dedicated
// blocks; consecutive runs of anything else collapse into one rich-text
// block, preserving document order.
type BlockBuilder interface {
	Build(html string) ([]Block, error)
}

type blockBuilder struct{}

func NewBlockBuilder() BlockBuilder {
	return &blockBuilder{}
}

func (b *blockBuilder) Build(html string) ([]Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse sanitized markup: %w", err)
	}

	blocks := []Block{}
	var richText strings.Builder

	flush := func() {
		if richText.Len() == 0 {
			return
		}
		blocks = append(blocks, Block{Type: "rich_text", Value: richText.String()})
		richText.Reset()
	}

	doc.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)

		switch tag {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			flush()
			blocks = append(blocks, Block{
				Type:  "heading",
				Value: HeadingValue{Importance: tag, Text: strings.TrimSpace(sel.Text())},
			})
		case "iframe":
			flush()
			src, _ := sel.Attr("src")
			blocks = append(blocks, Block{Type: "embed", Value: src})
		default:
			// A paragraph holding nothing but one image becomes an image
			// block rather than rich text.
			if img := soleImage(sel, tag); img != nil {
				flush()
				blocks = append(blocks, Block{Type: "image", Value: *img})
				return
			}

			outer, err := goquery.OuterHtml(sel)
			if err != nil {
				return
			}
			richText.WriteString(outer)
		}
	})

	flush()
	return blocks, nil
}

// soleImage reports whether sel is an image on its own (an <img> element,
// or a <p>/<figure> whose only content is one <img>) and returns its value.
func soleImage(sel *goquery.Selection, tag string) *ImageValue {
	img := sel
	switch tag {
	case "img":
	case "p", "figure":
		if sel.Children().Length() != 1 || strings.TrimSpace(sel.Text()) != "" {
			return nil
		}
		img = sel.Children().First()
		if goquery.NodeName(img) != "img" {
			return nil
		}
	default:
		return nil
	}

	src, _ := img.Attr("src")
	alt, _ := img.Attr("alt")
	return &ImageValue{Src: src, Alt: alt}
}
