package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StyleFixer rewrites inline style declarations into markup the block
// builder understands: bold and italic styles become semantic tags and
// text alignment becomes a class. It runs before the sanitizer, which
// would otherwise strip the style attributes it inspects.
type StyleFixer struct{}

func NewStyleFixer() *StyleFixer {
	return &StyleFixer{}
}

func (f *StyleFixer) Filter(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}

	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style, _ := sel.Attr("style")
		decls := parseDeclarations(style)

		if isBold(decls["font-weight"]) {
			wrapInner(sel, "b")
		}
		if decls["font-style"] == "italic" {
			wrapInner(sel, "i")
		}
		if align := decls["text-align"]; align != "" {
			sel.AddClass("align-" + align)
		}

		sel.RemoveAttr("style")
	})

	return doc.Find("body").Html()
}

func wrapInner(sel *goquery.Selection, tag string) {
	inner, err := sel.Html()
	if err != nil {
		return
	}
	sel.SetHtml("<" + tag + ">" + inner + "</" + tag + ">")
}

func parseDeclarations(style string) map[string]string {
	decls := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		decls[strings.ToLower(strings.TrimSpace(name))] = strings.ToLower(strings.TrimSpace(value))
	}
	return decls
}

func isBold(weight string) bool {
	switch weight {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}
