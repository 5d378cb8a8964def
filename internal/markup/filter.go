// Package markup holds the collaborator stages the content normalizer runs
// raw post markup through: line-break conversion, inline-style fixing,
// sanitization and block building. Each stage is a small, swappable unit
// with a string-in/string-out (or string-in/blocks-out) contract.
package markup

// Filter transforms one HTML fragment into another.
type Filter interface {
	Filter(html string) (string, error)
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(html string) (string, error)

func (f FilterFunc) Filter(html string) (string, error) {
	return f(html)
}
