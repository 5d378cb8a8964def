package markup

import (
	"github.com/microcosm-cc/bluemonday"
)

// Cleaner strips disallowed tags and attributes from the processed markup
// before block extraction. The policy is allow-list based: user-generated
// content tags plus the class and alignment attributes the style fixer
// emits, and iframes for the embed block.
type Cleaner struct {
	policy *bluemonday.Policy
}

func NewCleaner() *Cleaner {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()
	policy.AllowElements("iframe")
	policy.AllowAttrs("src", "width", "height", "title").OnElements("iframe")
	policy.AllowAttrs("alt", "width", "height").OnElements("img")
	return &Cleaner{policy: policy}
}

func (c *Cleaner) Filter(html string) (string, error) {
	return c.policy.Sanitize(html), nil
}
