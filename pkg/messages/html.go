package messages

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// HTML renders the bag as an unordered list ready to inline into a page.
// Message texts pass through a sanitizer that keeps basic emphasis markup and
// strips everything else. An empty bag renders to "".
func (b *Bag) HTML() string {
	texts := b.Texts()
	if len(texts) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<ul class="form-messages">`)
	for _, text := range texts {
		cleaned := strings.TrimSpace(textSanitizer().Sanitize(text))
		if cleaned == "" {
			continue
		}
		sb.WriteString("<li>")
		sb.WriteString(cleaned)
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code")
		textPolicy = policy
	})
	return textPolicy
}
