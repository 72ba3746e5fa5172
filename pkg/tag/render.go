package tag

import (
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-forms/internal/coerce"
)

// intrinsicOrder lists the attributes rendered first, in this order. The
// remainder render sorted so output is deterministic.
var intrinsicOrder = []string{"rel", "type", "for", "src", "href", "action", "id", "name", "value", "class"}

// RenderAttributes writes openTag followed by the rendered attributes. Values
// are HTML-escaped; nil values are skipped. The caller closes the tag.
func RenderAttributes(openTag string, attrs Attrs) string {
	var sb strings.Builder
	sb.WriteString(openTag)

	if len(attrs) == 0 {
		return sb.String()
	}

	written := make(map[string]struct{}, len(attrs))
	for _, key := range intrinsicOrder {
		value, ok := attrs[key]
		if !ok || value == nil {
			continue
		}
		writeAttribute(&sb, key, value)
		written[key] = struct{}{}
	}

	rest := make([]string, 0, len(attrs))
	for key, value := range attrs {
		if value == nil {
			continue
		}
		if _, ok := written[key]; ok {
			continue
		}
		rest = append(rest, key)
	}
	sort.Strings(rest)

	for _, key := range rest {
		writeAttribute(&sb, key, attrs[key])
	}
	return sb.String()
}

func writeAttribute(sb *strings.Builder, key string, value any) {
	sb.WriteString(" ")
	sb.WriteString(key)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(coerce.ToString(value)))
	sb.WriteString(`"`)
}

// Clone returns a shallow copy of attrs. A nil map clones to an empty one.
func Clone(attrs Attrs) Attrs {
	out := make(Attrs, len(attrs))
	for key, value := range attrs {
		out[key] = value
	}
	return out
}
