package utils

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString formats an ordered map into a single bracketed string, keeping insertion order.
// Example: {foo: 1, bar: true} => "[foo=1 bar=true]".
func OrderedMapToString(m *orderedmap.OrderedMap[string, any]) string {
	if m == nil || m.Len() == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for el := m.Front(); el != nil; el = el.Next() {
		if el != m.Front() {
			sb.WriteByte(' ')
		}
		sb.WriteString(el.Key)
		sb.WriteByte('=')
		sb.WriteString(formatValue(el.Value))
	}
	sb.WriteByte(']')
	return sb.String()
}

// OrderedMapToFields copies an ordered map into a plain map, for loggers that take structured fields.
func OrderedMapToFields(m *orderedmap.OrderedMap[string, any]) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	fields := make(map[string]any, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		fields[el.Key] = el.Value
	}
	return fields
}

func formatValue(v any) string {
	switch v := v.(type) {
	case float32:
		return fmt.Sprintf("%.3f", v)
	case float64:
		return fmt.Sprintf("%.3f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
