package nodes

import "strings"

var truthyTokens = map[string]struct{}{
	"true": {},
	"t":    {},
	"yes":  {},
	"y":    {},
	"1":    {},
	"on":   {},
}

// CoerceBool applies the condition coercion rule shared by the branch and
// while-loop nodes: booleans pass through, numerics are truthy when
// nonzero, strings match a small truthy-token set, anything else is false.
func CoerceBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	case string:
		_, truthy := truthyTokens[strings.ToLower(strings.TrimSpace(v))]
		return truthy
	default:
		return false
	}
}
