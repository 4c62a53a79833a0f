package graphql

import "strconv"

// argID reads a positive ID argument. graphql-go hands IDs over as strings.
func argID(args map[string]any, key string) (uint, bool) {
	var raw string
	switch v := args[key].(type) {
	case string:
		raw = v
	case int:
		raw = strconv.Itoa(v)
	default:
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
