package wikipedia

// Safe navigation helpers over decoded JSON documents. The API response is
// treated as an open document: each helper returns the zero value when the
// node is absent or has a different shape, so callers can probe optional
// fields without type assertions at every step.

func getMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func getSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

func getString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// getInt reads a JSON number. encoding/json decodes all numbers to float64.
func getInt(v interface{}) int {
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return int(f)
}

func getInt64(v interface{}) int64 {
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return int64(f)
}

func getFloat(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
