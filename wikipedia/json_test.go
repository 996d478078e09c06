package wikipedia

import "testing"

func TestGetMap(t *testing.T) {
	m := map[string]interface{}{"k": "v"}
	if got := getMap(m); got == nil {
		t.Error("getMap(map) = nil, want the map")
	}
	if got := getMap("string"); got != nil {
		t.Errorf("getMap(string) = %v, want nil", got)
	}
	if got := getMap(nil); got != nil {
		t.Errorf("getMap(nil) = %v, want nil", got)
	}
}

func TestGetSlice(t *testing.T) {
	s := []interface{}{1, 2}
	if got := getSlice(s); len(got) != 2 {
		t.Errorf("getSlice(slice) = %v, want the slice", got)
	}
	if got := getSlice(map[string]interface{}{}); got != nil {
		t.Errorf("getSlice(map) = %v, want nil", got)
	}
}

func TestGetString(t *testing.T) {
	if got := getString("hello"); got != "hello" {
		t.Errorf("getString(string) = %q, want %q", got, "hello")
	}
	if got := getString(42); got != "" {
		t.Errorf("getString(int) = %q, want empty", got)
	}
	if got := getString(nil); got != "" {
		t.Errorf("getString(nil) = %q, want empty", got)
	}
}

func TestGetNumbers(t *testing.T) {
	// encoding/json decodes every JSON number as float64
	if got := getInt(float64(7)); got != 7 {
		t.Errorf("getInt(7.0) = %d, want 7", got)
	}
	if got := getInt("7"); got != 0 {
		t.Errorf("getInt(string) = %d, want 0", got)
	}
	if got := getInt64(float64(9228)); got != 9228 {
		t.Errorf("getInt64(9228.0) = %d, want 9228", got)
	}

	value, ok := getFloat(float64(48.8582))
	if !ok || value != 48.8582 {
		t.Errorf("getFloat(48.8582) = (%v, %v), want (48.8582, true)", value, ok)
	}
	if _, ok := getFloat("48.8582"); ok {
		t.Error("getFloat(string) ok = true, want false")
	}
}
