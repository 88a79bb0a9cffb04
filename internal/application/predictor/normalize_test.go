package predictor

import (
	"errors"
	"strings"
	"testing"
)

func TestNormString(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"  Ford ", "ford"},
		{"F-150", "f-150"},
		{"AUTOMATIC", "automatic"},
		{"good", "good"},
		{42, "42"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormString(tt.in); got != tt.want {
			t.Errorf("NormString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormStringIdempotent(t *testing.T) {
	inputs := []string{"  Ford ", "F-150", "already lower", "  MiXeD Case  "}
	for _, in := range inputs {
		once := NormString(in)
		if twice := NormString(once); twice != once {
			t.Errorf("NormString not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormCylinders(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"int", 6, "6 cylinders"},
		{"json number", float64(6), "6 cylinders"},
		{"digit string", "8", "8 cylinders"},
		{"leading digit run", "6 cyl", "6 cylinders"},
		{"nil", nil, "unknown"},
		{"unknown passthrough", "unknown", "unknown"},
		{"no leading digits", "V8", "v8"},
		{"padded digits", "  10 CYLINDERS ", "10 cylinders"},
		{"fractional number", 6.7, "6 cylinders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormCylinders(tt.in); got != tt.want {
				t.Errorf("NormCylinders(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFirstOf(t *testing.T) {
	payload := map[string]interface{}{"make": "Ford", "model": nil}

	v, ok := FirstOf(payload, "manufacturer", "make")
	if !ok || v != "Ford" {
		t.Errorf("FirstOf(manufacturer, make) = %v, %v; want Ford, true", v, ok)
	}

	// nil values are treated as absent
	if _, ok := FirstOf(payload, "model"); ok {
		t.Error("FirstOf should skip nil values")
	}

	if _, ok := FirstOf(payload, "missing"); ok {
		t.Error("FirstOf should report absent keys")
	}
}

func TestRequire(t *testing.T) {
	if _, err := Require(map[string]interface{}{"make": "Ford"}, "manufacturer", "make"); err != nil {
		t.Errorf("Require returned unexpected error: %v", err)
	}

	_, err := Require(map[string]interface{}{}, "manufacturer", "make")
	if err == nil {
		t.Fatal("Require should fail on empty payload")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Require error should be a ValidationError, got %T", err)
	}
	if !strings.Contains(err.Error(), "manufacturer") || !strings.Contains(err.Error(), "make") {
		t.Errorf("error should name the attempted keys, got %q", err.Error())
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in      interface{}
		want    int64
		wantErr bool
	}{
		{float64(2015), 2015, false},
		{"2015", 2015, false},
		{" 2015 ", 2015, false},
		{2015.5, 0, true},
		{"abc", 0, true},
		{"2015.5", 0, true},
		{true, 0, true},
	}

	for _, tt := range tests {
		got, err := toInt("year", tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("toInt(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("toInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in      interface{}
		want    float64
		wantErr bool
	}{
		{float64(45000), 45000, false},
		{"45000.5", 45000.5, false},
		{"abc", 0, true},
		{nil, 0, true},
	}

	for _, tt := range tests {
		got, err := toFloat("odometer", tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("toFloat(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("toFloat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
