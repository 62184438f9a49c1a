package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("ENV_TEST_KEY", "")
	if got := envOrDefault("ENV_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}

	t.Setenv("ENV_TEST_KEY", "value")
	if got := envOrDefault("ENV_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{name: "unset", raw: "", want: time.Hour},
		{name: "valid", raw: "30s", want: 30 * time.Second},
		{name: "invalid", raw: "soon", want: time.Hour},
		{name: "negative", raw: "-5m", want: time.Hour},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DUR_TEST_KEY", tc.raw)
			if got := durationEnvOrDefault("DUR_TEST_KEY", time.Hour); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST_KEY", "12")
	if got := intEnvOrDefault("INT_TEST_KEY", 4); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}

	t.Setenv("INT_TEST_KEY", "zero")
	if got := intEnvOrDefault("INT_TEST_KEY", 4); got != 4 {
		t.Fatalf("expected default on parse error, got %d", got)
	}

	t.Setenv("INT_TEST_KEY", "-3")
	if got := intEnvOrDefault("INT_TEST_KEY", 4); got != 4 {
		t.Fatalf("expected default on non-positive, got %d", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{raw: "", def: true, want: true},
		{raw: "true", def: false, want: true},
		{raw: "1", def: false, want: true},
		{raw: "no", def: true, want: false},
		{raw: "FALSE", def: true, want: false},
		{raw: "maybe", def: true, want: true},
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST_KEY", tc.raw)
		if got := boolEnvOrDefault("BOOL_TEST_KEY", tc.def); got != tc.want {
			t.Fatalf("raw %q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}
