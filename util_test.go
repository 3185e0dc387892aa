package main

import (
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		dur      time.Duration
		expected string
	}{
		{time.Second * 5, "5 seconds"},
		{time.Second * 65, "1 minute, 5 seconds"},
		{time.Second * 3665, "1 hour, 1 minute, 5 seconds"},
		{time.Second * 3600, "1 hour, 0 minutes, 0 seconds"},
		{time.Second * 60, "1 minute, 0 seconds"},
		{time.Second * 1, "1 second"},
	}
	for _, c := range cases {
		got := formatUptime(c.dur)
		if got != c.expected {
			t.Errorf("formatUptime(%v) = %q, want %q", c.dur, got, c.expected)
		}
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Errorf("plural(1) = %q, want empty", plural(1))
	}
	if plural(0) != "s" || plural(2) != "s" {
		t.Error("plural should return \"s\" for n != 1")
	}
}

func TestSplitAndTrim(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b", []string{"a", "b"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitAndTrim(c.in)
		if len(got) != len(c.want) {
			t.Errorf("splitAndTrim(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestGetEnvString(t *testing.T) {
	t.Setenv("VORTDUELO_TEST_STR", "value")
	if got := getEnvString("VORTDUELO_TEST_STR", "fallback"); got != "value" {
		t.Errorf("getEnvString = %q, want value", got)
	}
	if got := getEnvString("VORTDUELO_TEST_STR_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnvString = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("VORTDUELO_TEST_INT", "42")
	if got := getEnvInt("VORTDUELO_TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt = %d, want 42", got)
	}
	t.Setenv("VORTDUELO_TEST_INT", "not-a-number")
	if got := getEnvInt("VORTDUELO_TEST_INT", 7); got != 7 {
		t.Errorf("getEnvInt with bad value = %d, want fallback 7", got)
	}
	if got := getEnvInt("VORTDUELO_TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("getEnvInt with missing key = %d, want fallback 7", got)
	}
}
