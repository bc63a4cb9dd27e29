package settings_test

import (
	"testing"

	"tglauncher/internal/settings"
)

func TestParseValueKinds(t *testing.T) {
	cases := []struct {
		raw  string
		kind settings.Kind
	}{
		{"1920", settings.KindInt},
		{"-3", settings.KindInt},
		{"yes", settings.KindBool},
		{"no", settings.KindBool},
		{"true", settings.KindBool},
		{"100.000000", settings.KindString},
		{`"Player"`, settings.KindString},
		{"YEARLY", settings.KindString},
	}
	for _, tc := range cases {
		if got := settings.ParseValue(tc.raw).Kind(); got != tc.kind {
			t.Errorf("ParseValue(%q).Kind() = %v, want %v", tc.raw, got, tc.kind)
		}
	}
}

func TestParseValueStripsQuotes(t *testing.T) {
	v := settings.ParseValue(`"Player"`)
	if v.String() != "Player" {
		t.Fatalf("got %q want Player", v.String())
	}
}

func TestTruthyAcceptsIntAndStringForms(t *testing.T) {
	truthy := []string{"1", "yes", "true", "2"}
	for _, raw := range truthy {
		if !settings.ParseValue(raw).Truthy() {
			t.Errorf("ParseValue(%q).Truthy() = false, want true", raw)
		}
	}
	falsy := []string{"0", "no", "false", "", "high", `"0"`}
	for _, raw := range falsy {
		if settings.ParseValue(raw).Truthy() {
			t.Errorf("ParseValue(%q).Truthy() = true, want false", raw)
		}
	}
	// The quoted form of 1 is a string but still a set flag.
	if !settings.ParseValue(`"1"`).Truthy() {
		t.Error(`ParseValue("\"1\"").Truthy() = false, want true`)
	}
}
