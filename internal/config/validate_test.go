package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		valid   bool
		keyword string
	}{
		{"empty", "", true, ""},
		{"all keys", "strategy: query\nlink_test: false\nverbose: true\nemit_rerun: false\n", true, ""},
		{"bad strategy", "strategy: sideways\n", false, "enum"},
		{"bad type", "link_test: \"yes\"\n", false, "type"},
		{"unknown key", "out_dir: /tmp\n", false, "additionalProperties"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if result.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (issues: %+v)", result.Valid, tt.valid, result.Issues)
			}
			if tt.keyword == "" {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue with keyword %q in %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidateMalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("strategy: [unclosed\n")); err == nil {
		t.Error("expected parse error")
	}
}
