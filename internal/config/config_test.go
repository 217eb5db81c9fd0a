package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		def       string
		shouldSet bool
		expected  string
	}{
		{
			name:      "variable set",
			key:       "TEST_GETENV",
			value:     "custom",
			def:       "default",
			shouldSet: true,
			expected:  "custom",
		},
		{
			name:     "variable not set",
			key:      "TEST_GETENV_MISSING",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenv(tt.key, tt.def); got != tt.expected {
				t.Errorf("getenv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"valid integer", "42", 42},
		{"invalid integer", "not_a_number", 7},
		{"empty", "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_INT", tt.value)
			}
			if got := getenvInt("TEST_INT", 7); got != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{"true", "true", false, true},
		{"false", "false", true, false},
		{"numeric true", "1", false, true},
		{"invalid falls back", "yes please", true, true},
		{"empty falls back", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_BOOL", tt.value)
			}
			if got := mustBool("TEST_BOOL", tt.def); got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"valid duration", "30s", 30 * time.Second},
		{"invalid duration", "soon", 5 * time.Second},
		{"empty", "", 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_DURATION", tt.value)
			}
			if got := mustDuration("TEST_DURATION", 5*time.Second); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "http://localhost:8000", []string{"http://localhost:8000"}},
		{
			name:     "multiple with spaces",
			input:    " a.example.edu , b.example.edu ",
			expected: []string{"a.example.edu", "b.example.edu"},
		},
		{
			name:     "quoted entries",
			input:    `"a.example.edu", 'b.example.edu'`,
			expected: []string{"a.example.edu", "b.example.edu"},
		},
		{"only separators", ", ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndTrim(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitAndTrim() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"RF_LISTEN_PORT", "RF_DATA_DIR", "RF_ADMIN_HEADER", "RF_CORS_ORIGINS",
	} {
		if os.Getenv(key) != "" {
			t.Skipf("%s set in environment", key)
		}
	}

	cfg := Load()

	if cfg.ListenPort != ":5050" {
		t.Errorf("ListenPort = %v, want :5050", cfg.ListenPort)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %v, want data", cfg.DataDir)
	}
	if cfg.AdminHeader != "X-User-Email" {
		t.Errorf("AdminHeader = %v, want X-User-Email", cfg.AdminHeader)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want two defaults", cfg.CORSOrigins)
	}
	if len(cfg.AllowedHosts) != 0 {
		t.Errorf("AllowedHosts = %v, want empty", cfg.AllowedHosts)
	}
}
