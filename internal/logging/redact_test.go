package logging

import "testing"

func TestShouldMask(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"api_key", true},
		{"Token", true},
		{"GITHUB_TOKEN", true},
		{"password", true},
		{"private_url", true},
		{"dir", false},
		{"DOTNET_ROOT", false},
		{"reason", false},
	}

	for _, tt := range tests {
		if got := shouldMask(tt.key); got != tt.want {
			t.Errorf("shouldMask(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "********"},
		{"abcd", "********"},
		{"secret12345", "****2345"},
		{"ghp_abcdef", "****cdef"},
	}

	for _, tt := range tests {
		if got := maskValue(tt.in); got != tt.want {
			t.Errorf("maskValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsTokenPrefix(t *testing.T) {
	if !containsTokenPrefix("ghp_secrettoken") {
		t.Error("expected GitHub token prefix to match")
	}
	if containsTokenPrefix("/usr/share/dotnet") {
		t.Error("expected plain path not to match")
	}
}
