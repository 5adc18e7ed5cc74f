package openrouter

import "testing"

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name         string
		baseURL      string
		allowedHosts []string
		wantErr      bool
	}{
		{
			name:    "empty means default",
			baseURL: "",
		},
		{
			name:    "default api host with https",
			baseURL: "https://api.openrouter.ai/",
		},
		{
			name:    "reject non-absolute URL",
			baseURL: "openrouter.ai",
			wantErr: true,
		},
		{
			name:    "reject http for public host",
			baseURL: "http://openrouter.ai",
			wantErr: true,
		},
		{
			name:    "reject unknown host by default",
			baseURL: "https://evil.example",
			wantErr: true,
		},
		{
			name:         "allow configured host with path",
			baseURL:      "https://proxy.internal/openrouter",
			allowedHosts: []string{"https://proxy.internal:8443/"},
		},
		{
			name:         "configured hosts replace defaults",
			baseURL:      "https://openrouter.ai",
			allowedHosts: []string{"proxy.internal"},
			wantErr:      true,
		},
		{
			name:         "allow http on allow-listed loopback",
			baseURL:      "http://127.0.0.1:8080",
			allowedHosts: []string{"127.0.0.1:8080"},
		},
		{
			name:    "loopback still needs allow-listing",
			baseURL: "http://localhost:8080",
			wantErr: true,
		},
		{
			name:    "reject query",
			baseURL: "https://openrouter.ai?x=1",
			wantErr: true,
		},
		{
			name:    "reject userinfo",
			baseURL: "https://user:pw@openrouter.ai",
			wantErr: true,
		},
		{
			name:         "reject other schemes",
			baseURL:      "ftp://proxy.internal",
			allowedHosts: []string{"proxy.internal"},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL(tt.baseURL, tt.allowedHosts)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseHosts_DefaultWhenEmpty(t *testing.T) {
	out := parseHosts([]string{" ", "https://", ""})
	if len(out) != len(defaultHosts) {
		t.Fatalf("expected default allowed hosts, got %v", out)
	}
}

func TestChatURL(t *testing.T) {
	if got := chatURL(" https://proxy.internal/or/ "); got != "https://proxy.internal/or/api/v1/chat/completions" {
		t.Fatalf("unexpected chat url %q", got)
	}
	if got := chatURL(""); got != "https://openrouter.ai/api/v1/chat/completions" {
		t.Fatalf("unexpected default chat url %q", got)
	}
}
