package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"auth": map[string]any{
			"tokenTtl":    "10m",
			"emailDomain": "@gao-online.de",
		},
		"smtp": map[string]any{
			"host": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTtl"},
		{envKey: "AUTH_EMAILDOMAIN", want: "auth.emailDomain"},
		{envKey: "SMTP_HOST", want: "smtp.host"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAuthDefaults(t *testing.T) {
	auth := &AuthConfig{Secret: "s"}
	applyAuthDefaults(auth)

	if auth.Issuer != defaultIssuer {
		t.Fatalf("issuer = %q, want %q", auth.Issuer, defaultIssuer)
	}
	if auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("tokenTTL = %v, want %v", auth.TokenTTL, defaultTokenTTL)
	}
	if auth.EmailDomain != defaultEmailDomain {
		t.Fatalf("emailDomain = %q, want %q", auth.EmailDomain, defaultEmailDomain)
	}
}
