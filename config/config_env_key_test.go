package config

import "testing"

func TestCanonicalizeEnvKey_MapsOntoYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"storage": map[string]any{
			"bucketUrl":     "mem://",
			"publicBaseUrl": "",
		},
		"submission": map[string]any{
			"adErrorPolicy": "retry",
			"lockTtl":       "2m",
		},
		"worker": map[string]any{
			"pushAudience": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "SUBMISSION_ADERRORPOLICY", want: "submission.adErrorPolicy"},
		{envKey: "SUBMISSION_LOCKTTL", want: "submission.lockTtl"},
		{envKey: "WORKER_PUSHAUDIENCE", want: "worker.pushAudience"},
		{envKey: "MEDIA_RUNTIME", want: "media.runtime"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
