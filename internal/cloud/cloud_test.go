package cloud

import "testing"

func TestParseURL(t *testing.T) {
	tests := []struct {
		raw    string
		scheme string
		bucket string
		key    string
	}{
		{"s3://bucket/logs/app.csv", "s3", "bucket", "logs/app.csv"},
		{"gs://bucket/app.csv.gz", "gs", "bucket", "app.csv.gz"},
		{"s3://bucket", "s3", "bucket", ""},
		{"s3://bucket/prefix/", "s3", "bucket", "prefix"},
		{"  gs://bucket/key  ", "gs", "bucket", "key"},
	}
	for _, tt := range tests {
		scheme, bucket, key, err := ParseURL(tt.raw)
		if err != nil {
			t.Errorf("ParseURL(%q): %v", tt.raw, err)
			continue
		}
		if scheme != tt.scheme || bucket != tt.bucket || key != tt.key {
			t.Errorf("ParseURL(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.raw, scheme, bucket, key, tt.scheme, tt.bucket, tt.key)
		}
	}
}

func TestParseURLErrors(t *testing.T) {
	bad := []string{
		"",
		"http://bucket/key",
		"s3://",
		"gs:///key",
		"plain/path",
	}
	for _, raw := range bad {
		if _, _, _, err := ParseURL(raw); err == nil {
			t.Errorf("ParseURL(%q): want error", raw)
		}
	}
}

func TestNewBackendUnsupportedScheme(t *testing.T) {
	if _, err := NewBackend(t.Context(), "ftp", "bucket"); err == nil {
		t.Error("want error for unsupported scheme")
	}
}
