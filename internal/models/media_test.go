package models

import "testing"

func TestMediaIsImage(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/jpeg", true},
		{"image/webp", true},
		{"image/svg+xml", true},
		{"application/pdf", false},
		{"text/html", false},
		{"", false},
		{"image", false},
		{"IMAGE/PNG", false},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			m := &Media{ContentType: tt.contentType}
			if got := m.IsImage(); got != tt.want {
				t.Errorf("IsImage(%q) = %v, want %v", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestMediaStored(t *testing.T) {
	external := &Media{URL: "https://images.unsplash.com/photo-1"}
	if external.Stored() {
		t.Error("media without S3 key should not report Stored")
	}
	own := &Media{Bucket: "site", S3Key: "media/2026/01/a.jpg"}
	if !own.Stored() {
		t.Error("media with S3 key should report Stored")
	}
}

func TestMediaHumanSize(t *testing.T) {
	tests := []struct {
		sizeBytes int64
		want      string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "2 KB"},
		{1048575, "1024 KB"},
		{1048576, "1.0 MB"},
		{2411724, "2.3 MB"},
	}
	for _, tt := range tests {
		m := &Media{SizeBytes: tt.sizeBytes}
		if got := m.HumanSize(); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.sizeBytes, got, tt.want)
		}
	}
}
