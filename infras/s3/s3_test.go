package s3_test

import (
	"flexwork/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		domain string
		key    string
		want   string
	}{
		{"https://cdn.example.com", "exports/a.xlsx", "https://cdn.example.com/exports/a.xlsx"},
		{"https://cdn.example.com/", "/exports/a.xlsx", "https://cdn.example.com/exports/a.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.PublicURL(tt.domain, tt.key))
		})
	}
}
