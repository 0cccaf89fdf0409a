package server_test

import (
	"testing"

	"theme-sync/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":8080", server.Config{Port: "8080"}.Address())
}

func TestConfig_AuthEnabled(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"Set", "secret", true},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{ApiKey: tt.apiKey}
			assert.Equal(t, tt.want, c.AuthEnabled())
		})
	}
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 1024*1024, server.Config{BodyLimitKB: 1024}.BodyLimit())
	assert.Equal(t, 512*1024, server.Config{}.BodyLimit())
}
