package server_test

import (
	"testing"

	"orth-check/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	c := server.Config{Port: "9090"}
	assert.Equal(t, ":9090", c.Addr())
}

func TestConfig_AuthEnabled(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"WithKey", "secret", true},
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
	assert.Equal(t, 2*1024*1024, server.Config{BodyLimitMB: 2}.BodyLimit())
	assert.Equal(t, 4*1024*1024, server.Config{}.BodyLimit())
}
