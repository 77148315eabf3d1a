package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		host  string
		port  int
	}{
		{name: "localhost", input: "localhost:8080", host: "localhost", port: 8080},
		{name: "ip address", input: "127.0.0.1:9090", host: "127.0.0.1", port: 9090},
		{name: "empty host", input: ":8080", host: "", port: 8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			require.NoError(t, a.Set(tt.input))
			assert.Equal(t, tt.host, a.Host)
			assert.Equal(t, tt.port, a.Port)
		})
	}
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no port", input: "localhost"},
		{name: "non-numeric port", input: "localhost:abc"},
		{name: "zero port", input: "localhost:0"},
		{name: "bad ip", input: "not-an-ip:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			assert.Error(t, a.Set(tt.input))
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
}
