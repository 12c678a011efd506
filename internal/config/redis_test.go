package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Endpoint
	}{
		{"tcp scheme", "tcp://cache-host:6379", Endpoint{Host: "cache-host", Port: 6379}},
		{"no scheme", "localhost:6380", Endpoint{Host: "localhost", Port: 6380}},
		{"redis scheme", "redis://10.0.0.5:7000", Endpoint{Host: "10.0.0.5", Port: 7000}},
		{"surrounding space", "  cache:6379 ", Endpoint{Host: "cache", Port: 6379}},
		{"aspire options", "cache:6379,ssl=true,password=s3cret", Endpoint{Host: "cache", Port: 6379, Password: "s3cret", TLS: true}},
		{"password keeps commas", "cache:6379,password=s3c,ret=x", Endpoint{Host: "cache", Port: 6379, Password: "s3c,ret=x"}},
		{"password key is case-insensitive", "cache:6379, Password=pw", Endpoint{Host: "cache", Port: 6379, Password: "pw"}},
		{"space before options", "cache:6379 ,ssl=true", Endpoint{Host: "cache", Port: 6379, TLS: true}},
		{"trailing comma", "cache:6379,ssl=true, ", Endpoint{Host: "cache", Port: 6379, TLS: true}},
		{"unknown option ignored", "cache:6379,abortConnect=false", Endpoint{Host: "cache", Port: 6379}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDescriptor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDescriptorErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmptyDescriptor},
		{"blank", "   ", ErrEmptyDescriptor},
		{"missing colon", "cache-host", ErrMalformedDescriptor},
		{"missing host", ":6379", ErrMalformedDescriptor},
		{"two colons", "a:b:c", ErrMalformedDescriptor},
		{"unknown scheme keeps colon", "http://cache:6379", ErrMalformedDescriptor},
		{"non-numeric port", "cache-host:abc", ErrInvalidPort},
		{"empty port", "cache-host:", ErrInvalidPort},
		{"port out of range", "cache-host:70000", ErrInvalidPort},
		{"option without value", "cache:6379,ssl", ErrMalformedDescriptor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescriptor(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseDescriptorErrorsOmitPassword(t *testing.T) {
	for _, in := range []string{
		"cache-host,password=s3cret",
		"tcp://cache-host:abc,password=s3cret",
		"a:b:c,password=s3cret",
		"cache:6379,ssl,password=s3cret",
		"cache:6379,s3cret,password=x",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDescriptor(in)
			require.Error(t, err)
			assert.NotContains(t, err.Error(), "s3cret")
		})
	}
}

func TestEndpointAddr(t *testing.T) {
	assert.Equal(t, "cache-host:6379", Endpoint{Host: "cache-host", Port: 6379}.Addr())
}

func TestNewRedisClient(t *testing.T) {
	rdb := NewRedisClient(Endpoint{Host: "cache", Port: 6379, Password: "pw", TLS: true})
	t.Cleanup(func() { _ = rdb.Close() })

	opts := rdb.Options()
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	require.NotNil(t, opts.TLSConfig)
	assert.Equal(t, "cache", opts.TLSConfig.ServerName)
	assert.Zero(t, opts.MaxRetries, "-1 is normalised to zero retries")
}
