package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreURL(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr string
	}{
		{"https://shop.example.com", ""},
		{"http://localhost:8080/shop", ""},
		{"http://127.0.0.1:54321", ""},
		{"shop.example.com", "must start with http:// or https://"},
		{"ftp://shop.example.com", "must start with http:// or https://"},
		{"https://", "missing host"},
		{"https://shop.example.com/?lang=en", "must not carry a query or fragment"},
		{"https://shop.example.com/#top", "must not carry a query or fragment"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			err := StoreURL(tt.raw)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDeliveryURL(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr string
	}{
		{"https://example.com/hooks/orders", ""},
		{"http://hooks.example.com:8080/in", ""},
		{"/hooks", "must be an http(s) URL"},
		{"ftp://example.com/hooks", "must be an http(s) URL"},
		{"http://169.254.169.254/latest/meta-data", "cloud metadata"},
		{"http://metadata.google.internal/computeMetadata", "cloud metadata"},
		{"http://localhost:3000/hooks", "localhost"},
		{"http://api.localhost/hooks", "localhost"},
		{"http://10.1.2.3/hooks", "private address"},
		{"http://192.168.1.10/hooks", "private address"},
		{"http://[::1]:8080/hooks", "private address"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(EnvAllowPrivate, "")
			err := DeliveryURL(tt.raw)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDeliveryURL_AllowPrivate(t *testing.T) {
	t.Setenv(EnvAllowPrivate, "true")

	assert.NoError(t, DeliveryURL("http://localhost:3000/hooks"))
	assert.NoError(t, DeliveryURL("http://10.1.2.3/hooks"))
	assert.ErrorContains(t, DeliveryURL("http://169.254.169.254/"), "cloud metadata")
}
