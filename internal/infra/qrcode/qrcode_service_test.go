package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "h"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://stores.example.com", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_StoreQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://stores.example.com", tt.size, "M")

			qrBytes, err := service.StoreQR("ramen-shop")
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_StoreQR_RequiresSlug(t *testing.T) {
	service := NewQRCodeService("https://stores.example.com", 256, "M")

	_, err := service.StoreQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	service := NewQRCodeService("https://stores.example.com/", 256, "M")

	tests := []struct {
		name    string
		content string
		want    string
		wantErr string
	}{
		{name: "store page", content: "https://stores.example.com/store/ramen-shop", want: "ramen-shop"},
		{name: "surrounding whitespace", content: " https://stores.example.com/store/ramen-shop-2\n", want: "ramen-shop-2"},
		{name: "other origin", content: "https://evil.example.com/store/ramen-shop", wantErr: "does not link to a store page"},
		{name: "missing slug", content: "https://stores.example.com/store/", wantErr: "has no store slug"},
		{name: "nested path", content: "https://stores.example.com/store/a/b", wantErr: "has no store slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug, err := service.ParseStoreQR(tt.content)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, slug)
		})
	}
}

func TestNewShareCodeService_UsesConfig(t *testing.T) {
	service := NewShareCodeService(&config.Config{
		Share: &config.ShareConfig{BaseURL: "https://stores.example.com", Size: 128, ErrorCorrectionLevel: "L"},
	})

	slug, err := service.ParseStoreQR("https://stores.example.com/store/udon-bar")
	require.NoError(t, err)
	assert.Equal(t, "udon-bar", slug)

	fallback := NewShareCodeService(&config.Config{})
	_, err = fallback.ParseStoreQR("http://localhost:7777/store/udon-bar")
	assert.NoError(t, err)
}
