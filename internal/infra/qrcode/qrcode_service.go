package qrcode

import (
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// storePagePath is where store pages live under the public origin
const storePagePath = "/store/"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewShareCodeService creates the store-page QR code service from the share section
func NewShareCodeService(cfg *config.Config) service.ShareCodeService {
	share := cfg.Share
	if share == nil {
		share = config.DefaultShareConfig()
	}

	return NewQRCodeService(share.BaseURL, share.Size, share.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.ShareCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// StoreQR renders a PNG QR code encoding the public URL of the store page
func (s *qrcodeService) StoreQR(slug string) ([]byte, error) {
	if slug == "" {
		return nil, errors.New("slug is required")
	}

	qrCode, err := qrcode.New(s.storeURL(slug), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStoreQR returns the slug of a scanned store-page URL
func (s *qrcodeService) ParseStoreQR(content string) (string, error) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, s.baseURL+storePagePath) {
		return "", errors.Errorf("QR code does not link to a store page: %s", content)
	}

	parsed, err := url.Parse(content)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code URL")
	}

	_, slug, _ := strings.Cut(parsed.Path, storePagePath)
	if slug == "" || strings.Contains(slug, "/") {
		return "", errors.Errorf("QR code has no store slug: %s", content)
	}

	return slug, nil
}

func (s *qrcodeService) storeURL(slug string) string {
	return s.baseURL + storePagePath + url.PathEscape(slug)
}
