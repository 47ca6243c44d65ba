package service

// ShareCodeService renders and reads the QR codes printed for store pages
type ShareCodeService interface {
	// StoreQR renders a PNG QR code linking to the store page of slug
	StoreQR(slug string) ([]byte, error)

	// ParseStoreQR extracts the store slug from a scanned QR code payload
	ParseStoreQR(content string) (string, error)
}
