package service

// QRCodeService defines the interface for offer share codes
type QRCodeService interface {
	// GenerateOfferQR encodes the given link as a PNG QR code
	GenerateOfferQR(link string) ([]byte, error)
}
