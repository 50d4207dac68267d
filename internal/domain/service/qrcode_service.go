package service

// QRCodeService renders share QR codes for public listing URLs.
type QRCodeService interface {
	// GeneratePNG renders the given URL as a QR code PNG.
	GeneratePNG(url string) ([]byte, error)
}
