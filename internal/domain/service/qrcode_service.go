package service

// QRCodeService defines the interface for QR code generation.
// Checkout responses carry a QR of the hosted payment URL so a cart built
// on one device can be paid from another.
type QRCodeService interface {
	// GeneratePaymentQR renders the checkout URL as a PNG QR code.
	GeneratePaymentQR(checkoutURL string) ([]byte, error)
}
