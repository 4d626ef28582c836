package service

import "pumpdesk/internal/domain/entity"

// QRCodeService defines the interface for indent slip QR codes
type QRCodeService interface {
	// GenerateIndentQR renders a PNG QR code identifying the indent
	GenerateIndentQR(indent *entity.Indent) ([]byte, error)

	// ParseIndentQR extracts the indent ID from scanned QR data
	ParseIndentQR(qrData string) (string, error)
}
