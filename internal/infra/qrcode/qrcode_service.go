package qrcode

import (
	"encoding/json"
	"strings"

	"pumpdesk/internal/domain/entity"
	"pumpdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const indentSlipType = "indent"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// IndentSlip is the JSON document encoded in an indent QR code. The attendant's
// scanner only needs the ID; the remaining fields let the slip be read offline.
type IndentSlip struct {
	Type       string  `json:"type"`
	IndentID   string  `json:"indent_id"`
	CustomerID string  `json:"customer_id"`
	VehicleID  string  `json:"vehicle_id"`
	FuelType   string  `json:"fuel_type"`
	Quantity   float64 `json:"quantity"`
	Amount     float64 `json:"amount"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateIndentQR renders the indent slip as a PNG image
func (s *qrcodeService) GenerateIndentQR(indent *entity.Indent) ([]byte, error) {
	content, err := encodeIndentSlip(indent)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseIndentQR extracts the indent ID from a scanned slip
func (s *qrcodeService) ParseIndentQR(qrData string) (string, error) {
	var slip IndentSlip
	if err := json.Unmarshal([]byte(qrData), &slip); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if slip.Type != indentSlipType {
		return "", errors.Errorf("invalid QR code type: %s", slip.Type)
	}

	if !strings.HasPrefix(slip.IndentID, "IND") {
		return "", errors.Errorf("invalid indent ID: %q", slip.IndentID)
	}

	return slip.IndentID, nil
}

func encodeIndentSlip(indent *entity.Indent) (string, error) {
	if indent == nil || indent.ID == "" {
		return "", errors.New("indent is required")
	}

	data, err := json.Marshal(IndentSlip{
		Type:       indentSlipType,
		IndentID:   indent.ID,
		CustomerID: indent.CustomerID.String(),
		VehicleID:  indent.VehicleID.String(),
		FuelType:   indent.FuelType,
		Quantity:   indent.Quantity,
		Amount:     indent.Amount,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}
