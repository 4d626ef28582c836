package qrcode

import (
	"encoding/json"
	"testing"

	"pumpdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndent() *entity.Indent {
	return &entity.Indent{
		ID:         "IND20240115093000-01HMB4Q5G7K8",
		CustomerID: uuid.New(),
		VehicleID:  uuid.New(),
		FuelType:   "Diesel",
		Quantity:   120,
		Amount:     10680,
		Status:     entity.IndentPending,
	}
}

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateIndentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateIndentQR(testIndent())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateIndentQR_MissingIndent(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateIndentQR(nil)
	assert.Error(t, err)

	_, err = service.GenerateIndentQR(&entity.Indent{})
	assert.Error(t, err)
}

func TestQRCodeService_ParseIndentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	indent := testIndent()

	content, err := encodeIndentSlip(indent)
	require.NoError(t, err)

	id, err := service.ParseIndentQR(content)
	require.NoError(t, err)
	assert.Equal(t, indent.ID, id)
}

func TestQRCodeService_ParseIndentQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseIndentQR("invalid json")
	assert.ErrorContains(t, err, "failed to unmarshal QR code data")

	wrongType, err := json.Marshal(IndentSlip{Type: "subscription", IndentID: "IND1"})
	require.NoError(t, err)
	_, err = service.ParseIndentQR(string(wrongType))
	assert.ErrorContains(t, err, "invalid QR code type")

	wrongID, err := json.Marshal(IndentSlip{Type: indentSlipType, IndentID: "TRX20240115093000-X"})
	require.NoError(t, err)
	_, err = service.ParseIndentQR(string(wrongID))
	assert.ErrorContains(t, err, "invalid indent ID")
}
