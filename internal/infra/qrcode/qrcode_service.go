// Package qrcode renders share codes for rent listings.
package qrcode

import (
	"strings"

	"zeneasy/config"
	"zeneasy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	size := defaultSize
	var levelName, baseURL string
	if cfg != nil {
		if cfg.Size > 0 {
			size = cfg.Size
		}
		levelName = cfg.ErrorCorrectionLevel
		baseURL = cfg.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(levelName),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// RentURL is the public URL a rent listing QR code points to.
func (s *qrcodeService) RentURL(rentID uuid.UUID) string {
	return s.baseURL + "/rents/" + rentID.String()
}

// GenerateRentQR returns a PNG encoding the public URL of the rent listing.
func (s *qrcodeService) GenerateRentQR(rentID uuid.UUID) ([]byte, error) {
	pngBytes, err := qrcode.Encode(s.RentURL(rentID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}
