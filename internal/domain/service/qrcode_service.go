package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for public listings.
type QRCodeService interface {
	// GenerateRentQR returns a PNG encoding the public URL of the rent listing.
	GenerateRentQR(rentID uuid.UUID) ([]byte, error)
}
