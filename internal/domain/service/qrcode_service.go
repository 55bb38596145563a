package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders and reads the share codes printed for adoption listings.
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code pointing at a listing.
	GenerateListingQR(listingID uuid.UUID) ([]byte, error)

	// ParseListingQR decodes a scanned payload back into the listing ID.
	ParseListingQR(qrData string) (uuid.UUID, error)
}
