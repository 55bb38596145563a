// Package qrcode renders the share codes attached to adoption listings.
package qrcode

import (
	"encoding/json"
	"strings"

	"catrescue/config"
	"catrescue/internal/domain/service"
	"catrescue/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const listingPayloadType = "adoption_listing"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ListingPayload is the JSON encoded into a listing's QR code.
type ListingPayload struct {
	Type      string `json:"type"`
	ListingID string `json:"listing_id"`
	URL       string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance.
// baseURL, when set, is used to embed a link to the listing.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewFromConfig builds the service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(256, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateListingQR renders a PNG QR code for a listing.
func (s *qrcodeService) GenerateListingQR(listingID uuid.UUID) ([]byte, error) {
	payload := ListingPayload{
		Type:      listingPayloadType,
		ListingID: listingID.String(),
	}
	if s.baseURL != "" {
		payload.URL = s.baseURL + "/adoptions/" + listingID.String()
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseListingQR decodes a scanned payload and returns the listing ID.
func (s *qrcodeService) ParseListingQR(qrData string) (uuid.UUID, error) {
	var payload ListingPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if payload.Type != listingPayloadType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}

	listingID, err := uuid.Parse(payload.ListingID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse listing ID")
	}

	return listingID, nil
}
