package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/worklane/worklane-go/models"
)

// KYCService handles identity-document verification.
type KYCService struct {
	client *Client
}

// Upload submits an identity document for review. document is the file
// contents; documentType is e.g. "passport" or "driver_license".
func (s *KYCService) Upload(ctx context.Context, document io.Reader, filename, documentType, comment string) (models.KYCStatus, error) {
	fields := map[string]string{
		"document_type": documentType,
	}
	if comment != "" {
		fields["comment"] = comment
	}

	var out models.KYCStatus
	if err := s.client.upload(ctx, "/kyc/upload", fields, "document", filename, document, &out); err != nil {
		return models.KYCStatus{}, fmt.Errorf("kyc upload failed: %w", err)
	}
	return out, nil
}

// Status fetches all verification submissions and their states.
func (s *KYCService) Status(ctx context.Context) ([]models.KYCStatus, error) {
	var out []models.KYCStatus
	if err := s.client.do(ctx, http.MethodGet, "/kyc/status", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch kyc status: %w", err)
	}
	return out, nil
}
