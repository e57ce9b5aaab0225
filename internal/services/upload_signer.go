package services

import (
	"fmt"
	"net/url"
	"path"
	"strconv"
	"time"

	"eventvote/internal/models"

	"github.com/cloudinary/cloudinary-go/v2/api"
)

const uploadFolder = "voting_app"

// UploadSigner issues signatures that let the admin client upload a
// candidate image straight to Cloudinary.
type UploadSigner struct {
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
}

func NewUploadSigner(cloudName, apiKey, apiSecret string) *UploadSigner {
	return &UploadSigner{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

// Sign returns the signed parameters for uploading filename.
func (s *UploadSigner) Sign(filename string) (models.UploadSignatureResponse, error) {
	timestamp := s.now().Unix()
	publicID := fmt.Sprintf("%s/%d_%s", uploadFolder, timestamp, path.Base(filename))

	params := url.Values{}
	params.Set("folder", uploadFolder)
	params.Set("public_id", publicID)
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(params, s.apiSecret)
	if err != nil {
		return models.UploadSignatureResponse{}, fmt.Errorf("failed to sign upload parameters: %w", err)
	}

	return models.UploadSignatureResponse{
		Signature: signature,
		Timestamp: timestamp,
		PublicID:  publicID,
		CloudName: s.cloudName,
		APIKey:    s.apiKey,
	}, nil
}
