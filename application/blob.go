package application

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitdata/domain"
)

// BlobService builds blob-upload requests from raw bytes.
type BlobService struct{}

// NewBlobService creates a new service.
func NewBlobService() *BlobService {
	return &BlobService{}
}

// BuildCreateBlob transcodes data into a CreateBlob per the chosen encoding:
// base64 accepts anything, utf-8 requires the bytes to already be valid UTF-8.
func (s *BlobService) BuildCreateBlob(data []byte, encoding domain.Encoding) (domain.CreateBlob, error) {
	switch encoding {
	case domain.EncodingBase64:
		logger.Debugf("Encoding %d bytes as base64 blob content", len(data))
		return domain.CreateBlob{
			Content:  base64.StdEncoding.EncodeToString(data),
			Encoding: domain.EncodingBase64,
		}, nil
	case domain.EncodingUTF8:
		if !utf8.Valid(data) {
			return domain.CreateBlob{}, fmt.Errorf(
				"content is not valid UTF-8; use the %q encoding instead",
				domain.EncodingBase64,
			)
		}
		return domain.CreateBlob{
			Content:  string(data),
			Encoding: domain.EncodingUTF8,
		}, nil
	default:
		return domain.CreateBlob{}, fmt.Errorf("unsupported encoding %q", encoding)
	}
}
