package documents

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/pkg/errors"

	"github.com/gwhitehawk/device-net/common/models"
)

type ResourceDocument interface {
	// GetLink returns a link that can be used to fetch the resource from the server.
	GetLink() string
	// GetETag returns a hash of the resource's representation.
	GetETag() models.ETag
}

type baseResourceDocument struct {
	URL string `json:"url" hash:"ignore"`
}

func (d *baseResourceDocument) GetLink() string {
	return d.URL
}

// computeETag hashes a document. Fields tagged hash:"ignore" do not contribute.
func computeETag(doc interface{}) (models.ETag, error) {
	hash, err := hashstructure.Hash(doc, hashstructure.FormatV2, nil)
	if err != nil {
		return "", errors.Wrap(err, "error hashing document")
	}
	return models.ETag(fmt.Sprintf("%x", hash)), nil
}
