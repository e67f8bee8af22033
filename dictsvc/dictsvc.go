package dictsvc

import (
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// encodedPlaceholder is the literal substring a url_template carries in
// place of the percent-encoded phrase.
const encodedPlaceholder = "(encoded)"

// Service is one dictionary lookup destination.
type Service struct {
	Name        string `json:"name"`
	URLTemplate string `json:"url_template"`
}

// Manifest is the decoded `{"services": [...]}` document.
type Manifest struct {
	Services []Service `json:"services"`
}

// ParseManifest decodes a dictionary-service JSON manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := sonic.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "dictsvc: parse manifest")
	}
	return &m, nil
}

// ServiceByName returns the service with the given name, if the manifest
// declares one.
func (m *Manifest) ServiceByName(name string) (Service, bool) {
	for _, s := range m.Services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}

// BuildURL substitutes the percent-encoded phrase into the service's
// url_template. The host is expected to open the resulting URL; dictsvc
// never performs the request.
func BuildURL(service Service, phrase string) string {
	encoded := url.QueryEscape(phrase)
	return strings.ReplaceAll(service.URLTemplate, encodedPlaceholder, encoded)
}
