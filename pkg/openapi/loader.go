package openapi

import (
	"context"
	"net/http"
	"net/url"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadDocument loads an OpenAPI document from a local file path or an HTTP(S) URL
func LoadDocument(input string) (*Document, error) {
	data, err := ReadSource(input)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ReadSource returns the raw bytes of a document. HTTP(S) URLs are fetched
// with the same reader the validating loader uses.
func ReadSource(input string) ([]byte, error) {
	if u, ok := remoteURL(input); ok {
		return openapi3.ReadFromHTTP(http.DefaultClient)(openapi3.NewLoader(), u)
	}
	return os.ReadFile(input)
}

// ValidateDocument validates an OpenAPI document against the OpenAPI 3 rules
func ValidateDocument(input string) error {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	var (
		doc *openapi3.T
		err error
	)
	if u, ok := remoteURL(input); ok {
		doc, err = loader.LoadFromURI(u)
	} else {
		doc, err = loader.LoadFromFile(input)
	}
	if err != nil {
		return err
	}
	return doc.Validate(context.Background())
}

func remoteURL(input string) (*url.URL, bool) {
	u, err := url.Parse(input)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, false
	}
	return u, true
}
