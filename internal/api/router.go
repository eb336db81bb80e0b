// Package api routes raw feed payloads to the parser generation matching
// their version tag and exposes the result over HTTP. The routing and
// status mapping are plain functions independent of the web framework;
// gin only carries them.
package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spacesedan/hnparser/internal/models"
	"github.com/spacesedan/hnparser/internal/parser"
	"github.com/tidwall/gjson"
)

const (
	VERSION_V1 = "1.0"
	VERSION_V2 = "2.0"
)

// SupportedVersions lists the version tags Dispatch accepts, in the order
// they are reported to clients.
var SupportedVersions = []string{VERSION_V1, VERSION_V2}

// ErrMissingVersion reports a payload with no usable version tag.
var ErrMissingVersion = errors.New("Missing 'version' field in request data")

// ErrInvalidBody reports a request body that is not valid JSON.
var ErrInvalidBody = errors.New("Invalid JSON in request body")

// UnsupportedVersionError reports a version tag outside SupportedVersions.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("Unsupported version: %s. Supported versions: %s",
		e.Version, strings.Join(SupportedVersions, ", "))
}

// Dispatch reads the version tag from a raw JSON payload and hands the
// payload to the matching parser generation. Every call builds a fresh
// parser, so Dispatch is safe for concurrent use.
func Dispatch(data []byte) (models.ParsedDataset, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidBody
	}
	version := gjson.GetBytes(data, "version").String()
	if version == "" {
		return nil, ErrMissingVersion
	}
	switch version {
	case VERSION_V1:
		d, err := parser.NewV1().Parse(data)
		if err != nil {
			return nil, err
		}
		return d, nil
	case VERSION_V2:
		d, err := parser.NewV2().Parse(data)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, &UnsupportedVersionError{Version: version}
	}
}
