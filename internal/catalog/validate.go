package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed catalog.schema.json
var feedSchema []byte

// ErrInvalidFeed is returned when the payload does not match the feed schema.
var ErrInvalidFeed = errors.New("invalid catalog feed")

// maxReportedErrors caps the schema violations included in an error.
const maxReportedErrors = 5

var feedSchemaLoader = gojsonschema.NewBytesLoader(feedSchema)

// Validate checks data against the feed schema: a JSON array of objects
// whose known attributes are strings and whose tags are a list of strings.
// Missing attributes and unknown extras are allowed.
func Validate(data []byte) error {
	res, err := gojsonschema.Validate(feedSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFeed, err)
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for i, e := range res.Errors() {
		if i >= maxReportedErrors {
			msgs = append(msgs, fmt.Sprintf("and %d more", len(res.Errors())-i))
			break
		}
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidFeed, strings.Join(msgs, "; "))
}
