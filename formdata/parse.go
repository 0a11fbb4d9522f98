// Package formdata decodes multipart/form-data fixture bodies.
//
// The parser expects the trusted, well-formed text fixtures integrations
// ship for their tests; it is not a wire-format decoder. Real HTTP
// multipart streams must go through the host HTTP stack's
// standards-compliant reader.
package formdata

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-webhooks/core"
)

// ParseString decodes a multipart/form-data text body into a flat field
// name to value map. The boundary is read off the first line (its leading
// two characters are the "--" marker), the body is split on the boundary,
// and each part contributes the field named by its Content-Disposition
// header. Duplicate field names are last-write-wins, matching the
// canonical-header collision policy.
func ParseString(body string) (map[string]string, error) {
	firstLine, _, _ := strings.Cut(body, "\n")
	if len(firstLine) < 2 {
		return nil, malformed("formdata: body is missing a boundary line")
	}
	boundary := firstLine[2:]
	if boundary == "" {
		return nil, malformed("formdata: boundary marker is empty")
	}

	fields := map[string]string{}
	for _, part := range strings.Split(body, "--"+boundary) {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" || trimmed == "--" {
			continue
		}

		headerBlock, valueBlock, found := strings.Cut(part, "\n\n")
		if !found {
			return nil, malformed("formdata: part is missing the blank-line separator")
		}
		valueBlock = strings.TrimSuffix(valueBlock, "\n--")
		// the newline preceding the next boundary marker belongs to the
		// marker, not the field value
		valueBlock = strings.TrimSuffix(valueBlock, "\n")

		name, err := fieldName(headerBlock)
		if err != nil {
			return nil, err
		}
		fields[name] = valueBlock
	}
	return fields, nil
}

func fieldName(headerBlock string) (string, error) {
	for _, line := range strings.Split(headerBlock, "\n") {
		if !strings.Contains(line, "Content-Disposition") {
			continue
		}
		_, after, found := strings.Cut(line, `name="`)
		if !found {
			return "", malformed("formdata: Content-Disposition has no name parameter")
		}
		name, _, closed := strings.Cut(after, `"`)
		if !closed {
			return "", malformed("formdata: name parameter is unterminated")
		}
		return name, nil
	}
	return "", malformed("formdata: part has no Content-Disposition header")
}

func malformed(message string) error {
	return core.NewError(
		message,
		goerrors.CategoryBadInput,
		http.StatusBadRequest,
		core.WebhookErrorMalformedMultipart,
		nil,
	)
}
