package validators

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	pkgerrors "github.com/giftwell/wishlist-backend/pkg/errors"
)

const badBodyMessage = "body of request contained bad or no data"

// DecodeJSONBody unmarshals a request body into dest. Any body that is not a
// JSON object (array, scalar, null, empty) is rejected with a single
// malformed-body validation error; field-level validation is left to the
// payload's own Validate method.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, badBodyMessage)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return pkgerrors.New(pkgerrors.CodeValidation, badBodyMessage)
	}

	if err := json.Unmarshal(trimmed, dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, badBodyMessage).WithDetails(map[string]any{"error": err.Error()})
	}
	return nil
}
