package client

import (
	"encoding/json"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/internal/constants"
)

// decodeInto unmarshals a response body. Empty bodies are left as the zero
// value, matching 204 responses.
func decodeInto(resp *internalhttp.Response, out interface{}) error {
	if len(resp.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}

// apiPath joins path segments under the versioned API prefix.
func apiPath(format string, args ...interface{}) string {
	return constants.APIBasePath + fmt.Sprintf(format, args...)
}
