package risk

import "errors"

var (
	ErrEmptyResponse    = errors.New("classifier returned no candidates")
	ErrUnexpectedStatus = errors.New("classifier returned unexpected status")
	ErrMalformedPayload = errors.New("classifier payload is not a JSON object")
)
