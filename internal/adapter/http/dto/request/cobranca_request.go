package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyMPPayload = errors.New("mp_payload cannot be empty")

// CobrancaRequest is the payload of the charge route.
//
// `mp_payload` is forwarded as-is to support varying Mercado Pago schemas; a
// body without the wrapper is taken as the payload itself.
type CobrancaRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ParseCobrancaPayload extracts the Mercado Pago payload from a raw body.
func ParseCobrancaPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, ErrEmptyMPPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
