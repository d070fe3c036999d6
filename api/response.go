package api

import (
	"encoding/json"
	"fmt"
)

// parseResponse validates a JSON-RPC response envelope and returns its result.
//
// An error member, when present, is authoritative: it must be an object with an
// integer code and a string message, and is returned as *RPCError. Some nodes
// leave error.message empty and put the diagnostic text in result instead; in
// that case the result string becomes the message.
func parseResponse(method string, body []byte) (Value, error) {
	envelope, err := decodeValue("", body)
	if err != nil {
		return Value{}, &TransportError{Method: method, Err: fmt.Errorf("malformed response body: %w", err)}
	}

	obj, ok := envelope.raw.(map[string]any)
	if !ok {
		return Value{}, &TransportError{Method: method, Err: fmt.Errorf("malformed response body: expected JSON object, got %s", envelope.kind())}
	}

	result := newValue("result", obj["result"])
	errValue := newValue("error", obj["error"])
	if errValue.IsNull() {
		return result, nil
	}

	code, err := errValue.IntField("code")
	if err != nil {
		return Value{}, err
	}
	message, err := errValue.StringField("message")
	if err != nil {
		return Value{}, err
	}
	data, err := errValue.Field("data")
	if err != nil {
		return Value{}, err
	}

	if message == "" {
		if s, ok := result.raw.(string); ok && s != "" {
			message = s
		}
	}

	return Value{}, &RPCError{
		Code:    code,
		Message: message,
		Data:    plainJSON(data.raw),
	}
}

// plainJSON converts json.Number leaves back to float64 or int64 so RPCError.Data
// looks like an ordinary decoded JSON value to callers.
func plainJSON(raw any) any {
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil && !isFloatLiteral(v) {
			return i
		}
		f, _ := v.Float64()
		return f
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plainJSON(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = plainJSON(item)
		}
		return out
	default:
		return raw
	}
}
