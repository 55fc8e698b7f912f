package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// maxPeekBytes bounds how much body we buffer when peeking a field.
// Auth payloads are tiny; anything bigger isn't worth bucketing on.
const maxPeekBytes = 1 << 16

// peekJSONField reads a top-level string field from a JSON body without
// consuming it: the body is buffered and handed back to the request so
// the downstream handler can decode it normally.
func peekJSONField(r *http.Request, field string) string {
	if r.Body == nil {
		return ""
	}

	buf, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(buf))
	if err != nil {
		return ""
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(buf, &payload); err != nil {
		return ""
	}

	raw, ok := payload[field]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}
