package invite

import (
	"encoding/base64"
	"strings"
	"unicode"
)

// Envelope is the JSON body exchanged by the generate endpoints. Exactly
// one of the payload fields is set on success; Error carries the message
// on failure.
type Envelope struct {
	Success     bool   `json:"success"`
	PDFBase64   string `json:"pdfBase64,omitempty"`
	ImageBase64 string `json:"imageBase64,omitempty"`
	Filename    string `json:"filename,omitempty"`
	Error       string `json:"error,omitempty"`
	Code        string `json:"code,omitempty"`
}

// EncodePayload encodes artifact bytes for the JSON envelope.
func EncodePayload(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodePayload decodes a base64 payload back to bytes, tolerating
// incidental whitespace. A malformed payload indicates corruption in
// transit, reported as its own kind so callers can tell it apart from a
// server failure.
func DecodePayload(payload string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, payload)

	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, NewError(KindDecode, "payload is not valid base64", err)
	}
	return data, nil
}
