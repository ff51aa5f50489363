package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	fetchUserAgent = "crm-media-processor/1.0"
	dataURLPrefix  = "data:"
)

// decodeBase64Payload decodes raw base64 or a data URL. The MIME declared in
// a data URL prefix is returned alongside the bytes.
func decodeBase64Payload(input string) (payload, error) {
	value := strings.TrimSpace(input)
	declared := ""
	if strings.HasPrefix(strings.ToLower(value), dataURLPrefix) {
		declared = mimeFromDataURL(value)
		if idx := strings.Index(value, ","); idx >= 0 {
			value = value[idx+1:]
		}
	}
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return payload{}, fmt.Errorf("%w: invalid base64: %v", ErrAcquisition, err)
	}
	return payload{bytes: raw, declaredMime: declared}, nil
}

// mimeFromDataURL extracts the MIME from a data URL prefix, or "".
func mimeFromDataURL(raw string) string {
	value := strings.TrimSpace(raw)
	if !strings.HasPrefix(strings.ToLower(value), dataURLPrefix) {
		return ""
	}
	rest := value[len(dataURLPrefix):]
	if idx := strings.Index(rest, ";"); idx >= 0 {
		return NormalizeMime(rest[:idx])
	}
	if idx := strings.Index(rest, ","); idx >= 0 {
		return NormalizeMime(rest[:idx])
	}
	return ""
}

// fetchPayload downloads mediaURL. The response Content-Type is kept as a
// secondary resolution signal.
func (s *Service) fetchPayload(ctx context.Context, mediaURL string) (payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return payload{}, fmt.Errorf("%w: build fetch request: %v", ErrAcquisition, err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := s.client.Do(req)
	if err != nil {
		return payload{}, fmt.Errorf("%w: fetch %s: %v", ErrAcquisition, mediaURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return payload{}, fmt.Errorf("%w: fetch %s: status %d %s", ErrAcquisition, mediaURL, resp.StatusCode, resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxPayloadBytes+1))
	if err != nil {
		return payload{}, fmt.Errorf("%w: read fetch body: %v", ErrAcquisition, err)
	}
	if len(raw) > MaxPayloadBytes {
		return payload{}, fmt.Errorf("%w: payload exceeds %d bytes", ErrAcquisition, MaxPayloadBytes)
	}
	return payload{
		bytes:        raw,
		declaredMime: NormalizeMime(resp.Header.Get("Content-Type")),
	}, nil
}

// acquire obtains the raw bytes for input. Base64 wins over MediaURL; an
// empty result is an acquisition failure, never stored.
func (s *Service) acquire(ctx context.Context, input IngestInput) (payload, error) {
	var (
		p   payload
		err error
	)
	switch {
	case strings.TrimSpace(input.Base64) != "":
		p, err = decodeBase64Payload(input.Base64)
	case strings.TrimSpace(input.MediaURL) != "":
		p, err = s.fetchPayload(ctx, input.MediaURL)
	default:
		return payload{}, fmt.Errorf("%w: no base64 or mediaUrl supplied", ErrAcquisition)
	}
	if err != nil {
		return payload{}, err
	}
	if len(p.bytes) == 0 {
		return payload{}, fmt.Errorf("%w: empty payload", ErrAcquisition)
	}
	return p, nil
}
