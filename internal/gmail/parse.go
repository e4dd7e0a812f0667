package gmail

import (
	"encoding/base64"
	"regexp"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

var (
	fromPattern            = regexp.MustCompile(`^(.+?)\s*<(.+)>$`)
	linkedInProfilePattern = regexp.MustCompile(`https?://(www\.)?linkedin\.com/in/[\w-]+`)
)

// parseFromHeader splits a "Display Name <addr@example.com>" header into
// name and address. Bare addresses come back as both.
func parseFromHeader(from string) (name, addr string) {
	if m := fromPattern.FindStringSubmatch(from); m != nil {
		return strings.ReplaceAll(m[1], `"`, ""), m[2]
	}
	return from, from
}

// headerValue returns the first header with the given name, or "".
func headerValue(headers []*gmail.MessagePartHeader, name string) string {
	for _, h := range headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

// extractBody decodes the first text/plain part of a message payload.
func extractBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}
	if payload.Body != nil && payload.Body.Data != "" {
		if decoded, ok := decodeBodyData(payload.Body.Data); ok {
			return decoded
		}
	}
	for _, part := range payload.Parts {
		if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
			if decoded, ok := decodeBodyData(part.Body.Data); ok {
				return decoded
			}
		}
	}
	return ""
}

// decodeBodyData decodes a base64url message body. Gmail frequently omits
// padding, so the raw alphabet is tried when the padded decode fails.
func decodeBodyData(data string) (string, bool) {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
	}
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// isLinkedInNotification detects LinkedIn-originated mail from the sender,
// subject or body.
func isLinkedInNotification(from, subject, body string) bool {
	return strings.Contains(from, "linkedin.com") ||
		strings.Contains(from, "via LinkedIn") ||
		strings.Contains(body, "linkedin.com") ||
		strings.Contains(strings.ToLower(subject), "linkedin")
}

// extractProfileURL pulls the first linkedin.com/in/ profile link from the
// body, or "".
func extractProfileURL(body string) string {
	return linkedInProfilePattern.FindString(body)
}
