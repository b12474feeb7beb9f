// Package classifier decides how a webhook body is forwarded downstream.
//
// Senders (and proxies in front of them) often label JSON as text/plain, so the declared
// content type is ignored and the body itself is inspected.
package classifier

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/IsaacDSC/tvrelay/internal/domain"
)

// Classify returns the content type and body to forward for raw.
//
// A body whose trimmed form starts with '{', '[' or '"' and is valid JSON goes out as
// application/json with the trimmed text, byte for byte. Everything else, including
// malformed JSON and the empty body, goes out as text with raw untouched.
func Classify(raw string) domain.ForwardDecision {
	trimmed := strings.TrimFunc(raw, isSpace)

	if looksLikeJSON(trimmed) && json.Valid([]byte(trimmed)) {
		return domain.ForwardDecision{
			Mode:        domain.ForwardModeJSON,
			ContentType: domain.ContentTypeJSON,
			Body:        trimmed,
		}
	}

	return domain.ForwardDecision{
		Mode:        domain.ForwardModeText,
		ContentType: domain.ContentTypeText,
		Body:        raw,
	}
}

func ClassifyPayload(p domain.InboundPayload) domain.ForwardDecision {
	return Classify(p.Raw)
}

func looksLikeJSON(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case '{', '[', '"':
		return true
	}
	return false
}

// isSpace is Unicode white space plus the byte order mark, minus NEL (U+0085). A body
// wrapped in NEL is not JSON and goes out as text.
func isSpace(r rune) bool {
	return r != '\u0085' && (unicode.IsSpace(r) || r == '\uFEFF')
}
