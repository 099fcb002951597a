package llm

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonrepair"
)

// ParseJSON decodes model output that may carry markdown fences or be
// slightly malformed. The original decode error is returned when repair
// does not help.
func ParseJSON(raw string, v interface{}) error {
	raw = stripFence(raw)

	err := jsoniter.UnmarshalFromString(raw, v)
	if err == nil {
		return nil
	}
	originalErr := err

	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return originalErr
	}
	if err := jsoniter.UnmarshalFromString(repaired, v); err == nil {
		return nil
	}
	return originalErr
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
