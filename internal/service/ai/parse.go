package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"inkatlas/backend/internal/model"
)

// StripCodeFences removes markdown code-fence markers that chat models wrap
// around JSON output despite being told not to.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseLandmarks decodes a provider reply into landmark records and enforces
// the record invariant. Any malformed JSON or invalid record is a hard error;
// records are never silently dropped.
func ParseLandmarks(data []byte) ([]model.Landmark, error) {
	var landmarks []model.Landmark
	if err := json.Unmarshal(data, &landmarks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	for i, l := range landmarks {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrBadResponse, i, err)
		}
	}
	if landmarks == nil {
		landmarks = []model.Landmark{}
	}
	return landmarks, nil
}
