package classifier

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/internal/utils"
)

var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON pulls the JSON object out of a model answer that may be
// wrapped in prose or a markdown fence.
func extractJSON(text string) string {
	if match := jsonPattern.FindString(text); match != "" {
		text = match
	}

	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

// decodeAnswer parses and validates the model answer into out.
func decodeAnswer(text string, out any) error {
	cleaned := extractJSON(text)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: %v - raw response: %s", domain.ErrClassificationFailed, err, text)
	}

	utils.InitValidator()
	if err := utils.Validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClassificationFailed, err)
	}
	return nil
}
