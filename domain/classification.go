package domain

import (
	"errors"
)

const (
	AlternativeExisting = "existing"
	AlternativeNew      = "new"

	CallSiteCatalog = "catalog"
	CallSiteChat    = "chat"

	ChatDefaultPrice        = 0
	ChatDefaultDaysToExpire = 7
)

var (
	ErrClassificationFailed = errors.New("classification failed")
	ErrGeminiAPIFailed      = errors.New("gemini API processing failed")
	ErrGeminiNotConfigured  = errors.New("GEMINI_API_KEY not configured")
)

type (
	ClassifyRequest struct {
		Name          string
		KnownProducts []string
		Categories    []string
	}

	// Classification is the structured answer of the classification service.
	// Input* estimates are only used when the caller has no values of its own.
	Classification struct {
		InputHealthy      bool    `json:"input_healthy"`
		InputCategory     string  `json:"input_category"`
		InputPrice        float64 `json:"input_price"`
		InputDaysToExpire int     `json:"input_days_to_expire"`

		AlternativeName         *string `json:"alternative_name"`
		AlternativeSource       string  `json:"alternative_source" validate:"omitempty,oneof=existing new"`
		AlternativePrice        float64 `json:"alternative_price"`
		AlternativeDaysToExpire int     `json:"alternative_days_to_expire"`
		AlternativeCategory     string  `json:"alternative_category"`
	}
)

// DefaultClassification is applied by callers when the classification
// service fails: healthy, no alternative, and the call site's fallback
// category.
func DefaultClassification(callSite string) Classification {
	c := Classification{
		InputHealthy:  true,
		InputCategory: CategoryUnknown,
	}
	if callSite == CallSiteChat {
		c.InputCategory = CategoryPantryStaples
		c.InputPrice = ChatDefaultPrice
		c.InputDaysToExpire = ChatDefaultDaysToExpire
	}
	return c
}
