package classifier

import (
	"context"
	"fmt"
	"strings"

	"Smart-Grocery-Agent/domain"
)

const classifyPrompt = `You are the catalog assistant of a grocery shopping app.
A user wants to add the product %q.

Known products: %s
Known categories: %s

Decide whether %q is a healthy choice. If it is not, suggest one healthier
alternative. Prefer an alternative from the known products; only invent a new
product when none of them fits.

Answer with a single JSON object and nothing else:
{
  "input_healthy": true or false,
  "input_category": one of the known categories, or a new category name,
  "input_price": estimated price as a number,
  "input_days_to_expire": estimated shelf life in days as an integer,
  "alternative_name": product name or null,
  "alternative_source": "existing" or "new",
  "alternative_price": number, only when the alternative is new,
  "alternative_days_to_expire": integer, only when the alternative is new,
  "alternative_category": category name, only when the alternative is new
}`

// classificationAnswer requires input_healthy; a missing verdict is a
// malformed answer, not an unhealthy product.
type classificationAnswer struct {
	domain.Classification
	InputHealthy *bool `json:"input_healthy" validate:"required"`
}

// ProductClassifier asks Gemini about products the catalog has not seen.
type ProductClassifier struct {
	client GeminiClient
}

func NewProductClassifier(client GeminiClient) *ProductClassifier {
	return &ProductClassifier{client: client}
}

func (c *ProductClassifier) Classify(ctx context.Context, req domain.ClassifyRequest) (domain.Classification, error) {
	prompt := fmt.Sprintf(classifyPrompt,
		req.Name,
		listOrNone(req.KnownProducts),
		listOrNone(req.Categories),
		req.Name,
	)

	answer, err := c.client.Generate(ctx, prompt)
	if err != nil {
		return domain.Classification{}, err
	}

	var decoded classificationAnswer
	if err := decodeAnswer(answer, &decoded); err != nil {
		return domain.Classification{}, err
	}

	cls := decoded.Classification
	cls.InputHealthy = *decoded.InputHealthy

	cls.InputCategory = strings.TrimSpace(cls.InputCategory)
	if cls.AlternativeName != nil && strings.TrimSpace(*cls.AlternativeName) == "" {
		cls.AlternativeName = nil
	}
	return cls, nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
