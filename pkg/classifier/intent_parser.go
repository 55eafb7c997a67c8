package classifier

import (
	"context"
	"fmt"
	"strings"

	"Smart-Grocery-Agent/domain"
)

const intentPrompt = `You are a friendly grocery shopping assistant.
Products in the store: %s

The user said: %q

If the user wants to buy or add a product to the cart, answer with
{"intent": "add", "item": "<product name>", "reply": "<short confirmation>"}.
Use the exact store name when the product matches one of the store products.
Otherwise answer with {"intent": "other", "item": "", "reply": "<short helpful reply>"}.
Answer with a single JSON object and nothing else.`

// IntentParser turns a chat message into an add-to-cart intent.
type IntentParser struct {
	client GeminiClient
}

func NewIntentParser(client GeminiClient) *IntentParser {
	return &IntentParser{client: client}
}

func (p *IntentParser) ParseIntent(ctx context.Context, message string, knownProducts []string) (domain.ChatIntent, error) {
	answer, err := p.client.Generate(ctx, fmt.Sprintf(intentPrompt, listOrNone(knownProducts), message))
	if err != nil {
		return domain.ChatIntent{}, err
	}

	var intent domain.ChatIntent
	if err := decodeAnswer(answer, &intent); err != nil {
		return domain.ChatIntent{}, err
	}

	intent.Item = matchKnown(strings.TrimSpace(intent.Item), knownProducts)
	return intent, nil
}

// matchKnown maps a case-insensitive match back to the catalog spelling.
func matchKnown(item string, known []string) string {
	for _, name := range known {
		if strings.EqualFold(name, item) {
			return name
		}
	}
	return item
}
