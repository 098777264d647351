package chat

import (
	"encoding/json"
	"strings"

	"milaparfum/internal/agent/tools"

	"github.com/cloudwego/eino/schema"
)

// Recommendation is one entry of the model's structured recommendation
// output. ProductID is preferred for joining back to the filtered set;
// ProductName is the legacy join key.
type Recommendation struct {
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
	Reason      string `json:"reason"`
}

type recommendationPayload struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// ExtractRecommendations scrapes an embedded recommendations object out of
// free text: the span from the first '{' to the last '}'. Best effort over
// output the model was instructed, not guaranteed, to produce; any failure
// yields an empty list, never an error.
func ExtractRecommendations(text string) []Recommendation {
	start := strings.Index(text, "{")
	if start < 0 {
		return nil
	}
	end := strings.LastIndex(text, "}")
	if end <= start {
		return nil
	}

	var payload recommendationPayload
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil
	}
	return pruneRecommendations(payload.Recommendations)
}

// submittedRecommendations reads the structured path: the arguments of a
// submit_recommendations tool call, when the model used it.
func submittedRecommendations(msg *schema.Message) []Recommendation {
	if msg == nil {
		return nil
	}
	for _, call := range msg.ToolCalls {
		if !strings.EqualFold(call.Function.Name, tools.ToolSubmitRecommendations) {
			continue
		}
		var payload recommendationPayload
		if err := json.Unmarshal([]byte(call.Function.Arguments), &payload); err != nil {
			return nil
		}
		return pruneRecommendations(payload.Recommendations)
	}
	return nil
}

func pruneRecommendations(entries []Recommendation) []Recommendation {
	kept := make([]Recommendation, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.ProductName) == "" && strings.TrimSpace(e.ProductID) == "" {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
