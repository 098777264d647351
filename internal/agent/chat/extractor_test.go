package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRecommendationsPlainObject(t *testing.T) {
	got := ExtractRecommendations(`{"recommendations": [{"product_name": "Noir Homme", "reason": "bold"}]}`)

	require.Len(t, got, 1)
	assert.Equal(t, "Noir Homme", got[0].ProductName)
	assert.Equal(t, "bold", got[0].Reason)
}

func TestExtractRecommendationsEmbeddedInProse(t *testing.T) {
	text := "Here are my thoughts.\n" +
		`{"recommendations": [{"product_id": "abc123", "product_name": "Noir Homme", "reason": "bold"}]}` +
		"\nEnjoy!"

	got := ExtractRecommendations(text)

	require.Len(t, got, 1)
	assert.Equal(t, "abc123", got[0].ProductID)
}

func TestExtractRecommendationsNoBraces(t *testing.T) {
	assert.Empty(t, ExtractRecommendations("I would go with Noir Homme."))
}

func TestExtractRecommendationsMalformedJSON(t *testing.T) {
	assert.Empty(t, ExtractRecommendations(`{"recommendations": [{"product_name": }`))
}

func TestExtractRecommendationsReversedBraces(t *testing.T) {
	assert.Empty(t, ExtractRecommendations("} not json {"))
}

func TestExtractRecommendationsDropsEmptyEntries(t *testing.T) {
	got := ExtractRecommendations(`{"recommendations": [{"reason": "no name"}, {"product_name": "Noir Homme", "reason": "bold"}]}`)

	require.Len(t, got, 1)
	assert.Equal(t, "Noir Homme", got[0].ProductName)
}

func TestExtractRecommendationsWrongShape(t *testing.T) {
	assert.Empty(t, ExtractRecommendations(`{"picks": ["Noir Homme"]}`))
}
