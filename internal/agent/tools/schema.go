package tools

import "github.com/cloudwego/eino/schema"

// Tool names advertised to the chat model. The shapes are part of the
// storefront's model-facing contract and must not drift.
const (
	ToolGetProduct       = "get_product"
	ToolRecommendProduct = "recommend_product"
	ToolTrackOrder       = "track_order"

	// ToolSubmitRecommendations is bound only on the recommendation
	// follow-up pass, with forced tool choice.
	ToolSubmitRecommendations = "submit_recommendations"
)

// IsRegistered reports whether name is a tool the assistant executes.
func IsRegistered(name string) bool {
	switch name {
	case ToolGetProduct, ToolRecommendProduct, ToolTrackOrder:
		return true
	default:
		return false
	}
}

// BuildToolInfos describes the callable tools passed to the model on every
// turn. Immutable for the process lifetime.
func BuildToolInfos() []*schema.ToolInfo {
	filterParams := map[string]*schema.ParameterInfo{
		"scent_type": {
			Type:     schema.String,
			Desc:     "Type of perfume based on target audience.",
			Enum:     []string{"men", "women", "unisex"},
			Required: true,
		},
		"max_price": {
			Type:     schema.Number,
			Desc:     "Maximum price of the perfume in INR.",
			Required: true,
		},
	}

	trackParams := map[string]*schema.ParameterInfo{
		"order_id": {
			Type: schema.String,
			Desc: "The order number, e.g. ORD-100. Preferred when the customer knows it.",
		},
		"product_name": {
			Type: schema.String,
			Desc: "Name of a product in the order. Required together with name when order_id is unknown.",
		},
		"name": {
			Type: schema.String,
			Desc: "Customer name as used at checkout.",
		},
	}

	return []*schema.ToolInfo{
		{
			Name:        ToolGetProduct,
			Desc:        "Fetches perfumes from the Milaparfum database based on scent type and budget.",
			ParamsOneOf: schema.NewParamsOneOfByParams(filterParams),
		},
		{
			Name:        ToolRecommendProduct,
			Desc:        "Fetches perfumes by scent type and budget so the assistant can pick and justify the best matches.",
			ParamsOneOf: schema.NewParamsOneOfByParams(filterParams),
		},
		{
			Name:        ToolTrackOrder,
			Desc:        "Looks up the customer's orders by order number, or by customer name plus product name.",
			ParamsOneOf: schema.NewParamsOneOfByParams(trackParams),
		},
	}
}

// SubmitRecommendationsTool is the structured-output schema for the
// recommendation follow-up. product_id echoes the id from the tool result;
// name matching is only a fallback when the model omits it.
func SubmitRecommendationsTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolSubmitRecommendations,
		Desc: "Submit the final ranked perfume recommendations.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"recommendations": {
				Type:     schema.Array,
				Desc:     "Ranked picks drawn from the product list in the tool result.",
				Required: true,
				ElemInfo: &schema.ParameterInfo{
					Type: schema.Object,
					SubParams: map[string]*schema.ParameterInfo{
						"product_id": {
							Type: schema.String,
							Desc: "Product id exactly as given in the tool result.",
						},
						"product_name": {
							Type:     schema.String,
							Desc:     "Product name exactly as given in the tool result.",
							Required: true,
						},
						"reason": {
							Type:     schema.String,
							Desc:     "One or two sentences on why this perfume fits.",
							Required: true,
						},
					},
				},
			},
		}),
	}
}
