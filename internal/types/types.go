package types

type PingResponse struct {
	Message string `json:"message"`
}

type ChatRequest struct {
	UserInput string `json:"user_input"`
}

type ChatResponse struct {
	ProductData        []Product        `json:"product_data"`
	Msg                string           `json:"msg"`
	RecommendationData []Recommendation `json:"recommendation_data"`
}

type Recommendation struct {
	ProductId   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
	Reason      string `json:"reason"`
}

type CategoryInfo struct {
	Parent string `json:"parent,omitempty"`
	Sub    string `json:"sub,omitempty"`
}

type MediaItem struct {
	Url string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`
}

type Product struct {
	ProductId          string        `json:"id"`
	Name               string        `json:"name"`
	Sku                string        `json:"sku,omitempty"`
	Description        string        `json:"description,omitempty"`
	BasePrice          float64       `json:"basePrice"`
	Stock              int32         `json:"stock"`
	CategoryInfo       *CategoryInfo `json:"categoryInfo,omitempty"`
	Media              []MediaItem   `json:"media,omitempty"`
	Tags               []string      `json:"tags,omitempty"`
	IsActive           bool          `json:"isActive"`
	Sizes              []string      `json:"sizes,omitempty"`
	DiscountPercentage float64       `json:"discountPercentage,omitempty"`
	IsFeatured         bool          `json:"isFeatured,omitempty"`
	CreatedAt          string        `json:"createdAt,omitempty"`
	UpdatedAt          string        `json:"updatedAt,omitempty"`
}

type OrderItem struct {
	ProductId string  `json:"product,omitempty"`
	Name      string  `json:"name"`
	Quantity  int32   `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	OrderId      string      `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	Status       string      `json:"status"`
	CustomerName string      `json:"customerName,omitempty"`
	Items        []OrderItem `json:"items"`
	GrandTotal   float64     `json:"grandTotal,omitempty"`
	CreatedAt    string      `json:"createdAt,omitempty"`
}
