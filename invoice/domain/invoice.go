package domain

// Invoice is the outcome of one generation. Only URL outlives the request.
type Invoice struct {
	OrderID string `json:"orderId"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	PDF     []byte `json:"-"`
}
