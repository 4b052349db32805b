package dto

// CalculationRequest carries the raw operands and operation tag.
// Operands stay untyped text on purpose: parsing happens in the domain
// and malformed input degrades to NaN rather than a 400. Missing keys
// bind as empty strings and flow through the same path.
type CalculationRequest struct {
	A         string `json:"a"         form:"a"`
	B         string `json:"b"         form:"b"`
	Operation string `json:"operation" form:"operation"`
}

// CalculationResponse is the HTTP response structure for an evaluation.
type CalculationResponse struct {
	A         string `json:"a"`
	B         string `json:"b"`
	Operation string `json:"operation"`
	Display   string `json:"display"`
	Cached    bool   `json:"cached"`
}
