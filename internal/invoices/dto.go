package invoices

// CreateRequest is the body of POST /invoices.
type CreateRequest struct {
	CompCode string  `json:"comp_code" validate:"required"`
	Amt      float64 `json:"amt" validate:"required,gt=0"`
}

// UpdateRequest is the body of PUT /invoices/{id}.
type UpdateRequest struct {
	Amt  *float64 `json:"amt" validate:"required,gt=0"`
	Paid *bool    `json:"paid" validate:"required"`
}

type listResponse struct {
	Invoices []Invoice `json:"invoices"`
}

type invoiceResponse struct {
	Invoice any `json:"invoice"`
}
