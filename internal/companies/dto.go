package companies

// CreateRequest is the body of POST /companies. The code is derived from Name.
type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateRequest is the body of PUT /companies/{code}. Omitted fields keep
// their stored value but at least one must be present.
type UpdateRequest struct {
	Name        *string `json:"name" validate:"required_without=Description"`
	Description *string `json:"description" validate:"required_without=Name"`
}

type listResponse struct {
	Companies []Company `json:"companies"`
}

type companyResponse struct {
	Company any `json:"company"`
}
