package industries

// CreateRequest is the body of POST /industries.
type CreateRequest struct {
	Code     string `json:"code" validate:"required"`
	Industry string `json:"industry" validate:"required"`
}

type listResponse struct {
	Industries []Summary `json:"industries"`
}

type industryResponse struct {
	Industry Industry `json:"industry"`
}

type associationResponse struct {
	Association Association `json:"Added Association"`
}
