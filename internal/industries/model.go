package industries

// Industry represents an industry entity.
type Industry struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// Summary is an industry with the codes of every associated company.
type Summary struct {
	Code      string   `json:"code"`
	Industry  string   `json:"industry"`
	CompCodes []string `json:"comp_codes"`
}

// Association links a company to an industry.
type Association struct {
	CompCode string `json:"comp_code"`
	IndCode  string `json:"ind_code"`
}
