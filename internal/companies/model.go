package companies

// Company represents a company entity.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Detail is a company expanded with its invoice ids and industry names.
type Detail struct {
	Company
	Invoices   []int64  `json:"invoices"`
	Industries []string `json:"industries"`
}
