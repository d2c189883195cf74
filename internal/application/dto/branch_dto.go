package dto

// CreateBranchRequest entrada para criar um acolhimento.
type CreateBranchRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// UpdateBranchRequest entrada para atualizar um acolhimento; campos nil ficam como estão.
type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}
