package dto

// CreateItemRequest entrada para criar um item de inventário. Category deve
// ser uma das sete categorias canônicas; a restrição é do formulário, o
// núcleo trata o valor como string livre.
type CreateItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Arrived  int    `json:"arrived"`
	Unit     string `json:"unit"`
	BranchID string `json:"branchId"`
}

// UpdateItemRequest entrada da edição completa de um item; campos nil ficam
// como estão. Stock/Arrived novos (ou mantidos) redefinem CurrentStock.
type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Stock    *int    `json:"stock"`
	Arrived  *int    `json:"arrived"`
	Unit     *string `json:"unit"`
}

// WithdrawalRequest entrada do caminho legado de retirada diária.
type WithdrawalRequest struct {
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}
