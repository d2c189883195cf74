package dto

// CreateUserRequest entrada para criar um usuário. BranchID é obrigatório
// quando role=user e ignorado quando role=admin.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	BranchID string `json:"branchId,omitempty"`
}

// UpdateUserRequest entrada para atualizar um usuário; campos nil ficam como estão.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	BranchID *string `json:"branchId"`
}

// UserResponse saída de um usuário, sem o hash de senha.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	BranchID  string `json:"branchId,omitempty"`
	CreatedAt string `json:"createdAt"`
}
