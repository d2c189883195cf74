package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa um usuário do sistema. BranchID é obrigatório para
// role=user (restringe a visibilidade àquele acolhimento) e vazio para
// role=admin (visibilidade irrestrita).
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"` // bcrypt; nunca texto plano depois de persistir
	Role         string `json:"role"`         // admin, user
	BranchID     string `json:"branchId,omitempty"`
	CreatedAt    string `json:"createdAt"` // ISO-8601
}
