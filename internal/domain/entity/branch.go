package entity

// Branch representa um acolhimento (unidade física da rede de abrigos).
// É a unidade de escopo para itens, movimentos e usuários com role=user.
// A identidade é imutável depois de criada; excluir um acolhimento não
// exclui em cascata os itens que o referenciam (branchId pendente é possível).
type Branch struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	CreatedAt string `json:"createdAt"` // ISO-8601
}
