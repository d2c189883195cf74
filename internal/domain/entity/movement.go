package entity

// Tipos de movimento de estoque.
const (
	MovementTypeEntrada = "entrada" // aumenta CurrentStock e Arrived
	MovementTypeSaida   = "saida"   // diminui apenas CurrentStock
)

// ReasonOutros é o motivo coringa; exige descrição livre complementar.
const ReasonOutros = "Outros"

// Motivos canônicos por tipo de movimento.
var (
	EntradaReasons = []string{"Compra", "Doação", "Transferência", "Reposição", ReasonOutros}
	SaidaReasons   = []string{"Consumo", "Avariado", "Transferência", "Vencido", ReasonOutros}
)

// StockMovement é um lançamento imutável do livro de movimentos (trilha de
// auditoria). Nunca é alterado nem removido depois de gravado; não existe
// operação de update ou delete.
//
// Reason é a string composta: código canônico, opcionalmente sufixado com
// " - " + descrição livre quando o código é "Outros".
type StockMovement struct {
	ID        string `json:"id"`
	ItemID    string `json:"itemId"`
	Type      string `json:"type"` // entrada | saida
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Date      string `json:"date"`      // dia do movimento (YYYY-MM-DD), informado pelo chamador
	UserID    string `json:"userId"`    // quem registrou
	CreatedAt string `json:"createdAt"` // ISO-8601
}
