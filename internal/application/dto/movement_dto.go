package dto

// RecordMovementRequest body de POST /api/movements.
// Reason é o código canônico; Description complementa o motivo (obrigatória
// quando Reason é "Outros").
type RecordMovementRequest struct {
	ItemID      string `json:"itemId"`
	Type        string `json:"type"` // entrada | saida
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
}

// TransactionDTO um lançamento do livro com o nome do item resolvido.
type TransactionDTO struct {
	ID        string `json:"id"`
	ItemID    string `json:"itemId"`
	ItemName  string `json:"itemName"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Date      string `json:"date"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

// TransactionTotals somatórios da listagem filtrada.
type TransactionTotals struct {
	Entradas int `json:"entradas"`
	Saidas   int `json:"saidas"`
}

// TransactionsResponse listagem filtrada de transações com totais.
type TransactionsResponse struct {
	Total        int               `json:"total"`
	Totals       TransactionTotals `json:"totals"`
	Transactions []TransactionDTO  `json:"transactions"`
}
