package entity

// Categorias canônicas de item de inventário.
const (
	CategoryMercearia      = "Mercearia"
	CategoryLimpeza        = "Limpeza"
	CategoryDescartaveis   = "Descartáveis"
	CategoryHigienePessoal = "Higiene Pessoal"
	CategoryFrios          = "Frios"
	CategoryProteinas      = "Proteínas"
	CategoryHortifruti     = "Hortifrúti"
)

// Categories lista as sete categorias aceitas nos formulários.
var Categories = []string{
	CategoryMercearia,
	CategoryLimpeza,
	CategoryDescartaveis,
	CategoryHigienePessoal,
	CategoryFrios,
	CategoryProteinas,
	CategoryHortifruti,
}

// DailyWithdrawal registro de retirada avulsa do caminho legado.
type DailyWithdrawal struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

// InventoryItem representa um item de inventário de um acolhimento.
//
// Stock é a quantidade-base declarada na última edição completa e Arrived o
// acumulado recebido desde então. CurrentStock é o único campo que responde
// "quanto há disponível agora": entradas e saídas o ajustam sem refazer
// Stock+Arrived, portanto Stock+Arrived é apenas um valor de exibição
// ("se reabastecido agora") e nunca serve para checagem de disponibilidade.
//
// DailyWithdrawals é alimentado somente pelo caminho legado de retiradas e
// não acompanha os decrementos de CurrentStock feitos por movimentos
// tipados; um "restante" derivado só desta lista diverge de CurrentStock
// assim que os dois caminhos são usados no mesmo item.
type InventoryItem struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Category         string            `json:"category"`
	Stock            int               `json:"stock"`
	Arrived          int               `json:"arrived"`
	CurrentStock     int               `json:"currentStock"`
	Unit             string            `json:"unit"`
	BranchID         string            `json:"branchId"`
	DailyWithdrawals []DailyWithdrawal `json:"dailyWithdrawals"`
	CreatedAt        string            `json:"createdAt"` // ISO-8601
	UpdatedAt        string            `json:"updatedAt"` // ISO-8601
}
