package domain

import "errors"

// Erros de domínio (sem dependências externas). Todas as falhas são de
// validação e recuperáveis pelo chamador; os handlers HTTP as traduzem em
// códigos 4xx.
var (
	ErrInvalidQuantity    = errors.New("quantidade deve ser um inteiro positivo")
	ErrItemNotFound       = errors.New("item de inventário não encontrado")
	ErrInsufficientStock  = errors.New("estoque insuficiente para esta saída")
	ErrMissingReason      = errors.New("motivo do movimento é obrigatório")
	ErrMissingDescription = errors.New("descreva o motivo específico ao selecionar Outros")
	ErrBranchNotFound     = errors.New("acolhimento não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUsernameTaken      = errors.New("nome de usuário já cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
)
