package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de contas
	ErrAccountNotFound = "ACC_001" // Conta não encontrada
	ErrListAccounts    = "ACC_002" // Falha ao listar contas

	// Erros de consulta
	ErrInvalidQuery    = "QRY_001" // Característica inexistente para a rede social
	ErrInvalidActors   = "QRY_002" // Lista de atores malformada
	ErrUnknownPlatform = "QRY_003" // Rede social ou operação não suportada

	// Erros de serviços externos
	ErrSpreadsheet  = "UPS_001" // Falha na planilha ou na autenticação Google
	ErrMonitor      = "UPS_002" // Falha no monitor de dados
	ErrInvalidState = "UPS_003" // Estado OAuth inválido ou expirado

	// Erros de importação e gráficos
	ErrImport       = "IMP_001" // Falha ao persistir a importação
	ErrChartRender  = "CHT_001" // Falha ao desenhar o gráfico
	ErrEmptyDataset = "CHT_002" // Nenhum dado para desenhar

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrTooManyRequests   = "SRV_003" // Limite de requisições excedido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrAccountNotFound:   http.StatusNotFound,
	ErrListAccounts:      http.StatusInternalServerError,
	ErrInvalidQuery:      http.StatusBadRequest,
	ErrInvalidActors:     http.StatusBadRequest,
	ErrUnknownPlatform:   http.StatusNotFound,
	ErrSpreadsheet:       http.StatusBadGateway,
	ErrMonitor:           http.StatusBadGateway,
	ErrInvalidState:      http.StatusBadRequest,
	ErrImport:            http.StatusInternalServerError,
	ErrChartRender:       http.StatusInternalServerError,
	ErrEmptyDataset:      http.StatusNotFound,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrTooManyRequests:   http.StatusTooManyRequests,
}

// APIError representa o corpo de erro padronizado
type APIError struct {
	Error       bool   `json:"error"`
	Code        string `json:"errorCode"`
	Description string `json:"description"`
	Details     any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, description string, details any) {
	apiErr := APIError{
		Error:       true,
		Code:        code,
		Description: description,
		Details:     details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
