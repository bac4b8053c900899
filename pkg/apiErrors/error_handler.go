package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos pelo console
const (
	// Erros de autenticação
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredToken       = "AUTH_007" // Token expirado
	ErrPermissionDenied   = "AUTH_008" // Backend negou a operação
	ErrUserAlreadyExists  = "AUTH_009" // Usuário já existe
	ErrSessionRequired    = "AUTH_011" // Nenhuma sessão ativa no console

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidBudget       = "VAL_004" // Orçamento abaixo do mínimo ou inválido
	ErrInvalidRule         = "VAL_005" // Regra de automação incompleta

	// Recursos
	ErrNotFound         = "RES_001" // Recurso não encontrado
	ErrMethodNotAllowed = "RES_002" // Método não suportado na rota

	// Integração Meta
	ErrMetaNotConnected     = "META_001" // Conta Meta não conectada
	ErrHandshakeInProgress  = "META_002" // Já existe uma conexão em andamento
	ErrHandshakeTimeout     = "META_003" // OAuth expirou
	ErrPopupBlocked         = "META_004" // Popup bloqueado
	ErrNoAccountsSelected   = "META_005" // Nenhuma conta selecionada
	ErrAdAccountUnavailable = "META_006" // Nenhuma conta de anúncios resolvida

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrRateLimited       = "SRV_005" // Limite de requisições do backend
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrExpiredToken:         http.StatusUnauthorized,
	ErrSessionRequired:      http.StatusUnauthorized,
	ErrPermissionDenied:     http.StatusForbidden,
	ErrUserAlreadyExists:    http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrInvalidBudget:        http.StatusBadRequest,
	ErrInvalidRule:          http.StatusBadRequest,
	ErrNotFound:             http.StatusNotFound,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
	ErrMetaNotConnected:     http.StatusConflict,
	ErrHandshakeInProgress:  http.StatusConflict,
	ErrHandshakeTimeout:     http.StatusRequestTimeout,
	ErrPopupBlocked:         http.StatusConflict,
	ErrNoAccountsSelected:   http.StatusBadRequest,
	ErrAdAccountUnavailable: http.StatusConflict,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrDatabaseOperation:    http.StatusInternalServerError,
	ErrExternalService:      http.StatusBadGateway,
	ErrCommunication:        http.StatusServiceUnavailable,
	ErrRateLimited:          http.StatusTooManyRequests,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
	// Retryable avisa o cliente que repetir a ação pode dar certo (limite, servidor, rede)
	Retryable bool `json:"retryable,omitempty"`
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	Write(w, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Write envia o erro já montado com o status do seu código
func Write(w http.ResponseWriter, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(apiErr.Code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
