package errors

import "fmt"

// UsageError indica que la invocación no tiene los argumentos necesarios
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError crea un nuevo error de uso
func NewUsageError(message string) *UsageError {
	return &UsageError{Message: message}
}

// FileAccessError indica que un archivo nombrado por el usuario no se pudo leer
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("no se pudo leer el archivo '%s': %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// NewFileAccessError crea un nuevo error de acceso a archivo
func NewFileAccessError(path string, err error) *FileAccessError {
	return &FileAccessError{Path: path, Err: err}
}

// RateLimitError indica que el servicio devolvió HTTP 429
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "límite de requests alcanzado para el tier actual"
}

// PayloadTooLargeError indica que el servicio devolvió HTTP 402
type PayloadTooLargeError struct{}

func (e *PayloadTooLargeError) Error() string {
	return "el lote excede el tamaño permitido para el tier actual"
}

// APIError indica cualquier otra respuesta no exitosa del servicio
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("el servicio devolvió status %d: %s", e.Status, e.Body)
}

// NewAPIError crea un nuevo error de API
func NewAPIError(status int, body string) *APIError {
	return &APIError{Status: status, Body: body}
}

// responseExcerptLimit es el máximo de caracteres del body crudo
// que se conservan para diagnóstico
const responseExcerptLimit = 200

// ResponseFormatError indica que el body recibido no es JSON válido
type ResponseFormatError struct {
	Excerpt string
	Err     error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("respuesta con formato inesperado: %v: %s", e.Err, e.Excerpt)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Err
}

// NewResponseFormatError crea un nuevo error de formato guardando
// a lo sumo los primeros 200 caracteres del body crudo
func NewResponseFormatError(rawBody string, err error) *ResponseFormatError {
	excerpt := rawBody
	// se corta por runas para no partir un caracter multibyte a la mitad
	if runes := []rune(excerpt); len(runes) > responseExcerptLimit {
		excerpt = string(runes[:responseExcerptLimit])
	}
	return &ResponseFormatError{Excerpt: excerpt, Err: err}
}

// IssueNotFoundError indica que el issue no existe en el tracker
type IssueNotFoundError struct {
	Number int
	Repo   string
}

func (e *IssueNotFoundError) Error() string {
	return fmt.Sprintf("issue #%d no encontrado en %s", e.Number, e.Repo)
}

// NewIssueNotFoundError crea un nuevo error de issue no encontrado
func NewIssueNotFoundError(number int, repo string) *IssueNotFoundError {
	return &IssueNotFoundError{Number: number, Repo: repo}
}

// ProviderNotConfiguredError indica que el proveedor de refinamiento
// elegido no tiene la configuración necesaria
type ProviderNotConfiguredError struct {
	Provider string
	Reason   string
}

func (e *ProviderNotConfiguredError) Error() string {
	return fmt.Sprintf("proveedor '%s' no configurado: %s", e.Provider, e.Reason)
}

// NewProviderNotConfiguredError crea un nuevo error de proveedor no configurado
func NewProviderNotConfiguredError(provider, reason string) *ProviderNotConfiguredError {
	return &ProviderNotConfiguredError{Provider: provider, Reason: reason}
}
