package model

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

var ErrAuth = errors.New("")        // Base error for token fetch/validation failures
var ErrValidation = errors.New("")  // Base error for malformed local input or rejected payloads
var ErrNotFound = errors.New("")    // Base error for remote 404
var ErrRateLimit = errors.New("")   // Base error for remote or local throttling
var ErrServer = errors.New("")      // Base error for remote 5xx
var ErrCertificate = errors.New("") // Base error for mTLS setup. Always fatal.

// Certificate errors
var ErrInvalidCertificateConfig = fmt.Errorf("invalid certificate configuration%w", ErrCertificate)
var ErrInvalidPKCS12 = fmt.Errorf("invalid PKCS#12 bundle or passphrase%w", ErrCertificate)
var ErrInvalidCertificatePEM = fmt.Errorf("invalid certificate PEM%w", ErrCertificate)
var ErrInvalidPrivateKeyPEM = fmt.Errorf("invalid private key PEM%w", ErrCertificate)
var ErrInsecureProduction = fmt.Errorf("insecure_skip_verify is not allowed in production%w", ErrCertificate)

// Auth errors
var ErrTokenRequestFailed = fmt.Errorf("failed to obtain access token%w", ErrAuth)
var ErrEmptyAccessToken = fmt.Errorf("token endpoint returned an empty access_token%w", ErrAuth)
var ErrClientInfoFailed = fmt.Errorf("failed to fetch client info%w", ErrAuth)
var ErrRemoteUnauthorized = fmt.Errorf("bank API rejected the access token%w", ErrAuth)

// Validation errors
var ErrInvalidChargeType = fmt.Errorf("tipo de cobrança inválido%w", ErrValidation)
var ErrInvalidPixModality = fmt.Errorf("modalidade PIX inválida%w", ErrValidation)
var ErrMissingTxid = fmt.Errorf("txid é obrigatório%w", ErrValidation)
var ErrMissingNossoNumero = fmt.Errorf("nosso número é obrigatório%w", ErrValidation)
var ErrInvalidBoletoPayload = fmt.Errorf("payload inválido - verifique propriedades enviadas%w", ErrValidation)
var ErrRemoteValidation = fmt.Errorf("requisição rejeitada pelo banco%w", ErrValidation)

// Webhook errors
var ErrInvalidSignature = fmt.Errorf("assinatura do webhook inválida%w", ErrValidation)
var ErrInvalidTimestamp = fmt.Errorf("timestamp do webhook fora da janela de tolerância%w", ErrValidation)
var ErrInvalidWebhookPayload = fmt.Errorf("payload do webhook inválido%w", ErrValidation)

// NotFound errors
var ErrRemoteNotFound = fmt.Errorf("recurso não encontrado%w", ErrNotFound)

// ServerError is a remote 5xx response. Body is kept verbatim for diagnosis.
type ServerError struct {
	Status int
	Body   []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("bank API returned status %d", e.Status)
}

func (e *ServerError) Unwrap() error {
	return ErrServer
}

// RateLimitError carries the Retry-After hint (seconds) of a 429 response.
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited by bank API, retry after %ds", e.RetryAfter)
	}
	return "rate limited by bank API"
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimit
}

// RemoteError is a non-2xx bank response that is neither a 5xx nor a 429.
// Err is the kind (ErrAuth, ErrNotFound or ErrValidation based).
type RemoteError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Err.Error(), e.Status)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// RemoteStatus returns the HTTP status of the bank response behind err, or 0.
func RemoteStatus(err error) int {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Status
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Status
	}
	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return http.StatusTooManyRequests
	}
	return 0
}

// DetailedError attaches details (usually the remote response body) to an error.
type DetailedError struct {
	Err     error
	Details any
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

func WithDetails(err error, details any) error {
	if err == nil {
		return nil
	}
	return &DetailedError{Err: err, Details: details}
}

// RemoteBody turns a raw response body into something that serializes well as error details.
func RemoteBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		return v
	}
	return string(body)
}

// ErrorDetails extracts the details attached to err, if any.
func ErrorDetails(err error) any {
	var detailed *DetailedError
	if errors.As(err, &detailed) {
		return detailed.Details
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return RemoteBody(serverErr.Body)
	}
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return RemoteBody(remoteErr.Body)
	}
	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return map[string]int{"retryAfter": rateErr.RetryAfter}
	}
	return nil
}

// ErrorKind maps err to the HTTP status and error code exposed to callers.
func ErrorKind(err error) (int, string) {
	var serverErr *ServerError
	switch {
	case errors.Is(err, ErrCertificate):
		return http.StatusInternalServerError, "CERTIFICATE_ERROR"
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized, "AUTH_ERROR"
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND_ERROR"
	case errors.Is(err, ErrRateLimit):
		return http.StatusTooManyRequests, "RATE_LIMIT_ERROR"
	case errors.As(err, &serverErr):
		return serverErr.Status, "SERVER_ERROR"
	case errors.Is(err, ErrServer):
		return http.StatusBadGateway, "SERVER_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
