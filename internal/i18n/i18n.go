// Package i18n provides internationalization support for the stock service.
// It handles translation of user-facing messages and error messages.
// Portuguese is first-class: most clients of the distributor are Brazilian.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "pt-BR,pt;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "pt" from "pt-BR")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":        "Invalid request",
			"error.invalid_request_body":   "Invalid request body",
			"error.internal_error":         "An unexpected error occurred",
			"error.unauthorized":           "Unauthorized",
			"error.invalid_credentials":    "Invalid email or password",
			"error.forbidden":              "Forbidden",
			"error.not_found":              "Not found",
			"error.rate_limit_exceeded":    "Too many requests, please try again later",
			"error.conflict":               "Conflict",
			"error.overstock":              "Requested quantity exceeds available stock",
			"error.unknown_packaging_size": "Unknown packaging size",
			"error.product_not_found":      "Product not found",
			"error.reservation_final":      "Reservation is already delivered or cancelled",
			"error.price_list_not_found":   "No price list registered for this client",
			"error.invalid_token":          "Invalid or expired token",
			"error.token_required":         "Authentication token is required",
			"error.timeout":                "Request timed out",

			// Success messages
			"success.reservation_created": "Reservation created successfully",
			"success.calculation_done":    "Consumption calculation completed successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":        "Requisição inválida",
			"error.invalid_request_body":   "Corpo da requisição inválido",
			"error.internal_error":         "Ocorreu um erro inesperado",
			"error.unauthorized":           "Não autorizado",
			"error.invalid_credentials":    "E-mail ou senha inválidos",
			"error.forbidden":              "Proibido",
			"error.not_found":              "Não encontrado",
			"error.rate_limit_exceeded":    "Muitas requisições, tente novamente mais tarde",
			"error.conflict":               "Conflito",
			"error.overstock":              "Quantidade solicitada excede o estoque disponível",
			"error.unknown_packaging_size": "Tamanho de embalagem desconhecido",
			"error.product_not_found":      "Produto não encontrado",
			"error.reservation_final":      "Reserva já entregue ou cancelada",
			"error.price_list_not_found":   "Nenhuma tabela de preços cadastrada para este cliente",
			"error.invalid_token":          "Token inválido ou expirado",
			"error.token_required":         "Token de autenticação é obrigatório",
			"error.timeout":                "Tempo limite da requisição excedido",

			// Success messages
			"success.reservation_created": "Reserva criada com sucesso",
			"success.calculation_done":    "Cálculo de consumo concluído com sucesso",
		},
	}
}
