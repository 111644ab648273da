package apierrors

import (
	"fmt"

	"github.com/iain-kirkham/Mental-Health-App/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Fields  []FieldErr `json:"fields,omitempty"`
}

// FieldErr carries the translated message of one invalid request field.
type FieldErr struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{ErrDetails: Err{Code: code, Message: message}}
}

// CreateFieldsError generates a JsonErr listing the invalid fields.
func CreateFieldsError(code int, msgKey string, lang string, fields []FieldErr) JsonErr {
	err := CreateError(code, msgKey, lang)
	err.ErrDetails.Fields = fields
	return err
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return GetTransErrorMsgWithData(msgKey, lang, nil)
}

// GetTransErrorMsgWithData retrieves the translated error message and renders
// it with data.
func GetTransErrorMsgWithData(msgKey string, lang string, data map[string]any) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	m.TemplateData = data
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
