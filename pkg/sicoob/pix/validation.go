package pix

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
)

var valorRule = validation.By(func(value interface{}) error {
	valor, ok := value.(model.Valor)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}
	if strings.TrimSpace(valor.Original) == "" {
		return errors.New("original: cannot be blank")
	}
	if !model.IsPositiveAmount(valor.Original) {
		return errors.New("original: must be a decimal greater than 0")
	}
	return nil
})

var dueDateRule = validation.By(func(value interface{}) error {
	calendario, ok := value.(model.Calendario)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}
	return validation.Errors{
		"dataDeVencimento": validation.Validate(calendario.DataDeVencimento, validation.Required, validation.Date("2006-01-02")),
	}.Filter()
})

func ValidateImmediateCharge(req model.CobrancaImediata) error {
	req.Chave = strings.TrimSpace(req.Chave)
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Chave, validation.Required),
		validation.Field(&req.Valor, valorRule),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrValidation)
	}

	return nil
}

func ValidateDueDateCharge(req model.CobrancaVencimento) error {
	req.Chave = strings.TrimSpace(req.Chave)
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Chave, validation.Required),
		validation.Field(&req.Valor, valorRule),
		validation.Field(&req.Calendario, dueDateRule),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrValidation)
	}

	return nil
}

func validateTxid(txid string) error {
	if strings.TrimSpace(txid) == "" {
		return model.ErrMissingTxid
	}
	return nil
}

// normalizeDate completes a bare YYYY-MM-DD date into RFC3339 at the start or end of the day.
func normalizeDate(date string, endOfDay bool) string {
	if date == "" || strings.Contains(date, "T") {
		return date
	}
	if endOfDay {
		return date + "T23:59:59Z"
	}
	return date + "T00:00:00Z"
}
