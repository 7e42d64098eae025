package boleto

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

var positiveDecimal = validation.By(func(value interface{}) error {
	d, ok := value.(model.Decimal)
	if !ok {
		return fmt.Errorf("invalid type: %T", value)
	}
	if !d.IsPositive() {
		return errors.New("must be greater than 0")
	}
	return nil
})

func digitCount(lengths ...int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		digits := onlyDigits(s)
		if !lo.Contains(lengths, len(digits)) {
			return fmt.Errorf("must have %s digits", strings.Join(lo.Map(lengths, func(n int, _ int) string { return fmt.Sprint(n) }), " or "))
		}
		return nil
	})
}

// notBefore rejects YYYY-MM-DD dates earlier than the calendar day of today.
func notBefore(today time.Time) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		date, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil // Reported by the date rule.
		}
		y, m, d := today.Date()
		if date.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
			return errors.New("must not be in the past")
		}
		return nil
	})
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// ValidateDadosBoleto checks a legacy boleto request. today decides which due dates are in the past.
func ValidateDadosBoleto(req model.DadosBoleto, today time.Time) error {
	req.NumeroTituloCliente = strings.TrimSpace(req.NumeroTituloCliente)
	pagador := req.Pagador
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Modalidade, validation.Required, validation.In(1).Error("must be 1 (Simples)")),
		validation.Field(&req.NumeroTituloCliente, validation.Required),
		validation.Field(&req.Pagador, validation.By(func(interface{}) error {
			return validation.ValidateStruct(&pagador,
				validation.Field(&pagador.Nome, validation.Required),
				validation.Field(&pagador.NumeroCpfCnpj, validation.Required),
				validation.Field(&pagador.TipoPessoa, validation.Required, validation.In(model.PessoaFisica, model.PessoaJuridica)),
			)
		})),
		validation.Field(&req.ValorTitulo, positiveDecimal),
		validation.Field(&req.DataVencimento, validation.Required, validation.Date(dateLayout), notBefore(today)),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrValidation)
	}

	return nil
}

// ValidateBoletoV3 checks a V3 request in two passes: every missing required field is
// reported at once, then formats are checked.
func ValidateBoletoV3(req model.BoletoV3, today time.Time) error {
	if missing := missingV3Fields(req); len(missing) > 0 {
		return fmt.Errorf("campos obrigatórios faltando: %s%w", strings.Join(missing, ", "), model.ErrValidation)
	}

	pagador := *req.Pagador
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.DataEmissao, validation.Date(dateLayout)),
		validation.Field(&req.DataVencimento, validation.Date(dateLayout), notBefore(today)),
		validation.Field(&req.ValorNominal, positiveDecimal),
		validation.Field(&req.Pagador, validation.By(func(interface{}) error {
			return validation.ValidateStruct(&pagador,
				validation.Field(&pagador.NumeroCpfCnpj, digitCount(11, 14)),
				validation.Field(&pagador.Cep, digitCount(8)),
				validation.Field(&pagador.Uf, validation.RuneLength(2, 2)),
			)
		})),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrValidation)
	}

	return nil
}

func missingV3Fields(req model.BoletoV3) []string {
	blank := func(v interface{}) bool {
		return validation.Validate(v, validation.Required) != nil
	}

	missing := []string{}
	for _, f := range []struct {
		name  string
		blank bool
	}{
		{"numeroContrato", blank(req.NumeroContrato)},
		{"modalidade", blank(req.Modalidade)},
		{"numeroContaCorrente", blank(req.NumeroContaCorrente)},
		{"especieDocumento", blank(strings.TrimSpace(req.EspecieDocumento))},
		{"dataEmissao", blank(req.DataEmissao)},
		{"dataVencimento", blank(req.DataVencimento)},
		{"valorNominal", req.ValorNominal.IsZero()},
		{"pagador", req.Pagador == nil},
	} {
		if f.blank {
			missing = append(missing, f.name)
		}
	}
	if req.Pagador == nil {
		return missing
	}

	p := req.Pagador
	for _, f := range []struct {
		name  string
		value string
	}{
		{"numeroCpfCnpj", p.NumeroCpfCnpj},
		{"nome", p.Nome},
		{"endereco", p.Endereco},
		{"cidade", p.Cidade},
		{"cep", p.Cep},
		{"uf", p.Uf},
	} {
		if blank(strings.TrimSpace(f.value)) {
			missing = append(missing, "pagador."+f.name)
		}
	}
	return missing
}

func validateNossoNumero(nossoNumero string) error {
	if strings.TrimSpace(nossoNumero) == "" {
		return model.ErrMissingNossoNumero
	}
	return nil
}
