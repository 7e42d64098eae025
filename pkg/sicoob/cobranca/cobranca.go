package cobranca

import (
	"context"
	"fmt"

	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/sirupsen/logrus"
)

// DefaultPageSize is the page size used by List for both instruments.
const DefaultPageSize = 20

type PixClient interface {
	CreateImmediateCharge(ctx context.Context, req model.CobrancaImediata) (model.PixCharge, error)
	CreateDueDateCharge(ctx context.Context, req model.CobrancaVencimento) (model.PixCharge, error)
	GetCharge(ctx context.Context, txid string) (model.PixCharge, error)
	CancelCharge(ctx context.Context, txid string) error
	ListCharges(ctx context.Context, filter model.PixListFilter) (model.PixChargeList, error)
}

type BoletoClient interface {
	GenerateBoleto(ctx context.Context, req model.DadosBoleto) (model.Boleto, error)
	GetBoleto(ctx context.Context, nossoNumero string) (model.Boleto, error)
	CancelBoleto(ctx context.Context, nossoNumero string) error
	ListBoletos(ctx context.Context, filter model.BoletoListFilter) (model.BoletoList, error)
}

// Service dispatches instrument-agnostic charge operations to the PIX or boleto client.
type Service struct {
	pix    PixClient
	boleto BoletoClient
}

func NewService(pix PixClient, boleto BoletoClient) *Service {
	return &Service{
		pix:    pix,
		boleto: boleto,
	}
}

func (s *Service) Create(ctx context.Context, data model.CobrancaData) (model.Cobranca, error) {
	switch data.Tipo {
	case model.ChargeTypePix:
		if data.Pix == nil {
			return model.Cobranca{}, fmt.Errorf("pix: cannot be blank%w", model.ErrValidation)
		}
		charge, err := s.createPix(ctx, *data.Pix)
		if err != nil {
			return model.Cobranca{}, err
		}
		return model.Cobranca{Tipo: model.ChargeTypePix, Pix: &charge}, nil
	case model.ChargeTypeBoleto:
		if data.Boleto == nil || data.Boleto.Dados == nil {
			return model.Cobranca{}, fmt.Errorf("boleto.dados: cannot be blank%w", model.ErrValidation)
		}
		boleto, err := s.boleto.GenerateBoleto(ctx, *data.Boleto.Dados)
		if err != nil {
			return model.Cobranca{}, err
		}
		return model.Cobranca{Tipo: model.ChargeTypeBoleto, Boleto: &boleto}, nil
	default:
		return model.Cobranca{}, invalidType(data.Tipo)
	}
}

func (s *Service) createPix(ctx context.Context, payload model.PixCobrancaPayload) (model.PixCharge, error) {
	switch payload.Modalidade {
	case model.PixModalityImmediate:
		if payload.Imediata == nil {
			return model.PixCharge{}, fmt.Errorf("pix.imediata: cannot be blank%w", model.ErrValidation)
		}
		return s.pix.CreateImmediateCharge(ctx, *payload.Imediata)
	case model.PixModalityDueDate:
		if payload.ComVencimento == nil {
			return model.PixCharge{}, fmt.Errorf("pix.comVencimento: cannot be blank%w", model.ErrValidation)
		}
		return s.pix.CreateDueDateCharge(ctx, *payload.ComVencimento)
	default:
		return model.PixCharge{}, fmt.Errorf("%w: %q", model.ErrInvalidPixModality, payload.Modalidade)
	}
}

func (s *Service) Query(ctx context.Context, id string, tipo model.ChargeType) (model.Cobranca, error) {
	switch tipo {
	case model.ChargeTypePix:
		charge, err := s.pix.GetCharge(ctx, id)
		if err != nil {
			return model.Cobranca{}, err
		}
		return model.Cobranca{Tipo: tipo, Pix: &charge}, nil
	case model.ChargeTypeBoleto:
		boleto, err := s.boleto.GetBoleto(ctx, id)
		if err != nil {
			return model.Cobranca{}, err
		}
		return model.Cobranca{Tipo: tipo, Boleto: &boleto}, nil
	default:
		return model.Cobranca{}, invalidType(tipo)
	}
}

func (s *Service) Cancel(ctx context.Context, id string, tipo model.ChargeType) error {
	switch tipo {
	case model.ChargeTypePix:
		return s.pix.CancelCharge(ctx, id)
	case model.ChargeTypeBoleto:
		return s.boleto.CancelBoleto(ctx, id)
	default:
		return invalidType(tipo)
	}
}

func (s *Service) List(ctx context.Context, tipo model.ChargeType, page int) (model.CobrancaList, error) {
	switch tipo {
	case model.ChargeTypePix:
		list, err := s.pix.ListCharges(ctx, model.PixListFilter{Page: page, PageSize: DefaultPageSize})
		if err != nil {
			return model.CobrancaList{}, err
		}
		return model.CobrancaList{Tipo: tipo, Pix: &list}, nil
	case model.ChargeTypeBoleto:
		list, err := s.boleto.ListBoletos(ctx, model.BoletoListFilter{Pagina: page, Limite: DefaultPageSize})
		if err != nil {
			return model.CobrancaList{}, err
		}
		return model.CobrancaList{Tipo: tipo, Boleto: &list}, nil
	default:
		return model.CobrancaList{}, invalidType(tipo)
	}
}

// Update replaces a charge. The bank APIs have no partial update, so the old charge is
// cancelled and a new one is created. A failed create leaves the old charge cancelled.
func (s *Service) Update(ctx context.Context, id string, data model.CobrancaData) (model.Cobranca, error) {
	if data.Tipo != model.ChargeTypePix && data.Tipo != model.ChargeTypeBoleto {
		return model.Cobranca{}, invalidType(data.Tipo)
	}

	if err := s.Cancel(ctx, id, data.Tipo); err != nil {
		return model.Cobranca{}, err
	}
	created, err := s.Create(ctx, data)
	if err != nil {
		logrus.Errorf("charge %s (%s) was cancelled but its replacement could not be created: %v", id, data.Tipo, err)
		return model.Cobranca{}, err
	}
	return created, nil
}

func invalidType(tipo model.ChargeType) error {
	return fmt.Errorf("%w: %q", model.ErrInvalidChargeType, tipo)
}
