package boleto_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/boleto"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/openebl/sicoob-gateway/pkg/util"
	mock_transport "github.com/openebl/sicoob-gateway/test/mock/sicoob/transport"
	"github.com/stretchr/testify/suite"
)

type BoletoClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	ctrl   *gomock.Controller
	tokens *mock_transport.MockTokenSource
	mux    *http.ServeMux
	server *httptest.Server
	client *boleto.Client
	now    time.Time
}

func TestBoletoClientTestSuite(t *testing.T) {
	suite.Run(t, new(BoletoClientTestSuite))
}

func (s *BoletoClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.tokens = mock_transport.NewMockTokenSource(s.ctrl)
	s.tokens.EXPECT().GetAccessToken(gomock.Any()).Return("opaque-token", nil).AnyTimes()
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	s.client = s.newClient(boleto.Config{Cooperativa: "3001", ContaCorrente: "123456"})
}

func (s *BoletoClientTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *BoletoClientTestSuite) newClient(cfg boleto.Config) *boleto.Client {
	cfg.BaseURL = boleto.DefaultBaseURL(s.server.URL)
	return boleto.NewClient(cfg, s.server.Client(), s.tokens, boleto.WithClock(func() time.Time { return s.now }))
}

func (s *BoletoClientTestSuite) decimal(v string) model.Decimal {
	d, err := model.NewDecimalFromString(v)
	s.Require().NoError(err)
	return d
}

func (s *BoletoClientTestSuite) boletoV3() model.BoletoV3 {
	return model.BoletoV3{
		NumeroContrato:      25546454,
		Modalidade:          1,
		NumeroContaCorrente: 123456,
		EspecieDocumento:    "DM",
		DataEmissao:         "2024-05-10",
		DataVencimento:      "2024-06-10",
		ValorNominal:        s.decimal("99.90"),
		SeuNumero:           "",
		Pagador: &model.PagadorV3{
			NumeroCpfCnpj: "12345678909",
			Nome:          "Maria da Silva",
			Endereco:      "Rua A, 10",
			Cidade:        "Curitiba",
			Cep:           "80000000",
			Uf:            "PR",
		},
	}
}

func readJSON(r *http.Request) map[string]any {
	raw, _ := io.ReadAll(r.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)
	return body
}

func (s *BoletoClientTestSuite) TestCreateBoletoSendsCleanPayload() {
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("3001", r.Header.Get("x-cooperativa"))
		s.Equal("123456", r.Header.Get("x-conta-corrente"))
		body := readJSON(r)
		s.NotContains(body, "seuNumero")
		s.NotContains(body, "descontos")
		s.EqualValues(99.9, body["valorNominal"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"nosso_numero":"900001","numero_boleto":"75691.23456","valor":99.9,"data_vencimento":"2024-06-10","status":"ATIVO"}`))
	})

	created, err := s.client.CreateBoleto(s.ctx, s.boletoV3())
	s.Require().NoError(err)
	s.Equal("900001", created.NossoNumero)
	s.Equal(model.BoletoStatusActive, created.Status)
}

func (s *BoletoClientTestSuite) TestCreateBoletoValidatesLocally() {
	req := s.boletoV3()
	req.Pagador.Cep = "123"
	_, err := s.client.CreateBoleto(s.ctx, req)
	s.ErrorIs(err, model.ErrValidation)
}

// TestCreateBoletoRetriesWithoutRejectedField covers the 406 compatibility path: only the
// field named by the bank is removed and only one retry is made.
func (s *BoletoClientTestSuite) TestCreateBoletoRetriesWithoutRejectedField() {
	var attempts atomic.Int32
	var retried map[string]any
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos", func(w http.ResponseWriter, r *http.Request) {
		body := readJSON(r)
		if attempts.Add(1) == 1 {
			s.Contains(body, "modalidade")
			w.WriteHeader(http.StatusNotAcceptable)
			_, _ = w.Write([]byte(`{"mensagens":[{"mensagem":"Propriedade modalidade não é permitida","codigo":"406"}]}`))
			return
		}
		retried = body
		_, _ = w.Write([]byte(`{"nosso_numero":"900002","valor":99.9,"status":"ATIVO"}`))
	})

	created, err := s.client.CreateBoleto(s.ctx, s.boletoV3())
	s.Require().NoError(err)
	s.Equal("900002", created.NossoNumero)
	s.EqualValues(2, attempts.Load())
	s.NotContains(retried, "modalidade")
	s.Contains(retried, "numeroContrato")
	s.Contains(retried, "especieDocumento")
	s.Contains(retried, "numeroContaCorrente")
}

func (s *BoletoClientTestSuite) TestCreateBoletoRetriesOnlyOnce() {
	var attempts atomic.Int32
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos", func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"message":"numeroContrato not allowed"}`))
	})

	_, err := s.client.CreateBoleto(s.ctx, s.boletoV3())
	s.ErrorIs(err, model.ErrInvalidBoletoPayload)
	s.ErrorIs(err, model.ErrValidation)
	s.Equal(map[string]any{"message": "numeroContrato not allowed"}, model.ErrorDetails(err))
	s.EqualValues(2, attempts.Load())
}

func (s *BoletoClientTestSuite) TestCreateBoletoNotAcceptableWithoutKnownField() {
	var attempts atomic.Int32
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos", func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"message":"schema mismatch"}`))
	})

	_, err := s.client.CreateBoleto(s.ctx, s.boletoV3())
	s.ErrorIs(err, model.ErrInvalidBoletoPayload)
	s.EqualValues(1, attempts.Load())
}

func (s *BoletoClientTestSuite) TestCreateBoletoBadRequestIsNotRetried() {
	var attempts atomic.Int32
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos", func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"mensagens":[{"mensagem":"modalidade inválida"}]}`))
	})

	_, err := s.client.CreateBoleto(s.ctx, s.boletoV3())
	s.ErrorIs(err, model.ErrValidation)
	s.NotErrorIs(err, model.ErrInvalidBoletoPayload)
	s.EqualValues(1, attempts.Load())
}

func (s *BoletoClientTestSuite) TestPostsAreLimitedToTwoInFlight() {
	var inFlight, peak atomic.Int32
	release := make(chan struct{})
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos", func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		<-release
		inFlight.Add(-1)
		_, _ = w.Write([]byte(`{"nosso_numero":"1","valor":1,"status":"ATIVO"}`))
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.client.CreateBoleto(s.ctx, s.boletoV3())
		}()
	}
	time.Sleep(200 * time.Millisecond)
	close(release)
	wg.Wait()

	s.EqualValues(2, peak.Load())
}

func (s *BoletoClientTestSuite) TestGenerateBoletoAssignsDocumentNumber() {
	client := s.newClient(boleto.Config{GenerateDocumentNumber: true})
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.Header.Get("x-cooperativa"))
		body := readJSON(r)
		s.NotEmpty(body["numeroTituloCliente"])
		s.LessOrEqual(len(body["numeroTituloCliente"].(string)), util.MaxDocumentNumberLength)
		_, _ = w.Write([]byte(`{"nosso_numero":"777","valor":150,"status":"ATIVO"}`))
	})

	created, err := client.GenerateBoleto(s.ctx, model.DadosBoleto{
		Modalidade:     1,
		DataVencimento: "2024-05-20",
		ValorTitulo:    s.decimal("150"),
		Pagador:        model.PagadorBoleto{Nome: "Empresa X", NumeroCpfCnpj: "12345678000190", TipoPessoa: model.PessoaJuridica},
	})
	s.Require().NoError(err)
	s.Equal("777", created.NossoNumero)
}

func (s *BoletoClientTestSuite) TestGenerateBoletoRequiresDocumentNumber() {
	_, err := s.client.GenerateBoleto(s.ctx, model.DadosBoleto{
		Modalidade:     1,
		DataVencimento: "2024-05-20",
		ValorTitulo:    s.decimal("150"),
		Pagador:        model.PagadorBoleto{Nome: "Empresa X", NumeroCpfCnpj: "12345678000190", TipoPessoa: model.PessoaJuridica},
	})
	s.ErrorIs(err, model.ErrValidation)
}

func (s *BoletoClientTestSuite) TestGetBoleto() {
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos/", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("3001", r.Header.Get("x-cooperativa"))
		if r.URL.Path != "/cobranca-bancaria/v3/boletos/900001" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"nosso_numero":"900001","valor":99.9,"status":"PAGO","valor_pago":99.9}`))
	})

	got, err := s.client.GetBoleto(s.ctx, "900001")
	s.Require().NoError(err)
	s.Equal(model.BoletoStatusPaid, got.Status)
	s.Require().NotNil(got.ValorPago)
	s.Equal("99.9", got.ValorPago.String())

	_, err = s.client.GetBoleto(s.ctx, "404404")
	s.ErrorIs(err, model.ErrNotFound)
	s.Equal("boleto não encontrado: 404404", err.Error())

	_, err = s.client.GetBoleto(s.ctx, "")
	s.ErrorIs(err, model.ErrMissingNossoNumero)
}

func (s *BoletoClientTestSuite) TestCancelBoleto() {
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos/900001", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	s.NoError(s.client.CancelBoleto(s.ctx, "900001"))
}

func (s *BoletoClientTestSuite) TestListBoletos() {
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal("ATIVO", q.Get("status"))
		s.Equal("2024-05-01", q.Get("data_inicio"))
		s.Equal("2024-05-31", q.Get("data_fim"))
		s.Equal("2", q.Get("pagina"))
		s.Equal("20", q.Get("limite"))
		_, _ = w.Write([]byte(`{"boletos":[{"nosso_numero":"1","valor":10,"status":"ATIVO"}],"paginacao":{"pagina_atual":2,"total_paginas":2,"total_itens":21}}`))
	})

	list, err := s.client.ListBoletos(s.ctx, model.BoletoListFilter{
		Status:     model.BoletoStatusActive,
		DataInicio: "2024-05-01",
		DataFim:    "2024-05-31",
		Pagina:     2,
		Limite:     20,
	})
	s.Require().NoError(err)
	s.Len(list.Boletos, 1)
	s.Equal(21, list.Paginacao.TotalItens)
}

func (s *BoletoClientTestSuite) TestDownloadPDF() {
	s.mux.HandleFunc("/cobranca-bancaria/v3/boletos/900001/pdf", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("application/pdf", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 boleto"))
	})

	pdf, err := s.client.DownloadPDF(s.ctx, "900001")
	s.Require().NoError(err)
	s.Equal("%PDF-1.7 boleto", string(pdf))
}
