package pix_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/auth"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/pix"
	mock_transport "github.com/openebl/sicoob-gateway/test/mock/sicoob/transport"
	"github.com/stretchr/testify/suite"
)

type PixClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	ctrl   *gomock.Controller
	tokens *mock_transport.MockTokenSource
	mux    *http.ServeMux
	server *httptest.Server
	client *pix.Client
}

func TestPixClientTestSuite(t *testing.T) {
	suite.Run(t, new(PixClientTestSuite))
}

func (s *PixClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.tokens = mock_transport.NewMockTokenSource(s.ctrl)
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = pix.NewClient(s.server.URL+"/pix/api/v2", s.server.Client(), s.tokens)
}

func (s *PixClientTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *PixClientTestSuite) TestCreateImmediateCharge() {
	s.tokens.EXPECT().GetAccessToken(gomock.Any()).Return("token", nil)
	s.mux.HandleFunc("/pix/api/v2/cob", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("Bearer token", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		s.JSONEq(`{"calendario":{"expiracao":3600},"valor":{"original":"100.00"},"chave":"12345678000190","solicitacaoPagador":"Pedido 42"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"txid":"tx123","status":"ATIVA","valor":{"original":"100.00"},"chave":"12345678000190","pixCopiaECola":"000201..."}`))
	})

	charge, err := s.client.CreateImmediateCharge(s.ctx, model.CobrancaImediata{
		Calendario:         &model.Calendario{Expiracao: 3600},
		Valor:              model.Valor{Original: "100.00"},
		Chave:              "12345678000190",
		SolicitacaoPagador: "Pedido 42",
	})
	s.Require().NoError(err)
	s.Equal("tx123", charge.Txid)
	s.Equal(model.PixChargeStatusActive, charge.Status)
	s.Equal("000201...", charge.PixCopiaECola)
}

func (s *PixClientTestSuite) TestCreateImmediateChargeValidatesLocally() {
	// No token is requested and no request is sent.
	_, err := s.client.CreateImmediateCharge(s.ctx, model.CobrancaImediata{Valor: model.Valor{Original: "10.00"}})
	s.ErrorIs(err, model.ErrValidation)

	_, err = s.client.CreateImmediateCharge(s.ctx, model.CobrancaImediata{Chave: "key", Valor: model.Valor{Original: "0"}})
	s.ErrorIs(err, model.ErrValidation)
}

func (s *PixClientTestSuite) TestCreateDueDateCharge() {
	s.tokens.EXPECT().GetAccessToken(gomock.Any()).Return("token", nil)
	s.mux.HandleFunc("/pix/api/v2/cobv", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"txid":"txv1","status":"ATIVA","calendario":{"dataDeVencimento":"2030-01-31"},"valor":{"original":"59.90"},"chave":"k"}`))
	})

	charge, err := s.client.CreateDueDateCharge(s.ctx, model.CobrancaVencimento{
		Calendario: model.Calendario{DataDeVencimento: "2030-01-31"},
		Valor:      model.Valor{Original: "59.90"},
		Chave:      "k",
	})
	s.Require().NoError(err)
	s.Equal("txv1", charge.Txid)
	s.Equal("2030-01-31", charge.Calendario.DataDeVencimento)
}

func (s *PixClientTestSuite) TestGetChargeNotFound() {
	s.tokens.EXPECT().GetAccessToken(gomock.Any()).Return("token", nil)
	s.mux.HandleFunc("/pix/api/v2/cob/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Cobrança não encontrada"}`))
	})

	_, err := s.client.GetCharge(s.ctx, "missing")
	s.ErrorIs(err, model.ErrNotFound)
	s.Equal("cobrança não encontrada: missing", err.Error())
	s.Equal(map[string]any{"title": "Cobrança não encontrada"}, model.ErrorDetails(err))
}

func (s *PixClientTestSuite) TestEmptyTxid() {
	_, err := s.client.GetCharge(s.ctx, " ")
	s.ErrorIs(err, model.ErrMissingTxid)
	s.ErrorIs(s.client.CancelCharge(s.ctx, ""), model.ErrValidation)
	_, err = s.client.GetQRCode(s.ctx, "")
	s.ErrorIs(err, model.ErrValidation)
}

func (s *PixClientTestSuite) TestCancelCharge() {
	s.tokens.EXPECT().GetAccessToken(gomock.Any()).Return("token", nil)
	s.mux.HandleFunc("/pix/api/v2/cob/tx123", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	s.NoError(s.client.CancelCharge(s.ctx, "tx123"))
}

func (s *PixClientTestSuite) TestListChargesNormalizesDates() {
	s.tokens.EXPECT().GetAccessToken(gomock.Any()).Return("token", nil)
	s.mux.HandleFunc("/pix/api/v2/cob", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		q := r.URL.Query()
		s.Equal("ATIVA", q.Get("status"))
		s.Equal("2024-05-01T00:00:00Z", q.Get("inicio"))
		s.Equal("2024-05-31T23:59:59Z", q.Get("fim"))
		s.Equal("1", q.Get("paginacao.paginaAtual"))
		s.Equal("20", q.Get("paginacao.itensPorPagina"))
		_, _ = w.Write([]byte(`{"parametros":{"inicio":"2024-05-01T00:00:00Z","fim":"2024-05-31T23:59:59Z","paginacao":{"paginaAtual":1,"itensPorPagina":20,"quantidadeDePaginas":1,"quantidadeTotalDeItens":1}},"cobs":[{"txid":"tx1","status":"ATIVA","valor":{"original":"1.00"},"chave":"k"}]}`))
	})

	list, err := s.client.ListCharges(s.ctx, model.PixListFilter{
		Status:   model.PixChargeStatusActive,
		Start:    "2024-05-01",
		End:      "2024-05-31",
		Page:     1,
		PageSize: 20,
	})
	s.Require().NoError(err)
	s.Require().Len(list.Cobs, 1)
	s.Equal("tx1", list.Cobs[0].Txid)
	s.Equal(1, list.Parametros.Paginacao.QuantidadeTotalDeItens)
}

func (s *PixClientTestSuite) TestListChargesWithoutFilters() {
	s.tokens.EXPECT().GetAccessToken(gomock.Any()).Return("token", nil)
	s.mux.HandleFunc("/pix/api/v2/cob", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"cobs":[]}`))
	})

	list, err := s.client.ListCharges(s.ctx, model.PixListFilter{})
	s.Require().NoError(err)
	s.Empty(list.Cobs)
}

func (s *PixClientTestSuite) TestGetQRCode() {
	s.tokens.EXPECT().GetAccessToken(gomock.Any()).Return("token", nil)
	s.mux.HandleFunc("/pix/api/v2/qrcode/tx123", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"txid":"tx123","qr_code":"000201...","valor":100.5}`))
	})

	qr, err := s.client.GetQRCode(s.ctx, "tx123")
	s.Require().NoError(err)
	s.Equal("000201...", qr.QRCode)
	s.Equal("100.5", qr.Valor.String())
}

func (s *PixClientTestSuite) TestServerErrorIsSurfaced() {
	s.tokens.EXPECT().GetAccessToken(gomock.Any()).Return("token", nil)
	s.mux.HandleFunc("/pix/api/v2/cob/tx123", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := s.client.GetCharge(s.ctx, "tx123")
	var serverErr *model.ServerError
	s.Require().ErrorAs(err, &serverErr)
	s.Equal(http.StatusBadGateway, serverErr.Status)
}

// TestCreateThenQuery authenticates against a token endpoint, creates a charge and
// reads it back. The status shown is whatever the bank reports.
func (s *PixClientTestSuite) TestCreateThenQuery() {
	s.mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"e2e-token","expires_in":3600}`))
	})
	s.mux.HandleFunc("/pix/api/v2/cob", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer e2e-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"txid":"e2e1","status":"ATIVA","valor":{"original":"100.00"},"chave":"12345678000190"}`))
	})
	s.mux.HandleFunc("/pix/api/v2/cob/e2e1", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer e2e-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"txid":"e2e1","status":"ATIVA","valor":{"original":"100.00"},"chave":"12345678000190"}`))
	})

	authClient := auth.NewClient(auth.Config{TokenURL: s.server.URL + "/oauth/token", ClientID: "id"}, s.server.Client())
	client := pix.NewClient(s.server.URL+"/pix/api/v2", s.server.Client(), authClient)

	created, err := client.CreateImmediateCharge(s.ctx, model.CobrancaImediata{
		Valor: model.Valor{Original: "100.00"},
		Chave: "12345678000190",
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(created.Txid)

	queried, err := client.GetCharge(s.ctx, created.Txid)
	s.Require().NoError(err)
	s.Equal(created.Txid, queried.Txid)
	s.Equal(model.PixChargeStatusActive, queried.Status)
	s.Equal("100.00", queried.Valor.Original)
}
