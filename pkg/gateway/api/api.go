package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/openebl/sicoob-gateway/pkg/gateway/middleware"
	"github.com/openebl/sicoob-gateway/pkg/gateway/storage"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/openebl/sicoob-gateway/pkg/util"
	"github.com/sirupsen/logrus"
)

const BasePath = "/api/sicoob"

type PixService interface {
	CreateImmediateCharge(ctx context.Context, req model.CobrancaImediata) (model.PixCharge, error)
	CreateDueDateCharge(ctx context.Context, req model.CobrancaVencimento) (model.PixCharge, error)
	GetCharge(ctx context.Context, txid string) (model.PixCharge, error)
	CancelCharge(ctx context.Context, txid string) error
	ListCharges(ctx context.Context, filter model.PixListFilter) (model.PixChargeList, error)
	GetQRCode(ctx context.Context, txid string) (model.PixQRCode, error)
}

type BoletoService interface {
	CreateBoleto(ctx context.Context, req model.BoletoV3) (model.Boleto, error)
	GenerateBoleto(ctx context.Context, req model.DadosBoleto) (model.Boleto, error)
	GetBoleto(ctx context.Context, nossoNumero string) (model.Boleto, error)
	CancelBoleto(ctx context.Context, nossoNumero string) error
	ListBoletos(ctx context.Context, filter model.BoletoListFilter) (model.BoletoList, error)
	DownloadPDF(ctx context.Context, nossoNumero string) ([]byte, error)
}

type ChargeService interface {
	Create(ctx context.Context, data model.CobrancaData) (model.Cobranca, error)
	Query(ctx context.Context, id string, tipo model.ChargeType) (model.Cobranca, error)
	Cancel(ctx context.Context, id string, tipo model.ChargeType) error
	List(ctx context.Context, tipo model.ChargeType, page int) (model.CobrancaList, error)
	Update(ctx context.Context, id string, data model.CobrancaData) (model.Cobranca, error)
}

type WebhookProcessor interface {
	ProcessWebhook(ctx context.Context, raw []byte, signature string) error
}

type TokenValidator interface {
	GetAccessToken(ctx context.Context) (string, error)
	ValidateToken(ctx context.Context, token string) bool
}

type APIConfig struct {
	LocalAddress string `yaml:"local_address"`
}

// Controllers are the collaborators the handlers delegate to.
type Controllers struct {
	Pix      PixService
	Boleto   BoletoService
	Cobranca ChargeService
	Webhook  WebhookProcessor
	Tokens   TokenValidator
	Charges  storage.ChargeStorage // Optional. Created charges are recorded when set.
}

// Guards are the middlewares placed in front of the routes.
type Guards struct {
	JWT              *middleware.JWTAuth
	APILimiter       *middleware.RateLimiter
	WebhookLimiter   *middleware.RateLimiter
	WebhookSignature *middleware.WebhookSignature
}

type APIOption func(a *API)

func WithAPIClock(now func() time.Time) APIOption {
	return func(a *API) {
		a.now = now
	}
}

type API struct {
	pix      PixService
	boleto   BoletoService
	cobranca ChargeService
	webhook  WebhookProcessor
	tokens   TokenValidator
	charges  storage.ChargeStorage
	now      func() time.Time

	handler    http.Handler
	httpServer *http.Server
}

func NewAPIWithController(ctrls Controllers, guards Guards, cfg APIConfig, opts ...APIOption) (*API, error) {
	if ctrls.Pix == nil || ctrls.Boleto == nil || ctrls.Cobranca == nil || ctrls.Webhook == nil || ctrls.Tokens == nil {
		return nil, errors.New("api: every controller is required")
	}
	if guards.JWT == nil || guards.APILimiter == nil || guards.WebhookLimiter == nil || guards.WebhookSignature == nil {
		return nil, errors.New("api: every guard is required")
	}

	apiServer := &API{
		pix:      ctrls.Pix,
		boleto:   ctrls.Boleto,
		cobranca: ctrls.Cobranca,
		webhook:  ctrls.Webhook,
		tokens:   ctrls.Tokens,
		charges:  ctrls.Charges,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(apiServer)
	}

	r := mux.NewRouter()
	r.Use(Log)
	base := r.PathPrefix(BasePath).Subrouter()
	base.HandleFunc("/health", apiServer.health).Methods(http.MethodGet)

	webhookRouter := base.NewRoute().Subrouter()
	webhookRouter.Use(guards.WebhookLimiter.Limit, guards.WebhookSignature.Verify)
	webhookRouter.HandleFunc("/webhook", apiServer.receiveWebhook).Methods(http.MethodPost)

	apiRouter := base.NewRoute().Subrouter()
	apiRouter.Use(guards.APILimiter.Limit, guards.JWT.Authenticate)
	apiRouter.HandleFunc("/pix/cobranca-imediata", apiServer.createImmediateCharge).Methods(http.MethodPost)
	apiRouter.HandleFunc("/pix/cobranca-vencimento", apiServer.createDueDateCharge).Methods(http.MethodPost)
	apiRouter.HandleFunc("/pix/cobranca/{txid}", apiServer.getPixCharge).Methods(http.MethodGet)
	apiRouter.HandleFunc("/pix/cobranca/{txid}", apiServer.cancelPixCharge).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/pix/cobrancas", apiServer.listPixCharges).Methods(http.MethodGet)
	apiRouter.HandleFunc("/pix/qrcode/{txid}", apiServer.getQRCode).Methods(http.MethodGet)

	apiRouter.HandleFunc("/boleto", apiServer.createBoleto).Methods(http.MethodPost)
	apiRouter.HandleFunc("/boleto/legado", apiServer.generateBoleto).Methods(http.MethodPost)
	apiRouter.HandleFunc("/boleto/{nossoNumero}", apiServer.getBoleto).Methods(http.MethodGet)
	apiRouter.HandleFunc("/boleto/{nossoNumero}", apiServer.cancelBoleto).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/boleto/{nossoNumero}/pdf", apiServer.downloadBoletoPDF).Methods(http.MethodGet)
	apiRouter.HandleFunc("/boletos", apiServer.listBoletos).Methods(http.MethodGet)

	apiRouter.HandleFunc("/cobranca", apiServer.createCobranca).Methods(http.MethodPost)
	apiRouter.HandleFunc("/cobranca/{id}", apiServer.getCobranca).Methods(http.MethodGet)
	apiRouter.HandleFunc("/cobranca/{id}", apiServer.updateCobranca).Methods(http.MethodPut)
	apiRouter.HandleFunc("/cobranca/{id}", apiServer.cancelCobranca).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/cobrancas", apiServer.listCobrancas).Methods(http.MethodGet)

	apiServer.handler = r
	apiServer.httpServer = &http.Server{
		Addr:              cfg.LocalAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return apiServer, nil
}

// Handler exposes the router, mainly for httptest.
func (a *API) Handler() http.Handler {
	return a.handler
}

func (a *API) Run() error {
	logrus.Infof("API server listening on %s", a.httpServer.Addr)
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	return a.httpServer.Shutdown(ctx)
}

// recordCharge keeps a local copy of a created charge. Failures are logged and never fail the request.
func (a *API) recordCharge(ctx context.Context, identificador, tipo string, charge any) {
	if a.charges == nil || identificador == "" {
		return
	}
	tx, ctx, err := a.charges.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		logrus.Errorf("failed to record charge %s: %v", identificador, err)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = a.charges.AddCharge(ctx, tx, storage.ChargeRecord{
		Identificador: identificador,
		Tipo:          tipo,
		Status:        model.ChargeStatusPending,
		Dados:         util.JSONDocument(charge),
		CreatedAt:     a.now().Unix(),
	})
	if err == nil {
		err = tx.Commit(ctx)
	}
	if err != nil {
		logrus.Errorf("failed to record charge %s: %v", identificador, err)
	}
}
