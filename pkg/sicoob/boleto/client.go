package boleto

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/transport"
	"github.com/openebl/sicoob-gateway/pkg/util"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// MaxConcurrentPosts is the number of POST /boletos requests allowed in flight.
const MaxConcurrentPosts = 2

type Config struct {
	BaseURL       string
	Cooperativa   string // Sent as x-cooperativa when set.
	ContaCorrente string // Sent as x-conta-corrente when set.

	// GenerateDocumentNumber assigns a local numeroTituloCliente to legacy requests without one.
	GenerateDocumentNumber bool

	// PostsPerSecond paces POST /boletos. Zero disables pacing.
	PostsPerSecond float64
}

// DefaultBaseURL is where the cobrança bancária v3 API lives relative to the API base URL.
func DefaultBaseURL(apiBaseURL string) string {
	return strings.TrimRight(apiBaseURL, "/") + "/cobranca-bancaria/v3"
}

type ClientOption func(c *Client)

func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

type Client struct {
	cfg    Config
	rest   *transport.RestClient
	tokens transport.TokenSource
	posts  *semaphore.Weighted
	pacer  *rate.Limiter
	now    func() time.Time
}

func NewClient(cfg Config, httpClient *http.Client, tokens transport.TokenSource, opts ...ClientOption) *Client {
	c := &Client{
		cfg:    cfg,
		rest:   transport.NewRestClient("boleto", cfg.BaseURL, httpClient, tokens, nil),
		tokens: tokens,
		posts:  semaphore.NewWeighted(MaxConcurrentPosts),
		now:    time.Now,
	}
	if cfg.PostsPerSecond > 0 {
		c.pacer = rate.NewLimiter(rate.Limit(cfg.PostsPerSecond), MaxConcurrentPosts)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateBoleto registers a boleto from the legacy payload used by the charge façade.
func (c *Client) GenerateBoleto(ctx context.Context, req model.DadosBoleto) (model.Boleto, error) {
	if strings.TrimSpace(req.NumeroTituloCliente) == "" && c.cfg.GenerateDocumentNumber {
		req.NumeroTituloCliente = util.NewDocumentNumber()
		logrus.Debugf("assigned document number %s to boleto request", req.NumeroTituloCliente)
	}
	if err := ValidateDadosBoleto(req, c.now()); err != nil {
		return model.Boleto{}, err
	}

	logrus.Debugf("generating boleto (valor %s, vencimento %s)", req.ValorTitulo, req.DataVencimento)
	boleto, err := c.post(ctx, req, nil)
	if err != nil {
		return model.Boleto{}, wrapError(err, "failed to generate boleto", "")
	}

	logrus.Infof("boleto generated: nosso número %s, valor %s", boleto.NossoNumero, boleto.Valor)
	return boleto, nil
}

// CreateBoleto registers a boleto from a strict V3 payload. Empty fields are pruned before
// sending. A 406 naming known incompatible fields is retried once without them.
func (c *Client) CreateBoleto(ctx context.Context, req model.BoletoV3) (model.Boleto, error) {
	if err := ValidateBoletoV3(req, c.now()); err != nil {
		return model.Boleto{}, err
	}

	payload, err := toPayload(req)
	if err != nil {
		return model.Boleto{}, err
	}
	payload = CleanPayload(payload)
	logrus.Debugf("POST %s/boletos (Authorization: Bearer [REDACTED]) fields %v", c.rest.BaseURL(), lo.Keys(payload))

	c.checkScopes(ctx)

	header := c.accountHeader()
	boleto, err := c.post(ctx, payload, header)
	if err == nil {
		logrus.Infof("boleto created: nosso número %s, linha digitável %s", boleto.NossoNumero, boleto.NumeroBoleto)
		return boleto, nil
	}
	if model.RemoteStatus(err) != http.StatusNotAcceptable {
		return model.Boleto{}, wrapError(err, "failed to create boleto", "")
	}

	body := remoteBody(err)
	fields := lo.Filter(rejectedFields(body), func(field string, _ int) bool {
		_, present := payload[field]
		return present
	})
	if len(fields) == 0 {
		logrus.Warnf("boleto rejected with 406: %s", string(body))
		return model.Boleto{}, model.WithDetails(model.ErrInvalidBoletoPayload, model.RemoteBody(body))
	}

	compat := CleanPayload(withoutFields(payload, fields))
	logrus.Warnf("boleto rejected with 406, retrying once without %v", fields)
	boleto, retryErr := c.post(ctx, compat, header)
	if retryErr != nil {
		logrus.Errorf("boleto compatibility retry failed: %v", retryErr)
		return model.Boleto{}, model.WithDetails(model.ErrInvalidBoletoPayload, model.RemoteBody(body))
	}

	logrus.Infof("boleto created after removing %v: nosso número %s", fields, boleto.NossoNumero)
	return boleto, nil
}

func (c *Client) GetBoleto(ctx context.Context, nossoNumero string) (model.Boleto, error) {
	if err := validateNossoNumero(nossoNumero); err != nil {
		return model.Boleto{}, err
	}

	var boleto model.Boleto
	req := transport.Request{Method: http.MethodGet, Path: "/boletos/" + url.PathEscape(nossoNumero), Header: c.accountHeader()}
	if err := c.rest.Execute(ctx, req, &boleto); err != nil {
		return model.Boleto{}, wrapError(err, "failed to query boleto", "boleto não encontrado: "+nossoNumero)
	}

	logrus.Debugf("boleto %s queried, status %s", nossoNumero, boleto.Status)
	return boleto, nil
}

func (c *Client) CancelBoleto(ctx context.Context, nossoNumero string) error {
	if err := validateNossoNumero(nossoNumero); err != nil {
		return err
	}

	req := transport.Request{Method: http.MethodDelete, Path: "/boletos/" + url.PathEscape(nossoNumero), Header: c.accountHeader()}
	if _, err := c.rest.Do(ctx, req); err != nil {
		return wrapError(err, "failed to cancel boleto", "boleto não encontrado: "+nossoNumero)
	}

	logrus.Infof("boleto %s cancelled", nossoNumero)
	return nil
}

func (c *Client) ListBoletos(ctx context.Context, filter model.BoletoListFilter) (model.BoletoList, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.DataInicio != "" {
		query.Set("data_inicio", filter.DataInicio)
	}
	if filter.DataFim != "" {
		query.Set("data_fim", filter.DataFim)
	}
	if filter.Pagina > 0 {
		query.Set("pagina", strconv.Itoa(filter.Pagina))
	}
	if filter.Limite > 0 {
		query.Set("limite", strconv.Itoa(filter.Limite))
	}

	var list model.BoletoList
	req := transport.Request{Method: http.MethodGet, Path: "/boletos", Query: query, Header: c.accountHeader()}
	if err := c.rest.Execute(ctx, req, &list); err != nil {
		return model.BoletoList{}, wrapError(err, "failed to list boletos", "")
	}

	logrus.Debugf("boletos listed: %d of %d", len(list.Boletos), list.Paginacao.TotalItens)
	return list, nil
}

// DownloadPDF returns the printable boleto as raw PDF bytes.
func (c *Client) DownloadPDF(ctx context.Context, nossoNumero string) ([]byte, error) {
	if err := validateNossoNumero(nossoNumero); err != nil {
		return nil, err
	}

	req := transport.Request{
		Method: http.MethodGet,
		Path:   "/boletos/" + url.PathEscape(nossoNumero) + "/pdf",
		Accept: "application/pdf",
		Header: c.accountHeader(),
	}
	resp, err := c.rest.Do(ctx, req)
	if err != nil {
		return nil, wrapError(err, "failed to download boleto PDF", "boleto não encontrado: "+nossoNumero)
	}

	logrus.Infof("boleto %s PDF downloaded (%d bytes)", nossoNumero, len(resp.Body))
	return resp.Body, nil
}

func (c *Client) post(ctx context.Context, payload any, header http.Header) (model.Boleto, error) {
	if err := c.posts.Acquire(ctx, 1); err != nil {
		return model.Boleto{}, err
	}
	defer c.posts.Release(1)

	if c.pacer != nil {
		if err := c.pacer.Wait(ctx); err != nil {
			return model.Boleto{}, err
		}
	}

	var boleto model.Boleto
	req := transport.Request{Method: http.MethodPost, Path: "/boletos", Body: payload, Header: header}
	if err := c.rest.Execute(ctx, req, &boleto); err != nil {
		return model.Boleto{}, err
	}
	return boleto, nil
}

func (c *Client) accountHeader() http.Header {
	header := http.Header{}
	if c.cfg.Cooperativa != "" {
		header.Set("x-cooperativa", c.cfg.Cooperativa)
	}
	if c.cfg.ContaCorrente != "" {
		header.Set("x-conta-corrente", c.cfg.ContaCorrente)
	}
	return header
}

// checkScopes warns when the current token lacks the boleto creation scope. It never blocks.
func (c *Client) checkScopes(ctx context.Context) {
	token, err := c.tokens.GetAccessToken(ctx)
	if err != nil {
		return
	}
	missing, err := missingScopes(token, ScopeBoletoCreate)
	switch {
	case err != nil:
		logrus.Warnf("could not read token scopes, continuing: %v", err)
	case len(missing) > 0:
		logrus.Warnf("access token is missing scopes %v, continuing", missing)
	default:
		logrus.Debugf("access token carries scope %s", ScopeBoletoCreate)
	}
}

func remoteBody(err error) []byte {
	var remoteErr *model.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Body
	}
	return nil
}

func wrapError(err error, message string, notFound string) error {
	if notFound != "" && errors.Is(err, model.ErrNotFound) {
		return model.WithDetails(fmt.Errorf("%s%w", notFound, model.ErrNotFound), model.ErrorDetails(err))
	}
	if errors.Is(err, model.ErrServer) {
		logrus.Errorf("%s: %v", message, err)
	} else {
		logrus.Warnf("%s: %v", message, err)
	}
	return err
}
