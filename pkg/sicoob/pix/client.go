package pix

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/transport"
	"github.com/sirupsen/logrus"
)

// Client talks to the PIX cobranças API (Bacen PADI layout).
type Client struct {
	rest *transport.RestClient
}

func NewClient(baseURL string, httpClient *http.Client, tokens transport.TokenSource) *Client {
	return &Client{
		rest: transport.NewRestClient("pix", baseURL, httpClient, tokens, nil),
	}
}

func NewClientWithRestClient(rest *transport.RestClient) *Client {
	return &Client{rest: rest}
}

func (c *Client) CreateImmediateCharge(ctx context.Context, req model.CobrancaImediata) (model.PixCharge, error) {
	if err := ValidateImmediateCharge(req); err != nil {
		return model.PixCharge{}, err
	}

	logrus.Debugf("creating immediate PIX charge (valor %s)", req.Valor.Original)
	var charge model.PixCharge
	if err := c.rest.Execute(ctx, transport.Request{Method: http.MethodPost, Path: "/cob", Body: req}, &charge); err != nil {
		return model.PixCharge{}, wrapError(err, "failed to create immediate PIX charge", "")
	}

	logrus.Infof("immediate PIX charge created: txid %s, valor %s", charge.Txid, charge.Valor.Original)
	return charge, nil
}

func (c *Client) CreateDueDateCharge(ctx context.Context, req model.CobrancaVencimento) (model.PixCharge, error) {
	if err := ValidateDueDateCharge(req); err != nil {
		return model.PixCharge{}, err
	}

	logrus.Debugf("creating PIX charge with due date %s (valor %s)", req.Calendario.DataDeVencimento, req.Valor.Original)
	var charge model.PixCharge
	if err := c.rest.Execute(ctx, transport.Request{Method: http.MethodPost, Path: "/cobv", Body: req}, &charge); err != nil {
		return model.PixCharge{}, wrapError(err, "failed to create PIX charge with due date", "")
	}

	logrus.Infof("PIX charge with due date created: txid %s, valor %s", charge.Txid, charge.Valor.Original)
	return charge, nil
}

func (c *Client) GetCharge(ctx context.Context, txid string) (model.PixCharge, error) {
	if err := validateTxid(txid); err != nil {
		return model.PixCharge{}, err
	}

	var charge model.PixCharge
	path := "/cob/" + url.PathEscape(txid)
	if err := c.rest.Execute(ctx, transport.Request{Method: http.MethodGet, Path: path}, &charge); err != nil {
		return model.PixCharge{}, wrapError(err, "failed to query PIX charge", "cobrança não encontrada: "+txid)
	}

	logrus.Debugf("PIX charge %s queried, status %s", txid, charge.Status)
	return charge, nil
}

func (c *Client) CancelCharge(ctx context.Context, txid string) error {
	if err := validateTxid(txid); err != nil {
		return err
	}

	path := "/cob/" + url.PathEscape(txid)
	if _, err := c.rest.Do(ctx, transport.Request{Method: http.MethodDelete, Path: path}); err != nil {
		return wrapError(err, "failed to cancel PIX charge", "cobrança não encontrada: "+txid)
	}

	logrus.Infof("PIX charge %s cancelled", txid)
	return nil
}

func (c *Client) ListCharges(ctx context.Context, filter model.PixListFilter) (model.PixChargeList, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Start != "" {
		query.Set("inicio", normalizeDate(filter.Start, false))
	}
	if filter.End != "" {
		query.Set("fim", normalizeDate(filter.End, true))
	}
	if filter.Page > 0 || filter.PageSize > 0 {
		query.Set("paginacao.paginaAtual", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		query.Set("paginacao.itensPorPagina", strconv.Itoa(filter.PageSize))
	}

	var list model.PixChargeList
	if err := c.rest.Execute(ctx, transport.Request{Method: http.MethodGet, Path: "/cob", Query: query}, &list); err != nil {
		return model.PixChargeList{}, wrapError(err, "failed to list PIX charges", "")
	}

	logrus.Debugf("PIX charges listed: %d of %d", len(list.Cobs), list.Parametros.Paginacao.QuantidadeTotalDeItens)
	return list, nil
}

func (c *Client) GetQRCode(ctx context.Context, txid string) (model.PixQRCode, error) {
	if err := validateTxid(txid); err != nil {
		return model.PixQRCode{}, err
	}

	var qrCode model.PixQRCode
	path := "/qrcode/" + url.PathEscape(txid)
	if err := c.rest.Execute(ctx, transport.Request{Method: http.MethodGet, Path: path}, &qrCode); err != nil {
		return model.PixQRCode{}, wrapError(err, "failed to query PIX QR code", "QR Code não encontrado para TXID: "+txid)
	}
	return qrCode, nil
}

// wrapError logs err and, when notFound is given, replaces a remote 404 with that message.
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
