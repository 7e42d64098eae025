package model

type PixChargeStatus string

const (
	PixChargeStatusActive    = PixChargeStatus("ATIVA")
	PixChargeStatusCurrent   = PixChargeStatus("VIGENTE")
	PixChargeStatusReceived  = PixChargeStatus("RECEBIDA")
	PixChargeStatusCompleted = PixChargeStatus("CONCLUIDA")
	PixChargeStatusCancelled = PixChargeStatus("CANCELADA")
	PixChargeStatusReturned  = PixChargeStatus("DEVOLVIDA")
	PixChargeStatusExpired   = PixChargeStatus("EXPIRADA")
)

type Calendario struct {
	Expiracao              int    `json:"expiracao,omitempty"` // Seconds until the charge expires.
	Criacao                string `json:"criacao,omitempty"`
	DataDeVencimento       string `json:"dataDeVencimento,omitempty"` // YYYY-MM-DD, cobv only.
	ValidadeAposVencimento int    `json:"validadeAposVencimento,omitempty"`
}

type Devedor struct {
	Cpf        string `json:"cpf,omitempty"`
	Cnpj       string `json:"cnpj,omitempty"`
	Nome       string `json:"nome,omitempty"`
	Logradouro string `json:"logradouro,omitempty"`
	Cidade     string `json:"cidade,omitempty"`
	Uf         string `json:"uf,omitempty"`
	Cep        string `json:"cep,omitempty"`
}

// Document returns the payer CPF or CNPJ, whichever is set.
func (d *Devedor) Document() string {
	if d == nil {
		return ""
	}
	if d.Cpf != "" {
		return d.Cpf
	}
	return d.Cnpj
}

type ValorModalidade struct {
	Modalidade int    `json:"modalidade"` // 1 = fixed value, 2 = percentage
	ValorPerc  string `json:"valorPerc"`
}

type DescontoDataFixa struct {
	Data      string `json:"data"`
	ValorPerc string `json:"valorPerc"`
}

type Desconto struct {
	Modalidade       int                `json:"modalidade"`
	DescontoDataFixa []DescontoDataFixa `json:"descontoDataFixa,omitempty"`
}

type Valor struct {
	Original            string           `json:"original"` // Decimal string, e.g. "100.00".
	ModalidadeAlteracao *int             `json:"modalidadeAlteracao,omitempty"`
	Juros               *ValorModalidade `json:"juros,omitempty"`
	Multa               *ValorModalidade `json:"multa,omitempty"`
	Desconto            *Desconto        `json:"desconto,omitempty"`
}

type InfoAdicional struct {
	Nome  string `json:"nome"`
	Valor string `json:"valor"`
}

// CobrancaImediata is the payload of POST /cob.
type CobrancaImediata struct {
	Calendario         *Calendario     `json:"calendario,omitempty"`
	Devedor            *Devedor        `json:"devedor,omitempty"`
	Valor              Valor           `json:"valor"`
	Chave              string          `json:"chave"`
	SolicitacaoPagador string          `json:"solicitacaoPagador,omitempty"`
	InfoAdicionais     []InfoAdicional `json:"infoAdicionais,omitempty"`
	Txid               string          `json:"txid,omitempty"`
}

// CobrancaVencimento is the payload of POST /cobv.
type CobrancaVencimento struct {
	Calendario         Calendario      `json:"calendario"`
	Devedor            *Devedor        `json:"devedor,omitempty"`
	Valor              Valor           `json:"valor"`
	Chave              string          `json:"chave"`
	SolicitacaoPagador string          `json:"solicitacaoPagador,omitempty"`
	InfoAdicionais     []InfoAdicional `json:"infoAdicionais,omitempty"`
	Txid               string          `json:"txid,omitempty"`
}

// PixCharge mirrors what the bank returns for a charge. Status is never changed locally.
type PixCharge struct {
	Txid               string          `json:"txid"`
	Status             PixChargeStatus `json:"status"`
	Revisao            int             `json:"revisao,omitempty"`
	Calendario         *Calendario     `json:"calendario,omitempty"`
	Devedor            *Devedor        `json:"devedor,omitempty"`
	Valor              Valor           `json:"valor"`
	Chave              string          `json:"chave"`
	Location           string          `json:"location,omitempty"`
	PixCopiaECola      string          `json:"pixCopiaECola,omitempty"`
	SolicitacaoPagador string          `json:"solicitacaoPagador,omitempty"`
}

type Paginacao struct {
	PaginaAtual            int `json:"paginaAtual"`
	ItensPorPagina         int `json:"itensPorPagina"`
	QuantidadeDePaginas    int `json:"quantidadeDePaginas"`
	QuantidadeTotalDeItens int `json:"quantidadeTotalDeItens"`
}

type PixListParameters struct {
	Inicio    string    `json:"inicio"`
	Fim       string    `json:"fim"`
	Paginacao Paginacao `json:"paginacao"`
}

type PixChargeList struct {
	Parametros PixListParameters `json:"parametros"`
	Cobs       []PixCharge       `json:"cobs"`
}

// PixListFilter filters GET /cob. Start and End accept YYYY-MM-DD or RFC3339.
type PixListFilter struct {
	Status   PixChargeStatus
	Start    string
	End      string
	Page     int
	PageSize int
}

type PixQRCode struct {
	Txid        string  `json:"txid"`
	QRCode      string  `json:"qr_code"`
	QRCodeURL   string  `json:"qr_code_url,omitempty"`
	Valor       Decimal `json:"valor"`
	DataCriacao string  `json:"data_criacao,omitempty"`
}
