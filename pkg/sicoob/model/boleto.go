package model

type BoletoStatus string

const (
	BoletoStatusActive    = BoletoStatus("ATIVO")
	BoletoStatusPaid      = BoletoStatus("PAGO")
	BoletoStatusCancelled = BoletoStatus("CANCELADO")
	BoletoStatusExpired   = BoletoStatus("VENCIDO")
)

type PessoaTipo int

const (
	PessoaFisica   = PessoaTipo(1)
	PessoaJuridica = PessoaTipo(2)
)

type PagadorBoleto struct {
	Nome          string     `json:"nome"`
	NumeroCpfCnpj string     `json:"numeroCpfCnpj"` // Digits only.
	TipoPessoa    PessoaTipo `json:"tipoPessoa"`
	Endereco      string     `json:"endereco,omitempty"`
	NomeBairro    string     `json:"nomeBairro,omitempty"`
	NomeMunicipio string     `json:"nomeMunicipio,omitempty"`
	SiglaUf       string     `json:"siglaUf,omitempty"`
	NumeroCep     string     `json:"numeroCep,omitempty"`
}

type MultaBoleto struct {
	TipoMulta  int      `json:"tipoMulta,omitempty"` // 0 = exempt, 1 = fixed, 2 = percentage
	ValorMulta *Decimal `json:"valorMulta,omitempty"`
	DataMulta  string   `json:"dataMulta,omitempty"`
}

type JurosBoleto struct {
	TipoJuros  int      `json:"tipoJuros,omitempty"` // 0 = exempt, 1 = per day, 3 = monthly percentage
	ValorJuros *Decimal `json:"valorJuros,omitempty"`
}

// DadosBoleto is the legacy boleto payload used by the charge façade.
type DadosBoleto struct {
	Modalidade          int           `json:"modalidade"` // 1 = Simples
	NumeroTituloCliente string        `json:"numeroTituloCliente"`
	DataVencimento      string        `json:"dataVencimento"` // YYYY-MM-DD
	ValorTitulo         Decimal       `json:"valorTitulo"`
	Pagador             PagadorBoleto `json:"pagador"`
	EspecieDocumento    int           `json:"especieDocumento,omitempty"`
	CodigoAceite        string        `json:"codigoAceite,omitempty"`
	NumeroParcela       int           `json:"numeroParcela,omitempty"`
	Multa               *MultaBoleto  `json:"multa,omitempty"`
	Juros               *JurosBoleto  `json:"juros,omitempty"`
	MensagensPosicao5a8 []string      `json:"mensagensPosicao5a8,omitempty"`
}

type PagadorV3 struct {
	NumeroCpfCnpj string `json:"numeroCpfCnpj"` // 11 or 14 digits
	Nome          string `json:"nome"`
	Endereco      string `json:"endereco"`
	Cidade        string `json:"cidade"`
	Cep           string `json:"cep"` // 8 digits
	Uf            string `json:"uf"`
}

type DescontoV3 struct {
	CodigoDesconto int      `json:"codigoDesconto"` // 1 = fixed, 2 = percentage
	Data           string   `json:"data"`
	Valor          *Decimal `json:"valor,omitempty"`
	Taxa           *Decimal `json:"taxa,omitempty"`
}

type MultaV3 struct {
	CodigoMulta int      `json:"codigoMulta"`
	Data        string   `json:"data"`
	Valor       *Decimal `json:"valor,omitempty"`
	Taxa        *Decimal `json:"taxa,omitempty"`
}

type JurosV3 struct {
	CodigoJuros int      `json:"codigoJuros"` // 1 = per day, 2 = monthly, 3 = exempt
	Valor       *Decimal `json:"valor,omitempty"`
	Taxa        *Decimal `json:"taxa,omitempty"`
}

type RateioCreditoV3 struct {
	NumeroContaRateio     int     `json:"numeroContaRateio"`
	CodigoTipoValorRateio int     `json:"codigoTipoValorRateio"`
	ValorRateio           Decimal `json:"valorRateio"`
}

// BoletoV3 is the strict payload of POST /boletos on cobranca-bancaria v3.
type BoletoV3 struct {
	NumeroContrato      int     `json:"numeroContrato"`
	Modalidade          int     `json:"modalidade"`
	NumeroContaCorrente int     `json:"numeroContaCorrente"`
	EspecieDocumento    string  `json:"especieDocumento"`
	DataEmissao         string  `json:"dataEmissao"`
	DataVencimento      string  `json:"dataVencimento"`
	ValorNominal        Decimal `json:"valorNominal"`

	Pagador *PagadorV3 `json:"pagador"`

	SeuNumero             string            `json:"seuNumero,omitempty"`
	Descricao             string            `json:"descricao,omitempty"`
	CodigoNegativacao     int               `json:"codigoNegativacao,omitempty"`
	NumeroDiasNegativacao int               `json:"numeroDiasNegativacao,omitempty"`
	CodigoProtesto        int               `json:"codigoProtesto,omitempty"`
	NumeroDiasProtesto    int               `json:"numeroDiasProtesto,omitempty"`
	Descontos             []DescontoV3      `json:"descontos,omitempty"`
	Multa                 *MultaV3          `json:"multa,omitempty"`
	JurosMora             *JurosV3          `json:"jurosMora,omitempty"`
	RateioCredito         []RateioCreditoV3 `json:"rateioCredito,omitempty"`
}

type Parte struct {
	Nome    string `json:"nome"`
	CpfCnpj string `json:"cpf_cnpj"`
}

// Boleto is a bank slip as returned by the bank. NossoNumero is assigned remotely.
type Boleto struct {
	NossoNumero    string       `json:"nosso_numero"`
	NumeroBoleto   string       `json:"numero_boleto,omitempty"`
	SeuNumero      string       `json:"seu_numero,omitempty"`
	Valor          Decimal      `json:"valor"`
	DataVencimento string       `json:"data_vencimento"`
	Status         BoletoStatus `json:"status"`
	DataPagamento  string       `json:"data_pagamento,omitempty"`
	ValorPago      *Decimal     `json:"valor_pago,omitempty"`
	Beneficiario   *Parte       `json:"beneficiario,omitempty"`
	Pagador        *Parte       `json:"pagador,omitempty"`
}

type BoletoPaginacao struct {
	PaginaAtual  int `json:"pagina_atual"`
	TotalPaginas int `json:"total_paginas"`
	TotalItens   int `json:"total_itens"`
}

type BoletoList struct {
	Boletos   []Boleto        `json:"boletos"`
	Paginacao BoletoPaginacao `json:"paginacao"`
}

type BoletoListFilter struct {
	Status     BoletoStatus
	DataInicio string
	DataFim    string
	Pagina     int
	Limite     int
}
