package model

type ChargeType string

const (
	ChargeTypePix    = ChargeType("PIX")
	ChargeTypeBoleto = ChargeType("BOLETO")
)

type PixModality string

const (
	PixModalityImmediate = PixModality("IMEDIATA")
	PixModalityDueDate   = PixModality("COM_VENCIMENTO")
)

type PixCobrancaPayload struct {
	Modalidade    PixModality         `json:"modalidade"`
	Imediata      *CobrancaImediata   `json:"imediata,omitempty"`
	ComVencimento *CobrancaVencimento `json:"comVencimento,omitempty"`
}

type BoletoCobrancaPayload struct {
	Dados *DadosBoleto `json:"dados"`
}

// CobrancaData is an instrument-agnostic charge request. Tipo selects which payload is read.
type CobrancaData struct {
	Tipo      ChargeType             `json:"tipo"`
	Descricao string                 `json:"descricao,omitempty"`
	Pix       *PixCobrancaPayload    `json:"pix,omitempty"`
	Boleto    *BoletoCobrancaPayload `json:"boleto,omitempty"`
	Metadados map[string]any         `json:"metadados,omitempty"`
}

// Cobranca is the façade view of a charge. Exactly one of Pix and Boleto is set.
type Cobranca struct {
	Tipo   ChargeType `json:"tipo"`
	Pix    *PixCharge `json:"pix,omitempty"`
	Boleto *Boleto    `json:"boleto,omitempty"`
}

// CobrancaList is the façade view of a listing. Exactly one of Pix and Boleto is set.
type CobrancaList struct {
	Tipo   ChargeType     `json:"tipo"`
	Pix    *PixChargeList `json:"pix,omitempty"`
	Boleto *BoletoList    `json:"boleto,omitempty"`
}
