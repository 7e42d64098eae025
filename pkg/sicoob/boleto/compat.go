package boleto

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

// compatFields are V3 fields some cooperative environments reject with a 406.
var compatFields = []string{"numeroContrato", "modalidade", "especieDocumento", "numeroContaCorrente"}

type remoteMessage struct {
	Codigo   any    `json:"codigo"`
	Mensagem string `json:"mensagem"`
	Campo    string `json:"campo"`
}

type remoteMessages struct {
	Mensagens []remoteMessage `json:"mensagens"`
}

// rejectedFields returns the compatFields a 406 body complains about.
// Structured mensagens[].campo entries are preferred. Matching field names anywhere in
// the body text is the fallback for environments that only send free text.
func rejectedFields(body []byte) []string {
	var structured remoteMessages
	if err := json.Unmarshal(body, &structured); err == nil && len(structured.Mensagens) > 0 {
		fields := lo.Filter(compatFields, func(field string, _ int) bool {
			return lo.ContainsBy(structured.Mensagens, func(m remoteMessage) bool {
				codigo, _ := m.Codigo.(string)
				return strings.EqualFold(m.Campo, field) || strings.EqualFold(codigo, field)
			})
		})
		if len(fields) > 0 {
			return fields
		}
	}

	text := strings.ToLower(string(body))
	return lo.Filter(compatFields, func(field string, _ int) bool {
		return strings.Contains(text, strings.ToLower(field))
	})
}
