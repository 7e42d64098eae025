package boleto

import (
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/samber/lo"
)

const ScopeBoletoCreate = "boletos_inclusao"

// tokenScopes reads the scp (list) or scope (space separated) claim without verifying
// the token. The result is only used for diagnostics.
func tokenScopes(token string) ([]string, error) {
	parsed, err := jwt.ParseInsecure([]byte(token))
	if err != nil {
		return nil, err
	}

	if scp, ok := parsed.Get("scp"); ok {
		switch v := scp.(type) {
		case []string:
			return v, nil
		case []any:
			return lo.FilterMap(v, func(item any, _ int) (string, bool) {
				s, ok := item.(string)
				return s, ok
			}), nil
		case string:
			return strings.Fields(v), nil
		}
	}
	if scope, ok := parsed.Get("scope"); ok {
		if s, ok := scope.(string); ok {
			return strings.Fields(s), nil
		}
	}
	return nil, nil
}

func missingScopes(token string, required ...string) ([]string, error) {
	present, err := tokenScopes(token)
	if err != nil {
		return nil, err
	}
	return lo.Without(required, present...), nil
}
