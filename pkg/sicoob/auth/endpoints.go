package auth

import (
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// Endpoints are the OAuth2 URLs used by the auth client.
type Endpoints struct {
	Token    string
	Validate string // Empty when the provider offers no introspection endpoint.
	Base     string // Always ends with "/".
}

// ResolveEndpoints prefers explicitly configured URLs and falls back to deriving
// them from the token URL. Derivation is best-effort.
func ResolveEndpoints(tokenURL, validateURL, baseURL string) Endpoints {
	endpoints := Endpoints{
		Token:    tokenURL,
		Validate: validateURL,
		Base:     baseURL,
	}

	if endpoints.Base == "" {
		endpoints.Base = deriveBaseURL(tokenURL)
		logrus.Debugf("auth base URL derived from token URL: %s", endpoints.Base)
	} else if !strings.HasSuffix(endpoints.Base, "/") {
		endpoints.Base += "/"
	}

	if endpoints.Validate == "" {
		endpoints.Validate = deriveValidateURL(tokenURL)
		if endpoints.Validate != "" {
			logrus.Debugf("token validation URL derived from token URL: %s", endpoints.Validate)
		}
	}

	return endpoints
}

func deriveBaseURL(tokenURL string) string {
	u, err := url.Parse(tokenURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return tokenURL
	}

	u.Path = strings.TrimSuffix(u.Path, "/token")
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// deriveValidateURL appends /validate to a .../token URL. Anything else is returned unchanged.
func deriveValidateURL(tokenURL string) string {
	u, err := url.Parse(tokenURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return tokenURL
	}
	if !strings.HasSuffix(u.Path, "/token") {
		return tokenURL
	}

	u.Path += "/validate"
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
