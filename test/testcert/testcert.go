// Package testcert generates throwaway certificate material for tests.
package testcert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	gopkix "crypto/x509/pkix"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/openebl/sicoob-gateway/pkg/pkix"
	"github.com/stretchr/testify/require"
	"software.sslmate.com/src/go-pkcs12"
)

type Material struct {
	CA      *x509.Certificate
	Leaf    *x509.Certificate
	LeafKey *ecdsa.PrivateKey

	CAPEM   []byte
	CertPEM []byte
	KeyPEM  []byte
}

// New creates a CA and a leaf certificate signed by it. The leaf is valid for 127.0.0.1 and localhost
// so it can also serve as a server certificate for httptest.
func New(t testing.TB) Material {
	caKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	leafKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	caTemplate := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               gopkix.Name{Organization: []string{"Sicoob Gateway Test"}, CommonName: "Test Root CA"},
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature | x509.KeyUsageCRLSign,
		IsCA:                  true,
		BasicConstraintsValid: true,
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().AddDate(1, 0, 0),
	}
	caDER, err := x509.CreateCertificate(rand.Reader, &caTemplate, &caTemplate, &caKey.PublicKey, caKey)
	require.NoError(t, err)
	caCert, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	leafTemplate := x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      gopkix.Name{Organization: []string{"Sicoob Gateway Test"}, CommonName: "localhost"},
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		DNSNames:     []string{"localhost"},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().AddDate(1, 0, 0),
	}
	leafDER, err := x509.CreateCertificate(rand.Reader, &leafTemplate, caCert, &leafKey.PublicKey, caKey)
	require.NoError(t, err)
	leafCert, err := x509.ParseCertificate(leafDER)
	require.NoError(t, err)

	keyPEM, err := pkix.EncodePrivateKey(leafKey)
	require.NoError(t, err)

	return Material{
		CA:      caCert,
		Leaf:    leafCert,
		LeafKey: leafKey,
		CAPEM:   pkix.EncodeCertificates(caCert),
		CertPEM: pkix.EncodeCertificates(leafCert),
		KeyPEM:  keyPEM,
	}
}

// PKCS12 bundles the leaf, its key and the CA into a PKCS#12 archive. An empty password
// produces an unencrypted archive.
func (m Material) PKCS12(t testing.TB, password string) []byte {
	encoder := pkcs12.Modern
	if password == "" {
		encoder = pkcs12.Passwordless
	}
	pfx, err := encoder.Encode(m.LeafKey, m.Leaf, []*x509.Certificate{m.CA}, password)
	require.NoError(t, err)
	return pfx
}
