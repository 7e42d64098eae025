package pkix

import (
	"fmt"

	"software.sslmate.com/src/go-pkcs12"
)

// DecodePKCS12 extracts the leaf certificate, its private key and the bundled CA chain
// from a PKCS#12 archive, all PEM encoded. caPEM is nil when the archive carries no chain.
func DecodePKCS12(data []byte, password string) (certPEM, keyPEM, caPEM []byte, err error) {
	privateKey, cert, caCerts, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("decode pkcs12: %w", err)
	}
	if cert == nil || privateKey == nil {
		return nil, nil, nil, fmt.Errorf("pkcs12 archive has no certificate/key pair")
	}

	keyPEM, err = EncodePrivateKey(privateKey)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encode private key: %w", err)
	}
	certPEM = EncodeCertificates(cert)
	if len(caCerts) > 0 {
		caPEM = EncodeCertificates(caCerts...)
	}
	return certPEM, keyPEM, caPEM, nil
}
