package pkix

import (
	"bytes"
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
)

// ParsePrivateKey parses the first PEM block of key as an EC, PKCS#8 or PKCS#1 private key.
func ParsePrivateKey(key []byte) (crypto.PrivateKey, error) {
	pemBlock, _ := pem.Decode(key)
	if pemBlock == nil {
		return nil, errors.New("invalid private key")
	}

	ecPrivateKey, ecErr := x509.ParseECPrivateKey(pemBlock.Bytes)
	if ecErr == nil {
		return ecPrivateKey, nil
	}

	privKey, pkcs8Err := x509.ParsePKCS8PrivateKey(pemBlock.Bytes)
	if pkcs8Err == nil {
		return privKey, nil
	}

	// Fallback to PKCS1
	rsaKey, pkcs1Err := x509.ParsePKCS1PrivateKey(pemBlock.Bytes)
	if pkcs1Err == nil {
		return rsaKey, nil
	}

	return nil, pkcs8Err
}

// ParseCertificate parses a PEM encoded certificate chain. Non-certificate blocks are rejected.
func ParseCertificate(certRaw []byte) ([]*x509.Certificate, error) {
	certs := make([]*x509.Certificate, 0, 4)
	rest := bytes.TrimSpace(certRaw)
	for len(rest) > 0 {
		pemBlock, remains := pem.Decode(rest)
		if pemBlock == nil || pemBlock.Type != "CERTIFICATE" {
			return nil, errors.New("invalid certificate")
		}

		cert, err := x509.ParseCertificate(pemBlock.Bytes)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
		rest = bytes.TrimSpace(remains)
	}

	if len(certs) == 0 {
		return nil, errors.New("invalid certificate")
	}
	return certs, nil
}

func EncodeCertificates(certs ...*x509.Certificate) []byte {
	buf := &bytes.Buffer{}
	for _, cert := range certs {
		_ = pem.Encode(buf, &pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
	}
	return buf.Bytes()
}

// EncodePrivateKey encodes key as a PKCS#8 "PRIVATE KEY" PEM block.
func EncodePrivateKey(key crypto.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}
