package transport

import (
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/openebl/sicoob-gateway/pkg/pkix"
	"github.com/openebl/sicoob-gateway/pkg/sicoob/model"
)

type CertificateConfig struct {
	PFXBase64   string // PKCS#12 archive, base64. Takes priority over the PEM paths.
	PFXPassword string
	CertPath    string
	KeyPath     string
	CABase64    string // PEM CA bundle, base64. Takes priority over CAPath.
	CAPath      string
}

// CertificateBundle is the client identity presented on every mTLS connection.
type CertificateBundle struct {
	CertificatePEM []byte
	PrivateKeyPEM  []byte
	CAPEM          []byte // Optional.
}

// LoadCertificateBundle resolves the client certificate. Every error returned wraps model.ErrCertificate.
func LoadCertificateBundle(cfg CertificateConfig) (CertificateBundle, error) {
	var bundle CertificateBundle

	if cfg.PFXBase64 != "" {
		raw, err := decodeBase64(cfg.PFXBase64)
		if err != nil {
			return CertificateBundle{}, fmt.Errorf("decode PKCS#12 base64: %v. %w", err, model.ErrInvalidPKCS12)
		}
		certPEM, keyPEM, caPEM, err := pkix.DecodePKCS12(raw, cfg.PFXPassword)
		if err != nil {
			return CertificateBundle{}, fmt.Errorf("%v. %w", err, model.ErrInvalidPKCS12)
		}
		bundle = CertificateBundle{CertificatePEM: certPEM, PrivateKeyPEM: keyPEM, CAPEM: caPEM}
	} else {
		if cfg.CertPath == "" || cfg.KeyPath == "" {
			return CertificateBundle{}, model.ErrInvalidCertificateConfig
		}
		certPEM, err := readPEMFile(cfg.CertPath)
		if err != nil {
			return CertificateBundle{}, err
		}
		keyPEM, err := readPEMFile(cfg.KeyPath)
		if err != nil {
			return CertificateBundle{}, err
		}
		bundle = CertificateBundle{CertificatePEM: certPEM, PrivateKeyPEM: keyPEM}
	}

	switch {
	case cfg.CABase64 != "":
		caPEM, err := decodeBase64(cfg.CABase64)
		if err != nil {
			return CertificateBundle{}, fmt.Errorf("decode CA base64: %v. %w", err, model.ErrInvalidCertificateConfig)
		}
		bundle.CAPEM = caPEM
	case cfg.CAPath != "":
		caPEM, err := readPEMFile(cfg.CAPath)
		if err != nil {
			return CertificateBundle{}, err
		}
		bundle.CAPEM = caPEM
	}

	if err := bundle.validate(); err != nil {
		return CertificateBundle{}, err
	}
	return bundle, nil
}

func (b CertificateBundle) validate() error {
	if _, err := pkix.ParseCertificate(b.CertificatePEM); err != nil {
		return fmt.Errorf("client certificate: %v. %w", err, model.ErrInvalidCertificatePEM)
	}
	if _, err := pkix.ParsePrivateKey(b.PrivateKeyPEM); err != nil {
		return fmt.Errorf("client private key: %v. %w", err, model.ErrInvalidPrivateKeyPEM)
	}
	if len(b.CAPEM) > 0 {
		if _, err := pkix.ParseCertificate(b.CAPEM); err != nil {
			return fmt.Errorf("CA bundle: %v. %w", err, model.ErrInvalidCertificatePEM)
		}
	}
	return nil
}

// TLSCertificate pairs the certificate chain with its private key.
func (b CertificateBundle) TLSCertificate() (tls.Certificate, error) {
	cert, err := tls.X509KeyPair(b.CertificatePEM, b.PrivateKeyPEM)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("certificate/key pair: %v. %w", err, model.ErrCertificate)
	}
	return cert, nil
}

func readPEMFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("not found: %s%w", path, model.ErrCertificate)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %v. %w", path, err, model.ErrCertificate)
	}
	return content, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	}
	return raw, nil
}
