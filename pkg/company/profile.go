// Package company describes the employer printed in the company-details grid
// of the document. The profile is static configuration: an embedded default
// plus an optional YAML/JSON file read at startup.
package company

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/profile.yaml
var dataFS embed.FS

const defaultProfilePath = "data/profile.yaml"

// Profile holds the company details printed on the document.
type Profile struct {
	Empresa     string `json:"empresa" yaml:"empresa"`
	// RazaoSocial is the legal name quoted in the declaration. Empty means
	// Empresa.
	RazaoSocial string `json:"razaoSocial,omitempty" yaml:"razaoSocial,omitempty"`
	CNPJ        string `json:"cnpj" yaml:"cnpj"`
	Endereco    string `json:"endereco" yaml:"endereco"`
	Bairro      string `json:"bairro" yaml:"bairro"`
	Cidade      string `json:"cidade" yaml:"cidade"`
	UF          string `json:"uf" yaml:"uf"`
	// LogoSVG is inline SVG markup printed next to the title. It is
	// sanitized before rendering; see SanitizedLogo.
	LogoSVG     string `json:"logoSvg,omitempty" yaml:"logoSvg,omitempty"`
}

// IsZero reports whether no company detail is set.
func (p Profile) IsZero() bool {
	return p == Profile{}
}

// LegalName returns RazaoSocial, or Empresa when it is not set.
func (p Profile) LegalName() string {
	if name := strings.TrimSpace(p.RazaoSocial); name != "" {
		return name
	}
	return p.Empresa
}

// SanitizedLogo returns LogoSVG reduced to a safe SVG subset.
func (p Profile) SanitizedLogo() string {
	return sanitizeLogoMarkup(p.LogoSVG)
}

var (
	defaultOnce    sync.Once
	defaultProfile Profile
	defaultErr     error
)

// Default returns the embedded company profile.
func Default() (Profile, error) {
	defaultOnce.Do(func() {
		data, err := dataFS.ReadFile(defaultProfilePath)
		if err != nil {
			defaultErr = err
			return
		}
		defaultProfile, defaultErr = Parse(data, defaultProfilePath)
	})
	return defaultProfile, defaultErr
}

// Load reads a profile file from disk.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("company: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML profile document. source only labels errors.
func Parse(data []byte, source string) (Profile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Profile{}, fmt.Errorf("company: file %s is empty", source)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		if yerr := yaml.Unmarshal(data, &p); yerr != nil {
			return Profile{}, fmt.Errorf("company: parse %s: invalid JSON or YAML", source)
		}
	}
	p = p.trimmed()
	if p.Empresa == "" {
		return Profile{}, fmt.Errorf("company: file %s: empresa is required", source)
	}
	return p, nil
}

func (p Profile) trimmed() Profile {
	p.Empresa = strings.TrimSpace(p.Empresa)
	p.RazaoSocial = strings.TrimSpace(p.RazaoSocial)
	p.CNPJ = strings.TrimSpace(p.CNPJ)
	p.Endereco = strings.TrimSpace(p.Endereco)
	p.Bairro = strings.TrimSpace(p.Bairro)
	p.Cidade = strings.TrimSpace(p.Cidade)
	p.UF = strings.TrimSpace(p.UF)
	p.LogoSVG = strings.TrimSpace(p.LogoSVG)
	return p
}
