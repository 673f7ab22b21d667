package document

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	// TemplateName is the page template rendered for every document.
	TemplateName = "templates/document.tmpl"
	// StylesheetName is the print stylesheet inlined into the page.
	StylesheetName = "print.css"
)

// TemplatesFS exposes the embedded template bundle so callers can copy and
// customise it (see WithTemplatesDir).
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded print stylesheet.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
