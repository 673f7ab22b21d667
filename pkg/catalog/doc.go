// Package catalog holds the read-only equipment catalog used to auto-fill the
// commercial name and approval certificate (CA) of an issuance row once its
// description is chosen. The default catalog is embedded under
// data/catalog.yaml; Load accepts a replacement file read once at startup.
package catalog
