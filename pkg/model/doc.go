// Package model defines the data handed between the form state manager and the
// renderers: the employee identification block, the equipment issuance rows
// and the immutable Snapshot renderers read. Field names double as the JSON
// names used by templates and by the dotted paths accepted in batch mode
// (`colaborador`, `rows.0.descricao`). Dates travel as the strings the user
// typed; formatting belongs to pkg/render.
package model
