// Package modkit provides module wiring and core deps
package modkit

import (
	"tweetscore/internal/core/model"
	"tweetscore/internal/modkit/repokit"
	"tweetscore/internal/platform/config"
	"tweetscore/internal/platform/logger"
	"tweetscore/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// SQL is the relational seam; Dialect tells repos which flavour it speaks
	SQL     repokit.TxRunner
	Dialect store.Dialect

	// CH is optional; nil disables the event mirror
	CH store.Clickhouse

	// Model is loaded once at process start; Model.Model() may be nil
	Model *model.Provider
}

// FromStore copies the store seams into a Deps value
func FromStore(st *store.Store, cfg config.Conf, m *model.Provider) Deps {
	d := Deps{Cfg: cfg, Model: m}
	if st != nil {
		d.Log = st.Log
		d.SQL = st.SQL
		d.Dialect = st.Dialect
		d.CH = st.CH
	}
	return d
}

// HasSQL reports whether a relational seam is wired
func (d Deps) HasSQL() bool { return d.SQL != nil }
