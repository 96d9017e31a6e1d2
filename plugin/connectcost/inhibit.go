// Package connectcost implements connection-cost-editing plugins
// (spec.md §4.1's "edit-connection plugins"), grounded on
// original_source/plugin/connect_cost/inhibit_connection/src/lib.rs.
package connectcost

import "github.com/go-sudachi/sudachi/dic"

// Pair is a (left_id, right_id) connection to forbid.
type Pair struct {
	Left, Right int16
}

// InhibitPlugin overrides a configured set of connections to the
// inhibited sentinel, so the Viterbi solver can never route through
// them (spec.md §4.6's inhibited-connection invariant). Editing a
// Grammar's connection matrix triggers the copy-on-write upgrade
// described in spec.md §4.1/§5; this must only run once, at
// dictionary-construction time, before any Grammar is shared across
// analyzer instances.
type InhibitPlugin struct {
	Pairs []Pair
}

// Apply writes the inhibited sentinel at every configured pair.
func (p *InhibitPlugin) Apply(g *dic.Grammar) {
	for _, pair := range p.Pairs {
		g.SetCost(pair.Left, pair.Right, dic.InhibitedConnection)
	}
}
