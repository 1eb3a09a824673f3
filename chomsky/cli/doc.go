// Package cli implements the chomsky command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'chomsky.cli'
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cli")
}
