/*
Package chomsky converts context-free grammars into Chomsky normal form.

The work is done in sub-packages:

■ cfg: grammar values, validation and fresh variable names.

■ cnf: the conversion stages and the pipeline combining them.

■ syntax: reading and writing textual grammar definitions.

■ render: presentation of grammars as tables, text or YAML.

■ lrgram: conversion of grammars into gorgo LR grammars.

The base package holds application-wide state for the command line tool in
folder chomsky/.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chomsky

import (
	"io"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
