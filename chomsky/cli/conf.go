package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// traceKeys are the tracer keys of all chomsky packages.
var traceKeys = []string{
	"chomsky",
	"chomsky.cfg",
	"chomsky.cnf",
	"chomsky.syntax",
	"chomsky.render",
	"chomsky.lr",
	"chomsky.cli",
}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate chomsky configuration with an application-key of 'CHOMSKY' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "CHOMSKY", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		chomsky.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		chomsky.Exit(1)
	}
	chomsky.Configuration = k // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	return konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
}

// logDestination turns a log file name into a tracing destination URL.
// Plain file names are located in logdir, if given.
func logDestination(logname, logdir string) string {
	switch {
	case strings.Contains(logname, ":/"):
		return logname
	case logdir != "" && !filepath.IsAbs(logname) && !strings.ContainsRune(logname, filepath.Separator):
		return "file://" + filepath.Join(logdir, logname)
	}
	return "file://" + logname
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if paths, err := DefaultAppPaths("CHOMSKY"); err == nil {
			konf.Set("tracing.destination", logDestination(logname, paths.LogDir()))
		} else {
			tracing.Errorf("cannot configure paths: %v", err)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	if level := konf.GetString("trace"); level != "" {
		l, err := traceLevel(level)
		if err != nil {
			return err
		}
		for _, key := range traceKeys {
			tracing.Select(key).SetTraceLevel(l)
		}
	}
	tracing.Infof(rootCmd.Long)
	return nil
}

func traceLevel(level string) (tracing.TraceLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", level)
}
