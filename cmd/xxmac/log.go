package main

import (
	"io"

	"github.com/op/go-logging"
)

//nolint:gochecknoglobals // module logger
var log = logging.MustGetLogger("xxmac")

// setupLogging sends log records to w. Only warnings and above are logged unless verbose is set.
func setupLogging(w io.Writer, verbose bool) {
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(w, "", 0),
		logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`),
	)

	leveled := logging.AddModuleLevel(backend)
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}

	logging.SetBackend(leveled)
}
