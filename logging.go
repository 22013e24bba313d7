package filler

import (
	"github.com/icco/gutil/logging"
	"go.uber.org/zap"
)

const (
	// Service is the name of this service.
	Service = "filler"
)

var (
	log = logging.Must(logging.NewLogger(Service))
)

// SetLogger replaces the package logger. A nil logger silences the package.
// Terminal front-ends call this before the first match so that log lines do
// not land on the screen they are drawing.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	log = l
}
