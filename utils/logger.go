package utils

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// NewLogger returns a logfmt logger writing to w, filtered at lvl (debug, info, warn, error)
func NewLogger(w io.Writer, lvl string) (log.Logger, error) {
	var option level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		option = level.AllowDebug()
	case "", "info":
		option = level.AllowInfo()
	case "warn":
		option = level.AllowWarn()
	case "error":
		option = level.AllowError()
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "[NewLogger] unknown log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, option)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}
