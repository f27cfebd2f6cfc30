package deal

import "github.com/sanjanb/k-tech-nain/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
