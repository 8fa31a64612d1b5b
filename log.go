package streamcodec

import log "github.com/sirupsen/logrus"

// logger is the package-level structured logger. It is only consulted for
// diagnostic, non-decision logging (malformed input is always resolved by
// replacement, never logged on the hot path, to keep streaming sessions
// allocation-cheap).
var logger = log.StandardLogger()

// SetLogger replaces the package-level logger, e.g. so an embedding
// application can route streamcodec's diagnostics through its own
// logrus instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.StandardLogger()
	}
	logger = l
}

func logUnknownEncoding(name string) {
	logger.Debugf("unknown encoding requested: %q", name)
}
