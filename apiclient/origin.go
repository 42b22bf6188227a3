package apiclient

import (
	"strings"

	"github.com/serhatcn/apikit/logger"
)

// resolveOrigin picks the base origin for the given execution context.
//
// Server runtimes prefer the server-only base and fall back to the public
// one; browser runtimes only ever see the public base. An empty result means
// "use same-origin" and is resolved to a placeholder by buildURL. The chosen
// value is stripped of trailing slashes so path concatenation never doubles
// a separator.
//
// A non-empty value without an http(s) scheme is a configuration warning,
// not an error: it is logged and returned unchanged, and the caller observes
// the consequences as URL construction or request failures.
func resolveOrigin(exec ExecutionContext, serverBase, publicBase string, log *logger.Logger) string {
	var origin string
	if exec.IsServer() {
		origin = serverBase
		if origin == "" {
			origin = publicBase
		}
	} else {
		origin = publicBase
	}

	origin = strings.TrimRight(origin, "/")

	if origin != "" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
		log.Warn("base origin does not look like an absolute URL", logger.Fields(
			"origin", origin,
			"runtime", exec.Runtime.String(),
		))
	}

	return origin
}
