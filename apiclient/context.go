package apiclient

// Runtime identifies the execution environment a client runs in.
type Runtime int

const (
	// RuntimeServer is a server-side execution environment.
	RuntimeServer Runtime = iota
	// RuntimeBrowser is a browser-like execution environment with a page origin.
	RuntimeBrowser
)

// String returns the runtime name.
func (r Runtime) String() string {
	switch r {
	case RuntimeServer:
		return "server"
	case RuntimeBrowser:
		return "browser"
	default:
		return "unknown"
	}
}

// ExecutionContext is an injected capability describing where the client
// runs. It replaces any global runtime detection: origin resolution and URL
// building consult only this value.
type ExecutionContext struct {
	// Runtime selects server or browser semantics.
	Runtime Runtime
	// PageOrigin is the origin of the current page, used as the same-origin
	// fallback in browser runtimes (e.g. "https://app.example.com").
	PageOrigin string
}

// IsServer reports whether the context is a server-side environment.
func (e ExecutionContext) IsServer() bool {
	return e.Runtime == RuntimeServer
}

// ServerContext returns an execution context for server-side dispatch.
func ServerContext() ExecutionContext {
	return ExecutionContext{Runtime: RuntimeServer}
}

// BrowserContext returns an execution context for browser-side dispatch
// with the given page origin.
func BrowserContext(pageOrigin string) ExecutionContext {
	return ExecutionContext{Runtime: RuntimeBrowser, PageOrigin: pageOrigin}
}
