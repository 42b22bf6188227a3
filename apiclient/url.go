package apiclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// localPlaceholder is the origin substituted for same-origin requests in
// server runtimes, where no page origin exists.
const localPlaceholder = "http://localhost"

// buildURL combines origin, path, and query into one absolute URL string.
//
// The path always gains a single leading slash before concatenation. An
// empty origin resolves to the local placeholder in server runtimes and to
// the page's own origin in browser runtimes. Query entries with nil values
// are omitted; everything else is stringified and percent-encoded. Duplicate
// keys cannot occur (map semantics — last write wins).
func buildURL(origin string, exec ExecutionContext, path string, query map[string]any) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	base := origin
	if base == "" {
		if exec.IsServer() {
			base = localPlaceholder
		} else {
			base = strings.TrimRight(exec.PageOrigin, "/")
		}
	}

	u, err := url.Parse(base + path)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("build url: %v", err))
	}

	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			if isNilValue(v) {
				continue
			}
			q.Set(k, fmt.Sprint(v))
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// isNilValue reports whether v is nil, including typed nils boxed in an
// interface (nil pointers, maps, slices).
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
