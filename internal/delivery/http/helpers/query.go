package helpers

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"eventlisting/internal/domain"
)

// PathInt64 parses the named path value as a positive ID.
func PathInt64(r *http.Request, name string) (int64, error) {
	s := r.PathValue(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 1 {
		return 0, domain.NewValidationError("%s must be a positive integer, got %q", name, s)
	}
	return v, nil
}

// QueryInt64List parses a list parameter given either repeated (?c=1&c=2) or comma separated (?c=1,2).
func QueryInt64List(r *http.Request, name string) ([]int64, error) {
	var out []int64
	for _, raw := range r.URL.Query()[name] {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, domain.NewValidationError("%s must contain integers, got %q", name, s)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// QueryBool parses an optional boolean parameter. A missing parameter yields nil.
func QueryBool(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, domain.NewValidationError("%s must be true or false, got %q", name, s)
	}
	return &v, nil
}

// ClientIP returns the remote address of the request without the port.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
