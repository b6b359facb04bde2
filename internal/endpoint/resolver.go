// Package endpoint picks the prediction URL for the origin the form was loaded from.
package endpoint

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// RelativePath is used when the backend itself serves the form.
	RelativePath = "/predict"
	// BackendURL is the standalone backend address used for any other origin.
	BackendURL = "http://127.0.0.1:5000/predict"

	backendPort = ":5000"
)

// Resolver chooses between the same-origin path and a standalone backend
type Resolver struct {
	// BackendURL is the absolute prediction URL of the standalone backend.
	BackendURL string
	// Port is the ":port" an origin must contain to count as the backend itself.
	Port string
}

// Default targets the local development backend on port 5000
var Default = Resolver{BackendURL: BackendURL, Port: backendPort}

// NewResolver builds a resolver for backendURL, taking the port from it.
// An empty backendURL gives Default.
func NewResolver(backendURL string) (Resolver, error) {
	if backendURL == "" {
		return Default, nil
	}
	u, err := url.Parse(backendURL)
	if err != nil {
		return Resolver{}, fmt.Errorf("parsing backend URL %q: %w", backendURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return Resolver{}, fmt.Errorf("backend URL %q is not absolute", backendURL)
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return Resolver{BackendURL: backendURL, Port: ":" + port}, nil
}

// Resolve returns the prediction endpoint for origin using Default
func Resolve(origin string) string {
	return Default.Resolve(origin)
}

// Target resolves origin using Default and makes the result absolute
func Target(origin string) (string, error) {
	return Default.Target(origin)
}

// Resolve returns the prediction endpoint for origin.
// Local files ("null" or file:) and origins on another port use the absolute
// backend address; an origin on the backend's own port stays same-origin.
func (r Resolver) Resolve(origin string) string {
	if origin == "null" || strings.HasPrefix(origin, "file:") {
		return r.BackendURL
	}
	if !strings.Contains(origin, r.Port) {
		return r.BackendURL
	}
	return RelativePath
}

// Target resolves the endpoint for origin and makes it absolute so an HTTP
// client can dial it.
func (r Resolver) Target(origin string) (string, error) {
	resolved := r.Resolve(origin)
	if !strings.HasPrefix(resolved, "/") {
		return resolved, nil
	}

	base, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("parsing origin %q: %w", origin, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return "", fmt.Errorf("origin %q is not an absolute http origin", origin)
	}
	return base.ResolveReference(&url.URL{Path: resolved}).String(), nil
}

// Root strips the path from a prediction URL, leaving the backend root that
// answers health checks.
func Root(target string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parsing target %q: %w", target, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("target %q is not absolute", target)
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}).String(), nil
}
