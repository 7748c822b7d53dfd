package pagemeta

import (
	"net/url"
	"strings"
)

// DomainName derives a bare, comparison-friendly name from a URL: scheme,
// "www." prefix, path and TLD suffix are stripped. The result is used only
// as a similarity-comparison operand, never as a strict domain parse.
// "https://www.example.com/a/b" yields "example".
func DomainName(rawURL string) string {
	host := rawURL
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.Index(host, "/"); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimPrefix(host, "www.")
	if i := strings.Index(host, "."); i >= 0 {
		host = host[:i]
	}
	return host
}

// IsRootURL reports whether the URL has no path beyond "/".
// Returns EINVALID if the URL is not an http/https URL.
func IsRootURL(rawURL string) (bool, error) {
	u, err := parseHTTPURL(rawURL)
	if err != nil {
		return false, err
	}
	return u.Path == "" || u.Path == "/", nil
}

// SplitURLPath splits a URL into its host and ordered path segments.
// Empty segments (leading/trailing slashes) are dropped.
// Returns EINVALID if the URL is not an http/https URL.
func SplitURLPath(rawURL string) (string, []string, error) {
	u, err := parseHTTPURL(rawURL)
	if err != nil {
		return "", nil, err
	}
	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return u.Host, segments, nil
}

func parseHTTPURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, Errorf(EINVALID, "%q must be an http/https URL", rawURL)
	}
	return u, nil
}
