package openrouter

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

const (
	defaultBaseURL = "https://openrouter.ai"
	chatPath       = "/api/v1/chat/completions"
)

type hostSet map[string]struct{}

func (h hostSet) has(host string) bool {
	_, ok := h[host]
	return ok
}

var defaultHosts = hostSet{
	"openrouter.ai":     {},
	"api.openrouter.ai": {},
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return strings.TrimRight(baseURL, "/")
}

// ValidateBaseURL accepts an absolute https URL whose host is allow-listed.
// Plain http is accepted only for an allow-listed loopback host, which covers
// local gateways. allowedHosts replaces the default OpenRouter hosts.
func ValidateBaseURL(baseURL string, allowedHosts []string) error {
	_, err := parseBaseURL(baseURL, parseHosts(allowedHosts))
	return err
}

func parseBaseURL(raw string, allowed hostSet) (*url.URL, error) {
	raw = normalizeBaseURL(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("openrouter base url: %w", err)
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case !u.IsAbs() || host == "":
		return nil, fmt.Errorf("openrouter base url %q: absolute URL with host is required", raw)
	case u.User != nil:
		return nil, fmt.Errorf("openrouter base url %q: userinfo is not allowed", raw)
	case u.RawQuery != "" || u.Fragment != "":
		return nil, fmt.Errorf("openrouter base url %q: query and fragment are not allowed", raw)
	case !allowed.has(host):
		return nil, fmt.Errorf("openrouter base url %q: host %q is not in OPENROUTER_ALLOWED_HOSTS", raw, host)
	}

	switch strings.ToLower(u.Scheme) {
	case "https":
	case "http":
		if !isLoopback(host) {
			return nil, fmt.Errorf("openrouter base url %q: https is required for non-loopback hosts", raw)
		}
	default:
		return nil, fmt.Errorf("openrouter base url %q: unsupported scheme %q", raw, u.Scheme)
	}
	return u, nil
}

// parseHosts accepts bare hosts or URLs; ports and paths are dropped.
func parseHosts(list []string) hostSet {
	out := hostSet{}
	for _, h := range list {
		v := strings.ToLower(strings.TrimSpace(h))
		if v == "" {
			continue
		}
		if strings.Contains(v, "://") {
			if u, err := url.Parse(v); err == nil {
				v = u.Hostname()
			}
		} else if host, _, err := net.SplitHostPort(v); err == nil {
			v = host
		}
		v = strings.Trim(v, "/[]")
		if v != "" {
			out[v] = struct{}{}
		}
	}
	if len(out) == 0 {
		return defaultHosts
	}
	return out
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func chatURL(baseURL string) string {
	return normalizeBaseURL(baseURL) + chatPath
}
