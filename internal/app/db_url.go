package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL fills lib/pq connection parameters the service relies on
// without overriding values already present in the URL.
func normalizeDBURL(raw string, disablePreparedBinary bool, applicationName string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	changed := false
	if query.Get("binary_parameters") == "" {
		value := "yes"
		if disablePreparedBinary {
			value = "no"
		}
		query.Set("binary_parameters", value)
		changed = true
	}
	if name := strings.TrimSpace(applicationName); name != "" && query.Get("application_name") == "" {
		query.Set("application_name", name)
		changed = true
	}
	if !changed {
		return raw
	}

	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromURL reads the database name from a postgres:// URL or a
// key=value DSN. Unknown shapes yield "".
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(raw) {
		if key, value, ok := strings.Cut(field, "="); ok && key == "dbname" {
			return strings.Trim(value, `"' `)
		}
	}
	return ""
}
