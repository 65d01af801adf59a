package config

import (
	"os"
	"strings"
)

// Hostname returns the local hostname formatted for the host tag.
func Hostname() string {
	full, err := os.Hostname()
	if err != nil {
		return "NULL"
	}

	return FormatHostname(full)
}

// FormatHostname strips the domain part and capitalizes the first
// letter, the form the host tag has always carried.
func FormatHostname(full string) string {
	host, _, _ := strings.Cut(full, ".")
	if host == "" {
		return host
	}

	if host[0] >= 'a' && host[0] <= 'z' {
		host = string(host[0]-'a'+'A') + host[1:]
	}

	return host
}
