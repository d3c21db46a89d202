package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath expands a leading ~ and environment variables in p.
// On Windows it also accepts ~\ and %VAR% references.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		expanded = expandWindowsEnv(expanded)
	}

	rest, ok := homeRelative(expanded)
	if !ok {
		return expanded
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return expanded
	}
	if rest == "" {
		return home
	}
	return filepath.Join(home, rest)
}

// homeRelative reports whether p starts at the home directory and returns
// the remainder.
func homeRelative(p string) (string, bool) {
	switch {
	case p == "~":
		return "", true
	case strings.HasPrefix(p, "~/"):
		return p[2:], true
	case runtime.GOOS == "windows" && strings.HasPrefix(p, `~\`):
		return p[2:], true
	}
	return "", false
}

// expandWindowsEnv replaces %VAR% references. Unknown variables are left
// untouched.
func expandWindowsEnv(p string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(p, '%')
		if start < 0 {
			b.WriteString(p)
			return b.String()
		}
		end := strings.IndexByte(p[start+1:], '%')
		if end < 0 {
			b.WriteString(p)
			return b.String()
		}
		b.WriteString(p[:start])
		key := p[start+1 : start+1+end]
		val, ok := os.LookupEnv(key)
		switch {
		case key == "":
			b.WriteByte('%')
			p = p[start+1:]
			continue
		case ok:
			b.WriteString(val)
		default:
			b.WriteString("%" + key + "%")
		}
		p = p[start+end+2:]
	}
}
