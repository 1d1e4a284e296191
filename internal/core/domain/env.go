package domain

import "strings"

// BuildEnv derives the child environment for both cmake phases from the given
// base environment. CXXFLAGS is reassigned to its previous value followed by
// the VERSION_INFO define; the previous value always survives as a prefix.
// The base slice is never modified.
func BuildEnv(base []string, version string) []string {
	env := make([]string, 0, len(base)+1)
	replaced := false

	for _, entry := range base {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == "CXXFLAGS" && !replaced {
			env = append(env, "CXXFLAGS="+appendVersionInfo(v, version))
			replaced = true
			continue
		}
		env = append(env, entry)
	}

	if !replaced {
		env = append(env, "CXXFLAGS="+appendVersionInfo("", version))
	}

	return env
}

// appendVersionInfo attaches the VERSION_INFO define to existing flags. The
// quotes are backslash-escaped so the compiler receives a string literal.
func appendVersionInfo(prev, version string) string {
	return prev + ` -DVERSION_INFO=\"` + version + `\"`
}
