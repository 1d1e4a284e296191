package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ScratchID creates a short deterministic fingerprint for the target, platform
// and mode of one build. Debug and Release builds, and same-named targets from
// different source trees, land in distinct scratch directories.
func ScratchID(t ExtensionTarget, p Platform, m BuildMode) string {
	h := xxhash.New()

	_, _ = h.WriteString(t.Name)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(t.SourceDir)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(m.Config())
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(p.OS)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(strconv.Itoa(p.WordSize))

	return fmt.Sprintf("%016x", h.Sum64())[:8]
}

// ScratchDirName names the directory under the scratch root that holds the
// cmake build tree for one request.
func ScratchDirName(t ExtensionTarget, p Platform, m BuildMode) string {
	return t.Stem() + "-" + strings.ToLower(m.Config()) + "-" + ScratchID(t, p, m)
}
