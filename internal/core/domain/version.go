package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// phase orders pre-release markers: alpha < beta < release candidate.
type phase int

const (
	phaseAlpha phase = iota
	phaseBeta
	phaseRC
)

// versionPattern accepts the version grammar used by Python packaging:
// optional epoch, dotted release, optional pre/post/dev markers and an
// optional local label. Input is lowercased before matching, so only
// lowercase spellings appear here.
var versionPattern = regexp.MustCompile(
	`^(?:(\d+)!)?` + // 1: epoch
		`(\d+(?:\.\d+)*)` + // 2: release segments
		`(?:[._-]?(a|alpha|b|beta|c|rc|pre|preview)[._-]?(\d*))?` + // 3, 4: pre-release
		`(?:[._-]?(post|rev|r)[._-]?(\d*)|-(\d+))?` + // 5, 6, 7: post-release
		`(?:[._-]?(dev)[._-]?(\d*))?` + // 8, 9: dev-release
		`(?:\+([a-z0-9]+(?:[._-][a-z0-9]+)*))?$`, // 10: local label
)

// Version is a parsed package version. The raw spelling is preserved so
// String round-trips exactly what the manifest said.
type Version struct {
	Epoch   int
	Release []int

	// Pre, Post and Dev are nil when the marker is absent. A present
	// marker with no number counts as zero, as in "1.0rc".
	Pre  *PreRelease
	Post *int
	Dev  *int

	// Local is the label after '+', empty when absent.
	Local string

	raw string
}

// PreRelease is an alpha, beta or release-candidate marker.
type PreRelease struct {
	Phase  phase
	Number int
}

// ParseVersion parses a version string. Comparison keys are normalized
// (alternate spellings like "alpha" or "rev" fold to their canonical
// forms) while the raw text is kept for display and round-tripping.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, zerr.With(ErrInvalidVersion, "reason", "empty version")
	}

	normalized := strings.ToLower(strings.TrimPrefix(s, "v"))
	m := versionPattern.FindStringSubmatch(normalized)
	if m == nil {
		return Version{}, zerr.With(ErrInvalidVersion, "version", s)
	}

	v := Version{raw: s, Local: m[10]}

	if m[1] != "" {
		v.Epoch = atoi(m[1])
	}
	for _, seg := range strings.Split(m[2], ".") {
		v.Release = append(v.Release, atoi(seg))
	}
	if m[3] != "" {
		v.Pre = &PreRelease{Phase: prePhase(m[3]), Number: atoi(m[4])}
	}
	if m[5] != "" {
		n := atoi(m[6])
		v.Post = &n
	}
	if m[7] != "" {
		n := atoi(m[7])
		v.Post = &n
	}
	if m[8] != "" {
		n := atoi(m[9])
		v.Dev = &n
	}

	return v, nil
}

// String returns the version as written in the manifest.
func (v Version) String() string {
	return v.raw
}

// Compare orders two versions: negative when v sorts before o, zero when
// they are equivalent, positive otherwise. Ordering follows the packaging
// rules: epoch, then release segments padded with zeros, then
// dev < alpha < beta < rc < final < post, with the local label as a final
// string tiebreaker.
func (v Version) Compare(o Version) int {
	if v.Epoch != o.Epoch {
		return cmpInt(v.Epoch, o.Epoch)
	}
	if c := cmpRelease(v.Release, o.Release); c != 0 {
		return c
	}
	vPhase, vNum := v.preKey()
	oPhase, oNum := o.preKey()
	if vPhase != oPhase {
		return cmpInt(vPhase, oPhase)
	}
	if vNum != oNum {
		return cmpInt(vNum, oNum)
	}
	if c := cmpInt(orElse(v.Post, math.MinInt), orElse(o.Post, math.MinInt)); c != 0 {
		return c
	}
	if c := cmpInt(orElse(v.Dev, math.MaxInt), orElse(o.Dev, math.MaxInt)); c != 0 {
		return c
	}
	return strings.Compare(v.Local, o.Local)
}

// Equal reports whether the two versions are equivalent under Compare.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// truncatedRelease returns the release with the last segment dropped,
// which is the prefix a compatible release constraint pins.
func (v Version) truncatedRelease() []int {
	if len(v.Release) < 2 {
		return v.Release
	}
	return v.Release[:len(v.Release)-1]
}

// releaseMatchesPrefix reports whether v's release starts with prefix,
// padding v with zeros when it is shorter.
func (v Version) releaseMatchesPrefix(prefix []int) bool {
	for i, want := range prefix {
		got := 0
		if i < len(v.Release) {
			got = v.Release[i]
		}
		if got != want {
			return false
		}
	}
	return true
}

// preKey collapses the pre-release marker into a sortable pair. A version
// with no pre marker sorts after any pre-release of the same release,
// except that a bare dev release sorts before all of them.
func (v Version) preKey() (int, int) {
	if v.Pre != nil {
		return int(v.Pre.Phase), v.Pre.Number
	}
	if v.Post == nil && v.Dev != nil {
		return math.MinInt, 0
	}
	return math.MaxInt, 0
}

func prePhase(s string) phase {
	switch s {
	case "a", "alpha":
		return phaseAlpha
	case "b", "beta":
		return phaseBeta
	default:
		return phaseRC
	}
}

func cmpRelease(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			return cmpInt(av, bv)
		}
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func orElse(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// atoi parses digits already validated by the version pattern; an empty
// capture counts as zero ("1.0rc" means rc0).
func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
