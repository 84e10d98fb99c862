package domain

import (
	"fmt"
	"strings"
)

const (
	epMarker = "_EP"
	spMarker = "SP"

	// noExtensionPack is the source encoding for "explicitly no extension pack".
	noExtensionPack = "-1"

	defaultServicePack = "0"
)

// Version identifies a FIX protocol revision.
// ExtensionPack is empty when not applicable; "-1" in the source normalises to empty.
type Version struct {
	// Protocol is the lowercased family id ("fix", "fixt").
	Protocol string `json:"fix"`

	// Major is the major version number.
	Major string `json:"major"`

	// Minor is the minor version number.
	Minor string `json:"minor"`

	// ServicePack defaults to "0".
	ServicePack string `json:"sp"`

	// ExtensionPack is omitted when empty.
	ExtensionPack string `json:"ep,omitempty"`
}

// ParseVersion parses a composite version string such as "FIX.5.0SP1_EP97".
// An extension pack embedded in raw takes precedence over ep.
func ParseVersion(raw, ep string) (Version, error) {
	val := strings.TrimSpace(raw)
	if before, after, found := strings.Cut(val, epMarker); found {
		val, ep = before, after
	}

	sp := defaultServicePack
	if before, after, found := strings.Cut(val, spMarker); found {
		val, sp = before, after
	}

	parts := strings.Split(val, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, raw)
	}
	if sp == "" {
		return Version{}, fmt.Errorf("%w: %q: empty service pack", ErrMalformedVersion, raw)
	}

	if ep == noExtensionPack {
		ep = ""
	}

	return Version{
		Protocol:      strings.ToLower(parts[0]),
		Major:         parts[1],
		Minor:         parts[2],
		ServicePack:   sp,
		ExtensionPack: ep,
	}, nil
}

// VersionFromAttrs reads the split encoding {prefix} and {prefix}EP
// (e.g. added="FIX.5.0SP1" addedEP="97").
// Returns nil and no error when {prefix} is absent.
func VersionFromAttrs(attrs map[string]string, prefix string) (*Version, error) {
	raw, ok := attrs[prefix]
	if !ok {
		return nil, nil
	}
	v, err := ParseVersion(raw, attrs[prefix+"EP"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", prefix, err)
	}
	return &v, nil
}

// String returns the composite encoding, e.g. "FIX.5.0SP2_EP254".
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(v.Protocol))
	b.WriteString(".")
	b.WriteString(v.Major)
	b.WriteString(".")
	b.WriteString(v.Minor)
	if v.ServicePack != "" && v.ServicePack != defaultServicePack {
		b.WriteString(spMarker)
		b.WriteString(v.ServicePack)
	}
	if v.ExtensionPack != "" {
		b.WriteString(epMarker)
		b.WriteString(v.ExtensionPack)
	}
	return b.String()
}

// Attrs returns the split attribute encoding of v under prefix.
// The "{prefix}EP" attribute is set to "-1" when there is no extension pack.
func (v Version) Attrs(prefix string) map[string]string {
	clone := v
	clone.ExtensionPack = ""
	ep := v.ExtensionPack
	if ep == "" {
		ep = noExtensionPack
	}
	return map[string]string{
		prefix:        clone.String(),
		prefix + "EP": ep,
	}
}

// Filename derives the canonical output filename, e.g. "fix-5-0-sp2.json".
func (v Version) Filename(ext string) string {
	name := fmt.Sprintf("%s-%s-%s", v.Protocol, v.Major, v.Minor)
	if v.ServicePack != "" && v.ServicePack != defaultServicePack {
		name += "-sp" + v.ServicePack
	}
	return name + "." + ext
}

// Links returns public dictionary pages describing this version.
func (v Version) Links() Links {
	sp := v.ServicePack
	if sp == "" {
		sp = defaultServicePack
	}

	onixsFamily := v.Protocol
	if onixsFamily == "fix" {
		onixsFamily = ""
	}

	fixopaediaSP := ""
	if sp != defaultServicePack {
		fixopaediaSP = "-sp" + sp
	}

	return Links{
		OnixS:      fmt.Sprintf("https://www.onixs.biz/fix-dictionary/%s%s.%s.SP%s/index.html", onixsFamily, v.Major, v.Minor, sp),
		Fixipe:     fmt.Sprintf("https://fixipe.com/#/explore/%s/%s.%s/servicepack/%s", v.Protocol, v.Major, v.Minor, sp),
		Fixopaedia: fmt.Sprintf("https://btobits.com/fixopaedia/fixdict%s%s%s/index.html", v.Major, v.Minor, fixopaediaSP),
	}
}

// Links point to third-party dictionaries for a protocol version.
type Links struct {
	OnixS      string `json:"onixsDictionary"`
	Fixipe     string `json:"fixipeDictionary"`
	Fixopaedia string `json:"fixopaediaDictionary"`
}
