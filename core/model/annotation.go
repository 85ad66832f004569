package model

import (
	"regexp"
	"strings"
)

var annotationPattern = regexp.MustCompile(`<([^<>]*)>`)

// ExtractAnnotations strips `<key:value>`/`<key>` markers and a trailing
// `#comment` from a raw cell string. It returns the remaining text (the
// item's raw name), the extracted parameters, and the comment text.
//
// A `#` only starts a comment when it occurs after the last `}` in the
// string, so hashes inside a bracketed registry suffix are left alone.
func ExtractAnnotations(raw string) (name string, parms *ParmDict, comment string) {
	parms = NewParmDict()
	s := raw

	for _, m := range annotationPattern.FindAllStringSubmatch(s, -1) {
		token := strings.TrimSpace(m[1])
		if token == "" {
			continue
		}
		if key, value, found := strings.Cut(token, ":"); found {
			parms.Set(strings.TrimSpace(key), strings.TrimSpace(value))
		} else {
			parms.Set(token, "True")
		}
	}
	s = annotationPattern.ReplaceAllString(s, "")

	searchFrom := strings.LastIndex(s, "}") + 1
	if hash := strings.Index(s[searchFrom:], "#"); hash >= 0 {
		comment = strings.TrimSpace(s[searchFrom+hash+1:])
		s = s[:searchFrom+hash]
	}

	return strings.TrimSpace(s), parms, comment
}

// DisplayNameOf strips a bracketed `{...}` registry-disambiguation suffix
// from an item name:
//
//	" Text "         -> "Text"
//	" Text {stuff} " -> "Text"
//	" {stuff} "      -> ""
func DisplayNameOf(name string) string {
	name = strings.TrimSpace(name)
	loc := strings.Index(name, "{")
	if loc == -1 {
		return name
	}
	if loc == 0 {
		return ""
	}
	return strings.TrimSpace(name[:loc])
}
