package service

import (
	"fmt"
	"regexp"
	"strings"
)

var codigoPattern = regexp.MustCompile(`(?i)\b(KIT|LLAVE|PROYECTOR)\s*#\s*(\d+)`)

// DetectCodigos finds "KIT #n" style references in free text and returns them
// normalized to the stored codigo form, deduplicated in order of appearance.
func DetectCodigos(text string) []string {
	matches := codigoPattern.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		c := fmt.Sprintf("%s #%s", strings.ToUpper(m[1]), strings.TrimLeft(m[2], "0"))
		if strings.HasSuffix(c, "#") {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
