package paths

import (
	"regexp"
	"strings"
)

// vdfPathRe matches lines like:  "path"  "D:\\SteamLibrary"
var vdfPathRe = regexp.MustCompile(`"path"\s+"([^"]+)"`)

// scanVDFPaths pulls the library paths out of libraryfolders.vdf
// content. VDF escapes backslashes, so D:\\SteamLibrary means
// D:\SteamLibrary.
func scanVDFPaths(content string) []string {
	var paths []string
	for _, line := range strings.Split(content, "\n") {
		m := vdfPathRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		paths = append(paths, strings.ReplaceAll(m[1], `\\`, `\`))
	}
	return paths
}
