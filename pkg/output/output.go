package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"
)

var (
	green = "\033[32m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, reset = "", ""
	}
}

// PrintHeader announces the roots about to be scanned.
func PrintHeader(roots []string) {
	fmt.Printf("patching script interpreter paths in %s\n", strings.Join(roots, " "))
}

// PrintPatched reports a rewritten file with its old and new interpreter
// directives.
func PrintPatched(path, oldLine, newLine string) {
	fmt.Printf("%s[PATCHED]%s %s\n", green, reset, path)
	fmt.Printf("          old: %s\n", oldLine)
	fmt.Printf("          new: %s\n", newLine)
}
