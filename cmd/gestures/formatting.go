package gestures

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gestures/pkg/errors"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !isTerminal(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}

// PrintError writes err to w with an error prefix. The offending token or
// field, when the error carries one, goes on a second line.
func PrintError(w io.Writer, err error) {
	printer := pterm.Error.WithWriter(w)
	if !isTerminal(w) {
		printer = printer.WithPrefix(pterm.Prefix{Text: "ERROR", Style: pterm.NewStyle()}).
			WithMessageStyle(pterm.NewStyle())
	}
	printer.Println(err.Error())

	for _, key := range []string{errors.DetailToken, errors.DetailField, errors.DetailRemainder} {
		if v, ok := errors.GetDetail(err, key); ok {
			fmt.Fprintf(w, "  %s: %s\n", key, strconv.Quote(v))
			return
		}
	}
}
