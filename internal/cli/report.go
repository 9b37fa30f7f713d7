package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/confhaus/confval/pkg/style"
	"github.com/confhaus/confval/pkg/types"
	"github.com/confhaus/confval/pkg/validation"
)

// renderResult renders a validation result for the terminal. Styling is
// applied only when out is a TTY.
func renderResult(result *validation.Result, out *os.File) string {
	styled := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())

	var b strings.Builder

	title := result.URI
	if styled {
		title = style.TitleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	if result.Valid() {
		ok := "✓ all values valid"
		if styled {
			ok = style.SuccessStyle.Render(ok)
		}
		b.WriteString(ok)
		b.WriteString("\n")
		return b.String()
	}

	for _, msg := range result.Messages {
		mark := "  ✗ "
		parameter := msg.Parameter
		key := fmt.Sprintf("(%s)", msg.Key.Key)
		if styled {
			mark = style.ErrorStyle.Render(mark)
			parameter = style.ParameterStyle.Render(parameter)
			key = style.MutedStyle.Render(key)
		}
		fmt.Fprintf(&b, "%s%s: %s %s\n", mark, parameter, msg.Message, key)
	}

	summary := fmt.Sprintf("%d violation(s)", len(result.Messages))
	if styled {
		summary = style.ErrorStyle.Render(summary)
	}
	b.WriteString(summary)
	b.WriteString("\n")
	return b.String()
}

// describedForm converts a description into the TOML file layout for output
func describedForm(desc *types.ConfigDescription) map[string]interface{} {
	parameters := make([]map[string]interface{}, 0, len(desc.Parameters))
	for _, p := range desc.Parameters {
		entry := map[string]interface{}{
			"name": p.Name,
			"type": p.Kind.String(),
		}
		if p.Required {
			entry["required"] = true
		}
		if p.Min != nil {
			entry["min"] = p.Min.String()
		}
		if p.Max != nil {
			entry["max"] = p.Max.String()
		}
		if p.Pattern != "" {
			entry["pattern"] = p.Pattern
		}
		if len(p.Options) > 0 {
			entry["options"] = p.Options
		}
		if p.Multiple {
			entry["multiple"] = true
		}
		if p.MultipleLimit > 0 {
			entry["multiple_limit"] = p.MultipleLimit
		}
		parameters = append(parameters, entry)
	}

	return map[string]interface{}{
		"uri":       desc.URI,
		"parameter": parameters,
	}
}
