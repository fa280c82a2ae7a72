package output

import (
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/mortcalc/mortcalc/internal/domain"
)

// EmailFormatter renders the HTML body for the email export. Delivery is the
// caller's concern; this produces the document only.
type EmailFormatter struct {
	tmpl *template.Template
}

// NewEmailFormatter creates an email body formatter.
func NewEmailFormatter() *EmailFormatter {
	return &EmailFormatter{tmpl: template.Must(template.New("email").Parse(emailTemplate))}
}

type emailRow struct {
	Label string
	Value string
}

type emailData struct {
	Name     string
	Summary  string
	Rows     []emailRow
	Insights []string
	Inputs   []emailRow
}

// Write renders the HTML email body for a result, with the inputs echoed in
// a footer table for the recipient's records.
func (ef *EmailFormatter) Write(w io.Writer, name string, res *domain.Result, inputs map[string]string) error {
	if res == nil {
		return fmt.Errorf("no result to export")
	}
	data := emailData{Name: name, Summary: res.Summary, Insights: res.Insights}
	for _, d := range res.Details {
		data.Rows = append(data.Rows, emailRow{Label: d.Label, Value: formatDetail(d)})
	}
	keys := make([]string, 0, len(inputs))
	for key := range inputs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		data.Inputs = append(data.Inputs, emailRow{Label: TitleCase(key), Value: inputs[key]})
	}
	return ef.tmpl.Execute(w, data)
}

const emailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2933; max-width: 600px; margin: 0 auto;">
  <h2 style="border-bottom: 2px solid #2563eb; padding-bottom: 8px;">{{.Name}}</h2>
  <p style="font-size: 15px;">{{.Summary}}</p>
  <table style="width: 100%; border-collapse: collapse;">
    {{range .Rows}}<tr>
      <td style="padding: 6px 8px; border-bottom: 1px solid #e5e7eb;">{{.Label}}</td>
      <td style="padding: 6px 8px; border-bottom: 1px solid #e5e7eb; text-align: right; font-weight: bold;">{{.Value}}</td>
    </tr>{{end}}
  </table>
  {{if .Insights}}<ul style="font-size: 14px; color: #374151;">
    {{range .Insights}}<li style="margin-bottom: 4px;">{{.}}</li>{{end}}
  </ul>{{end}}
  {{if .Inputs}}<p style="font-size: 12px; color: #6b7280;">Based on your inputs:</p>
  <table style="width: 100%; border-collapse: collapse; font-size: 12px; color: #6b7280;">
    {{range .Inputs}}<tr><td style="padding: 2px 8px;">{{.Label}}</td><td style="padding: 2px 8px; text-align: right;">{{.Value}}</td></tr>{{end}}
  </table>{{end}}
</body>
</html>
`
