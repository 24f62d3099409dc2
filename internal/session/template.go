package session

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// renderMessage interpolates live player state into show_message text.
// Authors can reference {{.Score}}, {{.Items}}, {{.ElapsedMs}}, and
// {{.Vars.<name>}}, plus the sprig function set. A malformed template
// degrades to the raw string: message rendering must never take down a
// tick.
func renderMessage(msg string, st *PlayerState) string {
	if !strings.Contains(msg, "{{") {
		return msg
	}

	tmpl, err := template.New("message").Funcs(sprig.FuncMap()).Parse(msg)
	if err != nil {
		return msg
	}

	data := map[string]any{
		"Score":     st.Score,
		"Items":     st.ItemCount(),
		"ElapsedMs": st.ElapsedMs,
		"Vars":      st.Variables,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return msg
	}
	return buf.String()
}
