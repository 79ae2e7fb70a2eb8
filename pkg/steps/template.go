package steps

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/curry"
)

// Template renders the value through a text/template with the sprig function
// map, e.g. "{{ . | trim | lower }}". The value is the template's dot.
func Template(text string) (rop.Step[string], error) {
	tpl, err := template.New("step").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return curry.Partial2(render, tpl), nil
}

func render(tpl *template.Template, email string) rop.Result[string] {
	var out strings.Builder
	if err := tpl.Execute(&out, email); err != nil {
		return rop.Fail[string](rop.Wrap(err, fmt.Sprintf("Template step failed on '%s'", email)))
	}
	return rop.Success(out.String())
}
