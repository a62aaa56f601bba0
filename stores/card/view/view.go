package view

import (
	"bytes"
	"embed"
	"html"
	"html/template"
	"io"

	"golang.org/x/xerrors"

	"github.com/x-xyz/nftcard/domain/card"
)

const cardTemplate = "card"

//go:embed card.tmpl
var templates embed.FS

// srcAttr emits src verbatim apart from attribute text escaping. Image sources
// are commonly ipfs://, ar:// or data: URIs, which the URL filter of
// html/template would replace.
func srcAttr(src string) template.HTMLAttr {
	return template.HTMLAttr(`src="` + html.EscapeString(src) + `"`)
}

type renderer struct {
	tmpl *template.Template
}

// New parses the embedded card template. The parsed template is read-only and
// safe to share between goroutines.
func New() (card.Renderer, error) {
	tmpl, err := template.New("card.tmpl").
		Funcs(template.FuncMap{"srcAttr": srcAttr}).
		ParseFS(templates, "card.tmpl")
	if err != nil {
		return nil, xerrors.Errorf("parse card template: %w", err)
	}
	return &renderer{tmpl: tmpl}, nil
}

// MustNew panics when the embedded template can't be parsed
func MustNew() card.Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *renderer) Render(v card.View) ([]byte, error) {
	buf := bytes.Buffer{}
	if err := r.Write(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *renderer) Write(w io.Writer, v card.View) error {
	if err := r.tmpl.ExecuteTemplate(w, cardTemplate, v); err != nil {
		return xerrors.Errorf("execute card template: %w", err)
	}
	return nil
}
