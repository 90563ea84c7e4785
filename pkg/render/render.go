// Package render produces the HEADER.html and README.html documents placed in
// the distribution tree. Templates are compiled into the binary.
package render

import (
	"embed"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/diststage/diststage/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// HeaderFileName is the name of the generated header document.
const HeaderFileName = "HEADER.html"

// ReadmeFileName is the name of the generated readme document.
const ReadmeFileName = "README.html"

// ReadmeVars parameterizes the README template.
type ReadmeVars struct {
	ArtifactID string
	Version    string
	SiteURL    string
}

// Header renders the HEADER.html document to w.
func Header(w io.Writer) error {
	return execute(w, "header.html.tmpl", nil)
}

// Readme renders the README.html document to w.
func Readme(w io.Writer, vars ReadmeVars) error {
	return execute(w, "readme.html.tmpl", vars)
}

// HeaderFile writes HEADER.html into dir and returns its path.
func HeaderFile(dir string) (string, error) {
	path := filepath.Join(dir, HeaderFileName)
	return path, renderFile(path, Header)
}

// ReadmeFile writes README.html into dir and returns its path.
func ReadmeFile(dir string, vars ReadmeVars) (string, error) {
	path := filepath.Join(dir, ReadmeFileName)
	return path, renderFile(path, func(w io.Writer) error {
		return Readme(w, vars)
	})
}

func renderFile(path string, render func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "unable to create %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = out.Close() }()

	if err := render(out); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "unable to write %s", path).
			WithDetail("path", path)
	}
	return nil
}

func execute(w io.Writer, name string, data interface{}) error {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "unable to parse template %s", name)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return errors.Wrapf(err, errors.ErrRender, "unable to render template %s", name)
	}
	return nil
}
