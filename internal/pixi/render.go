package pixi

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var sections = template.Must(
	template.New("pixi").
		Funcs(FuncMap()).
		Option("missingkey=error").
		ParseFS(templatesFS, "templates/*.tmpl"),
)

// Section renders one table group of the manifest.
type Section func(ctx *Context) (string, error)

// Sections lists the manifest sections in output order.
var Sections = []Section{
	RenderHeader,
	RenderProject,
	RenderDependencies,
	RenderTasks,
	RenderSmithyFeature,
	RenderEnvironments,
}

// Render produces the complete pixi.toml for ctx. Sections are separated by
// a blank line. Nothing is returned unless every section renders.
func Render(ctx *Context) (string, error) {
	if err := ctx.Validate(); err != nil {
		return "", err
	}

	parts := make([]string, 0, len(Sections))
	for _, section := range Sections {
		out, err := section(ctx)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}

	return strings.Join(parts, "\n"), nil
}

// RenderHeader renders the generated-file comment block.
func RenderHeader(ctx *Context) (string, error) {
	return executeSection("header.tmpl", ctx)
}

// RenderProject renders the [project] table.
func RenderProject(ctx *Context) (string, error) {
	return executeSection("project.tmpl", ctx)
}

// RenderDependencies renders the [dependencies] table in BuildToolDeps order.
func RenderDependencies(ctx *Context) (string, error) {
	return executeSection("dependencies.tmpl", ctx)
}

// RenderTasks renders the [tasks] table: the global tasks followed by
// build, debug and inspect tasks for every variant.
func RenderTasks(ctx *Context) (string, error) {
	return executeSection("tasks.tmpl", ctx)
}

// RenderSmithyFeature renders the smithy feature dependencies and tasks.
func RenderSmithyFeature(ctx *Context) (string, error) {
	return executeSection("smithy.tmpl", ctx)
}

// RenderEnvironments renders the [environments] table.
func RenderEnvironments(ctx *Context) (string, error) {
	return executeSection("environments.tmpl", ctx)
}

func executeSection(name string, ctx *Context) (string, error) {
	if ctx == nil {
		return "", missingField("context")
	}

	var b strings.Builder
	if err := sections.ExecuteTemplate(&b, name, ctx); err != nil {
		return "", fmt.Errorf("render %s: %w", strings.TrimSuffix(name, ".tmpl"), err)
	}
	return b.String(), nil
}

// RenderTemplate renders a caller-supplied template against ctx.Values().
// Referencing a variable that is not in the context is an error.
func RenderTemplate(name, text string, ctx *Context) (string, error) {
	if err := ctx.Validate(); err != nil {
		return "", err
	}

	tmpl, err := template.New(name).
		Funcs(FuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, ctx.Values()); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return b.String(), nil
}

// FuncMap returns the sprig text functions plus the TOML helpers.
func FuncMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["toml"] = TOMLString
	funcs["tomlKey"] = TOMLKey
	funcs["tomlArray"] = TOMLArray
	return funcs
}
