package setup

import (
	"html/template"
	"io/fs"
	"log"
	"path"
	"path/filepath"

	"github.com/traden-dev/traden/frontend/internal/apiclient"
	"github.com/traden-dev/traden/frontend/internal/handler"
	"github.com/traden-dev/traden/frontend/internal/markdown"
	"github.com/traden-dev/traden/frontend/internal/state"
	"github.com/traden-dev/traden/frontend/web"
	"github.com/traden-dev/traden/shared/config"
)

const (
	baseTemplate = "base.html"
	tmplPath     = "templates"
)

type Dependencies struct {
	Handler *handler.Handler
	Forum   *state.Forum
	Public  config.Public
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	templates := mustLoadTemplates(web.Templates)
	textProcessor := markdown.New()
	apiClient := apiclient.New(cfg.Public.Web.ApiBaseURL)
	forum := state.NewForum(apiClient)

	h := handler.New(templates, textProcessor, forum)

	return &Dependencies{
		Handler: h,
		Forum:   forum,
		Public:  cfg.Public,
	}, nil
}

// mustLoadTemplates parses every page template against the shared base layout.
func mustLoadTemplates(tmplFS fs.FS) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := fs.ReadDir(tmplFS, tmplPath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate {
			templates[f.Name()] = template.Must(template.New(baseTemplate).ParseFS(
				tmplFS,
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
			))
		}
	}
	return templates
}
