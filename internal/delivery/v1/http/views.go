package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/DRSN-tech/terranova/pkg/price"
	"github.com/jimlawless/whereami"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Имена страниц соответствуют файлам templates/<name>.html.
const (
	pageHome      = "home"
	pageShop      = "shop"
	pageCustomize = "customize"
	pageCart      = "cart"
	pageSummary   = "summary"
	pageThankYou  = "thank_you"
)

var pages = []string{pageHome, pageShop, pageCustomize, pageCart, pageSummary, pageThankYou}

// ViewData — данные страницы вместе с глобальными значениями,
// которые получает каждый шаблон.
type ViewData struct {
	CartCount int
	Now       time.Time
	ShowIntro bool
	Page      any
}

// Views хранит разобранные шаблоны: каждая страница собирается вместе с base.html.
type Views struct {
	templates map[string]*template.Template
	now       func() time.Time
	logger    logger.Logger
}

func NewViews(logger logger.Logger) (*Views, error) {
	funcs := template.FuncMap{
		"price": price.Format,
		"inc":   func(i int) int { return i + 1 },
	}

	v := &Views{
		templates: make(map[string]*template.Template, len(pages)),
		now:       time.Now,
		logger:    logger,
	}

	for _, page := range pages {
		t, err := template.New("base.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/base.html", fmt.Sprintf("templates/%s.html", page))
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		v.templates[page] = t
	}

	return v, nil
}

// Render рендерит страницу в буфер и только потом пишет ответ,
// чтобы ошибка шаблона не оставила клиенту половину страницы.
func (v *Views) Render(w http.ResponseWriter, status int, page string, data ViewData) {
	t, ok := v.templates[page]
	if !ok {
		v.logger.Errorf(e.ErrInternalServerError, "unknown page %q", page)
		writePageError(w, e.ErrInternalServerError)
		return
	}

	if data.Now.IsZero() {
		data.Now = v.now()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		v.logger.Errorf(err, "failed to render %s", page)
		writePageError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
