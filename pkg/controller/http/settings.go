package http

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/alertpost/pkg/domain/model/author"
	"github.com/secmon-lab/alertpost/pkg/domain/model/errs"
	"github.com/secmon-lab/alertpost/pkg/domain/model/post"
	"github.com/secmon-lab/alertpost/pkg/domain/model/setting"
	"github.com/secmon-lab/alertpost/pkg/utils/safe"
)

type settingsPage struct {
	Route      string
	OptionName string
	Saved      bool
	Config     *setting.Config
	Authors    []*author.Author
	Posts      []*post.Post
}

func settingsPageHandler(uc UseCase, route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cfg, err := uc.GetSettings(ctx)
		if err != nil {
			handleError(w, r, err)
			return
		}
		authors, err := uc.ListEligibleAuthors(ctx)
		if err != nil {
			handleError(w, r, err)
			return
		}
		posts, err := uc.ListRecentAlerts(ctx, 0)
		if err != nil {
			handleError(w, r, err)
			return
		}

		page := settingsPage{
			Route:      route,
			OptionName: setting.OptionName,
			Saved:      r.URL.Query().Get("saved") == "true",
			Config:     cfg,
			Authors:    authors,
			Posts:      posts,
		}

		var buf bytes.Buffer
		if err := settingsTemplate.Execute(&buf, page); err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to render settings page", goerr.T(errs.TagInternal)))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		safe.Write(ctx, w, buf.Bytes())
	}
}

// settingsSaveHandler reads fields named like everbridge_opts[username] and
// passes them to the sanitize hook of the settings.
func settingsSaveHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to parse form", goerr.T(errs.TagInvalidRequest)))
			return
		}

		if _, err := uc.SaveSettings(r.Context(), optionFields(r.PostForm)); err != nil {
			handleError(w, r, err)
			return
		}

		http.Redirect(w, r, "/admin/settings?saved=true", http.StatusSeeOther)
	}
}

func optionFields(form map[string][]string) map[string]string {
	prefix := setting.OptionName + "["
	input := make(map[string]string)
	for key, values := range form {
		if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, "]") || len(values) == 0 {
			continue
		}
		field := strings.TrimSuffix(strings.TrimPrefix(key, prefix), "]")
		input[field] = values[0]
	}
	return input
}
