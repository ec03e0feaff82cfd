package routes

import (
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/benjamingraedig-oviva/cache-control-demo/internal/cachecontrol"
)

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Cache-Control Demo</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
code { background: #f0f0f0; padding: 0.1rem 0.3rem; }
li { margin: 0.4rem 0; }
</style>
</head>
<body>
<h1>Cache-Control Demo</h1>
<p>Each endpoint below demonstrates one caching strategy. Open your browser's
network tab, request an endpoint repeatedly, and watch how the cache treats it.</p>
<ul>
{{range .Strategies}}
<li><a href="/{{.Name}}">/{{.Name}}</a> &mdash; <code>Cache-Control: {{.CacheControl}}</code></li>
{{end}}
</ul>
<h2>Utilities</h2>
<ul>
<li><a href="/update-data">/update-data</a> &mdash; bump counter and version, invalidating the validators</li>
<li><a href="/force-error">/force-error</a> &mdash; simulate an origin failure (always 500)</li>
<li><a href="/api/status">/api/status</a> &mdash; current server state and uptime</li>
</ul>
<p>Instance <code>{{.InstanceID}}</code></p>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := map[string]any{
		"Strategies": cachecontrol.Strategies,
		"InstanceID": s.InstanceID,
	}
	if err := s.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("render index failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
