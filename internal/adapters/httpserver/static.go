package httpserver

import (
	"net/http"
	"path"
	"strings"
)

// Static paths are classified by a fixed-priority rule table: redirect the
// root, canonicalize *.html URLs, rewrite clean URLs onto page files, and
// fall back to plain file serving.
type staticRule struct {
	match func(p string) bool
	serve func(s *Server, w http.ResponseWriter, r *http.Request, p string)
}

var staticRules = []staticRule{
	{
		match: func(p string) bool { return p == "" || p == "/" },
		serve: func(s *Server, w http.ResponseWriter, r *http.Request, _ string) {
			http.Redirect(w, r, "/inicio", http.StatusFound)
		},
	},
	{
		// /inicio.html and /html/inicio.html both collapse to /inicio so the
		// same page is not reachable under three URLs.
		match: func(p string) bool { return strings.HasSuffix(p, ".html") },
		serve: func(s *Server, w http.ResponseWriter, r *http.Request, p string) {
			base := path.Base(p)
			clean := "/" + strings.TrimSuffix(base, path.Ext(base))
			http.Redirect(w, r, clean, http.StatusMovedPermanently)
		},
	},
	{
		// Clean URL: /inicio serves frontend/html/inicio.html without
		// changing what the browser shows.
		match: func(p string) bool {
			seg := strings.Trim(p, "/")
			return seg != "" && !strings.Contains(seg, "/") && !strings.Contains(seg, ".")
		},
		serve: func(s *Server, w http.ResponseWriter, r *http.Request, p string) {
			r.URL.Path = "/html/" + strings.Trim(p, "/") + ".html"
			s.files.ServeHTTP(w, r)
		},
	},
	{
		match: func(string) bool { return true },
		serve: func(s *Server, w http.ResponseWriter, r *http.Request, _ string) {
			s.files.ServeHTTP(w, r)
		},
	},
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	for _, rule := range staticRules {
		if rule.match(r.URL.Path) {
			rule.serve(s, w, r, r.URL.Path)
			return
		}
	}
}
