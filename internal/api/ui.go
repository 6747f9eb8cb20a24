package api

import (
	"html/template"
	"net/http"

	"github.com/nfujimoto/pdfsift/internal/store"
)

// indexTemplate is the single-page UI: an upload form plus the list of
// processed documents with links into the API views.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>pdfsift</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #ddd; }
.status-ready { color: #087f23; }
.status-failed { color: #b00020; }
</style>
</head>
<body>
<h1>pdfsift</h1>
<p>Upload a PDF to extract text, sections and metadata.</p>
<form id="upload" action="/api/documents" method="post" enctype="multipart/form-data">
<input type="file" name="file" accept=".pdf" required>
<button type="submit">Upload</button>
</form>
<h2>Documents</h2>
{{if .Documents}}
<table>
<tr><th>File</th><th>Status</th><th>Pages</th><th>Views</th></tr>
{{range .Documents}}
<tr>
<td>{{.Filename}}</td>
<td class="status-{{.Status}}">{{.Status}}</td>
<td>{{.PageCount}}</td>
<td>
<a href="/api/documents/{{.ID}}/sections?format=text">sections</a>
<a href="/api/documents/{{.ID}}/sections/report">report</a>
<a href="/api/documents/{{.ID}}/metadata">metadata</a>
<a href="/api/documents/{{.ID}}/export">pages.zip</a>
</td>
</tr>
{{end}}
</table>
{{else}}
<p>No documents yet.</p>
{{end}}
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Documents []store.Snapshot
	}{
		Documents: s.orchestrator.Documents(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.log.Error("render index failed", "error", err)
	}
}
