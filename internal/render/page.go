package render

import (
	"html/template"
	"io"
	"net/url"
)

// pageTemplate is the browser UI. Item.HTML is already escaped; everything
// else goes through html/template's contextual escaping. Ids are
// path-escaped so that each one stays a single route segment.
var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"pathEscape": url.PathEscape,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Tasks</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 36rem; margin: 2rem auto; padding: 0 1rem; }
#task-form { display: flex; gap: .5rem; }
#task-input { flex: 1; padding: .5rem; }
#task-list { list-style: none; padding: 0; }
.task-item { display: flex; align-items: center; gap: .5rem; padding: .5rem 0; border-bottom: 1px solid #eee; }
.task-item span { flex: 1; }
.task-item.completed span { text-decoration: line-through; color: #888; }
.task-item form { margin: 0; }
.stats { color: #555; }
</style>
</head>
<body>
<h1>Tasks</h1>
<form id="task-form" method="post" action="/tasks">
<input id="task-input" name="text" type="text" placeholder="What needs doing?" autocomplete="off" autofocus>
<button type="submit">Add</button>
</form>
<ul id="task-list">
{{- range .Items}}
<li class="task-item{{if .Completed}} completed{{end}}">
<form method="post" action="/tasks/{{pathEscape .ID}}/toggle"><button class="custom-checkbox" type="submit" aria-label="toggle">{{if .Completed}}&#x2611;{{else}}&#x2610;{{end}}</button></form>
<span>{{.HTML}}</span>
<form method="post" action="/tasks/{{pathEscape .ID}}/delete"><button class="delete-btn" type="submit" aria-label="delete">&#x2715;</button></form>
</li>
{{- end}}
</ul>
<p class="stats">Total: <span id="total-count">{{.Stats.Total}}</span> &middot; Completed: <span id="completed-count">{{.Stats.Completed}}</span></p>
</body>
</html>
`))

// WritePage renders v as a complete HTML document.
func WritePage(w io.Writer, v View) error {
	return pageTemplate.Execute(w, v)
}
