package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// HTMLReporter writes a self-contained HTML report: a timestamped file per
// run plus a stable latest.html copy. Failure screenshots are embedded as
// base64 images so the file has no external references.
type HTMLReporter struct {
	dir string

	mu      sync.Mutex
	run     Run
	results []Result
}

func NewHTMLReporter(dir string) *HTMLReporter {
	return &HTMLReporter{dir: dir}
}

func (h *HTMLReporter) StartRun(run Run) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.run = run
}

func (h *HTMLReporter) Record(result Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.results = append(h.results, result)
}

func (h *HTMLReporter) Finish() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	buf, err := h.render()
	if err != nil {
		return err
	}

	stamped := filepath.Join(h.dir, fmt.Sprintf("report_%s.html", time.Now().Format("2006-01-02_15-04-05")))
	if err := os.WriteFile(stamped, buf, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(h.dir, "latest.html"), buf, 0o644); err != nil {
		return fmt.Errorf("write latest report: %w", err)
	}
	return nil
}

func (h *HTMLReporter) render() ([]byte, error) {
	failed := 0
	for _, r := range h.results {
		if !r.Passed {
			failed++
		}
	}

	data := struct {
		Run     Run
		Results []Result
		Total   int
		Failed  int
	}{h.run, h.results, len(h.results), failed}

	var out bytes.Buffer
	if err := reportTemplate.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return out.Bytes(), nil
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"b64": func(b []byte) string { return base64.StdEncoding.EncodeToString(b) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Test Execution Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; vertical-align: top; }
tr.pass td.status { color: #070; }
tr.fail td.status { color: #b00; }
img.shot { max-width: 640px; border: 1px solid #999; }
</style>
</head>
<body>
<h1>Test Execution Report</h1>
<p>
Run {{.Run.ID}} &mdash; environment <strong>{{.Run.Env}}</strong>,
browser <strong>{{.Run.Browser}}</strong>,
started {{.Run.StartedAt.Format "2006-01-02 15:04:05"}}.
</p>
<p>{{.Total}} tests, {{.Failed}} failed.</p>
<table>
<tr><th>Test</th><th>Status</th><th>Duration</th><th>Details</th></tr>
{{range .Results}}
<tr class="{{if .Passed}}pass{{else}}fail{{end}}">
<td>{{.Name}}</td>
<td class="status">{{if .Passed}}PASSED{{else}}FAILED{{end}}</td>
<td>{{.Duration}}</td>
<td>
{{if .Error}}<pre>{{.Error}}</pre>{{end}}
{{if .Screenshot}}<img class="shot" src="data:image/png;base64,{{b64 .Screenshot}}" alt="failure screenshot">{{end}}
</td>
</tr>
{{end}}
</table>
</body>
</html>
`))
