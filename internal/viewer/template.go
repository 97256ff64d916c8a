package viewer

import "html/template"

var resultTemplate = template.Must(template.New("result").Parse(resultHTML))

const resultHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .SourceName }} - disclaimer check</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
         max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1f2430; }
  h1 { font-size: 1.4rem; margin-bottom: .25rem; }
  .muted { color: #69707d; font-size: .9rem; }
  .verdict { display: inline-block; padding: .25rem .9rem; border-radius: 999px; font-weight: 600; }
  .approved { background: #e6f6ec; color: #1b7f3b; }
  .rejected { background: #fdeaea; color: #b3261e; }
  .risk { font-weight: 600; margin-left: .75rem; }
  .risk-low { color: #1b7f3b; }
  .risk-medium { color: #b26a00; }
  .risk-high { color: #b3261e; }
  .card { border: 1px solid #e3e6ec; border-radius: 8px; padding: 1rem 1.25rem; margin: 1rem 0; }
  .card h2 { font-size: 1rem; margin: 0 0 .5rem; }
  ul { margin: .25rem 0; padding-left: 1.25rem; }
  li.ok::marker { content: "\2713  "; color: #1b7f3b; }
  li.fail::marker { content: "\2717  "; color: #b3261e; }
  blockquote { border-left: 3px solid #c9ced8; margin: .5rem 0; padding: .25rem .75rem; color: #555; }
  .detail { color: #69707d; font-size: .85rem; margin-left: .25rem; }
  a { color: #2457d6; }
</style>
</head>
<body>
<h1>{{ .SourceName }}</h1>
<p class="muted">Analysis {{ .Resp.AnalysisID }}{{ if not .Resp.Timestamp.IsZero }}, {{ .Resp.Timestamp.Format "Jan 2, 2006 15:04 MST" }}{{ end }}</p>

<p>
  <span class="verdict {{ if .Result.IsApproved }}approved{{ else }}rejected{{ end }}">{{ .Verdict }}</span>
  <span class="risk risk-{{ .RiskClass }}">Risk: {{ .Result.RiskLevel }}</span>
</p>

{{ if .Result.SummaryBlurb }}<p>{{ .Result.SummaryBlurb }}</p>{{ end }}

{{ if .Result.Explanation }}
<div class="card">
  <h2>Analysis</h2>
  <p>{{ .Result.Explanation }}</p>
</div>
{{ end }}

{{ if .Result.DetectedDisclaimer }}
<div class="card">
  <h2>Detected disclaimer{{ if .Result.DetectedDisclaimer.Jurisdiction }} ({{ .Result.DetectedDisclaimer.Jurisdiction }}){{ end }}</h2>
  <blockquote>{{ .Result.DetectedDisclaimer.Text }}</blockquote>
  {{ if .Result.DetectedDisclaimer.Confidence }}<p class="muted">Confidence: {{ .Result.DetectedDisclaimer.Confidence }}</p>{{ end }}
</div>
{{ end }}

{{ range .Result.ChecklistResults }}
<div class="card">
  <h2>Checklist{{ if .Jurisdiction }} ({{ .Jurisdiction }}){{ end }}</h2>
  <ul>
    {{ range .ChecklistItems }}
    <li class="{{ if .IsCompliant }}ok{{ else }}fail{{ end }}">
      {{ if .Section }}{{ .Section }} / {{ end }}{{ .Item }}{{ if .IsRequired }} (required){{ end }}
      {{ if .MissingDetails }}<span class="detail">{{ .MissingDetails }}</span>{{ end }}
    </li>
    {{ end }}
  </ul>
  {{ range .ViolationDetails }}
  <p class="detail">Violation: {{ .Violation }}{{ if .ExactText }} ("{{ .ExactText }}"){{ end }}</p>
  {{ end }}
</div>
{{ end }}

{{ if .Result.MissingRequiredPhrases }}
<div class="card">
  <h2>Missing required phrases</h2>
  <ul>
    {{ range .Result.MissingRequiredPhrases }}
    <li class="fail">"{{ .Phrase }}"{{ if .Reason }}<span class="detail">{{ .Reason }}</span>{{ end }}</li>
    {{ end }}
  </ul>
</div>
{{ end }}

{{ if .Result.ComparisonResults }}
<div class="card">
  <h2>Approved disclaimer comparison</h2>
  <ul>
    {{ range .Result.ComparisonResults }}
    <li>{{ .ApprovedDisclaimerID }}: similarity {{ printf "%.2f" .SimilarityScore }}
      {{ if .MissingPhrases }}<span class="detail">missing {{ len .MissingPhrases }} phrase(s)</span>{{ end }}
    </li>
    {{ end }}
  </ul>
</div>
{{ end }}

{{ if .Result.LLMSuggestions }}
<div class="card">
  <h2>Suggestions</h2>
  <p>{{ .Result.LLMSuggestions }}</p>
</div>
{{ end }}

<p class="muted">
  <a href="/api/result">Raw JSON</a>
  {{ if .HasAnnotated }} | <a href="/annotated.pdf">Annotated PDF</a>{{ end }}
</p>
</body>
</html>
`
