package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/alexiusacademia/stringlift/internal/catalog"
	"github.com/alexiusacademia/stringlift/internal/diagram"
	"github.com/alexiusacademia/stringlift/internal/form"
	"github.com/alexiusacademia/stringlift/internal/units"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Stringlift</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
form { display: grid; grid-template-columns: 12em 1fr; gap: .5em 1em; }
.result { font-size: 2em; margin: 1em 0 .5em; }
.error { color: #b00020; }
pre { background: #f4f4f4; padding: 1em; }
</style>
</head>
<body>
<h1>String lift calculator</h1>
<form method="post" action="/">
  <label for="outerD">Casing / riser</label>
  <select id="outerD" name="outerD">
  {{- range .Outer}}
    <option value="{{.Value}}"{{if eq .Value $.State.OuterD}} selected{{end}}>{{.Label}}</option>
  {{- end}}
  </select>
  <label for="outerD_custom">Custom OD ({{.CustomUnit}})</label>
  <input id="outerD_custom" name="outerD_custom" value="{{.State.OuterDCustom}}">

  <label for="innerD">Pipe</label>
  <select id="innerD" name="innerD">
  {{- range .Inner}}
    <option value="{{.Value}}"{{if eq .Value $.State.InnerD}} selected{{end}}>{{.Label}}</option>
  {{- end}}
  </select>
  <label for="innerD_custom">Custom ID ({{.CustomUnit}})</label>
  <input id="innerD_custom" name="innerD_custom" value="{{.State.InnerDCustom}}">

  <label for="pressure">Pressure</label>
  <input id="pressure" name="pressure" value="{{.State.Pressure}}">
  <label for="pressureUnit">Unit</label>
  <select id="pressureUnit" name="pressureUnit">
  {{- range .PressureUnits}}
    <option value="{{.}}"{{if eq . $.State.PressureUnit}} selected{{end}}>{{.}}</option>
  {{- end}}
  </select>

  <span></span><button type="submit">Calculate</button>
</form>

<div class="result" id="liftValue">{{.Lift}}</div>
{{with .Failure}}<p class="error" id="error">{{.Message}}</p>{{end}}
{{with .Breakdown}}<pre id="breakdown">{{.}}</pre>{{end}}
<div id="schematic">{{.Schematic}}</div>

<script>
const factor = {{.CustomFactor}};
function sync(sel, input, zeroIsEmpty) {
  const m = parseFloat(sel.value);
  if (isNaN(m)) { input.value = ""; return; }
  if (zeroIsEmpty && m <= 0) { input.value = "0"; return; }
  input.value = String(Math.round(m / factor * 1000) / 1000);
}
document.getElementById("outerD").addEventListener("change", e =>
  sync(e.target, document.getElementById("outerD_custom"), false));
document.getElementById("innerD").addEventListener("change", e =>
  sync(e.target, document.getElementById("innerD_custom"), true));
const unit = document.getElementById("pressureUnit");
let lastUnit = unit.value;
unit.addEventListener("change", async () => {
  const field = document.getElementById("pressure");
  const res = await fetch("/api/convert-pressure", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({pressure: field.value, from: lastUnit, to: unit.value}),
  });
  if (res.ok) { field.value = (await res.json()).pressure; }
  lastUnit = unit.value;
});
</script>
</body>
</html>
`))

type pageData struct {
	State         form.State
	Outer         []catalog.Size
	Inner         []catalog.Size
	PressureUnits []string
	CustomUnit    string
	CustomFactor  float64
	Lift          string
	Failure       *form.Failure
	Breakdown     string
	Schematic     template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, s.loadState())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st := form.State{
		OuterD:       r.PostForm.Get("outerD"),
		OuterDCustom: r.PostForm.Get("outerD_custom"),
		InnerD:       r.PostForm.Get("innerD"),
		InnerDCustom: r.PostForm.Get("innerD_custom"),
		Pressure:     r.PostForm.Get("pressure"),
		PressureUnit: r.PostForm.Get("pressureUnit"),
	}
	s.save(s.incoming(st))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) renderPage(w http.ResponseWriter, st form.State) {
	out, resp := s.calculate(st)

	var svgBuf bytes.Buffer
	if data, ok := out.DiagramData(s.digits); ok {
		diagram.WriteWellSVG(&svgBuf, data)
	}

	data := pageData{
		State:         st,
		Outer:         catalog.OuterSizes,
		Inner:         catalog.InnerSizes,
		PressureUnits: pressureUnitNames(),
		CustomUnit:    s.customUnit.String(),
		CustomFactor:  units.LengthToMeters(1, s.customUnit),
		Lift:          resp.Lift,
		Failure:       resp.Failure,
		Breakdown:     resp.Breakdown,
		// generated by svgo from numeric data and our own labels
		Schematic: template.HTML(svgBuf.String()),
	}

	var page bytes.Buffer
	if err := pageTmpl.Execute(&page, data); err != nil {
		s.logger.Error("render page failed", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = page.WriteTo(w)
}

func pressureUnitNames() []string {
	names := make([]string, len(units.PressureUnits))
	for i, u := range units.PressureUnits {
		names[i] = u.String()
	}
	return names
}
