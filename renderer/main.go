package renderer

import (
	"bytes"
	"html/template"

	"seqcompare/api/models/constants"
	comparisonMethod "seqcompare/api/models/constants/comparison-method"
	"seqcompare/api/models/constants/stage"
	"seqcompare/api/models/forms"
	"seqcompare/api/models/indexes"
	"seqcompare/api/utils"
)

/*
	Renders the wizard page for a StageResult : message paragraphs
	tagged with a severity class, a results block (populated only on
	the final stage), and the current stage's form markup with every
	previously entered value pre-populated. All user supplied strings
	pass through html/template's contextual escaping on their way to
	the page.
*/

type Renderer struct {
	page *template.Template
}

type methodOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Stage    constants.Stage
	Messages []forms.Message
	Form     forms.FormState
	Regions  []indexes.Region
	Genes    []indexes.Gene
	Results  []forms.ComparisonResult
	Methods  []methodOption

	ChooseRegions constants.Stage
	SelectGenes   constants.Stage
	ShowResults   constants.Stage
}

func New() (*Renderer, error) {
	page, parseErr := template.New("page").Funcs(template.FuncMap{
		"isSelected": utils.StringInSlice,
	}).Parse(pageTemplate)
	if parseErr != nil {
		return nil, parseErr
	}

	return &Renderer{page: page}, nil
}

// Render is pure given its inputs : the same StageResult always
// produces the same document
func (r *Renderer) Render(res forms.StageResult) (string, error) {
	data := pageData{
		Stage:    res.Stage,
		Messages: res.Messages,
		Form:     res.Form,
		Regions:  res.Regions,
		Genes:    res.Genes,
		Results:  res.Results,

		ChooseRegions: stage.ChooseRegions,
		SelectGenes:   stage.SelectGenes,
		ShowResults:   stage.ShowResults,
	}

	for _, method := range comparisonMethod.KnownComparisonMethods() {
		data.Methods = append(data.Methods, methodOption{
			Value:    string(method),
			Label:    comparisonMethod.Label(method),
			Selected: method == res.Form.Method,
		})
	}

	var buf bytes.Buffer
	if execErr := r.page.Execute(&buf, data); execErr != nil {
		return "", execErr
	}

	return buf.String(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>SeqCompare</title>
</head>
<body>
<h1>SeqCompare</h1>
{{range .Messages}}<p class="message {{.Severity}}">{{.Text}}</p>
{{end}}<div id="results">
{{if eq .Stage .ShowResults}}<table>
<tr><th>Gene</th><th>Method</th><th>Score</th><th>Summary</th></tr>
{{range .Results}}<tr><td>{{.GeneName}} ({{.GeneId}})</td><td>{{.Method}}</td><td>{{printf "%.3f" .Score}}</td><td>{{.Summary}}</td></tr>
{{end}}</table>
{{end}}</div>
{{if eq .Stage .ChooseRegions}}<form method="post" action="/">
<h2>Step 1 : choose regions</h2>
<label for="sequence">Sequence</label>
<textarea id="sequence" name="sequence" rows="6" cols="60">{{.Form.Sequence}}</textarea>
<label for="method">Comparison method</label>
<select id="method" name="method">
{{range .Methods}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
<fieldset>
<legend>Regions</legend>
{{range .Regions}}<label><input type="checkbox" name="regions" value="{{.Id}}"{{if isSelected .Id $.Form.SelectedRegions}} checked{{end}}> {{.Id}} ({{.GeneCount}} genes)</label>
{{end}}</fieldset>
<button type="submit" name="submit" value="SUBMIT_SELECT_REGIONS">Select genes in these regions</button>
</form>
{{end}}{{if eq .Stage .SelectGenes}}<form method="post" action="/">
<h2>Step 2 : select genes</h2>
<input type="hidden" name="sequence" value="{{.Form.Sequence}}">
<input type="hidden" name="method" value="{{.Form.Method}}">
{{range .Form.SelectedRegions}}<input type="hidden" name="regions" value="{{.}}">
{{end}}<fieldset>
<legend>Genes</legend>
{{range .Genes}}<label><input type="checkbox" name="genes" value="{{.Id}}"{{if isSelected .Id $.Form.SelectedGenes}} checked{{end}}> {{.Name}} ({{.Region}}:{{.Start}}-{{.End}})</label>
{{end}}</fieldset>
<button type="submit" name="submit" value="RESELECT_REGIONS">Back to regions</button>
<button type="submit" name="submit" value="SUBMIT_GENES">Run comparison</button>
</form>
{{end}}{{if eq .Stage .ShowResults}}<form method="post" action="/">
<h2>Done</h2>
<input type="hidden" name="sequence" value="{{.Form.Sequence}}">
<input type="hidden" name="method" value="{{.Form.Method}}">
{{range .Form.SelectedRegions}}<input type="hidden" name="regions" value="{{.}}">
{{end}}<button type="submit" name="submit" value="RESELECT_REGIONS">Start another comparison</button>
</form>
{{end}}</body>
</html>
`
