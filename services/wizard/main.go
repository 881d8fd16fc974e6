package wizard

import (
	"fmt"
	"strings"
	"time"

	comparisonMethod "seqcompare/api/models/constants/comparison-method"
	"seqcompare/api/models/constants/severity"
	"seqcompare/api/models/constants/stage"
	submitMarker "seqcompare/api/models/constants/submit-marker"
	"seqcompare/api/models/forms"
	"seqcompare/api/models/indexes"
)

/*
	The wizard's state machine : given the FormState built from one
	request, decide which of the three stages to render next, what
	to tell the user, and which previously entered values to carry
	forward. Collaborator failures are converted into in-page
	messages here ; nothing escapes to the transport layer.
*/

type (
	Catalog interface {
		ListRegions() ([]indexes.Region, error)
		ListGenes(regionIds []string) ([]indexes.Gene, error)
	}

	Runner interface {
		Run(job forms.ComparisonJob) ([]forms.ComparisonResult, error)
	}

	Controller struct {
		Catalog Catalog
		Runner  Runner
	}
)

func NewController(catalog Catalog, runner Runner) *Controller {
	return &Controller{
		Catalog: catalog,
		Runner:  runner,
	}
}

// Decide evaluates the transition rules in fixed priority order
// against the submit marker and the submitted selections. Every
// re-render carries the submitted FormState forward so the user
// never loses input on an error or a "go back".
func (ctrl *Controller) Decide(form forms.FormState) forms.StageResult {
	switch form.Submit {

	case submitMarker.None, submitMarker.ReselectRegions:
		// first visit, or an explicit "go back" : always reachable,
		// no validation
		return ctrl.chooseRegions(form, nil)

	case submitMarker.SubmitSelectRegions:
		if len(form.SelectedRegions) == 0 {
			// same-stage recovery, not a stage advance
			return ctrl.chooseRegions(form, []forms.Message{{
				Severity: severity.Error,
				Text:     "Please select at least one region to continue.",
			}})
		}

		genes, genesErr := ctrl.Catalog.ListGenes(form.SelectedRegions)
		if genesErr != nil {
			fmt.Printf("[%s] - Catalog failure listing genes for %v : %v\n", time.Now(), form.SelectedRegions, genesErr)
			return ctrl.chooseRegions(form, []forms.Message{collaboratorFailureMessage()})
		}

		return forms.StageResult{
			Stage: stage.SelectGenes,
			Form:  form,
			Genes: genes,
		}

	case submitMarker.SubmitGenes:
		if messages := validateFinalSubmission(form); len(messages) > 0 {
			return ctrl.selectGenes(form, messages)
		}

		job := forms.NewComparisonJob(form)

		results, runErr := ctrl.Runner.Run(job)
		if runErr != nil {
			fmt.Printf("[%s] - Comparison job %s failed : %v\n", time.Now(), job.Id, runErr)
			return ctrl.selectGenes(form, []forms.Message{collaboratorFailureMessage()})
		}

		return forms.StageResult{
			Stage:   stage.ShowResults,
			Form:    form,
			Results: results,
		}

	default:
		// the submit marker cast is total, so this branch is only
		// reachable if a FormState was built by hand with a value
		// outside the enumeration : log it and fall back to a
		// fresh first stage
		fmt.Printf("[%s] - Unrecognized submit marker %q, falling back to a fresh form\n", time.Now(), form.Submit)
		return ctrl.chooseRegions(forms.FormState{}, nil)
	}
}

// chooseRegions renders the first stage, pre-populated with whatever
// the user already entered
func (ctrl *Controller) chooseRegions(form forms.FormState, messages []forms.Message) forms.StageResult {
	regions, regionsErr := ctrl.Catalog.ListRegions()
	if regionsErr != nil {
		fmt.Printf("[%s] - Catalog failure listing regions : %v\n", time.Now(), regionsErr)
		messages = append(messages, collaboratorFailureMessage())
	}

	return forms.StageResult{
		Stage:    stage.ChooseRegions,
		Messages: messages,
		Form:     form,
		Regions:  regions,
	}
}

// selectGenes re-renders the gene selection stage : the gene list
// for the submitted regions is fetched again so the checkboxes can
// be redrawn with the user's selections preserved
func (ctrl *Controller) selectGenes(form forms.FormState, messages []forms.Message) forms.StageResult {
	var genes []indexes.Gene

	if len(form.SelectedRegions) > 0 {
		var genesErr error
		genes, genesErr = ctrl.Catalog.ListGenes(form.SelectedRegions)
		if genesErr != nil {
			fmt.Printf("[%s] - Catalog failure re-listing genes for %v : %v\n", time.Now(), form.SelectedRegions, genesErr)
			messages = append(messages, collaboratorFailureMessage())
		}
	}

	return forms.StageResult{
		Stage:    stage.SelectGenes,
		Messages: messages,
		Form:     form,
		Genes:    genes,
	}
}

func validateFinalSubmission(form forms.FormState) []forms.Message {
	var messages []forms.Message

	if !comparisonMethod.IsKnownComparisonMethod(string(form.Method)) {
		messages = append(messages, forms.Message{
			Severity: severity.Error,
			Text:     "Please choose a comparison method.",
		})
	}

	if strings.TrimSpace(form.Sequence) == "" {
		messages = append(messages, forms.Message{
			Severity: severity.Error,
			Text:     "Please provide a sequence to compare.",
		})
	}

	if len(form.SelectedGenes) == 0 {
		messages = append(messages, forms.Message{
			Severity: severity.Error,
			Text:     "Please select at least one gene to compare.",
		})
	}

	return messages
}

// the underlying cause is logged for operators, never shown verbatim
func collaboratorFailureMessage() forms.Message {
	return forms.Message{
		Severity: severity.Error,
		Text:     "Something went wrong... Please contact the administrator!",
	}
}
