package cli

import (
	"context"
	"strings"
)

// submitFields is the order in which a returned error is matched against
// form fields.
var submitFields = []string{"email", "password", "name"}

// MapSubmitError picks the form field an error from the session manager
// belongs to by looking for a field name in its message, case-insensitively.
// ok is false when no field matches.
func MapSubmitError(err error) (field string, ok bool) {
	if err == nil {
		return "", false
	}
	msg := strings.ToLower(err.Error())
	for _, f := range submitFields {
		if strings.Contains(msg, f) {
			return f, true
		}
	}
	return "", false
}

// showSubmitError prints err under the form field it maps to. Errors that
// match no field of the current form are logged only.
func (a *App) showSubmitError(ctx context.Context, err error, formFields ...string) {
	field, ok := MapSubmitError(err)
	if ok {
		for _, f := range formFields {
			if f == field {
				a.showFieldErrors(map[string]string{field: err.Error()}, formFields...)
				return
			}
		}
	}
	a.log.Error(ctx, "form submission error", "error", err)
}

// showFieldErrors prints one line per failing field in form order.
func (a *App) showFieldErrors(errs map[string]string, formFields ...string) {
	for _, f := range formFields {
		if msg, ok := errs[f]; ok {
			printlnFn(a.theme.Label.Render(f+":") + " " + a.theme.Fail.Render(msg))
		}
	}
}
