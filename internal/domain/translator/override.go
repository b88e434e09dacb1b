package translator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"

	"ha-entity-engine/internal/domain/model"
)

var ErrInvalidFormula = errors.New("translator: invalid formula")

// Evaluate handles simple formulas like "x * 2.54" or "x / 2.54 + 7".
func Evaluate(formula string, x float64) (float64, error) {
	expression, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return x, fmt.Errorf("%w: %q: %v", ErrInvalidFormula, formula, err)
	}
	parameters := make(map[string]interface{}, 1)
	parameters["x"] = x

	result, err := expression.Evaluate(parameters)
	if err != nil {
		return x, fmt.Errorf("%w: %q: %v", ErrInvalidFormula, formula, err)
	}
	val, ok := result.(float64)
	if !ok {
		return x, fmt.Errorf("%w: %q is not numeric", ErrInvalidFormula, formula)
	}
	return val, nil
}

// ApplyOverride rewrites call with the on or off side of o. Services may be
// given as "service" or "domain.service".
func ApplyOverride(call model.ServiceCall, on bool, o *model.ActionOverride) model.ServiceCall {
	if o == nil {
		return call
	}
	service, payload := o.OffService, o.OffPayload
	if on {
		service, payload = o.OnService, o.OnPayload
	}
	if service != "" {
		if domain, name, found := strings.Cut(service, "."); found {
			call.Domain, call.Service = domain, name
		} else {
			call.Service = service
		}
	}
	for k, v := range payload {
		call = call.With(k, v)
	}
	if o.OmitEntityID {
		data := make(map[string]interface{}, len(call.Data))
		for k, v := range call.Data {
			if k != "entity_id" {
				data[k] = v
			}
		}
		call.Data = data
	}
	return call
}
