package rules

import (
	"ha-entity-engine/internal/domain/model"
)

type selectTarget struct {
	Service string
	Field   string
}

// attributeSelect sends the chosen option verbatim in Field of the mapped service.
func attributeSelect(domain string, targets map[string]selectTarget) SelectFunc {
	return func(entity *model.EntityState, attribute, option string) (model.ServiceCall, bool) {
		target, ok := targets[attribute]
		if !ok {
			return model.ServiceCall{}, false
		}
		return model.NewServiceCall(domain, target.Service, entity.EntityID).With(target.Field, option), true
	}
}

func selectRule(domain string) *DomainRule {
	return &DomainRule{
		Domain:      domain,
		DefaultIcon: IconListBulleted,
		SelectFunc: func(entity *model.EntityState, _ string, option string) (model.ServiceCall, bool) {
			return model.NewServiceCall(domain, "select_option", entity.EntityID).With("option", option), true
		},
	}
}

func numberRule(domain string) *DomainRule {
	return &DomainRule{
		Domain:      domain,
		DefaultIcon: IconRayVertex,
		Value:       &ValueAction{Service: "set_value", Field: "value"},
	}
}
