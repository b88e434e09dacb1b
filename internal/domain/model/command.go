package model

// ServiceCall is the (domain, service, payload) triple handed to the transport.
type ServiceCall struct {
	Domain  string                 `json:"domain"`
	Service string                 `json:"service"`
	Data    map[string]interface{} `json:"service_data"`
}

// NewServiceCall builds a call targeting entityID, which may be a string or []string.
func NewServiceCall(domain, service string, entityID interface{}) ServiceCall {
	return ServiceCall{
		Domain:  domain,
		Service: service,
		Data:    map[string]interface{}{"entity_id": entityID},
	}
}

// With returns the call with an extra payload field.
func (c ServiceCall) With(key string, value interface{}) ServiceCall {
	data := make(map[string]interface{}, len(c.Data)+1)
	for k, v := range c.Data {
		data[k] = v
	}
	data[key] = value
	c.Data = data
	return c
}

func (c ServiceCall) String() string {
	return c.Domain + "." + c.Service
}
