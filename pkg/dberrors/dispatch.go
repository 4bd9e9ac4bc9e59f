package dberrors

// RequestContext ends the current request with a response.
type RequestContext interface {
	Terminate(code int, message string, detail LogInfo) error
}

type Dispatcher struct {
	mapper *Mapper
}

func NewDispatcher(mapper *Mapper) *Dispatcher {
	return &Dispatcher{mapper: mapper}
}

// HandleError answers database errors on rc and returns every other error
// untouched, so it keeps propagating to the caller.
func (d *Dispatcher) HandleError(rc RequestContext, err error) error {
	raw, ok := asRawError(err)
	if !ok {
		return err
	}
	ce := d.mapper.WrapError(raw)
	return rc.Terminate(ce.Code, ce.Message, ce.Detail)
}
