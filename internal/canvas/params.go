package canvas

import (
	"net/url"
	"strconv"
)

// params accumulates request parameters using Canvas's bracketed field
// names. The setOpt* helpers encode the provided/not-provided
// distinction: a nil pointer never reaches the payload, while a pointer
// to a falsy value (empty string, false, zero) always does, preserving
// the upstream API's own defaulting behavior.
type params struct {
	values url.Values
}

func newParams() *params {
	return &params{values: url.Values{}}
}

func (p *params) set(key, value string) {
	p.values.Set(key, value)
}

func (p *params) setOptString(key string, v *string) {
	if v != nil {
		p.values.Set(key, *v)
	}
}

func (p *params) setOptInt(key string, v *int) {
	if v != nil {
		p.values.Set(key, strconv.Itoa(*v))
	}
}

func (p *params) setOptBool(key string, v *bool) {
	if v != nil {
		p.values.Set(key, strconv.FormatBool(*v))
	}
}

func (p *params) setOptFloat(key string, v *float64) {
	if v != nil {
		p.values.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

// setIndexed expands a list into indexed bracketed fields:
// key[0], key[1], ... This is the encoding Canvas expects for
// list-valued parameters and must be preserved for wire compatibility.
func (p *params) setIndexed(key string, vs []string) {
	for i, v := range vs {
		p.values.Set(key+"["+strconv.Itoa(i)+"]", v)
	}
}
