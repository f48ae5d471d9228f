package domain

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

var errMissing = errors.New("required parameter is missing")

// Params is the effective parameter bag of one item.
type Params map[string]any

func (p Params) Has(name string) bool {
	v, ok := p[name]
	return ok && v != nil
}

func (p Params) lookup(name string) (any, error) {
	if !p.Has(name) {
		return nil, &ValidationError{Param: name, Err: errMissing}
	}

	return p[name], nil
}

func (p Params) String(name string) (string, error) {
	v, err := p.lookup(name)
	if err != nil {
		return "", err
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", &ValidationError{Param: name, Err: err}
	}

	return s, nil
}

func (p Params) StringOr(name, fallback string) string {
	s, err := p.String(name)
	if err != nil {
		return fallback
	}

	return s
}

func (p Params) Int(name string) (int, error) {
	v, err := p.lookup(name)
	if err != nil {
		return 0, err
	}

	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, &ValidationError{Param: name, Err: err}
	}

	return i, nil
}

func (p Params) Int64(name string) (int64, error) {
	v, err := p.lookup(name)
	if err != nil {
		return 0, err
	}

	i, err := cast.ToInt64E(v)
	if err != nil {
		return 0, &ValidationError{Param: name, Err: err}
	}

	return i, nil
}

func (p Params) Float64(name string) (float64, error) {
	v, err := p.lookup(name)
	if err != nil {
		return 0, err
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, &ValidationError{Param: name, Err: err}
	}

	return f, nil
}

func (p Params) BoolOr(name string, fallback bool) bool {
	if !p.Has(name) {
		return fallback
	}

	b, err := cast.ToBoolE(p[name])
	if err != nil {
		return fallback
	}

	return b
}

// Map returns a nested object parameter. JSON strings are accepted and
// decoded. A missing parameter yields an empty map.
func (p Params) Map(name string) (map[string]any, error) {
	if !p.Has(name) {
		return map[string]any{}, nil
	}

	m, err := cast.ToStringMapE(p[name])
	if err != nil {
		return nil, &ValidationError{Param: name, Err: err}
	}

	return m, nil
}

// Decode fills out, a struct tagged with `param:"<name>"`, from the bag.
// Conversion is weakly typed so that numeric chat ids and stringified
// numbers are both accepted. Each name in required must be present.
func (p Params) Decode(out any, required ...string) error {
	for _, name := range required {
		if !p.Has(name) {
			return &ValidationError{Param: name, Err: errMissing}
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "param",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return fmt.Errorf("creating parameter decoder: %w", err)
	}

	if err := dec.Decode(map[string]any(p)); err != nil {
		return &ValidationError{Param: "parameters", Err: err}
	}

	return nil
}
