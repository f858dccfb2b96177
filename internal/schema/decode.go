package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"

	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

type fieldType struct {
	errType string
	msg     string
}

var (
	typeStr      = fieldType{"type_error.str", "str type expected"}
	typeFloat    = fieldType{"type_error.float", "value is not a valid float"}
	typeInteger  = fieldType{"type_error.integer", "value is not a valid integer"}
	typeBool     = fieldType{"type_error.bool", "value could not be parsed to a boolean"}
	typeSet      = fieldType{"type_error.set", "value is not a valid set"}
	typeDict     = fieldType{"type_error.dict", "value is not a valid dict"}
	typeDateTime = fieldType{"type_error.datetime", "invalid datetime format"}
)

// payload holds the raw members of a JSON object body and the type errors found so far.
type payload struct {
	fields map[string]json.RawMessage
	errs   validator.Errors
}

func newPayload(body []byte) (*payload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, validator.Errors{{Msg: typeDict.msg, Type: typeDict.errType}}
	}
	return &payload{fields: fields}, nil
}

// decodeField decodes member name into dst. Absent and null members leave dst nil.
func decodeField[T any](p *payload, name string, dst **T, ft fieldType) {
	raw, ok := p.fields[name]
	if !ok || isNull(raw) {
		return
	}

	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		p.errs = append(p.errs, validator.FieldError{Loc: name, Msg: ft.msg, Type: ft.errType})
		return
	}
	*dst = v
}

// decodeIDSet decodes a list of ids and removes repeated ones, keeping first occurrence order.
// A present list is never nil, so an empty list stays distinguishable from an absent one.
func decodeIDSet(p *payload, name string, dst *[]int64) {
	raw, ok := p.fields[name]
	if !ok || isNull(raw) {
		return
	}

	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		ft := typeSet
		if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
			ft = typeInteger
		}
		p.errs = append(p.errs, validator.FieldError{Loc: name, Msg: ft.msg, Type: ft.errType})
		return
	}

	set := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(set, id) {
			set = append(set, id)
		}
	}
	*dst = set
}

// merge appends the rule violations of err, skipping fields that already failed decoding.
func (p *payload) merge(err error) error {
	if err != nil {
		var ruleErrs validator.Errors
		if !errors.As(err, &ruleErrs) {
			return err
		}
		for _, fe := range ruleErrs {
			if !p.errs.Has(fe.Loc) {
				p.errs = append(p.errs, fe)
			}
		}
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
