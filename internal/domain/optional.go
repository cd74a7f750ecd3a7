package domain

import "encoding/json"

// Optional различает три состояния поля: не передано, передан null, передано значение
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some - переданное значение
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null - явно переданный null
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON вызывается и для литерала null, поэтому Set выставляется в обоих случаях
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
