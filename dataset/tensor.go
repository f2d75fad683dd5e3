package dataset

import "fmt"

// Tensor is a fixed-width numeric value: a flat float32 buffer plus its
// shape, row-major.
type Tensor struct {
	Data  []float32 `json:"data"`
	Shape []int64   `json:"shape"`
}

// TensorFromList converts a decoded JSON list (possibly nested) into a
// Tensor. The list must be rectangular and contain only numeric values.
func TensorFromList(v interface{}) (*Tensor, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("value of type %T is not a list", v)
	}
	shape, err := listShape(list)
	if err != nil {
		return nil, err
	}
	n := int64(1)
	for _, s := range shape {
		n *= s
	}
	t := &Tensor{
		Data:  make([]float32, 0, n),
		Shape: shape,
	}
	if err := t.flatten(list, shape); err != nil {
		return nil, err
	}
	return t, nil
}

func listShape(list []interface{}) ([]int64, error) {
	if len(list) == 0 {
		return []int64{0}, nil
	}
	if inner, ok := list[0].([]interface{}); ok {
		innerShape, err := listShape(inner)
		if err != nil {
			return nil, err
		}
		return append([]int64{int64(len(list))}, innerShape...), nil
	}
	return []int64{int64(len(list))}, nil
}

func (t *Tensor) flatten(list []interface{}, shape []int64) error {
	if int64(len(list)) != shape[0] {
		return fmt.Errorf("ragged list: expected %d elements, got %d", shape[0], len(list))
	}
	for _, v := range list {
		if len(shape) > 1 {
			inner, ok := v.([]interface{})
			if !ok {
				return fmt.Errorf("ragged list: expected a nested list, got %T", v)
			}
			if err := t.flatten(inner, shape[1:]); err != nil {
				return err
			}
			continue
		}
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		t.Data = append(t.Data, float32(f))
	}
	return nil
}

// Nested rebuilds the plain nested-list representation the tensor was
// converted from, suitable for JSON serialization in the on-disk layout.
func (t *Tensor) Nested() interface{} {
	nested, _ := nestedAt(t.Data, t.Shape)
	return nested
}

func nestedAt(data []float32, shape []int64) (interface{}, []float32) {
	if len(shape) == 1 {
		out := make([]interface{}, shape[0])
		for i := range out {
			out[i] = float64(data[i])
		}
		return out, data[shape[0]:]
	}
	out := make([]interface{}, shape[0])
	for i := range out {
		out[i], data = nestedAt(data, shape[1:])
	}
	return out, data
}

func (t *Tensor) Equal(o *Tensor) bool {
	if o == nil || len(t.Data) != len(o.Data) || len(t.Shape) != len(o.Shape) {
		return false
	}
	for i := range t.Shape {
		if t.Shape[i] != o.Shape[i] {
			return false
		}
	}
	for i := range t.Data {
		if t.Data[i] != o.Data[i] {
			return false
		}
	}
	return true
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", v)
	}
}
