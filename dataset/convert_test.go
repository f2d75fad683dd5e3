package dataset

import "testing"

func listRow(eps, frame float64, action []interface{}) Row {
	return Row{
		"episode_index": eps,
		"frame_index":   frame,
		"action":        action,
	}
}

func TestConvertListColumns(t *testing.T) {
	table := NewTable()
	table.Append(listRow(0, 0, []interface{}{1.0, 2.0, 3.0}))
	table.Append(listRow(0, 1, []interface{}{4.0, 5.0, 6.0}))

	converted := ConvertListColumns(table)
	if len(converted) != 1 || converted[0] != "action" {
		t.Fatalf("expected only action to be converted, got %v", converted)
	}

	for i := 0; i < table.Len(); i++ {
		tensor, ok := table.Row(i)["action"].(*Tensor)
		if !ok {
			t.Fatalf("row %d action not converted", i)
		}
		if len(tensor.Shape) != 1 || tensor.Shape[0] != 3 {
			t.Errorf("row %d tensor shape %v, expected [3]", i, tensor.Shape)
		}
		// scalar columns stay scalars
		if _, ok := table.Row(i)["episode_index"].(float64); !ok {
			t.Errorf("row %d episode_index was rewritten", i)
		}
	}
	if table.Row(1)["action"].(*Tensor).Data[0] != 4 {
		t.Errorf("converted values are wrong")
	}
}

func TestConvertNestedLists(t *testing.T) {
	table := NewTable()
	table.Append(Row{"state": []interface{}{
		[]interface{}{1.0, 2.0},
		[]interface{}{3.0, 4.0},
	}})

	ConvertListColumns(table)
	tensor, ok := table.Row(0)["state"].(*Tensor)
	if !ok {
		t.Fatalf("nested list column not converted")
	}
	if len(tensor.Shape) != 2 || tensor.Shape[0] != 2 || tensor.Shape[1] != 2 {
		t.Fatalf("tensor shape %v, expected [2 2]", tensor.Shape)
	}
	if tensor.Data[3] != 4 {
		t.Errorf("tensor data %v, expected last element 4", tensor.Data)
	}
}

func TestConvertNonNumericColumnLeftUntouched(t *testing.T) {
	table := NewTable()
	table.Append(Row{"labels": []interface{}{1.0, 2.0}})
	table.Append(Row{"labels": []interface{}{"push", "lift"}})

	converted := ConvertListColumns(table)
	if len(converted) != 0 {
		t.Fatalf("expected no conversion, got %v", converted)
	}
	// every row keeps the original representation, never a partial convert
	for i := 0; i < table.Len(); i++ {
		if _, ok := table.Row(i)["labels"].([]interface{}); !ok {
			t.Errorf("row %d was partially converted to %T", i, table.Row(i)["labels"])
		}
	}
}

func TestConvertRaggedColumnLeftUntouched(t *testing.T) {
	table := NewTable()
	table.Append(Row{"state": []interface{}{
		[]interface{}{1.0, 2.0},
		[]interface{}{3.0},
	}})

	if converted := ConvertListColumns(table); len(converted) != 0 {
		t.Fatalf("expected no conversion of a ragged column, got %v", converted)
	}
}

func TestConvertIdempotent(t *testing.T) {
	table := NewTable()
	table.Append(listRow(0, 0, []interface{}{1.5, -2.5}))
	table.Append(listRow(0, 1, []interface{}{3.25, 4.75}))

	ConvertListColumns(table)
	first := make([]*Tensor, table.Len())
	for i := range first {
		first[i] = table.Row(i)["action"].(*Tensor)
	}

	ConvertListColumns(table)
	for i := range first {
		second := table.Row(i)["action"].(*Tensor)
		if second != first[i] {
			t.Errorf("row %d tensor was rebuilt on the second pass", i)
		}
		if !second.Equal(first[i]) {
			t.Errorf("row %d tensor changed on the second pass", i)
		}
	}
}

func TestTensorNestedRoundTrip(t *testing.T) {
	original := []interface{}{
		[]interface{}{1.0, 2.0, 3.0},
		[]interface{}{4.0, 5.0, 6.0},
	}
	tensor, err := TensorFromList(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back, err := TensorFromList(tensor.Nested())
	if err != nil {
		t.Fatalf("re-convert: %v", err)
	}
	if !back.Equal(tensor) {
		t.Errorf("nested round trip changed the tensor")
	}
}

func TestTensorFromListErrors(t *testing.T) {
	if _, err := TensorFromList(1.0); err == nil {
		t.Errorf("expected an error for a scalar")
	}
	if _, err := TensorFromList([]interface{}{1.0, "two"}); err == nil {
		t.Errorf("expected an error for a non-numeric element")
	}
}
