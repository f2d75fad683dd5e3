package dataset

// ConvertListColumns rewrites list-valued columns as tensors, in place.
// A column is a candidate when its value in the first row is a list. The
// whole column is converted or none of it: if any row of a candidate
// column holds a non-numeric or ragged value, every row of that column
// keeps its original representation. Values that are already tensors pass
// through unchanged, so converting twice is a no-op.
//
// Conversion failures are not reported per column, matching the
// best-effort policy of the saved-dataset format.
//
// Returns the names of the columns that were converted.
func ConvertListColumns(t *Table) []string {
	if t.Len() == 0 {
		return nil
	}

	sample := t.Row(0)
	candidates := make([]string, 0)
	for _, col := range t.Columns() {
		if _, ok := sample[col].([]interface{}); ok {
			candidates = append(candidates, col)
		}
	}

	converted := make([]string, 0, len(candidates))
	for _, col := range candidates {
		tensors := make([]*Tensor, t.Len())
		ok := true
		for i := 0; i < t.Len() && ok; i++ {
			switch v := t.Row(i)[col].(type) {
			case *Tensor:
				tensors[i] = v
			default:
				tensor, err := TensorFromList(v)
				if err != nil {
					ok = false
					break
				}
				tensors[i] = tensor
			}
		}
		if !ok {
			continue
		}
		for i := 0; i < t.Len(); i++ {
			t.Row(i)[col] = tensors[i]
		}
		converted = append(converted, col)
	}
	return converted
}
