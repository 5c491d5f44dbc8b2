package value

// Match reports exact structural equality of two values as 1 or 0.
func Match(a, b Val) (Val, error) {
	return Bool(a.Equal(b)), nil
}

// Couple combines two values of identical shape into an array with a new
// leading axis of length 2.
func Couple(a, b Val) (Val, error) {
	return FromRows([]Val{a, b}, nil)
}

// Uncouple splits an array with a leading axis of length 2 into its two
// rows, undoing Couple.
func Uncouple(v Val) (Val, Val, error) {
	if v.Rank() == 0 || v.Shape[0] != 2 {
		return Val{}, Val{}, Errorf("cannot uncouple an array of shape %v", v.Shape)
	}
	return v.Row(0).Copy(), v.Row(1).Copy(), nil
}

// Join concatenates a and b along the first axis, a first.  A value of one
// rank less than the other joins as a single row.
func Join(a, b Val, fill *Val) (Val, error) {
	switch {
	case a.Rank() == b.Rank() && a.Rank() == 0:
		return FromRows([]Val{a, b}, fill)
	case a.Rank() == b.Rank():
		rows := append(a.Rows(), b.Rows()...)
		return FromRows(rows, fill)
	case a.Rank() == b.Rank()+1:
		rows := append(a.Rows(), b)
		return FromRows(rows, fill)
	case b.Rank() == a.Rank()+1:
		rows := append([]Val{a}, b.Rows()...)
		return FromRows(rows, fill)
	}
	return Val{}, Errorf("cannot join arrays of shapes %v and %v", a.Shape, b.Shape)
}

// Reshape cycles the elements of v into the given shape.
func Reshape(shape, v Val) (Val, error) {
	dims, err := shape.AsInts("reshape")
	if err != nil {
		return Val{}, err
	}
	n := 1
	for _, d := range dims {
		if d < 0 {
			return Val{}, Errorf("reshape expects natural dimensions (got %d)", d)
		}
		n *= d
	}
	if v.Count() == 0 && n > 0 {
		return Val{}, Errorf("cannot reshape an empty array to shape %v", dims)
	}
	out := Val{Typ: v.Typ, Shape: dims}
	out.alloc(n)
	for i := 0; i < n; i++ {
		out.setElem(i, v, i%v.Count())
	}
	return out, nil
}

// Take returns the first n rows of v, or the last -n rows when n is
// negative.  Taking more rows than exist extends the result with fill rows;
// without a fill value overtaking is an error.
func Take(n, v Val, fill *Val) (Val, error) {
	count, err := n.AsInt("take")
	if err != nil {
		return Val{}, err
	}
	if v.Rank() == 0 {
		return Val{}, Errorf("cannot take from a scalar")
	}
	abs := count
	if abs < 0 {
		abs = -abs
	}
	rows := v.Rows()
	if abs > len(rows) {
		pad, err := fillRow(v, fill, abs-len(rows))
		if err != nil {
			return Val{}, Errorf("cannot take %d rows from an array of %d rows: %v", abs, len(rows), err)
		}
		if count >= 0 {
			rows = append(rows, pad...)
		} else {
			rows = append(pad, rows...)
		}
	} else if count >= 0 {
		rows = rows[:abs]
	} else {
		rows = rows[len(rows)-abs:]
	}
	return FromRows(rows, nil)
}

// fillRow builds n copies of a fill row matching the row shape of v.
func fillRow(v Val, fill *Val, n int) ([]Val, error) {
	if fill == nil {
		return nil, Errorf("no fill value is set")
	}
	if fill.Typ != v.Typ {
		return nil, Errorf("fill value is a %s but the array is %s", fill.Typ, v.Typ)
	}
	row := Val{Typ: v.Typ, Shape: append([]int(nil), v.Shape[1:]...)}
	row.alloc(v.rowElems())
	for i := 0; i < v.rowElems(); i++ {
		row.setElem(i, *fill, 0)
	}
	rows := make([]Val, n)
	for i := range rows {
		rows[i] = row
	}
	return rows, nil
}

// Untake splices taken back over the region of orig that Take(n, orig)
// produced, undoing Take with a possibly modified slice.
func Untake(taken, n, orig Val) (Val, error) {
	count, err := n.AsInt("untake")
	if err != nil {
		return Val{}, err
	}
	rows := orig.Rows()
	abs := count
	if abs < 0 {
		abs = -abs
	}
	if abs > len(rows) {
		abs = len(rows)
	}
	var out []Val
	if count >= 0 {
		out = append(out, taken.Rows()...)
		out = append(out, rows[abs:]...)
	} else {
		out = append(out, rows[:len(rows)-abs]...)
		out = append(out, taken.Rows()...)
	}
	return FromRows(out, nil)
}

// Drop removes the first n rows of v, or the last -n rows when n is
// negative.  Dropping more rows than exist leaves an empty array.
func Drop(n, v Val) (Val, error) {
	count, err := n.AsInt("drop")
	if err != nil {
		return Val{}, err
	}
	if v.Rank() == 0 {
		return Val{}, Errorf("cannot drop from a scalar")
	}
	rows := v.Rows()
	abs := count
	if abs < 0 {
		abs = -abs
	}
	if abs > len(rows) {
		abs = len(rows)
	}
	if count >= 0 {
		rows = rows[abs:]
	} else {
		rows = rows[:len(rows)-abs]
	}
	out, err := FromRows(rows, nil)
	if err != nil {
		return Val{}, err
	}
	if len(rows) == 0 {
		out.Typ = v.Typ
		out.Shape = append([]int{0}, v.Shape[1:]...)
		out.Nums, out.Chars, out.Funcs = nil, nil, nil
	}
	return out, nil
}

// Undrop splices dropped back together with the rows that Drop(n, orig)
// removed, undoing Drop with a possibly modified remainder.
func Undrop(dropped, n, orig Val) (Val, error) {
	count, err := n.AsInt("undrop")
	if err != nil {
		return Val{}, err
	}
	rows := orig.Rows()
	abs := count
	if abs < 0 {
		abs = -abs
	}
	if abs > len(rows) {
		abs = len(rows)
	}
	var out []Val
	if count >= 0 {
		out = append(out, rows[:abs]...)
		out = append(out, dropped.Rows()...)
	} else {
		out = append(out, dropped.Rows()...)
		out = append(out, rows[len(rows)-abs:]...)
	}
	return FromRows(out, nil)
}

// Rotate rotates the rows of v left by n (right for negative n).
func Rotate(n, v Val) (Val, error) {
	count, err := n.AsInt("rotate")
	if err != nil {
		return Val{}, err
	}
	if v.Rank() == 0 || v.RowCount() == 0 {
		return v, nil
	}
	m := v.RowCount()
	shift := ((count % m) + m) % m
	rows := v.Rows()
	rows = append(rows[shift:], rows[:shift]...)
	return FromRows(rows, nil)
}

// Select picks rows of v by index.  A scalar index yields the row itself;
// an index vector yields an array of the selected rows.
func Select(ix, v Val, fill *Val) (Val, error) {
	if v.Rank() == 0 {
		return Val{}, Errorf("cannot select from a scalar")
	}
	if ix.Rank() == 0 {
		i, err := indexInto(ix, v.RowCount(), "select")
		if err != nil {
			return Val{}, err
		}
		return v.Row(i).Copy(), nil
	}
	indices, err := ix.AsInts("select")
	if err != nil {
		return Val{}, err
	}
	rows := make([]Val, len(indices))
	for k, i := range indices {
		j, err := checkIndex(i, v.RowCount(), "select")
		if err != nil {
			return Val{}, err
		}
		rows[k] = v.Row(j)
	}
	return FromRows(rows, fill)
}

// Unselect writes the rows of result back into orig at the selected
// indices, undoing Select with possibly modified rows.
func Unselect(result, ix, orig Val) (Val, error) {
	rows := orig.Rows()
	if ix.Rank() == 0 {
		i, err := indexInto(ix, len(rows), "unselect")
		if err != nil {
			return Val{}, err
		}
		rows[i] = result
		return FromRows(rows, nil)
	}
	indices, err := ix.AsInts("unselect")
	if err != nil {
		return Val{}, err
	}
	if result.RowCount() != len(indices) {
		return Val{}, Errorf("unselect expects %d rows (got %d)", len(indices), result.RowCount())
	}
	for k, i := range indices {
		j, err := checkIndex(i, len(rows), "unselect")
		if err != nil {
			return Val{}, err
		}
		rows[j] = result.Row(k)
	}
	return FromRows(rows, nil)
}

// Pick indexes a cell of v with an index vector addressing leading axes.
func Pick(ix, v Val) (Val, error) {
	indices, err := ix.AsInts("pick")
	if err != nil {
		return Val{}, err
	}
	if len(indices) > v.Rank() {
		return Val{}, Errorf("cannot pick depth %d from an array of shape %v", len(indices), v.Shape)
	}
	cell := v
	for _, i := range indices {
		j, err := checkIndex(i, cell.RowCount(), "pick")
		if err != nil {
			return Val{}, err
		}
		cell = cell.Row(j)
	}
	return cell.Copy(), nil
}

// Unpick writes result into the cell of orig addressed by the index vector,
// undoing Pick with a possibly modified cell.
func Unpick(result, ix, orig Val) (Val, error) {
	indices, err := ix.AsInts("unpick")
	if err != nil {
		return Val{}, err
	}
	if len(indices) == 0 {
		return result, nil
	}
	i, err := checkIndex(indices[0], orig.RowCount(), "unpick")
	if err != nil {
		return Val{}, err
	}
	rows := orig.Rows()
	inner, err := Unpick(result, FromInts(indices[1:]), rows[i])
	if err != nil {
		return Val{}, err
	}
	rows[i] = inner
	return FromRows(rows, nil)
}

// Keep replicates each row of v by the matching count.  A scalar count
// replicates every row uniformly.
func Keep(counts, v Val) (Val, error) {
	if v.Rank() == 0 {
		return Val{}, Errorf("cannot keep from a scalar")
	}
	cs, err := counts.AsInts("keep")
	if err != nil {
		return Val{}, err
	}
	if counts.Rank() == 0 {
		uniform := make([]int, v.RowCount())
		for i := range uniform {
			uniform[i] = cs[0]
		}
		cs = uniform
	}
	if len(cs) != v.RowCount() {
		return Val{}, Errorf("keep expects %d counts (got %d)", v.RowCount(), len(cs))
	}
	var rows []Val
	for i, c := range cs {
		if c < 0 {
			return Val{}, Errorf("keep expects natural counts (got %d)", c)
		}
		for ; c > 0; c-- {
			rows = append(rows, v.Row(i))
		}
	}
	out, err := FromRows(rows, nil)
	if err != nil {
		return Val{}, err
	}
	if len(rows) == 0 {
		out.Typ = v.Typ
		out.Shape = append([]int{0}, v.Shape[1:]...)
	}
	return out, nil
}

// Unkeep writes the kept rows back into orig, undoing Keep for boolean
// counts with possibly modified rows.
func Unkeep(kept, counts, orig Val) (Val, error) {
	cs, err := counts.AsInts("unkeep")
	if err != nil {
		return Val{}, err
	}
	if len(cs) != orig.RowCount() {
		return Val{}, Errorf("unkeep expects %d counts (got %d)", orig.RowCount(), len(cs))
	}
	rows := orig.Rows()
	next := 0
	for i, c := range cs {
		switch c {
		case 0:
		case 1:
			if next >= kept.RowCount() {
				return Val{}, Errorf("unkeep ran out of rows at count %d", i)
			}
			rows[i] = kept.Row(next)
			next++
		default:
			return Val{}, Errorf("unkeep expects boolean counts (got %d)", c)
		}
	}
	return FromRows(rows, nil)
}

// Windows returns the sliding windows of n consecutive rows of v.
func Windows(n, v Val) (Val, error) {
	size, err := n.AsNat("windows")
	if err != nil {
		return Val{}, err
	}
	if size == 0 || size > v.RowCount() {
		return Val{}, Errorf("cannot take windows of %d rows from an array of %d rows", size, v.RowCount())
	}
	var wins []Val
	for i := 0; i+size <= v.RowCount(); i++ {
		rows := make([]Val, size)
		for j := range rows {
			rows[j] = v.Row(i + j)
		}
		w, err := FromRows(rows, nil)
		if err != nil {
			return Val{}, err
		}
		wins = append(wins, w)
	}
	return FromRows(wins, nil)
}

// Find marks the row positions of v where consecutive rows match the rows
// of the needle.
func Find(needle, v Val) (Val, error) {
	if v.Rank() == 0 {
		return Val{}, Errorf("cannot find in a scalar")
	}
	span := 1
	if needle.Rank() >= v.Rank() {
		span = needle.RowCount()
	}
	mask := make([]int, v.RowCount())
	for i := 0; i+span <= v.RowCount(); i++ {
		hit := true
		for j := 0; j < span; j++ {
			target := needle
			if needle.Rank() >= v.Rank() {
				target = needle.Row(j)
			}
			if !v.Row(i + j).Equal(target) {
				hit = false
				break
			}
		}
		if hit {
			mask[i] = 1
		}
	}
	return FromInts(mask), nil
}

// Member reports, for each row of a, whether it occurs as a row of b.
func Member(a, b Val) (Val, error) {
	mask := make([]int, a.RowCount())
	for i := range mask {
		row := a.Row(i)
		for j := 0; j < b.RowCount(); j++ {
			if b.Row(j).Equal(row) {
				mask[i] = 1
				break
			}
		}
	}
	if a.Rank() == 0 {
		return Num(float64(mask[0])), nil
	}
	return FromInts(mask), nil
}

// IndexOf reports, for each row of a, the index of its first occurrence as
// a row of b, or the row count of b when absent.
func IndexOf(a, b Val) (Val, error) {
	out := make([]int, a.RowCount())
	for i := range out {
		row := a.Row(i)
		out[i] = b.RowCount()
		for j := 0; j < b.RowCount(); j++ {
			if b.Row(j).Equal(row) {
				out[i] = j
				break
			}
		}
	}
	if a.Rank() == 0 {
		return Num(float64(out[0])), nil
	}
	return FromInts(out), nil
}

func indexInto(ix Val, n int, what string) (int, error) {
	i, err := ix.AsInt(what)
	if err != nil {
		return 0, err
	}
	return checkIndex(i, n, what)
}

func checkIndex(i, n int, what string) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, Errorf("%s index %d is out of bounds for %d rows", what, i, n)
	}
	return i, nil
}
