package vecsum

// CombineFunc stores the sum of v's elements in dest.
// The sum of zero elements is 0; overflow wraps.
type CombineFunc func(v *Vector, dest *int64)

// Variant names a CombineFunc.
type Variant struct {
	Name string
	Fn   CombineFunc
}

// Variants returns every combine implementation, from the most to the least
// call-heavy, followed by Combine4b.
func Variants() []Variant {
	return []Variant{
		{Name: "combine1", Fn: Combine1},
		{Name: "combine2", Fn: Combine2},
		{Name: "combine3", Fn: Combine3},
		{Name: "combine4", Fn: Combine4},
		{Name: "combine5", Fn: Combine5},
		{Name: "combine6", Fn: Combine6},
		{Name: "combine7", Fn: Combine7},
		{Name: "combine4b", Fn: Combine4b},
	}
}

// Combine1 calls Len on every iteration and reads through GetElement.
func Combine1(v *Vector, dest *int64) {
	*dest = 0
	for i := int64(0); i < v.Len(); i++ {
		var val int64
		v.GetElement(i, &val)
		*dest = *dest + val
	}
}

// Combine2 hoists Len out of the loop.
func Combine2(v *Vector, dest *int64) {
	*dest = 0
	length := v.Len()
	for i := int64(0); i < length; i++ {
		var val int64
		v.GetElement(i, &val)
		*dest = *dest + val
	}
}

// Combine3 hoists Len and Start and reads without bounds checks.
func Combine3(v *Vector, dest *int64) {
	*dest = 0
	length := v.Len()
	data := v.Start()
	for i := int64(0); i < length; i++ {
		*dest = *dest + data.At(i)
	}
}

// Combine4 accumulates in a local and writes dest once.
func Combine4(v *Vector, dest *int64) {
	length := v.Len()
	data := v.Start()
	var acc int64
	for i := int64(0); i < length; i++ {
		acc = acc + data.At(i)
	}
	*dest = acc
}

// Combine5 unrolls 2x1: two elements per iteration into one accumulator.
func Combine5(v *Vector, dest *int64) {
	length := v.Len()
	limit := length - 1
	data := v.Start()
	var acc int64

	// i+1 <= limit inside the loop, so both reads are in range.
	i := int64(0)
	for ; i < limit; i += 2 {
		acc = (acc + data.At(i)) + data.At(i+1)
	}
	// At most one element is left, and it is data[limit].
	for ; i < length; i++ {
		acc = acc + data.At(limit)
	}
	*dest = acc
}

// Combine6 unrolls 2x2: two elements per iteration into two accumulators.
func Combine6(v *Vector, dest *int64) {
	length := v.Len()
	limit := length - 1
	data := v.Start()
	var acc0, acc1 int64

	i := int64(0)
	for ; i < limit; i += 2 {
		acc0 = acc0 + data.At(i)
		acc1 = acc1 + data.At(i+1)
	}
	for ; i < length; i++ {
		acc0 = acc0 + data.At(limit)
	}
	*dest = acc0 + acc1
}

// Combine7 unrolls 2x1a: the pair is added first, then folded into the
// accumulator, shortening the dependency chain.
func Combine7(v *Vector, dest *int64) {
	length := v.Len()
	limit := length - 1
	data := v.Start()
	var acc int64

	i := int64(0)
	for ; i < limit; i += 2 {
		acc = acc + (data.At(i) + data.At(i+1))
	}
	if i == limit {
		acc = acc + data.At(limit)
	}
	*dest = acc
}

// Combine4b is Combine4 with a redundant per-element range check against Len.
func Combine4b(v *Vector, dest *int64) {
	length := v.Len()
	data := v.Start()
	var acc int64
	for i := int64(0); i < length; i++ {
		if i >= 0 && i < v.Len() {
			acc = acc + data.At(i)
		}
	}
	*dest = acc
}
