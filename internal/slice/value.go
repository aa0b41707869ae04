package slice

import (
	"reflect"

	"github.com/lhh-gh/fastsplice/internal/errs"
)

// SpliceValue 是 Splice 的反射版本，src 必须是切片，inserts 必须是切片或数组，
// 且元素可以赋值给 src 的元素类型。参数要求与 Splice 相同
func SpliceValue(src reflect.Value, start, deleteCount int, inserts reflect.Value) (reflect.Value, reflect.Value, error) {
	length := src.Len()
	if start < 0 || start > length {
		return reflect.Value{}, reflect.Value{}, errs.NewErrIndexOutOfRange(length, start)
	}
	if deleteCount < 0 || deleteCount > length-start {
		return reflect.Value{}, reflect.Value{}, errs.NewErrIndexOutOfRange(length, start+deleteCount)
	}

	p := newPlan(start, deleteCount, inserts.Len())
	removed := reflect.MakeSlice(src.Type(), p.deleteCount, p.deleteCount)
	if p.noop() {
		return src, removed, nil
	}
	reflect.Copy(removed, src.Slice(p.start, p.tail))

	// reflect.Copy 与内置 copy 一样可以处理重叠区间
	switch {
	case p.delta > 0:
		src = growValue(src, p.delta)
		reflect.Copy(src.Slice(p.tail+p.delta, length+p.delta), src.Slice(p.tail, length))
	case p.delta < 0:
		reflect.Copy(src.Slice(p.tail+p.delta, length+p.delta), src.Slice(p.tail, length))
		zero := reflect.Zero(src.Type().Elem())
		for i := length + p.delta; i < length; i++ {
			src.Index(i).Set(zero)
		}
		src = src.Slice(0, length+p.delta)
	}

	for i := 0; i < p.insertCount; i++ {
		src.Index(p.start + i).Set(inserts.Index(i))
	}
	return src, removed, nil
}

// growValue 把切片长度增加 n，容量不足时按两倍扩容并复制已有元素
func growValue(src reflect.Value, n int) reflect.Value {
	length := src.Len()
	if src.Cap()-length >= n {
		return src.Slice(0, length+n)
	}
	res := reflect.MakeSlice(src.Type(), length+n, max(2*src.Cap(), length+n))
	reflect.Copy(res, src)
	return res
}
