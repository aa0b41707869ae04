package fastsplice

import (
	"reflect"

	"github.com/lhh-gh/fastsplice/internal/errs"
	"github.com/lhh-gh/fastsplice/internal/slice"
)

// SpliceAny 是 Splice 的动态版本，用于在编译期无法确定元素类型的场景，例如解码后的 []any。
//
// seq 必须是非 nil 的切片指针；inserts 为 nil 时视为空，否则必须是切片或数组，
// 且元素可以赋值给 *seq 的元素类型。不满足时返回 ErrInvalidArgument，且不做任何修改。
// 返回值是与 *seq 同类型的被删除元素。
func SpliceAny(seq any, start, deleteCount Arg, inserts any) (any, error) {
	if s, ok := seq.(*[]any); ok && s != nil {
		if ins, ok := inserts.([]any); ok || inserts == nil {
			return Splice(s, start, deleteCount, ins...)
		}
	}

	rv := reflect.ValueOf(seq)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return nil, errs.NewErrInvalidArgument("需要切片指针，实际为 %T", seq)
	}
	target := rv.Elem()
	ins, err := insertsValue(inserts, target.Type())
	if err != nil {
		return nil, err
	}

	s, dc, noop := normalize(target.Len(), start, deleteCount)
	if noop {
		return reflect.MakeSlice(target.Type(), 0, 0).Interface(), nil
	}
	res, removed, err := slice.SpliceValue(target, s, dc, ins)
	if err != nil {
		return nil, err
	}
	target.Set(res)
	return removed.Interface(), nil
}

func insertsValue(inserts any, typ reflect.Type) (reflect.Value, error) {
	if inserts == nil {
		return reflect.MakeSlice(typ, 0, 0), nil
	}
	iv := reflect.ValueOf(inserts)
	if iv.Kind() != reflect.Slice && iv.Kind() != reflect.Array {
		return reflect.Value{}, errs.NewErrInvalidArgument("插入的值必须是切片或数组，实际为 %T", inserts)
	}
	if !iv.Type().Elem().AssignableTo(typ.Elem()) {
		return reflect.Value{}, errs.NewErrInvalidArgument("%s 的元素不能赋值给 %s", iv.Type(), typ)
	}
	return iv, nil
}
