// Package fastsplice 提供与 JavaScript Array.prototype.splice 语义一致的原地拼接。
//
// 与先删除再插入、或者拼接出一个新切片相比，Splice 只移动受影响区间之后的元素，
// 除了返回给调用方的被删除元素以外不会额外分配与切片长度相关的内存；
// 容量足够时新切片与原切片共享底层数组。
//
// start 与 deleteCount 使用 Arg 表示，区分“没有传”与“传了一个值”：
//
//	Splice(&s, Omitted, Omitted)         // 什么都不做
//	Splice(&s, Provided(3), Omitted)     // 删除 s[3:] 到末尾
//	Splice(&s, Provided(3), Provided(nil)) // nil 转换为 0，什么都不删
package fastsplice

import (
	"fmt"

	"github.com/lhh-gh/fastsplice/internal/convx"
	"github.com/lhh-gh/fastsplice/internal/errs"
	"github.com/lhh-gh/fastsplice/internal/slice"
)

// ErrInvalidArgument 表示目标不是可修改的切片，或者插入的值不是切片
var ErrInvalidArgument = errs.ErrInvalidArgument

// Arg 是一个可选参数，Omitted 表示调用方没有传入
type Arg struct {
	val      any
	provided bool
}

// Omitted 表示没有传入该参数
var Omitted = Arg{}

// Provided 构造一个已传入的参数，v 可以是任意值，使用时按 ToInteger 的规则转换
func Provided(v any) Arg {
	return Arg{val: v, provided: true}
}

// IsProvided 返回该参数是否被传入
func (a Arg) IsProvided() bool {
	return a.provided
}

// Value 返回传入的原始值，未传入时为 nil
func (a Arg) Value() any {
	return a.val
}

func (a Arg) String() string {
	if !a.provided {
		return "<omitted>"
	}
	return fmt.Sprint(a.val)
}

// ToInteger 按照拼接参数的规则把任意值转换为整数：
// 非数字转换为 0，浮点数向零截断，结果限制在 int 范围内
func ToInteger(v any) int {
	return convx.ToInteger(v)
}

// normalize 按照传入情况解析 start 与 deleteCount，noop 为 true 时不需要做任何修改
func normalize(length int, start, deleteCount Arg) (s, dc int, noop bool) {
	if !start.provided {
		return 0, 0, true
	}
	s, dc = slice.Normalize(length, convx.ToInteger(start.val), convx.ToInteger(deleteCount.val), !deleteCount.provided)
	return s, dc, false
}

// Splice 原地修改 *seq：删除从 start 开始的 deleteCount 个元素并在该位置插入 inserts，
// 返回被删除的元素。
//
// 参数规则：
//   - start 未传入：不做任何修改，返回空切片
//   - start 为负数时从末尾倒数，过小截断为 0，过大截断为 len(*seq)
//   - deleteCount 未传入：删除 start 之后的全部元素
//   - deleteCount 为负数视为 0，超过剩余长度时截断
//
// seq 为 nil 时返回 ErrInvalidArgument，此时不会有任何修改。
// inserts 与 *seq 共享底层数组时行为未定义。
func Splice[T any](seq *[]T, start, deleteCount Arg, inserts ...T) ([]T, error) {
	if seq == nil {
		return nil, errs.NewErrInvalidArgument("需要切片指针，实际为 nil")
	}
	s, dc, noop := normalize(len(*seq), start, deleteCount)
	if noop {
		return []T{}, nil
	}
	res, removed, err := slice.Splice(*seq, s, dc, inserts)
	if err != nil {
		return nil, err
	}
	*seq = res
	return removed, nil
}
