// Package slice 提供切片的原地拼接（splice）以及基于拼接实现的插入、删除操作
package slice

import (
	"slices"

	"github.com/lhh-gh/fastsplice/internal/errs"
)

// Normalize 将已经转换为整数的 start 与 deleteCount 规范化为合法区间
// 参数：
//   - length:      切片长度
//   - start:       起始位置，负数表示从末尾倒数
//   - deleteCount: 删除个数
//   - toEnd:       调用方没有传入 deleteCount 时为 true，此时删除到末尾
//
// 返回值满足 0 <= start <= length 且 0 <= deleteCount <= length-start
//
// 注意：
//   - toEnd 与 deleteCount 为 0 含义不同，前者删除到末尾，后者什么都不删
//   - 示例（length = 5）：
//     Normalize(5, -1, 0, true)  => 4, 1
//     Normalize(5, 9, 3, false)  => 5, 0
//     Normalize(5, 1, -2, false) => 1, 0
func Normalize(length, start, deleteCount int, toEnd bool) (int, int) {
	if start < 0 {
		start = max(length+start, 0)
	} else {
		start = min(start, length)
	}
	if toEnd {
		return start, length - start
	}
	return start, min(max(deleteCount, 0), length-start)
}

// plan 描述一次拼接需要的元素搬迁
type plan struct {
	start       int
	tail        int // 被删除区间之后第一个元素的位置
	deleteCount int
	insertCount int
	delta       int // 长度变化量，正数表示切片变长
}

func newPlan(start, deleteCount, insertCount int) plan {
	return plan{
		start:       start,
		tail:        start + deleteCount,
		deleteCount: deleteCount,
		insertCount: insertCount,
		delta:       insertCount - deleteCount,
	}
}

func (p plan) noop() bool {
	return p.deleteCount == 0 && p.insertCount == 0
}

// shift 按照 p 原地搬迁元素并写入 inserts，返回新切片与被删除的元素
// 实现步骤：
// 1. 复制被删除区间 [start, tail)，这是唯一一次与切片长度无关的额外分配
// 2. 变长：先扩展长度，再从后向前把尾部右移 delta（避免覆盖未移动的元素）
// 3. 变短：从前向后把尾部左移 -delta，空出的位置清零后截断
// 4. 把 inserts 写入 [start, start+insertCount)
//
// [0, start) 前缀不会被读写
func shift[T any](src []T, p plan, inserts []T) ([]T, []T) {
	removed := make([]T, p.deleteCount)
	if p.noop() {
		return src, removed
	}
	copy(removed, src[p.start:p.tail])

	length := len(src)
	switch {
	case p.delta > 0:
		// 容量足够时复用底层数组，否则和 append 一样重新分配
		src = slices.Grow(src, p.delta)[:length+p.delta]
		for i := length - 1; i >= p.tail; i-- {
			src[i+p.delta] = src[i]
		}
	case p.delta < 0:
		for i := p.tail; i < length; i++ {
			src[i+p.delta] = src[i]
		}
		// 清掉被截断的位置，防止底层数组继续引用已删除的元素
		var zero T
		for i := length + p.delta; i < length; i++ {
			src[i] = zero
		}
		src = src[:length+p.delta]
	}

	for i := 0; i < p.insertCount; i++ {
		src[p.start+i] = inserts[i]
	}
	return src, removed
}

// Splice 删除 src[start:start+deleteCount] 并在 start 处插入 inserts
// 参数必须已经规范化（见 Normalize）：
//   - 0 <= start <= len(src)
//   - 0 <= deleteCount <= len(src)-start
//
// 返回值：
//   - []T:   拼接后的切片，容量足够时与 src 共享底层数组
//   - []T:   被删除的元素，长度恰好为 deleteCount，不会为 nil
//   - error: 参数越界时返回，此时 src 不会被修改
//
// 注意：inserts 与 src 共享底层数组时行为未定义
func Splice[T any](src []T, start, deleteCount int, inserts []T) ([]T, []T, error) {
	length := len(src)
	if start < 0 || start > length {
		return nil, nil, errs.NewErrIndexOutOfRange(length, start)
	}
	if deleteCount < 0 || deleteCount > length-start {
		return nil, nil, errs.NewErrIndexOutOfRange(length, start+deleteCount)
	}
	res, removed := shift(src, newPlan(start, deleteCount, len(inserts)), inserts)
	return res, removed, nil
}
