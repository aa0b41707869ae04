package slice

import "github.com/lhh-gh/fastsplice/internal/errs"

// Delete 删除切片 src 中 index 位置的元素
// 参数说明：
//   - src:   原始切片
//   - index: 待删除元素的索引位置（0 <= index < len(src)）
//
// 返回值说明：
//   - []T:   删除指定元素后的新切片，与 src 共享底层数组
//   - T:     被删除的元素值
//   - error: 索引越界时返回
//
// 示例：删除索引2的元素 [1,2,3,4] -> [1,2,4]
func Delete[T any](src []T, index int) ([]T, T, error) {
	length := len(src)
	if index < 0 || index >= length {
		var zero T
		return nil, zero, errs.NewErrIndexOutOfRange(length, index)
	}
	res, removed := shift(src, newPlan(index, 1, 0), nil)
	return res, removed[0], nil
}
