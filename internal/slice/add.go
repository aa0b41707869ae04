package slice

import "github.com/lhh-gh/fastsplice/internal/errs"

// Add 在切片 src 的指定位置 index 处插入元素 element，并返回新切片
// 参数：
//   - src:     原始切片
//   - element: 要插入的元素
//   - index:   插入位置（0 <= index <= len(src)）
//
// 返回值：
//   - []T:   插入元素后的新切片
//   - error: 当 index 越界时返回错误
//
// 等价于 deleteCount 为 0、只插入一个元素的拼接，
// index 之后的元素整体右移一位，index 为 len(src) 时等价于追加
//
// 示例：
//
//	Add([]int{1,2}, 3, 0)      => [3,1,2], nil
//	Add([]string{"a"}, "b", 5) => nil, index error
func Add[T any](src []T, element T, index int) ([]T, error) {
	length := len(src)
	if index < 0 || index > length {
		return nil, errs.NewErrIndexOutOfRange(length, index)
	}
	res, _ := shift(src, newPlan(index, 0, 1), []T{element})
	return res, nil
}
