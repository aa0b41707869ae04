// Package errs 集中定义 fastsplice 内部使用的错误
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument 表示被拼接的目标或插入序列不是合法的切片。
// 下标越界、负数、非数字等输入一律通过截断与转换处理，不会返回该错误。
var ErrInvalidArgument = errors.New("fastsplice: 非法参数")

// NewErrIndexOutOfRange 创建一个代表下标超出范围的错误
func NewErrIndexOutOfRange(length int, index int) error {
	return fmt.Errorf("fastsplice: 下标超出范围，长度 %d, 下标 %d", length, index)
}

// NewErrInvalidArgument 包装 ErrInvalidArgument，调用方可以通过 errors.Is 判断
func NewErrInvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
