// Package convx 把任意输入值转换为整数下标
package convx

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ToInteger 将任意值转换为 int：
//   - nil、无法解析的值、NaN 转换为 0
//   - bool 转换为 0 或 1
//   - 浮点数向零截断
//   - 超出 int 表示范围的值截断到 math.MaxInt / math.MinInt
//   - 字符串会先去掉首尾空白，空串为 0，支持十进制、浮点、Infinity 以及 0x/0o/0b 前缀写法
//
// 示例：
//
//	ToInteger(3.9)    => 3
//	ToInteger("-2.5") => -2
//	ToInteger(nil)    => 0
func ToInteger(v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return n
	case bool:
		if n {
			return 1
		}
		return 0
	case uint:
		return fromUint64(uint64(n))
	case uint64:
		return fromUint64(n)
	case int8, int16, int32, int64, uint8, uint16, uint32:
		i, err := cast.ToInt64E(n)
		if err != nil {
			return 0
		}
		return fromInt64(i)
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case string:
		return fromString(n)
	}

	if f, err := cast.ToFloat64E(v); err == nil {
		return fromFloat(f)
	}
	return fromKind(reflect.ValueOf(v))
}

// fromKind 处理底层为数值的自定义类型，例如 type Offset int
func fromKind(rv reflect.Value) int {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float())
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
	case reflect.String:
		return fromString(rv.String())
	}
	return 0
}

var (
	decimalLiteral  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	radixLiteral    = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
	infinityLiteral = regexp.MustCompile(`^[+-]?Infinity$`)
)

// fromString 只接受十进制、浮点、0x/0o/0b 以及 Infinity 写法，
// strconv 额外支持的 inf、nan 与数字分隔符 _ 均视为非数字
func fromString(s string) int {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return 0
	case radixLiteral.MatchString(s):
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return math.MaxInt
			}
			return 0
		}
		return fromUint64(u)
	case infinityLiteral.MatchString(s):
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	case !decimalLiteral.MatchString(s):
		return 0
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		// 超出 float64 范围，ParseFloat 返回 ±Inf 或 0
		f, _ = strconv.ParseFloat(s, 64)
	}
	return fromFloat(f)
}

func fromFloat(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	t := math.Trunc(f)
	switch {
	case t >= float64(math.MaxInt):
		return math.MaxInt
	case t <= float64(math.MinInt):
		return math.MinInt
	}
	return int(t)
}

func fromInt64(i int64) int {
	switch {
	case i > math.MaxInt:
		return math.MaxInt
	case i < math.MinInt:
		return math.MinInt
	}
	return int(i)
}

func fromUint64(u uint64) int {
	if u > math.MaxInt {
		return math.MaxInt
	}
	return int(u)
}
