// Package seqcodec 负责序列在 JSON 与 MessagePack 之间的编解码
package seqcodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format 序列的编码格式
type Format string

const (
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

// ParseFormat 解析格式名称，大小写不敏感，"mp" 是 msgpack 的别名
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return JSON, nil
	case "msgpack", "mp":
		return MsgPack, nil
	}
	return "", fmt.Errorf("seqcodec: 不支持的格式 %q", s)
}

// Result 一次拼接的输出：拼接后的序列与被删除的元素
type Result struct {
	Result  []any `json:"result" msgpack:"result"`
	Removed []any `json:"removed" msgpack:"removed"`
}

// Decode 从 r 读取一个编码后的数组。
// JSON 中的整数解码为 int64，其余数字解码为 float64，
// 这样结果可以原样交给 MessagePack 编码
func Decode(f Format, r io.Reader) ([]any, error) {
	var (
		seq []any
		err error
	)
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err = dec.Decode(&seq); err == nil {
			// 只允许一个顶层值，之后只能是空白
			var extra json.RawMessage
			if extraErr := dec.Decode(&extra); extraErr != io.EOF {
				return nil, fmt.Errorf("seqcodec: 解码 %s 失败: 数组之后存在多余的数据", f)
			}
			for i, v := range seq {
				seq[i] = fromJSONNumber(v)
			}
		}
	case MsgPack:
		err = msgpack.NewDecoder(r).Decode(&seq)
	default:
		return nil, fmt.Errorf("seqcodec: 不支持的格式 %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("seqcodec: 解码 %s 失败: %w", f, err)
	}
	if seq == nil {
		// null 视为空序列
		seq = []any{}
	}
	return seq, nil
}

// fromJSONNumber 递归地把 json.Number 转换为 int64 或 float64，
// 两者都无法表示时保留原值
func fromJSONNumber(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
	case []any:
		for i, e := range t {
			t[i] = fromJSONNumber(e)
		}
	case map[string]any:
		for k, e := range t {
			t[k] = fromJSONNumber(e)
		}
	}
	return v
}

// DecodeString 是 Decode 的便捷版本
func DecodeString(f Format, s string) ([]any, error) {
	return Decode(f, strings.NewReader(s))
}

// Encode 把 v 按照格式 f 写入 w，JSON 输出以换行结尾
func Encode(f Format, w io.Writer, v any) error {
	var err error
	switch f {
	case JSON:
		err = json.NewEncoder(w).Encode(v)
	case MsgPack:
		err = msgpack.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("seqcodec: 不支持的格式 %q", f)
	}
	if err != nil {
		return fmt.Errorf("seqcodec: 编码 %s 失败: %w", f, err)
	}
	return nil
}

// Marshal 把 v 编码为字节
func Marshal(f Format, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(f, &buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
