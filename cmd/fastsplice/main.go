// fastsplice 从标准输入读取一个数组，按照 splice 语义拼接后输出结果与被删除的元素
//
//	echo '[1,2,3,4,5]' | fastsplice -start -2 -delete 5 -insert '[6,7]'
//	{"result":[1,2,3,6,7],"removed":[4,5]}
//
// 没有传入 -start 时不做任何修改；没有传入 -delete 时删除到末尾。
// 配置依次来自配置文件（-config）、FASTSPLICE_ 前缀的环境变量以及命令行参数，后者优先。
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lhh-gh/fastsplice"
	"github.com/lhh-gh/fastsplice/seqcodec"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	keyFormat   = "format"
	keyLogLevel = "log.level"
)

type options struct {
	config      string
	format      string
	logLevel    string
	start       string
	deleteCount string
	insert      string

	set map[string]bool
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	default:
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: map[string]bool{}}
	f := flag.NewFlagSet("fastsplice", flag.ContinueOnError)
	f.SetOutput(stderr)
	f.StringVar(&o.config, "config", "", "配置文件路径")
	f.StringVar(&o.format, "format", "", "输入输出格式：json 或 msgpack")
	f.StringVar(&o.logLevel, "log-level", "", "日志级别")
	f.StringVar(&o.start, "start", "", "起始位置，负数从末尾倒数")
	f.StringVar(&o.deleteCount, "delete", "", "删除个数，不传时删除到末尾")
	f.StringVar(&o.insert, "insert", "", "要插入的元素，JSON 数组")
	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if f.NArg() > 0 {
		return nil, fmt.Errorf("fastsplice: 多余的参数 %q", f.Args())
	}
	// 只有显式出现在命令行上的参数才算传入，空字符串同样算传入
	f.Visit(func(fl *flag.Flag) {
		o.set[fl.Name] = true
	})
	return o, nil
}

func loadConfig(o *options) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("fastsplice")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyFormat, string(seqcodec.JSON))
	v.SetDefault(keyLogLevel, "warn")

	if o.config != "" {
		v.SetConfigFile(o.config)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("fastsplice: 读取配置文件失败: %w", err)
		}
	}
	if o.set["format"] {
		v.Set(keyFormat, o.format)
	}
	if o.set["log-level"] {
		v.Set(keyLogLevel, o.logLevel)
	}
	return v, nil
}

func newLogger(level string, w io.Writer) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("fastsplice: 非法的日志级别 %q: %w", level, err)
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core).Sugar(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return err
	}
	v, err := loadConfig(o)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	logger, err := newLogger(v.GetString(keyLogLevel), stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	defer logger.Sync()

	if err = splice(o, v, logger, stdin, stdout); err != nil {
		logger.Errorw("拼接失败", "error", err)
	}
	return err
}

func argOf(o *options, name, val string) fastsplice.Arg {
	if !o.set[name] {
		return fastsplice.Omitted
	}
	return fastsplice.Provided(val)
}

func splice(o *options, v *viper.Viper, logger *zap.SugaredLogger, stdin io.Reader, stdout io.Writer) error {
	format, err := seqcodec.ParseFormat(v.GetString(keyFormat))
	if err != nil {
		return err
	}
	seq, err := seqcodec.Decode(format, stdin)
	if err != nil {
		return err
	}
	var inserts []any
	if o.insert != "" {
		if inserts, err = seqcodec.DecodeString(seqcodec.JSON, o.insert); err != nil {
			return fmt.Errorf("fastsplice: 解析 -insert 失败: %w", err)
		}
	}

	start := argOf(o, "start", o.start)
	deleteCount := argOf(o, "delete", o.deleteCount)
	logger.Debugw("开始拼接",
		"format", format,
		"length", len(seq),
		"start", start,
		"deleteCount", deleteCount,
		"inserts", len(inserts))

	removed, err := fastsplice.Splice(&seq, start, deleteCount, inserts...)
	if err != nil {
		return err
	}
	logger.Debugw("拼接完成", "length", len(seq), "removed", len(removed))
	return seqcodec.Encode(format, stdout, seqcodec.Result{Result: seq, Removed: removed})
}
