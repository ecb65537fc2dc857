package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 애플리케이션 전역에서 사용하는 최소 로거 인터페이스다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그를 위한 공통 필드 타입이다.
type Fields map[string]any

// Log 는 전역 로거 인스턴스다.
// Init 이 호출되지 않더라도 기본 info 레벨로 동작한다.
var Log Logger = NewLogger("info")

// Init 은 config.yaml 의 logging.level 값으로 전역 로거를 교체한다.
func Init(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)
}

// NewLogger 는 주어진 레벨로 gookit/slog 기반 JSON 로거를 생성한다.
func NewLogger(level string) Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	// 기본 필드는 datetime/level/message 로 제한하고 나머지는 Fields 의 top-level 키로 출력한다.
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	return slog.NewWithHandlers(h)
}

// withServiceName 은 service_name 필드를 SERVICE_NAME 환경변수 기준으로 보강한다.
func withServiceName(fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields["service_name"]; !ok {
		sn := os.Getenv("SERVICE_NAME")
		if sn == "" {
			sn = "feed-admin"
		}
		fields["service_name"] = sn
	}
	return fields
}

func record(level slog.Level, msg string, fields Fields) {
	fields = withServiceName(fields)
	lg, ok := Log.(*slog.Logger)
	if !ok {
		switch level {
		case slog.DebugLevel:
			Log.Debug(msg)
		case slog.WarnLevel:
			Log.Warn(msg)
		case slog.ErrorLevel:
			Log.Error(msg)
		default:
			Log.Info(msg)
		}
		return
	}
	lg.WithFields(slog.M(fields)).Log(level, msg)
}

// InfoWithFields 는 request_id, span_id, view_id 등 구조화 필드를 포함한 JSON 로그를 출력한다.
func InfoWithFields(msg string, fields Fields) {
	record(slog.InfoLevel, msg, fields)
}

func DebugWithFields(msg string, fields Fields) {
	record(slog.DebugLevel, msg, fields)
}

func WarnWithFields(msg string, fields Fields) {
	record(slog.WarnLevel, msg, fields)
}

func ErrorWithFields(msg string, fields Fields) {
	record(slog.ErrorLevel, msg, fields)
}
