package logger

import (
	"fmt"
	"log"
	"os"
)

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
	DebugLogger *log.Logger
)

func Init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	DebugLogger = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// kv appends key/value context pairs after the message.
func kv(msg string, pairs []interface{}) string {
	if len(pairs) == 0 {
		return msg
	}
	out := msg
	for i := 0; i+1 < len(pairs); i += 2 {
		out += fmt.Sprintf(" %v=%v", pairs[i], pairs[i+1])
	}
	if len(pairs)%2 != 0 {
		out += fmt.Sprintf(" %v", pairs[len(pairs)-1])
	}
	return out
}

func Info(msg string, pairs ...interface{}) {
	InfoLogger.Output(2, kv(msg, pairs))
}

func Infof(format string, v ...interface{}) {
	InfoLogger.Output(2, fmt.Sprintf(format, v...))
}

func Error(msg string, pairs ...interface{}) {
	ErrorLogger.Output(2, kv(msg, pairs))
}

func Errorf(format string, v ...interface{}) {
	ErrorLogger.Output(2, fmt.Sprintf(format, v...))
}

func Debug(msg string, pairs ...interface{}) {
	DebugLogger.Output(2, kv(msg, pairs))
}

func Debugf(format string, v ...interface{}) {
	DebugLogger.Output(2, fmt.Sprintf(format, v...))
}

func Fatal(msg string) {
	ErrorLogger.Fatal(msg)
}

func Fatalf(format string, v ...interface{}) {
	ErrorLogger.Fatalf(format, v...)
}
