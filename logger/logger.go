package logger

import (
	"fmt"
	"github.com/mitchellh/go-homedir"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	once    sync.Once
	logger  *log.Logger
	_logger *log.Logger
	logFile *os.File
	level   = DebugLevel
)

// prefix
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	FATAL = "FATAL"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var levels = map[string]Level{
	DEBUG: DebugLevel,
	INFO:  InfoLevel,
	WARN:  WarnLevel,
	ERROR: ErrorLevel,
	FATAL: FatalLevel,
}

// ParseLevel accepts the prefix names, case-insensitive.
func ParseLevel(s string) (Level, error) {
	l, ok := levels[strings.ToUpper(s)]
	if !ok {
		return DebugLevel, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

const logFileName = "seqlist.log"

type Options struct {
	Dir    string // empty means ~/.seqlist/log
	Level  Level
	Stdout bool
}

// DefaultDir is where the log file goes when Options.Dir is empty.
func DefaultDir() (string, error) {
	dir, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".seqlist", "log"), nil
}

// Setup opens the log file and replaces the current outputs. When the file
// cannot be opened, logging continues on stdout and the error is returned.
func Setup(opt Options) error {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	level = opt.Level
	closeFile()
	var out io.Writer = io.Discard
	if opt.Stdout {
		out = os.Stdout
	}
	_logger = newLogger(out)

	path := opt.Dir
	if path == "" {
		var err error
		path, err = DefaultDir()
		if err != nil {
			logger = newLogger(io.Discard)
			_logger = newLogger(os.Stdout)
			return err
		}
	}
	err := os.MkdirAll(path, os.ModePerm)
	if err != nil {
		logger = newLogger(io.Discard)
		_logger = newLogger(os.Stdout)
		return err
	}
	f, err := os.OpenFile(filepath.Join(path, logFileName), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		logger = newLogger(io.Discard)
		_logger = newLogger(os.Stdout)
		return err
	}
	logFile = f
	logger = newLogger(logFile)
	return nil
}

// Close closes the log file opened by Setup, if any. Records keep going to
// stdout when it was enabled.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(io.Discard)
	return closeFile()
}

func closeFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// SetOutput sends every record to w only.
func SetOutput(w io.Writer) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	logger = newLogger(w)
	_logger = newLogger(io.Discard)
}

func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "", log.LstdFlags|log.LUTC)
}

func lazyInit() {
	once.Do(func() {
		logger = newLogger(io.Discard)
		_logger = newLogger(os.Stdout)
	})
}

func Debug(v ...any) {
	_log(DEBUG, true, v)
}
func Error(v ...any) {
	_log(ERROR, true, v)
}
func Info(v ...any) {
	_log(INFO, true, v)
}
func Warn(v ...any) {
	_log(WARN, true, v)
}

func Fatal(v ...any) {
	_log(FATAL, true, v)
}

// Writer adapts the logger to an io.Writer, one record per Write.
func Writer(prefix string) io.Writer {
	return writer(prefix)
}

type writer string

func (w writer) Write(p []byte) (int, error) {
	_log(string(w), false, []any{strings.TrimRight(string(p), "\n")})
	return len(p), nil
}

// _log writes one record. withCaller adds file:line of whoever called the
// level function; Writer records have no meaningful caller.
func _log(prefix string, withCaller bool, v []any) {
	lazyInit()
	mu.Lock()
	defer mu.Unlock()
	if l, ok := levels[prefix]; ok && l < level {
		return
	}
	setPrefix(prefix, withCaller)
	msg := fmt.Sprintln(v...)
	logger.Print(msg)
	_logger.Print(msg)
}
func setPrefix(logType string, withCaller bool) {
	var logPrefix string
	_, file, line, ok := runtime.Caller(3)
	if ok && withCaller {
		logPrefix = fmt.Sprintf("[%s][%s:%d]", logType, filepath.Base(file), line)
	} else {
		logPrefix = fmt.Sprintf("[%s]", logType)
	}
	logger.SetPrefix(logPrefix)
	_logger.SetPrefix(logPrefix)
}
