package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"

	"github.com/analogsec/analog/config"
)

var (
	GenericComponent = "Analog"
	ToolComponent    = "Tool"
	Audit            = "Audit"

	// Used by tests to silence all output.
	SuppressLogging = false

	NoColor = false

	mu       sync.Mutex
	managers = make(map[*string]*logrus.Logger)

	// Set by InitLogging from the config or the --verbose flag.
	default_level = logrus.InfoLevel
	log_directory = ""
)

type Formatter struct{}

var levelColors = map[logrus.Level]string{
	logrus.DebugLevel: "37",
	logrus.InfoLevel:  "36",
	logrus.WarnLevel:  "33",
	logrus.ErrorLevel: "31",
	logrus.FatalLevel: "31",
}

func (self *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	levelText := strings.ToUpper(entry.Level.String())

	if !NoColor && isatty.IsTerminal(os.Stderr.Fd()) {
		color, pres := levelColors[entry.Level]
		if pres {
			levelText = "\x1b[" + color + "m" + levelText + "\x1b[0m"
		}
	}

	b := fmt.Sprintf("[%s] %v %s",
		levelText, entry.Time.Format(time.RFC3339),
		strings.TrimRight(entry.Message, "\r\n"))

	if len(entry.Data) > 0 {
		serialized, _ := json_marshal(entry.Data)
		b += " " + string(serialized)
	}

	return []byte(b + "\n"), nil
}

// InitLogging should be called once the config is loaded and before
// any loggers are handed out.
func InitLogging(config_obj *config.Config) error {
	mu.Lock()
	defer mu.Unlock()

	managers = make(map[*string]*logrus.Logger)

	if config_obj.Logging == nil {
		return nil
	}

	switch config_obj.Logging.Level {
	case "debug":
		default_level = logrus.DebugLevel
	case "warn":
		default_level = logrus.WarnLevel
	case "error":
		default_level = logrus.ErrorLevel
	default:
		default_level = logrus.InfoLevel
	}

	if config_obj.Logging.OutputDirectory != "" {
		err := os.MkdirAll(config_obj.Logging.OutputDirectory, 0700)
		if err != nil {
			return err
		}
		log_directory = config_obj.Logging.OutputDirectory
	}

	return nil
}

func SetVerbose() {
	mu.Lock()
	defer mu.Unlock()
	default_level = logrus.DebugLevel
	managers = make(map[*string]*logrus.Logger)
}

// GetLogger returns the cached logger for a component, creating it
// on first use.
func GetLogger(config_obj *config.Config, component *string) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	logger, pres := managers[component]
	if pres {
		return logger
	}

	logger = logrus.New()
	logger.SetLevel(default_level)

	// The base writer is discarded - all output goes through hooks
	// so stderr and file destinations stay independent.
	logger.Out = io.Discard

	if !SuppressLogging {
		stderr_map := lfshook.WriterMap{
			logrus.DebugLevel: os.Stderr,
			logrus.InfoLevel:  os.Stderr,
			logrus.WarnLevel:  os.Stderr,
			logrus.ErrorLevel: os.Stderr,
			logrus.FatalLevel: os.Stderr,
		}
		logger.Hooks.Add(lfshook.NewHook(stderr_map, &Formatter{}))
	}

	if log_directory != "" {
		filename := filepath.Join(log_directory,
			strings.ToLower(*component)+".log")
		path_map := lfshook.PathMap{
			logrus.DebugLevel: filename,
			logrus.InfoLevel:  filename,
			logrus.WarnLevel:  filename,
			logrus.ErrorLevel: filename,
			logrus.FatalLevel: filename,
		}
		logger.Hooks.Add(lfshook.NewHook(path_map, &Formatter{}))
	}

	managers[component] = logger
	return logger
}

// Reset clears cached loggers - used by tests which switch configs.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	managers = make(map[*string]*logrus.Logger)
	log_directory = ""
	default_level = logrus.InfoLevel
}
