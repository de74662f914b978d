package logger

import (
	"fmt"
	"log"
	"os"
	"regexp"
)

const calldepth = 3

var (
	Silent  bool
	Verbose bool
	Color   bool

	stdOutLogger     = log.New(os.Stdout, "", 0)
	stdOutWarnLogger = log.New(os.Stdout, "WARNING: ", 0)
	stdErrLogger     = log.New(os.Stderr, "ERROR: ", 0)

	trailingWhitespace = regexp.MustCompile(`\s*$`)
)

// Writer adapts a plain output func to io.Writer so that external libraries
// (e.g. the aws-sdk-go logger) can be pointed at our output.
type Writer func(b []byte) (n int, err error)

func (w Writer) Write(b []byte) (n int, err error) {
	return w(b)
}

func StdErrOutput(b []byte) (n int, err error) {
	if Color {
		b = append([]byte(ColorRed), b...)
		b = append(b, ColorNC...)
	}
	return os.Stderr.Write(b)
}

func Error(v ...interface{}) {
	output(stdErrLogger, ColorRed, fmt.Sprint(v...))
}

func Errorf(format string, v ...interface{}) {
	output(stdErrLogger, ColorRed, fmt.Sprintf(format, v...))
}

func Warn(v ...interface{}) {
	output(stdOutWarnLogger, ColorLightRed, fmt.Sprint(v...))
}

func Warnf(format string, v ...interface{}) {
	output(stdOutWarnLogger, ColorLightRed, fmt.Sprintf(format, v...))
}

func Heading(v ...interface{}) {
	if !Silent {
		output(stdOutLogger, ColorGreen, fmt.Sprint(v...))
	}
}

func Headingf(format string, v ...interface{}) {
	if !Silent {
		output(stdOutLogger, ColorGreen, fmt.Sprintf(format, v...))
	}
}

func Info(v ...interface{}) {
	if !Silent {
		output(stdOutLogger, ColorCyan, fmt.Sprint(v...))
	}
}

func Infof(format string, v ...interface{}) {
	if !Silent {
		output(stdOutLogger, ColorCyan, fmt.Sprintf(format, v...))
	}
}

func Debug(v ...interface{}) {
	if Verbose && !Silent {
		output(stdOutLogger, ColorLightGrey, fmt.Sprint(v...))
	}
}

func Debugf(format string, v ...interface{}) {
	if Verbose && !Silent {
		output(stdOutLogger, ColorLightGrey, fmt.Sprintf(format, v...))
	}
}

func output(l *log.Logger, color, msg string) {
	if Color {
		// Keep trailing newlines outside of the color escape so that piped
		// output doesn't end up with colored blank lines.
		trimmed := trailingWhitespace.ReplaceAllString(msg, "")
		trailing := trailingWhitespace.FindString(msg)
		msg = color + trimmed + ColorNC + trailing
	}
	l.Output(calldepth, msg)
}
