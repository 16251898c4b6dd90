package log

import (
    "fmt"
    "os"
    "runtime"
    "strings"
    "sync"
    "time"
)

type LogLevel int
const (
    TraceLevel LogLevel = iota
    DebugLevel
    InfoLevel
    WarnLevel
    ErrorLevel
    FatalLevel
)

var logDirectory string
var serverlog *os.File
var currentSuffix string
var serverchan chan string
var done chan struct{}
var level LogLevel
var overrides map[string]LogLevel

var stoppingMux sync.Mutex = sync.Mutex{}

func Init(ld string, l LogLevel, o ...map[string]LogLevel) {
    logDirectory = ld
    currentSuffix = logSuffix()
    serverlog = openLog()

    level = l
    serverchan = make(chan string, 10)
    done = make(chan struct{}, 1)
    if len(o) > 0 {
        overrides = o[0]
    }

    go runServerlog()
}

func Stop(s string, r interface{}) {
    // This is never unlocked.  The first goroutine to panic and end up here
    // gets the lock, all others pile up until the first caller inevitably
    // kills the application
    stoppingMux.Lock()

    Fatal("log.Stop first call: '%s':%s", s, r)
    close(serverchan)
    <-done
}

func Fatal(msg string, fargs ...interface{}) {
    write(FatalLevel, "FATAL", msg, fargs...)
}

func Error(msg string, fargs ...interface{}) {
    write(ErrorLevel, "ERROR", msg, fargs...)
}

func Warn(msg string, fargs ...interface{}) {
    write(WarnLevel, "WARN", msg, fargs...)
}

func Info(msg string, fargs ...interface{}) {
    write(InfoLevel, "INFO", msg, fargs...)
}

func Debug(msg string, fargs ...interface{}) {
    write(DebugLevel, "DEBUG", msg, fargs...)
}

func Trace(msg string, fargs ...interface{}) {
    write(TraceLevel, "TRACE", msg, fargs...)
}

func write(l LogLevel, tag string, msg string, fargs ...interface{}) {
    p := getPkg()
    if level <= l {
        serverchan <-fmt.Sprintf(fmt.Sprintf("[%s] (%s) %s", tag, p, msg), fargs...)
    } else if o, ok := overrides[p]; ok && o <= l {
        serverchan <-fmt.Sprintf(fmt.Sprintf("[%s] (%s) %s", tag, p, msg), fargs...)
    }
}

func runServerlog() {
    for m := range serverchan {
        // Roll the logfile at the first write of a new day.  We don't roll
        // when running tests (logDirectory is /tmp).
        if s := logSuffix(); s != currentSuffix && logDirectory != "/tmp" {
            currentSuffix = s
            serverlog.Close()
            serverlog = openLog()
        }
        log(serverlog, m)
    }
    serverlog.Sync()
    close(done)
}

func openLog() *os.File {
    f, err := os.OpenFile(
        fmt.Sprintf("%s/server.log.%s", logDirectory, currentSuffix),
        os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
    if err != nil {
        panic(fmt.Sprintf("Unable to open serverlog in %s for writing: %s",
            logDirectory, err))
    }
    return f
}

// date +'%Y%m%d'
func logSuffix() string {
    return time.Now().Format("20060102")
}

func getPkg() string {
    pc, _, _, ok := runtime.Caller(3)
    details := runtime.FuncForPC(pc)
    if ok && details != nil {
        name := details.Name()
        return name[strings.LastIndex(name, "/")+1:strings.Index(name, ".")]
    }
    return ""
}

func log(logfile *os.File, msg string) {
    logfile.WriteString(fmt.Sprintf("%s %s\n",
        time.Now().Format("15:04:05.000Z"),
        strings.ReplaceAll(msg, "\n", "\\n")))
}
