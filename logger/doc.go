// Package logger provides a small leveled logger with a bounded, drainable
// history of recent lines and optional plain-text file output.
//
// # Severities
//
// Four severities are ordered from most to least urgent:
//
//	Alert   "ALRT: "
//	Error   "EROR: "
//	Warning "WARN: "
//	Info    "INFO: "
//
// A message is recorded when its severity is at least as urgent as the
// logger's AcceptLevel. The default threshold is Info, which records
// everything.
//
// # Stored lines
//
// Every accepted line is kept in memory until the next call to StoredLines,
// which returns the last StoreLineNumber of them and then clears the store.
// The read drains on purpose; it is not a snapshot. Two consecutive reads
// with no logging in between return the lines once and then "".
//
// # File output
//
// With file logging on and a log file name set, each accepted line is
// appended to BaseDir/LogFileName followed by the platform line terminator.
// The file is opened and closed on every call. Errors from the file system
// are returned by Log.
//
// # Usage
//
// Build an instance and pass it around:
//
//	log := logger.New(logger.Config{LogFileName: "app.log", FileLogging: true})
//	if err := log.LogAsWarning("disk almost full"); err != nil {
//	    return err
//	}
//	fmt.Println(log.StoredLines())
//
// Or use the shared instance, created on first use:
//
//	logger.Default().LogAsInfo("ready")
//
// Leave Config.AcceptLevel unset to honor the environment variable:
//
//	LOGGER_LEVEL=WARNING ./myapp
//
// This package has no external dependencies.
package logger
