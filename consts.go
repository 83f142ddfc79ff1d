package daylog

const (
	// DefaultLogDirName is the directory created under the working directory
	// when Options.LogDirName is left empty.
	DefaultLogDirName = "log"

	timeLayout = "03:04:05 PM"

	tagInfo  = "INFO"
	tagError = "ERROR"

	startOfLogLine = `/--------------------------------- Start of Log ---------------------------------\`
	endOfLogLine   = `\--------------------------------- End of Log ---------------------------------/`

	emptyString = ""
)

const (
	errMsgNilService      = "logger service is nil"
	errMsgInvalidOptions  = "logger options are invalid"
	errMsgCreateLogDir    = "could not create the log directory"
	errMsgCreateLogFile   = "could not create the log file"
	errMsgAppendLogFile   = "could not append to the log file"
	errMsgFileUnavailable = "log file unavailable, continuing console-only"
)
