// Package daylog provides a small per-owner logger that mirrors every
// message to the console and appends it to a shared daily log file.
//
// Key behaviors
//   - One log directory (<working dir>/log) created on first use
//   - One file per calendar day (M_D_Y.log) shared by all instances
//     created that day
//   - Lines formatted as [Owner][hh:mm:ss AM/PM][INFO|ERROR]: message
//   - Session delimiters written at Initialize and EndSession
//   - Best-effort persistence: file failures are reported once and
//     swallowed, console output is never lost
//
// Typical usage
//
//	l := daylog.NewLogger("Worker")
//	if err := l.Initialize(); err != nil { panic(err) }
//	defer l.EndSession()
//
//	l.Info("started")
//	l.Error("connection refused")
package daylog
