package daylog

import "os"

// write appends msg plus a newline to the daily file when the file exists at
// call time, using one open-append-close cycle per call so the handle is
// released on every exit path. All failures are reported through the
// diagnostics logger and swallowed. The original msg is always returned so
// callers can chain it straight into console output.
func (s *Service) write(msg string) string {
	if s.logFilePath == emptyString {
		return msg
	}
	if _, err := os.Stat(s.logFilePath); err != nil {
		s.reportDegraded(err, errMsgFileUnavailable)
		return msg
	}

	f, err := os.OpenFile(s.logFilePath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		s.reportDegraded(err, errMsgAppendLogFile)
		return msg
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(msg + "\n"); err != nil {
		s.reportDegraded(err, errMsgAppendLogFile)
	}
	return msg
}

// reportDegraded flips the Service into its one-way degraded state. Only the
// transition is reported; later failures stay silent. The per-write existence
// check in write still governs persistence, so a restored file resumes
// appends without clearing the flag.
func (s *Service) reportDegraded(err error, msg string) {
	if s.degraded.Swap(true) {
		return
	}
	s.diag.Error().Err(err).Str("file", s.logFilePath).Msg(msg)
}
