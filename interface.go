package daylog

// Logger is the behavior owning objects should depend on rather than the
// concrete Service. Each owner holds exactly one instance; instances are not
// meant to be shared between owners.
type Logger interface {
	Info(msg string)
	Error(msg string)
	Dump(v interface{})
	EndSession()
}
