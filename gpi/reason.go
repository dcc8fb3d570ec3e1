package gpi

// CallbackReason identifies why a callback is armed; it selects which
// auxiliary payload (time, signal+edge, priority) the callback carries.
type CallbackReason int

const (
	ReasonTimed CallbackReason = iota
	ReasonValueChange
	ReasonReadOnly
	ReasonReadWrite
	ReasonNextTime
	ReasonStartup
	ReasonShutdown
)

func (r CallbackReason) String() string {
	switch r {
	case ReasonTimed:
		return "Timed"
	case ReasonValueChange:
		return "ValueChange"
	case ReasonReadOnly:
		return "ReadOnly"
	case ReasonReadWrite:
		return "ReadWrite"
	case ReasonNextTime:
		return "NextTime"
	case ReasonStartup:
		return "Startup"
	case ReasonShutdown:
		return "Shutdown"
	default:
		return "Reason(?)"
	}
}

// Priority orders same-time-step phase callbacks (READ-ONLY, READ-WRITE,
// NEXT-TIME) when a backend exposes more than one of a given reason.
type Priority int
