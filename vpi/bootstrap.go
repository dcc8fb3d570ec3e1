package vpi

import (
	"fmt"

	"github.com/sarchlab/gogpi/gpi"
)

// Bootstrap runs the standard entry-point sequence (spec.md §4.H):
// construct the backend, register it, arm the startup callback, arm the
// shutdown callback. It is what a real build's vlog_startup_routines
// entry (or the "bootstrap symbol" for simulators that skip that table)
// calls before handing control back to the simulator.
func Bootstrap(reg *gpi.Registry, native NativeAPI, icarusWorkaround bool, runtime gpi.UserRuntime, argv []string) (*Backend, *gpi.ShutdownCallback, error) {
	b := New(native, icarusWorkaround)
	if err := reg.Register(b); err != nil {
		return nil, nil, err
	}
	reg.SetUserRuntime(runtime)

	startup := gpi.NewStartupCallback(b, func(data any) {
		if err := runtime.EmbedInitRuntime(argv); err != nil {
			ReportEvent(reg, b, gpi.SeverityCritical, "", 0, fmt.Sprintf("embed_init_runtime failed: %v", err))
		}
	}, nil)
	_ = startup.Arm()
	startup.Fire()

	shutdown := gpi.NewShutdownCallback(b, func(data any) {
		runtime.EmbedSimCleanup()
	}, nil)
	_ = shutdown.Arm()

	return b, shutdown, nil
}

// Shutdown performs an orderly simulator exit: it marks the shutdown
// callback consumed (so a later native end-of-simulation notification is
// a silent no-op) and asks the backend to terminate.
func Shutdown(b *Backend, shutdown *gpi.ShutdownCallback) {
	shutdown.MarkConsumed()
	b.SimEnd()
}

// ReportEvent wraps a simulator-side diagnostic of severity sev in a
// SimError and logs it at gpi.LevelTrace; only SeverityCritical is
// forwarded to the registry, which escalates it into a simulation
// teardown (spec.md §7).
func ReportEvent(reg *gpi.Registry, b *Backend, sev gpi.Severity, file string, line int, message string) {
	err := &gpi.SimError{Backend: b.Name(), Severity: sev, File: file, Line: line, Message: message}
	gpi.Trace(err.Error())
	if sev == gpi.SeverityCritical {
		reg.ReportCritical(err)
	}
}
