package fli

import (
	"fmt"

	"github.com/sarchlab/gogpi/gpi"
)

// Bootstrap runs the standard entry-point sequence (spec.md §4.H) for
// an FLI-hosted build.
func Bootstrap(reg *gpi.Registry, native NativeAPI, runtime gpi.UserRuntime, argv []string) (*Backend, *gpi.ShutdownCallback, error) {
	b := New(native)
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

// Shutdown performs an orderly simulator exit.
func Shutdown(b *Backend, shutdown *gpi.ShutdownCallback) {
	shutdown.MarkConsumed()
	b.SimEnd()
}

// ReportEvent wraps a simulator-side diagnostic of severity sev in a
// SimError and logs it at gpi.LevelTrace; only SeverityCritical is
// forwarded to the registry's ReportCritical.
func ReportEvent(reg *gpi.Registry, b *Backend, sev gpi.Severity, file string, line int, message string) {
	err := &gpi.SimError{Backend: b.Name(), Severity: sev, File: file, Line: line, Message: message}
	gpi.Trace(err.Error())
	if sev == gpi.SeverityCritical {
		reg.ReportCritical(err)
	}
}
