// Package entrypoint is the module's component H: the standard
// sequence a simulator's native loader runs after dlopen'ing this
// library (spec.md §4.H, §6). It reads the GPI_EXTRA/GPI_TRACE
// environment surface, brings up whichever backend(s) the host process
// actually linked, and registers a process-exit safety net so
// UserRuntime.EmbedSimCleanup still runs once even if the simulator
// never fires a clean shutdown callback.
package entrypoint
