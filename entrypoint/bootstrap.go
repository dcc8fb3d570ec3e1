package entrypoint

import (
	"fmt"
	"sync"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/gogpi/fli"
	"github.com/sarchlab/gogpi/gpi"
	"github.com/sarchlab/gogpi/vhpi"
	"github.com/sarchlab/gogpi/vpi"
)

// Session is the live handle a bootstrapped process holds: the shared
// registry plus whichever backends this call actually brought up.
// Exactly one of VPI/VHPI/FLI is non-nil in a single-language build; a
// mixed-language co-simulation (spec.md §4.F) sets more than one.
type Session struct {
	Registry *gpi.Registry

	VPI  *vpi.Backend
	VHPI *vhpi.Backend
	FLI  *fli.Backend

	vpiShutdown  *gpi.ShutdownCallback
	vhpiShutdown *gpi.ShutdownCallback
	fliShutdown  *gpi.ShutdownCallback

	shutdownOnce sync.Once
}

// Natives groups the per-backend native API seams a host process
// supplies. A nil field means that backend is not linked into this
// process; Bootstrap skips it.
type Natives struct {
	VPI                 vpi.NativeAPI
	VPIIcarusWorkaround bool
	VHPI                vhpi.NativeAPI
	FLI                 fli.NativeAPI
}

// Bootstrap runs the standard entry-point sequence once per process
// (spec.md §4.H): parse GPI_EXTRA/GPI_TRACE, bring up every backend
// Natives supplies, load extensions, and arm a process-exit safety net
// so Shutdown always runs exactly once.
func Bootstrap(runtime gpi.UserRuntime, argv []string, natives Natives) (*Session, error) {
	cfg := ConfigFromEnviron()
	ApplyLogLevel(cfg)

	reg := gpi.NewRegistry(true)
	sess := &Session{Registry: reg}

	// Each backend arms its own ShutdownCallback whose Fn calls
	// runtime.EmbedSimCleanup; in a mixed-language session more than one
	// of those fires independently (whichever simulator reaches sim_end
	// first, and possibly more than one). EmbedSimCleanup itself must
	// still run exactly once for the whole process (spec.md's "called
	// once during an orderly shutdown"), so every backend is handed the
	// same cleanupOnce-guarded wrapper instead of runtime directly.
	guarded := &cleanupOnceRuntime{UserRuntime: runtime}

	if natives.VPI != nil {
		b, sc, err := vpi.Bootstrap(reg, natives.VPI, natives.VPIIcarusWorkaround, guarded, argv)
		if err != nil {
			return nil, fmt.Errorf("entrypoint: vpi bootstrap: %w", err)
		}
		sess.VPI, sess.vpiShutdown = b, sc
	}

	if natives.VHPI != nil {
		b, sc, err := vhpi.Bootstrap(reg, natives.VHPI, guarded, argv)
		if err != nil {
			return nil, fmt.Errorf("entrypoint: vhpi bootstrap: %w", err)
		}
		sess.VHPI, sess.vhpiShutdown = b, sc
	}

	if natives.FLI != nil {
		b, sc, err := fli.Bootstrap(reg, natives.FLI, guarded, argv)
		if err != nil {
			return nil, fmt.Errorf("entrypoint: fli bootstrap: %w", err)
		}
		sess.FLI, sess.fliShutdown = b, sc
	}

	// The safety net: an abnormal process exit (a host process calling
	// exit(3) without routing through any backend's native sim_end) would
	// otherwise skip EmbedSimCleanup entirely. Shutdown is idempotent, so
	// this is a no-op when a backend already tore itself down in the
	// ordinary way. Registered before extension loading so an aborted
	// GPI_EXTRA load below still tears the already-booted backends down.
	atexit.Register(sess.Shutdown)

	for _, spec := range cfg.Extra {
		if err := gpi.LoadExtension(spec); err != nil {
			// spec.md §6/§7: any GPI_EXTRA failure aborts the simulator with
			// a diagnostic on stdout and exit status 1. atexit.Exit runs the
			// shutdown hook registered above first, same as the teacher's
			// own atexit.Exit(0) call on its own successful-run path.
			fmt.Println("entrypoint: extension load failed:", err)
			atexit.Exit(1)
		}
	}

	return sess, nil
}

// Shutdown tears every live backend down exactly once, whichever of the
// simulator's own sim_end callback or the atexit safety net reaches it
// first (spec.md §8 scenario 6).
func (s *Session) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.VPI != nil {
			vpi.Shutdown(s.VPI, s.vpiShutdown)
		}
		if s.VHPI != nil {
			vhpi.Shutdown(s.VHPI, s.vhpiShutdown)
		}
		if s.FLI != nil {
			fli.Shutdown(s.FLI, s.fliShutdown)
		}
	})
}

// cleanupOnceRuntime wraps a UserRuntime so EmbedInitRuntime and
// EmbedSimCleanup each reach the real implementation at most once per
// process, no matter how many backends' own Startup or ShutdownCallback
// independently calls them. Later EmbedInitRuntime calls return the
// first call's error.
type cleanupOnceRuntime struct {
	gpi.UserRuntime
	once     sync.Once
	initOnce sync.Once
	initErr  error
}

func (r *cleanupOnceRuntime) EmbedInitRuntime(argv []string) error {
	r.initOnce.Do(func() { r.initErr = r.UserRuntime.EmbedInitRuntime(argv) })
	return r.initErr
}

func (r *cleanupOnceRuntime) EmbedSimCleanup() {
	r.once.Do(r.UserRuntime.EmbedSimCleanup)
}
