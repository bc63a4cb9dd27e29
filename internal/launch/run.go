package launch

import (
	"context"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"tglauncher/internal/config"
	"tglauncher/internal/faults"
	"tglauncher/internal/logging"
)

// realtimeNiceness is applied when the realtime preference is on. True
// realtime scheduling needs privileges the launcher usually lacks, so the
// strongest niceness is the practical equivalent.
const realtimeNiceness = -20

// commandContext is a seam for tests.
var commandContext = exec.CommandContext

// Runner starts assembled commands while holding the launch lock.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	lock   *flock.Flock
}

// NewRunner returns a runner for cfg. The lock file lives next to the
// state database.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	lockPath := filepath.Join(filepath.Dir(cfg.Paths.StateDB), "launch.lock")
	return &Runner{
		cfg:    cfg,
		logger: logging.WithComponent(logger, component),
		lock:   flock.New(lockPath),
	}
}

// Start launches the game process and returns its pid. The launch lock is
// held only while the process is being set up; the game itself outlives
// the launcher.
func (r *Runner) Start(ctx context.Context, cmd *Command) (int, error) {
	ok, err := r.lock.TryLock()
	if err != nil {
		return 0, faults.Wrap(faults.ErrIO, component, "start", "acquire launch lock", err)
	}
	if !ok {
		return 0, faults.Wrap(faults.ErrConfig, component, "start",
			"another launch is already in progress", nil)
	}
	defer func() {
		if unlockErr := r.lock.Unlock(); unlockErr != nil {
			r.logger.Warn("failed to release launch lock", "error", unlockErr)
		}
	}()

	proc := commandContext(ctx, cmd.Path, cmd.Args...)
	proc.Dir = cmd.Dir
	if err := proc.Start(); err != nil {
		return 0, faults.Wrap(faults.ErrIO, component, "start", cmd.Path, err)
	}
	pid := proc.Process.Pid

	if cmd.Priority == PriorityRealtime {
		if err := unix.Setpriority(unix.PRIO_PROCESS, pid, realtimeNiceness); err != nil {
			// Needs CAP_SYS_NICE; the game still runs at normal priority.
			r.logger.Warn("could not raise process priority", "pid", pid, "error", err)
		}
	}

	// Detach: the launcher exits while the game keeps running.
	if err := proc.Process.Release(); err != nil {
		r.logger.Warn("failed to release process handle", "pid", pid, "error", err)
	}

	r.logger.Info("game started",
		logging.FieldSessionID, cmd.SessionID,
		"pid", pid,
		"priority", cmd.Priority.String())
	return pid, nil
}
