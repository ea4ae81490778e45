// Package installer runs the guided first-time setup flow.
//
// Setup is guarded by a file lock held for the whole run so concurrent
// invocations cannot interleave directory and config scaffolding; the
// lock is released on every exit path, including failures.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"periscope/internal/config"
)

// Installer scaffolds the periscope application directory and
// configuration.
type Installer struct {
	cfg *config.Config
	out io.Writer
}

// New creates an installer writing progress to out.
func New(cfg *config.Config, out io.Writer) *Installer {
	return &Installer{cfg: cfg, out: out}
}

// Run performs setup under a scoped lock. Every step is idempotent so a
// failed run can simply be repeated.
func (i *Installer) Run(ctx context.Context) error {
	if err := os.MkdirAll(i.cfg.Paths.AppDir, 0o755); err != nil {
		return fmt.Errorf("create app directory: %w", err)
	}

	lock := flock.New(filepath.Join(i.cfg.Paths.AppDir, "setup.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire setup lock: %w", err)
	}
	if !locked {
		return errors.New("another setup is already running")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	return i.run(ctx)
}

func (i *Installer) run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintln(i.out, "Setting up periscope...")

	if err := i.cfg.EnsureDirectories(); err != nil {
		return err
	}
	fmt.Fprintf(i.out, "Application directory ready at %s\n", i.cfg.Paths.AppDir)

	configPath, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		if err := config.CreateSample(configPath); err != nil {
			return err
		}
		fmt.Fprintf(i.out, "Wrote starter configuration to %s\n", configPath)
	} else if err == nil {
		fmt.Fprintf(i.out, "Keeping existing configuration at %s\n", configPath)
	} else {
		return fmt.Errorf("check config path: %w", err)
	}

	secretPath := filepath.Join(i.cfg.Paths.AppDir, "api_secret")
	if _, err := os.Stat(secretPath); errors.Is(err, os.ErrNotExist) {
		secret := uuid.NewString()
		if err := os.WriteFile(secretPath, []byte(secret+"\n"), 0o600); err != nil {
			return fmt.Errorf("write api secret: %w", err)
		}
		fmt.Fprintf(i.out, "Generated API secret at %s\n", secretPath)
	} else if err != nil {
		return fmt.Errorf("check api secret: %w", err)
	}

	fmt.Fprintln(i.out, "Setup complete. Edit the configuration, then run `periscope start`.")
	return nil
}
