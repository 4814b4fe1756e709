package root

import (
	"context"
	"errors"
	"io"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/auth"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/config"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/journal"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/notify"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/storage"
	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/task"
)

type app struct {
	kv      *storage.Store
	auth    *auth.Service
	tasks   *task.Store
	journal *journal.Store
}

func resolveDBPath() (string, error) {
	if dbPathFlag != "" {
		return dbPathFlag, nil
	}
	if cfgPath, err := config.DefaultConfigPath(); err == nil {
		if cfg, err := config.Load(cfgPath); err == nil && cfg.DBPath != "" {
			return cfg.DBPath, nil
		}
	}
	return storage.DefaultDBPath()
}

// openApp constructs the stores over a single kv store and runs their
// initial loads. Toasts go to out.
func openApp(ctx context.Context, out io.Writer) (*app, func(), error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	kv, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = kv.Close()
	}

	toasts := notify.Printer{Out: out}
	tasks := task.NewStore(kv, toasts)
	if err := tasks.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	entries := journal.NewStore(kv, toasts)
	if err := entries.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	a := &app{
		kv:      kv,
		auth:    auth.NewService(kv),
		tasks:   tasks,
		journal: entries,
	}
	return a, cleanup, nil
}

// requireUser gates protected commands on a logged-in session. The refused
// route is recorded; nothing redirects automatically.
func (a *app) requireUser(ctx context.Context, route string) (*auth.User, error) {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		_ = a.auth.RecordIntendedRoute(ctx, route)
		return nil, errors.New("not logged in (run 'lp login <email> -p <password>')")
	}
	return u, nil
}
