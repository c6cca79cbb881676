package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/arbor/internal/settings"
)

// ListSettings prints every preference with its effective value.
func (a *App) ListSettings() {
	values := a.Settings.Map()
	for _, k := range settings.Keys() {
		fmt.Fprintf(a.Out, "%s=%s\n", k, values[k])
	}
}

// GetSetting prints the effective value of key.
func (a *App) GetSetting(key string) error {
	if !settings.IsKnown(key) {
		return fmt.Errorf("unknown preference %q (known: %v)", key, settings.Keys())
	}
	fmt.Fprintln(a.Out, a.Settings.Map()[key])
	return nil
}

// SetSetting validates and stores a preference.
func (a *App) SetSetting(ctx context.Context, key, value string) error {
	if err := settings.Set(ctx, a.Prefs, key, value); err != nil {
		return err
	}
	s, err := settings.Load(ctx, a.Prefs)
	if err != nil {
		return err
	}
	a.Settings = s
	a.Logger.Info("Preference updated", "key", key, "value", value)
	return nil
}

// ResetSettings removes every stored preference, restoring the defaults.
func (a *App) ResetSettings(ctx context.Context) error {
	for _, k := range settings.Keys() {
		if err := a.Prefs.Delete(ctx, k); err != nil {
			return err
		}
	}
	a.Settings = settings.Defaults()
	return nil
}
