// Package settings holds the application preferences and their defaults.
package settings

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/aretw0/arbor/pkg/ports"
	"github.com/mitchellh/mapstructure"
)

// Preference keys.
const (
	KeySidebarColoredText        = "sidebarColoredText"
	KeyDefaultRootLabel          = "defaultRootLabel"
	KeyConfirmDestructiveActions = "confirmDestructiveActions"
)

// Settings are the user preferences that shape the CLI.
type Settings struct {
	// SidebarColoredText colours leaves and questions differently in outlines.
	SidebarColoredText bool `mapstructure:"sidebarColoredText"`
	// DefaultRootLabel is the label given to the root of new documents.
	DefaultRootLabel string `mapstructure:"defaultRootLabel"`
	// ConfirmDestructiveActions asks before removing nodes or discarding edits.
	ConfirmDestructiveActions bool `mapstructure:"confirmDestructiveActions"`
}

// Defaults returns the settings used when nothing is stored.
func Defaults() Settings {
	return Settings{
		SidebarColoredText:        true,
		DefaultRootLabel:          "Root",
		ConfirmDestructiveActions: true,
	}
}

// Keys returns the known preference keys in sorted order.
func Keys() []string {
	keys := []string{KeySidebarColoredText, KeyDefaultRootLabel, KeyConfirmDestructiveActions}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether key names a preference.
func IsKnown(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Load reads every preference from store and overlays it on Defaults.
// Values are strings in the store; "true", "1" and "false", "0" decode into
// the boolean preferences. Unknown keys are ignored.
func Load(ctx context.Context, store ports.PreferenceStore) (Settings, error) {
	raw, err := store.All(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read preferences: %w", err)
	}
	return Decode(raw)
}

// Decode overlays raw on Defaults.
func Decode(raw map[string]string) (Settings, error) {
	s := Defaults()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Settings{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Settings{}, fmt.Errorf("invalid preference value: %w", err)
	}
	return s, nil
}

// Set validates value for key and writes it to store.
func Set(ctx context.Context, store ports.PreferenceStore, key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown preference %q (known: %v)", key, Keys())
	}
	if _, err := Decode(map[string]string{key: value}); err != nil {
		return err
	}
	return store.Set(ctx, key, value)
}

// Save writes every field of s to store.
func Save(ctx context.Context, store ports.PreferenceStore, s Settings) error {
	for k, v := range s.Map() {
		if err := store.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

// Map returns s as the string values a PreferenceStore holds.
func (s Settings) Map() map[string]string {
	return map[string]string{
		KeySidebarColoredText:        strconv.FormatBool(s.SidebarColoredText),
		KeyDefaultRootLabel:          s.DefaultRootLabel,
		KeyConfirmDestructiveActions: strconv.FormatBool(s.ConfirmDestructiveActions),
	}
}
