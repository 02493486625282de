// Package host is the boundary to the content platform that owns installation
// parameters and entry field values. Screens only see the FieldSDK and AppSDK
// interfaces so tests can swap the platform for an in-memory one.
package host

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/rs/zerolog"

	"fapicker/internal/config"
	"fapicker/internal/eventbus"
)

// ErrNoConfigureHook is returned by Configure when no screen registered a hook
var ErrNoConfigureHook = errors.New("no configure hook registered")

// FieldSDK is the capability set the field editor consumes
type FieldSDK interface {
	// GetValue returns the stored value; ok is false when the field was never set
	GetValue(ctx context.Context) (value string, ok bool, err error)
	SetValue(ctx context.Context, value string) error
	// OnValueChanged calls handler for changes made outside this editor.
	// The returned function releases the subscription.
	OnValueChanged(handler func(value string)) (detach func())
}

// ConfigureHook produces the parameters to persist when the user saves
type ConfigureHook func(ctx context.Context) (*config.StoredParameters, error)

// AppSDK is the capability set the configuration screen consumes
type AppSDK interface {
	// GetParameters returns nil when the app has never been configured
	GetParameters(ctx context.Context) (*config.StoredParameters, error)
	OnConfigure(hook ConfigureHook)
	// Configure runs the registered hook and persists its result
	Configure(ctx context.Context) error
	SetReady(location string)
}

// Host implements the platform on top of a Store
type Host struct {
	mu     sync.Mutex
	store  Store
	bus    eventbus.EventBus
	log    zerolog.Logger
	fields map[string]string // last values seen, used to detect outside edits
	hook   ConfigureHook
	ready  bool
}

var _ AppSDK = (*Host)(nil)

// New creates a host backed by store, publishing changes on bus
func New(store Store, bus eventbus.EventBus, log zerolog.Logger) *Host {
	return &Host{
		store:  store,
		bus:    bus,
		log:    log.With().Str("component", "host").Logger(),
		fields: make(map[string]string),
	}
}

// Field returns the SDK for one field of the entry
func (h *Host) Field(id string) *Field {
	return &Field{host: h, id: id}
}

// GetParameters reads the persisted installation parameters
func (h *Host) GetParameters(ctx context.Context) (*config.StoredParameters, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params, err := h.store.LoadParameters()
	if err != nil {
		return nil, fmt.Errorf("get parameters: %w", err)
	}
	h.bus.Publish(eventbus.ParametersLoadedEvent{Installed: params != nil})
	return params, nil
}

// OnConfigure registers the hook run on save, replacing any earlier one
func (h *Host) OnConfigure(hook ConfigureHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hook = hook
}

// Configure runs the configure hook and persists the parameters it returns
func (h *Host) Configure(ctx context.Context) error {
	h.mu.Lock()
	hook := h.hook
	h.mu.Unlock()
	if hook == nil {
		return ErrNoConfigureHook
	}

	params, err := hook(ctx)
	if err != nil {
		return h.fail("configure hook failed", fmt.Errorf("configure hook: %w", err))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := h.store.SaveParameters(params); err != nil {
		return h.fail("failed to save parameters", fmt.Errorf("save parameters: %w", err))
	}
	h.log.Info().Msg("installation parameters saved")
	h.bus.Publish(eventbus.ParametersSavedEvent{})
	return nil
}

// SetReady records that a screen finished loading
func (h *Host) SetReady(location string) {
	h.mu.Lock()
	h.ready = true
	h.mu.Unlock()
	h.log.Debug().Str("location", location).Msg("screen ready")
	h.bus.Publish(eventbus.AppReadyEvent{Location: location})
}

// Ready reports whether SetReady has been called
func (h *Host) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ready
}

// SetExternalValue changes a field as another editor would, notifying subscribers
func (h *Host) SetExternalValue(ctx context.Context, fieldID, value string) error {
	if err := h.writeField(ctx, fieldID, value); err != nil {
		return err
	}
	h.bus.Publish(eventbus.FieldValueChangedEvent{FieldID: fieldID, Value: value})
	return nil
}

// Reload re-reads the entry from the store and publishes a change event for
// every field whose value differs from what this host last saw
func (h *Host) Reload() error {
	// held across the load so a concurrent write cannot land between the
	// read and the comparison
	h.mu.Lock()
	fields, err := h.store.LoadEntry()
	if err != nil {
		h.mu.Unlock()
		return fmt.Errorf("reload entry: %w", err)
	}

	var changed []eventbus.FieldValueChangedEvent
	for id, v := range fields {
		if old, ok := h.fields[id]; !ok || old != v {
			changed = append(changed, eventbus.FieldValueChangedEvent{FieldID: id, Value: v})
		}
	}
	for id, old := range h.fields {
		if _, ok := fields[id]; !ok && old != "" {
			changed = append(changed, eventbus.FieldValueChangedEvent{FieldID: id, Value: ""})
		}
	}
	h.fields = maps.Clone(fields)
	h.mu.Unlock()

	for _, e := range changed {
		h.log.Debug().Str("field", e.FieldID).Str("value", e.Value).Msg("field changed outside editor")
		h.bus.Publish(e)
	}
	return nil
}

// Watch follows outside edits to the entry until ctx is done. Stores that
// cannot be edited from outside return immediately.
func (h *Host) Watch(ctx context.Context) error {
	w, ok := h.store.(Watcher)
	if !ok {
		return nil
	}
	return w.Watch(ctx, func() {
		if err := h.Reload(); err != nil {
			h.log.Warn().Err(err).Msg("ignoring unreadable entry")
		}
	})
}

func (h *Host) readField(ctx context.Context, id string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	h.mu.Lock()
	fields, err := h.store.LoadEntry()
	if err != nil {
		h.mu.Unlock()
		return "", false, h.fail("failed to read entry", fmt.Errorf("get value of %s: %w", id, err))
	}
	h.fields = maps.Clone(fields)
	h.mu.Unlock()

	v, ok := fields[id]
	return v, ok, nil
}

func (h *Host) writeField(ctx context.Context, id, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	fields, err := h.store.LoadEntry()
	if err != nil {
		return h.fail("failed to read entry", fmt.Errorf("set value of %s: %w", id, err))
	}
	if fields == nil {
		fields = make(map[string]string)
	}
	fields[id] = value
	// remember the value before it hits the store so our own write is not
	// reported back as an outside edit
	h.fields = maps.Clone(fields)
	if err := h.store.SaveEntry(fields); err != nil {
		return h.fail("failed to write entry", fmt.Errorf("set value of %s: %w", id, err))
	}
	return nil
}

// fail publishes a store failure and returns err unchanged
func (h *Host) fail(message string, err error) error {
	h.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
	return err
}

// Field is the FieldSDK for a single entry field
type Field struct {
	host *Host
	id   string
}

var _ FieldSDK = (*Field)(nil)

// ID returns the field id
func (f *Field) ID() string {
	return f.id
}

func (f *Field) GetValue(ctx context.Context) (string, bool, error) {
	return f.host.readField(ctx, f.id)
}

func (f *Field) SetValue(ctx context.Context, value string) error {
	if err := f.host.writeField(ctx, f.id, value); err != nil {
		return err
	}
	f.host.log.Info().Str("field", f.id).Str("value", value).Msg("field value set")
	return nil
}

func (f *Field) OnValueChanged(handler func(string)) func() {
	return f.host.bus.Subscribe(eventbus.EventFieldValueChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FieldValueChangedEvent); ok && ev.FieldID == f.id {
			handler(ev.Value)
		}
	})
}
