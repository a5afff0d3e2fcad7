package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Handler tags who must execute an action.
type Handler string

// LoadingBehavior controls the caller-side loading indicator while an action
// is in flight. It is carried through unchanged; the runtime never interprets
// it.
type LoadingBehavior string

const (
	// HandlerClient marks actions the client resolves locally.
	HandlerClient Handler = "client"
	// HandlerServer marks actions dispatched to the server runtime.
	HandlerServer Handler = "server"

	// LoadingAuto lets the caller pick an indicator.
	LoadingAuto LoadingBehavior = "auto"
	// LoadingNone suppresses any loading indicator.
	LoadingNone LoadingBehavior = "none"
	// LoadingSelf shows the indicator on the triggering component only.
	LoadingSelf LoadingBehavior = "self"
	// LoadingContainer shows the indicator on the whole widget container.
	LoadingContainer LoadingBehavior = "container"

	// DefaultHandler is applied when an ActionConfig omits the handler.
	DefaultHandler = HandlerServer
	// DefaultLoadingBehavior is applied when an ActionConfig omits the behavior.
	DefaultLoadingBehavior = LoadingAuto
)

// ActionType is the discriminator string of an action, unique across the
// registered catalog (e.g. "sample.send_email").
type ActionType string

// Action is an immutable, typed command received from a client. Payload is
// decoded against the registered payload shape for Type.
type Action struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ActionConfig is the outgoing action descriptor embedded in rendered
// components (buttons, list rows, selects).
type ActionConfig struct {
	Type            ActionType      `json:"type"`
	Payload         any             `json:"payload,omitempty"`
	Handler         Handler         `json:"handler"`
	LoadingBehavior LoadingBehavior `json:"loadingBehavior"`
}

// NewActionConfig builds a descriptor for a registered action type with the
// catalog defaults applied. Option functions override handler and behavior.
func NewActionConfig(t ActionType, payload any, optFns ...func(*ActionConfig)) ActionConfig {
	cfg := ActionConfig{
		Type:            t,
		Payload:         payload,
		Handler:         DefaultHandler,
		LoadingBehavior: DefaultLoadingBehavior,
	}
	for _, fn := range optFns {
		fn(&cfg)
	}
	return cfg
}

// WithLoadingBehavior overrides the loading behavior of a descriptor.
func WithLoadingBehavior(b LoadingBehavior) func(*ActionConfig) {
	return func(cfg *ActionConfig) { cfg.LoadingBehavior = b }
}

// WithHandler overrides the handler locality of a descriptor.
func WithHandler(h Handler) func(*ActionConfig) {
	return func(cfg *ActionConfig) { cfg.Handler = h }
}

// registry is the static table mapping each action type to a constructor for
// its payload shape. It is populated from init funcs of the packages that
// declare actions; tags are never inferred from types at runtime.
var (
	registryMu sync.RWMutex
	registry   = map[ActionType]func() any{}
)

// RegisterAction records the payload constructor for an action type. It
// panics on duplicate registration: catalog tags must be unique.
func RegisterAction(t ActionType, newPayload func() any) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[t]; exists {
		panic(fmt.Sprintf("core: action type %q registered twice", t))
	}
	registry[t] = newPayload
}

// RegisteredActions returns the sorted catalog of action types. Tests use it
// to assert exhaustive dispatch coverage.
func RegisteredActions() []ActionType {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]ActionType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// DecodePayload decodes an action's raw payload into the registered shape
// for its type. Unknown types are a catalog violation.
func DecodePayload(a Action) (any, error) {
	registryMu.RLock()
	newPayload, ok := registry[a.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("action type %q: %w", a.Type, ErrUnhandledVariant)
	}
	payload := newPayload()
	if len(a.Payload) > 0 {
		if err := json.Unmarshal(a.Payload, payload); err != nil {
			return nil, fmt.Errorf("decode %q payload: %w", a.Type, err)
		}
	}
	return payload, nil
}
