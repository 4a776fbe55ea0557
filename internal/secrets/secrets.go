// Package secrets stores the Pandora account password in the desktop
// keyring through the org.freedesktop.secrets D-Bus service.
//
// Passwords live in the default collection when it can be unlocked;
// if there is no default collection or the user refuses the unlock
// prompt, the non-persistent session collection is used instead, so
// the password survives for this run only.
package secrets

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busName  = "org.freedesktop.secrets"
	basePath = dbus.ObjectPath("/org/freedesktop/secrets")

	serviceIface    = "org.freedesktop.Secret.Service"
	collectionIface = "org.freedesktop.Secret.Collection"
	itemIface       = "org.freedesktop.Secret.Item"
	promptIface     = "org.freedesktop.Secret.Prompt"

	aliasDefault = "default"
	aliasSession = "session"

	// noObject is the D-Bus convention for "no object here".
	noObject = dbus.ObjectPath("/")

	itemLabel = "Pandora Account"
)

// secret mirrors the (oayays) Secret struct of the Secret Service
// wire protocol.
type secret struct {
	Session     dbus.ObjectPath
	Parameters  []byte
	Value       []byte
	ContentType string
}

// Store is a handle to the secret service. Unlock must complete once
// before any password operation; operations must not be issued
// concurrently.
type Store struct {
	conn       *dbus.Conn
	service    dbus.BusObject
	session    dbus.ObjectPath
	collection dbus.ObjectPath
}

// Open connects to the session bus and opens a plain transfer session
// with the secret service.
func Open() (*Store, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("secrets: failed to connect to session bus: %w", err)
	}

	service := conn.Object(busName, basePath)
	var output dbus.Variant
	var session dbus.ObjectPath
	err = service.Call(serviceIface+".OpenSession", 0, "plain", dbus.MakeVariant("")).Store(&output, &session)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("secrets: failed to open secret service session: %w", err)
	}

	return &Store{conn: conn, service: service, session: session}, nil
}

// Close releases the bus connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Unlock resolves the collection passwords are kept in. The default
// collection is preferred, unlocking it if needed (which may prompt
// the user); when there is no default collection or the unlock is
// refused, the session collection is used instead.
func (s *Store) Unlock(ctx context.Context) error {
	var collection dbus.ObjectPath
	err := s.service.CallWithContext(ctx, serviceIface+".ReadAlias", 0, aliasDefault).Store(&collection)
	if err != nil {
		return fmt.Errorf("secrets: failed to read default collection alias: %w", err)
	}
	if collection == noObject {
		return s.useSessionCollection(ctx)
	}

	locked, err := s.collectionLocked(collection)
	if err != nil {
		return err
	}
	if !locked {
		s.collection = collection
		return nil
	}

	var unlocked []dbus.ObjectPath
	var prompt dbus.ObjectPath
	err = s.service.CallWithContext(ctx, serviceIface+".Unlock", 0, []dbus.ObjectPath{collection}).Store(&unlocked, &prompt)
	if err != nil {
		return fmt.Errorf("secrets: failed to unlock default collection: %w", err)
	}

	if prompt != noObject {
		dismissed, result, err := s.completePrompt(ctx, prompt)
		if err != nil {
			return err
		}
		if dismissed {
			return s.useSessionCollection(ctx)
		}
		var paths []dbus.ObjectPath
		if err := result.Store(&paths); err == nil {
			unlocked = paths
		}
	}

	for _, path := range unlocked {
		if path == collection {
			s.collection = collection
			return nil
		}
	}
	// Default collection is still locked; keep passwords for this
	// run only.
	return s.useSessionCollection(ctx)
}

// Password returns the stored password for the account email, or ""
// when none is stored.
func (s *Store) Password(ctx context.Context, email string) (string, error) {
	unlocked, _, err := s.searchItems(ctx, email)
	if err != nil {
		return "", err
	}
	if len(unlocked) == 0 {
		return "", nil
	}

	var sec secret
	item := s.conn.Object(busName, unlocked[0])
	if err := item.CallWithContext(ctx, itemIface+".GetSecret", 0, s.session).Store(&sec); err != nil {
		return "", fmt.Errorf("secrets: failed to read password for %s: %w", email, err)
	}
	return string(sec.Value), nil
}

// SetPassword stores the account password under newEmail. When the
// account email changed, the entry under oldEmail is cleared first so
// that only one key remains.
func (s *Store) SetPassword(ctx context.Context, oldEmail, newEmail, password string) error {
	if stale, ok := staleAccount(oldEmail, newEmail); ok {
		if _, err := s.ClearPassword(ctx, stale); err != nil {
			return err
		}
	}

	props := map[string]dbus.Variant{
		"org.freedesktop.Secret.Item.Label":      dbus.MakeVariant(itemLabel),
		"org.freedesktop.Secret.Item.Attributes": dbus.MakeVariant(accountAttributes(newEmail)),
	}
	sec := secret{
		Session:     s.session,
		Value:       []byte(password),
		ContentType: "text/plain",
	}

	var item, prompt dbus.ObjectPath
	collection := s.conn.Object(busName, s.collection)
	err := collection.CallWithContext(ctx, collectionIface+".CreateItem", 0, props, sec, true).Store(&item, &prompt)
	if err != nil {
		return fmt.Errorf("secrets: failed to store password for %s: %w", newEmail, err)
	}
	if prompt != noObject {
		dismissed, _, err := s.completePrompt(ctx, prompt)
		if err != nil {
			return err
		}
		if dismissed {
			return fmt.Errorf("secrets: storing password for %s was dismissed", newEmail)
		}
	}
	return nil
}

// ClearPassword removes the stored password for the account email.
// It reports whether anything was removed.
func (s *Store) ClearPassword(ctx context.Context, email string) (bool, error) {
	unlocked, locked, err := s.searchItems(ctx, email)
	if err != nil {
		return false, err
	}
	items := append(unlocked, locked...)
	if len(items) == 0 {
		return false, nil
	}

	for _, path := range items {
		item := s.conn.Object(busName, path)
		var prompt dbus.ObjectPath
		if err := item.CallWithContext(ctx, itemIface+".Delete", 0).Store(&prompt); err != nil {
			return false, fmt.Errorf("secrets: failed to clear password for %s: %w", email, err)
		}
		if prompt != noObject {
			dismissed, _, err := s.completePrompt(ctx, prompt)
			if err != nil {
				return false, err
			}
			if dismissed {
				return false, fmt.Errorf("secrets: clearing password for %s was dismissed", email)
			}
		}
	}
	return true, nil
}

func (s *Store) useSessionCollection(ctx context.Context) error {
	var collection dbus.ObjectPath
	err := s.service.CallWithContext(ctx, serviceIface+".ReadAlias", 0, aliasSession).Store(&collection)
	if err != nil {
		return fmt.Errorf("secrets: failed to resolve session collection: %w", err)
	}
	if collection == noObject {
		return fmt.Errorf("secrets: no session collection available")
	}
	s.collection = collection
	return nil
}

func (s *Store) collectionLocked(collection dbus.ObjectPath) (bool, error) {
	obj := s.conn.Object(busName, collection)
	variant, err := obj.GetProperty(collectionIface + ".Locked")
	if err != nil {
		return false, fmt.Errorf("secrets: failed to read collection lock state: %w", err)
	}
	locked, ok := variant.Value().(bool)
	if !ok {
		return false, fmt.Errorf("secrets: unexpected type %T for Locked property", variant.Value())
	}
	return locked, nil
}

func (s *Store) searchItems(ctx context.Context, email string) (unlocked, locked []dbus.ObjectPath, err error) {
	err = s.service.CallWithContext(ctx, serviceIface+".SearchItems", 0, accountAttributes(email)).Store(&unlocked, &locked)
	if err != nil {
		return nil, nil, fmt.Errorf("secrets: failed to search items for %s: %w", email, err)
	}
	return unlocked, locked, nil
}

// completePrompt runs a pending prompt and blocks until its Completed
// signal fires. Each prompt resolves exactly once: either dismissed by
// the user or completed with a result.
func (s *Store) completePrompt(ctx context.Context, prompt dbus.ObjectPath) (bool, dbus.Variant, error) {
	opts := []dbus.MatchOption{
		dbus.WithMatchObjectPath(prompt),
		dbus.WithMatchInterface(promptIface),
		dbus.WithMatchMember("Completed"),
	}
	if err := s.conn.AddMatchSignalContext(ctx, opts...); err != nil {
		return false, dbus.Variant{}, fmt.Errorf("secrets: failed to subscribe to prompt signal: %w", err)
	}
	defer func() { _ = s.conn.RemoveMatchSignal(opts...) }()

	// godbus drops signals when a registered channel is full; leave
	// headroom so unrelated matched signals cannot starve the wait.
	signals := make(chan *dbus.Signal, 16)
	s.conn.Signal(signals)
	defer s.conn.RemoveSignal(signals)

	obj := s.conn.Object(busName, prompt)
	if call := obj.CallWithContext(ctx, promptIface+".Prompt", 0, ""); call.Err != nil {
		return false, dbus.Variant{}, fmt.Errorf("secrets: failed to run prompt: %w", call.Err)
	}

	for {
		select {
		case <-ctx.Done():
			return false, dbus.Variant{}, ctx.Err()
		case sig := <-signals:
			if sig == nil || sig.Path != prompt || sig.Name != promptIface+".Completed" {
				continue
			}
			if len(sig.Body) != 2 {
				return false, dbus.Variant{}, fmt.Errorf("secrets: malformed prompt completion signal")
			}
			dismissed, _ := sig.Body[0].(bool)
			result, _ := sig.Body[1].(dbus.Variant)
			return dismissed, result, nil
		}
	}
}

// staleAccount returns the account key to clear before storing under
// newEmail. Changing the account email must not leave entries under
// both emails, so the old key is cleared first.
func staleAccount(oldEmail, newEmail string) (string, bool) {
	if oldEmail == "" || oldEmail == newEmail {
		return "", false
	}
	return oldEmail, true
}

// accountAttributes is the lookup key for an account's secret item.
func accountAttributes(email string) map[string]string {
	return map[string]string{
		"application": "pandora",
		"email":       email,
	}
}
