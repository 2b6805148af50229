package listener

import (
	"testing"

	"github.com/hack-pad/webwindow/internal/host"
	"github.com/hack-pad/webwindow/internal/host/hosttest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttach(t *testing.T) {
	t.Run("registers once", func(t *testing.T) {
		target := hosttest.NewElement("canvas")
		var calls int
		fn := hosttest.NewFunc(func(host.Event) { calls++ })

		handle, err := Attach(target, "keydown", host.Options{}, fn)
		require.NoError(t, err)
		assert.Equal(t, "keydown", handle.EventType())
		assert.Equal(t, 1, target.Registrations("keydown"))

		target.Dispatch(hosttest.NewEvent("keydown", nil))
		target.Dispatch(hosttest.NewEvent("keyup", nil))
		assert.Equal(t, 1, calls)
	})

	t.Run("host failure", func(t *testing.T) {
		target := hosttest.NewElement("canvas")
		hostErr := errors.New("not an event target")
		target.AddErr["wheel"] = hostErr
		fn := hosttest.NewFunc(func(host.Event) {})

		handle, err := Attach(target, "wheel", host.Options{Passive: true}, fn)
		assert.Nil(t, handle)
		var regErr *RegistrationError
		require.True(t, errors.As(err, &regErr))
		assert.Equal(t, "wheel", regErr.EventType)
		assert.True(t, errors.Is(err, hostErr))
		assert.True(t, fn.Released(), "func must not leak when registration fails")
		assert.Zero(t, target.Registrations(""))
	})
}

func TestRelease(t *testing.T) {
	t.Run("deregisters then frees", func(t *testing.T) {
		target := hosttest.NewElement("canvas")
		fn := hosttest.NewFunc(func(host.Event) {})
		handle, err := Attach(target, "focus", host.Options{Capture: true}, fn)
		require.NoError(t, err)

		handle.Release()
		assert.True(t, handle.Released())
		assert.True(t, fn.Released())
		assert.Zero(t, target.Registrations("focus"))

		// a released func panics if invoked, so this also proves nothing fires
		assert.NotPanics(t, func() {
			target.Dispatch(hosttest.NewEvent("focus", nil))
		})
	})

	t.Run("second release is a no-op", func(t *testing.T) {
		target := hosttest.NewElement("canvas")
		fn := hosttest.NewFunc(func(host.Event) {})
		handle, err := Attach(target, "blur", host.Options{}, fn)
		require.NoError(t, err)

		handle.Release()
		assert.NotPanics(t, handle.Release)
	})

	t.Run("removal failure is not fatal", func(t *testing.T) {
		target := hosttest.NewElement("canvas")
		fn := hosttest.NewFunc(func(host.Event) {})
		handle, err := Attach(target, "pointermove", host.Options{}, fn)
		require.NoError(t, err)
		target.RemoveErr = errors.New("target destroyed")

		assert.NotPanics(t, handle.Release)
		assert.True(t, fn.Released())
	})

	t.Run("released on early exit", func(t *testing.T) {
		target := hosttest.NewElement("canvas")
		fn := hosttest.NewFunc(func(host.Event) {})
		failingSetup := func() error {
			handle, err := Attach(target, "pointerdown", host.Options{}, fn)
			if err != nil {
				return err
			}
			defer handle.Release()
			return errors.New("later setup step failed")
		}

		assert.Error(t, failingSetup())
		assert.Zero(t, target.Registrations("pointerdown"))
		assert.True(t, fn.Released())
	})
}

func TestGroupRelease(t *testing.T) {
	detached := hosttest.NewElement("canvas")
	live := hosttest.NewElement("canvas")

	var group Group
	var funcs []*hosttest.Func
	for _, target := range []*hosttest.Element{live, detached, live} {
		fn := hosttest.NewFunc(func(host.Event) {})
		funcs = append(funcs, fn)
		handle, err := Attach(target, "pointerup", host.Options{}, fn)
		require.NoError(t, err)
		group.Add(handle)
	}
	require.Equal(t, 3, group.Len())
	detached.RemoveErr = errors.New("node removed from document")

	assert.NotPanics(t, group.Release)
	assert.Zero(t, group.Len())
	assert.Zero(t, live.Registrations(""))
	for _, fn := range funcs {
		assert.True(t, fn.Released())
	}

	assert.NotPanics(t, group.Release, "releasing an empty group")
}
