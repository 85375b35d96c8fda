// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContext struct {
	typ string
}

// fakeSurface supports the context types in supported and throws for the
// types in failing.
type fakeSurface struct {
	supported map[string]bool
	failing   map[string]bool
	probes    []string
	attrs     []Attributes
}

func (s *fakeSurface) GetContext(typ string, attrs Attributes) (Context, error) {
	s.probes = append(s.probes, typ)
	s.attrs = append(s.attrs, attrs)
	if s.failing[typ] {
		return nil, errors.New("not supported")
	}
	if s.supported[typ] {
		return &fakeContext{typ: typ}, nil
	}
	return nil, nil
}

// eventSurface fires a creation error with message whenever a context request
// comes back empty.
type eventSurface struct {
	fakeSurface
	message   string
	noEvents  bool
	listeners map[string][]func(ContextEvent)
}

func (s *eventSurface) AddEventListener(typ string, fn func(ContextEvent)) bool {
	if s.noEvents {
		return false
	}
	if s.listeners == nil {
		s.listeners = make(map[string][]func(ContextEvent))
	}
	s.listeners[typ] = append(s.listeners[typ], fn)
	return true
}

func (s *eventSurface) GetContext(typ string, attrs Attributes) (Context, error) {
	ctx, err := s.fakeSurface.GetContext(typ, attrs)
	if ctx == nil {
		s.fire(ContextEvent{Type: CreationErrorEvent, StatusMessage: s.message})
	}
	return ctx, err
}

func (s *eventSurface) fire(e ContextEvent) {
	for _, fn := range s.listeners[e.Type] {
		fn(e)
	}
}

func TestCreate3DContextStopsAtFirstMatch(t *testing.T) {
	types := ContextTypes()
	for i, typ := range types {
		t.Run(typ, func(t *testing.T) {
			s := &fakeSurface{supported: map[string]bool{typ: true}}
			ctx, err := Create3DContext(s, nil)
			require.NoError(t, err)
			require.IsType(t, &fakeContext{}, ctx)
			assert.Equal(t, typ, ctx.(*fakeContext).typ)
			assert.Equal(t, types[:i+1], s.probes)
		})
	}
}

func TestCreate3DContextSkipsErrors(t *testing.T) {
	s := &fakeSurface{
		failing:   map[string]bool{"webgl": true, "experimental-webgl": true},
		supported: map[string]bool{"webkit-3d": true, "moz-webgl": true},
	}
	ctx, err := Create3DContext(s, nil)
	require.NoError(t, err)
	assert.Equal(t, "webkit-3d", ctx.(*fakeContext).typ)
	assert.Equal(t, []string{"webgl", "experimental-webgl", "webkit-3d"}, s.probes)
}

func TestCreate3DContextUnsupported(t *testing.T) {
	s := &fakeSurface{failing: map[string]bool{"moz-webgl": true}}
	ctx, err := Create3DContext(s, nil)
	assert.Nil(t, ctx)
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Equal(t, ContextTypes(), s.probes)
}

func TestNilSurface(t *testing.T) {
	ctx, err := Create3DContext(nil, nil)
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, ErrUnsupported)

	var msgs []string
	ctx, err = Setup(nil, nil, func(msg string) {
		msgs = append(msgs, msg)
	})
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, []string{""}, msgs)
}

func TestCreate3DContextPassesAttributes(t *testing.T) {
	attrs := Attributes{"antialias": false, "powerPreference": "high-performance"}
	s := &fakeSurface{supported: map[string]bool{"experimental-webgl": true}}
	_, err := Create3DContext(s, attrs)
	require.NoError(t, err)
	for _, a := range s.attrs {
		assert.Equal(t, attrs, a)
	}
}

func TestContextTypesIsACopy(t *testing.T) {
	types := ContextTypes()
	types[0] = "webgl2"
	assert.Equal(t, []string{"webgl", "experimental-webgl", "webkit-3d", "moz-webgl"}, ContextTypes())
}

func TestSetupWithoutEvents(t *testing.T) {
	var msgs []string
	s := &fakeSurface{}
	ctx, err := Setup(s, nil, func(msg string) {
		msgs = append(msgs, msg)
	})
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, []string{""}, msgs)
}

func TestSetupUnregisteredEvents(t *testing.T) {
	var msgs []string
	s := &eventSurface{noEvents: true, message: "X"}
	_, err := Setup(s, nil, func(msg string) {
		msgs = append(msgs, msg)
	})
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, []string{""}, msgs)
}

func TestSetupReportsBothPaths(t *testing.T) {
	var msgs []string
	s := &eventSurface{message: "X"}
	ctx, err := Setup(s, nil, func(msg string) {
		msgs = append(msgs, msg)
	})
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, msgs, "X")
	assert.Contains(t, msgs, "")
	assert.Equal(t, "", msgs[len(msgs)-1])
}

func TestSetupSuccess(t *testing.T) {
	var msgs []string
	s := &eventSurface{fakeSurface: fakeSurface{supported: map[string]bool{"webgl": true}}}
	ctx, err := Setup(s, Attributes{"alpha": false}, func(msg string) {
		msgs = append(msgs, msg)
	})
	require.NoError(t, err)
	assert.Equal(t, "webgl", ctx.(*fakeContext).typ)
	assert.Empty(t, msgs)
	assert.Len(t, s.listeners[CreationErrorEvent], 1)
}

func TestSetupNilCallback(t *testing.T) {
	s := &eventSurface{message: "X"}
	assert.NotPanics(t, func() {
		_, err := Setup(s, nil, nil)
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestSetupRepeated(t *testing.T) {
	s := &eventSurface{fakeSurface: fakeSurface{supported: map[string]bool{"webgl": true}}}
	assert.NotPanics(t, func() {
		for i := 0; i < 3; i++ {
			ctx, err := Setup(s, nil, nil)
			require.NoError(t, err)
			require.NotNil(t, ctx)
		}
	})
	assert.Len(t, s.listeners[CreationErrorEvent], 3)
}

func TestOnContextLost(t *testing.T) {
	var got []string
	s := &eventSurface{}
	ok := OnContextLost(s, func(e ContextEvent) {
		got = append(got, e.Type)
	}, func(e ContextEvent) {
		got = append(got, e.Type)
	})
	require.True(t, ok)
	s.fire(ContextEvent{Type: ContextLostEvent})
	s.fire(ContextEvent{Type: ContextRestoredEvent})
	assert.Equal(t, []string{ContextLostEvent, ContextRestoredEvent}, got)

	assert.False(t, OnContextLost(&fakeSurface{}, func(ContextEvent) {}, nil))
	assert.False(t, OnContextLost(&eventSurface{noEvents: true}, func(ContextEvent) {}, nil))
}
