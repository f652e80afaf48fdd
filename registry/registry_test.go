// SPDX-License-Identifier: MIT
// Package registry_test exercises kind lookup, overwrite semantics and the
// error contract of CreateShape against mocked factories.

package registry_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/geomlib/registry"
	"github.com/katalvlaran/geomlib/registry/mocks"
	"github.com/katalvlaran/geomlib/shape"
)

type RegistrySuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	logs    *observer.ObservedLogs
	metrics *registry.Metrics
	reg     *registry.Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	core, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs
	s.metrics = registry.NewMetrics(prometheus.NewRegistry())
	s.reg = registry.NewWithBuiltins(
		registry.WithLogger(zap.New(core)),
		registry.WithMetrics(s.metrics),
	)
}

// TestBuiltins ASSERTS the built-in kinds are listed in sorted order.
func (s *RegistrySuite) TestBuiltins() {
	s.Equal([]string{"circle", "rectangle", "triangle"}, s.reg.Kinds())
	s.True(s.reg.Has("circle"))
	s.False(s.reg.Has("hexagon"))
}

// TestCreateShape_Builtins ASSERTS each built-in kind creates valid shapes.
func (s *RegistrySuite) TestCreateShape_Builtins() {
	r, err := s.reg.CreateShape("rectangle", 10, 5)
	s.Require().NoError(err)
	s.Equal(shape.KindRectangle, r.Kind())
	s.InDelta(50.0, r.Area(), 1e-12)

	c, err := s.reg.CreateShape("circle", 7)
	s.Require().NoError(err)
	s.Equal(shape.KindCircle, c.Kind())

	t, err := s.reg.CreateShape("triangle", 40, 50, 80.99)
	s.Require().NoError(err)
	s.Equal(shape.KindTriangle, t.Kind())

	s.Equal(1.0, testutil.ToFloat64(s.metrics.Created.WithLabelValues("rectangle")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Created.WithLabelValues("triangle")))
}

// TestCreateShape_UnknownKind ASSERTS unregistered kinds fail with
// ErrUnknownKind and are counted under a fixed label.
func (s *RegistrySuite) TestCreateShape_UnknownKind() {
	sh, err := s.reg.CreateShape("hexagon", 1, 2, 3)
	s.Nil(sh)
	s.ErrorIs(err, shape.ErrUnknownKind)
	s.Contains(err.Error(), `"hexagon"`)

	s.Equal(1.0, testutil.ToFloat64(
		s.metrics.Rejected.WithLabelValues("unknown", registry.ReasonUnknownKind)))
	s.Equal(1, s.logs.FilterMessage("unknown shape kind").Len())
}

// TestCreateShape_InvalidParameters ASSERTS built-in factory failures surface
// as ErrInvalidParameters.
func (s *RegistrySuite) TestCreateShape_InvalidParameters() {
	_, err := s.reg.CreateShape("triangle", 1, 2, 3)
	s.ErrorIs(err, shape.ErrInvalidParameters)

	_, err = s.reg.CreateShape("circle")
	s.ErrorIs(err, shape.ErrInvalidParameters)

	s.Equal(1.0, testutil.ToFloat64(
		s.metrics.Rejected.WithLabelValues("triangle", registry.ReasonInvalidParameters)))
	s.Equal(2, s.logs.FilterMessage("shape rejected").Len())
}

// TestRegister_Overwrite ASSERTS a later registration replaces the earlier one.
func (s *RegistrySuite) TestRegister_Overwrite() {
	sq, err := shape.NewRectangle(4, 4)
	s.Require().NoError(err)

	f := mocks.NewMockFactory(s.ctrl)
	f.EXPECT().Create(4.0).Return(sq, nil)
	f.EXPECT().Validate(sq).Return(true)

	s.Require().NoError(s.reg.Register("rectangle", f))

	got, err := s.reg.CreateShape("rectangle", 4)
	s.Require().NoError(err)
	s.Same(sq, got)
	s.Equal([]string{"circle", "rectangle", "triangle"}, s.reg.Kinds())
}

// TestRegister_Invalid ASSERTS empty kinds and nil factories are refused.
func (s *RegistrySuite) TestRegister_Invalid() {
	s.ErrorIs(s.reg.Register("", shape.NewCircleFactory()), registry.ErrInvalidRegistration)
	s.ErrorIs(s.reg.Register("disk", nil), registry.ErrInvalidRegistration)
	s.Panics(func() { s.reg.MustRegister("", nil) })
	s.False(s.reg.Has("disk"))
}

// TestRegister_TypedNilFactory ASSERTS a nil built-in factory pointer
// registers and creates shapes with default options.
func (s *RegistrySuite) TestRegister_TypedNilFactory() {
	s.Require().NoError(s.reg.Register("rect", (*shape.RectangleFactory)(nil)))

	var (
		r   *shape.Shape
		err error
	)
	s.NotPanics(func() { r, err = s.reg.CreateShape("rect", 1, 2) })
	s.Require().NoError(err)
	s.Equal(shape.KindRectangle, r.Kind())

	_, err = s.reg.CreateShape("rect", 0, 2)
	s.ErrorIs(err, shape.ErrInvalidParameters)
}

// TestCreateShape_ValidatorRejects ASSERTS a shape the factory's own
// validator rejects is never returned.
func (s *RegistrySuite) TestCreateShape_ValidatorRejects() {
	c, err := shape.NewCircle(1)
	s.Require().NoError(err)

	f := mocks.NewMockFactory(s.ctrl)
	f.EXPECT().Create(1.0).Return(c, nil)
	f.EXPECT().Validate(c).Return(false)
	s.reg.MustRegister("disk", f)

	got, err := s.reg.CreateShape("disk", 1)
	s.Nil(got)
	s.ErrorIs(err, shape.ErrInvalidParameters)
}

// TestCreateShape_NilShape ASSERTS a factory returning (nil, nil) is treated
// as invalid without calling Validate.
func (s *RegistrySuite) TestCreateShape_NilShape() {
	f := mocks.NewMockFactory(s.ctrl)
	f.EXPECT().Create().Return(nil, nil)
	s.reg.MustRegister("void", f)

	_, err := s.reg.CreateShape("void")
	s.ErrorIs(err, shape.ErrInvalidParameters)
}

// TestCreateShape_FactoryError ASSERTS a foreign factory error keeps both the
// ErrInvalidParameters class and the original cause.
func (s *RegistrySuite) TestCreateShape_FactoryError() {
	boom := errors.New("boom")
	f := mocks.NewMockFactory(s.ctrl)
	f.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, boom)
	s.reg.MustRegister("custom", f)

	_, err := s.reg.CreateShape("custom", 1, 2)
	s.ErrorIs(err, shape.ErrInvalidParameters)
	s.ErrorIs(err, boom)
}

// TestUnregister ASSERTS removal is reported and later lookups fail.
func (s *RegistrySuite) TestUnregister() {
	s.True(s.reg.Unregister("circle"))
	s.False(s.reg.Unregister("circle"))

	_, err := s.reg.CreateShape("circle", 1)
	s.ErrorIs(err, shape.ErrUnknownKind)
	s.Equal([]string{"rectangle", "triangle"}, s.reg.Kinds())
}

// TestShapeOptions ASSERTS WithShapeOptions reaches the built-in factories.
func (s *RegistrySuite) TestShapeOptions() {
	strict := registry.NewWithBuiltins(
		registry.WithShapeOptions(shape.WithRightAngleTolerance(0)))

	t, err := strict.CreateShape("triangle", 3, 5, 5.830952)
	s.Require().NoError(err)
	sub, err := t.Subtype()
	s.Require().NoError(err)
	s.Equal("versatile obtuse", sub)
}

// TestConcurrentAccess ASSERTS registration and creation may interleave.
func (s *RegistrySuite) TestConcurrentAccess() {
	reg := registry.NewWithBuiltins()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = reg.Register("square", shape.NewRectangleFactory())
		}()
		go func() {
			defer wg.Done()
			_, err := reg.CreateShape("circle", 2)
			s.NoError(err)
			_ = reg.Kinds()
		}()
	}
	wg.Wait()

	s.True(reg.Has("square"))
}

// TestOptionPanics ASSERTS nil logger and metrics are rejected eagerly.
func (s *RegistrySuite) TestOptionPanics() {
	s.Panics(func() { registry.WithLogger(nil) })
	s.Panics(func() { registry.WithMetrics(nil) })
}

// TestDefault ASSERTS the package-level shortcuts share one registry.
func (s *RegistrySuite) TestDefault() {
	s.Same(registry.Default(), registry.Default())
	s.Contains(registry.Kinds(), "triangle")

	c, err := registry.CreateShape("circle", 7)
	s.Require().NoError(err)
	s.Equal(shape.KindCircle, c.Kind())
}
