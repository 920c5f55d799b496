package systembars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/go-drift/safearea/pkg/platform"
	"github.com/go-drift/safearea/pkg/platform/mocks"
	drifttest "github.com/go-drift/safearea/pkg/testing"
)

func TestOnInsetsChangedConsumesOnlySystemBars(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeLight)
	c := NewInsetCoordinator(a, host.Content())

	in := drifttest.Insets(drifttest.InsetsSpec{
		SystemBars: platform.EdgeInsetsLTRB(0, 24, 0, 48),
		IME:        platform.EdgeInsetsLTRB(0, 0, 0, 300),
		Gestures:   platform.EdgeInsetsLTRB(16, 0, 16, 0),
	})
	out := c.OnInsetsChanged(in)

	assert.True(t, out.Insets(platform.SystemBars).IsZero())
	assert.True(t, out.Insets(platform.DisplayCutout).IsZero())
	assert.Equal(t, platform.EdgeInsetsLTRB(0, 0, 0, 300), out.Insets(platform.IME))
	assert.Equal(t, platform.EdgeInsetsLTRB(16, 0, 16, 0), out.Insets(platform.SystemGestures))
	assert.Equal(t, platform.EdgeInsetsLTRB(0, 24, 0, 0), host.Snapshot().Padding)
	assert.Equal(t, platform.EdgeInsetsLTRB(0, 24, 0, 0), c.Padding())

	// The input is not modified.
	assert.Equal(t, platform.EdgeInsetsLTRB(0, 24, 0, 48), in.Insets(platform.SystemBars))
}

func TestOnInsetsChangedCutoutTaller(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeLight)
	c := NewInsetCoordinator(a, host.Content())

	c.OnInsetsChanged(drifttest.Insets(drifttest.InsetsSpec{
		SystemBars:    platform.EdgeInsetsLTRB(0, 24, 0, 48),
		DisplayCutout: platform.EdgeInsetsLTRB(0, 40, 0, 0),
	}))

	assert.Equal(t, platform.EdgeInsetsLTRB(0, 40, 0, 0), host.Snapshot().Padding)
}

func TestOnInsetsChangedIdempotent(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeDark)
	c := NewInsetCoordinator(a, host.Content())
	in := drifttest.Insets(drifttest.InsetsSpec{
		SystemBars: platform.EdgeInsetsLTRB(0, 24, 0, 48),
		IME:        platform.EdgeInsetsLTRB(0, 0, 0, 300),
	})

	out1 := c.OnInsetsChanged(in)
	snap1 := host.Snapshot()
	out2 := c.OnInsetsChanged(in)

	assert.Equal(t, out1, out2)
	assert.Equal(t, snap1, host.Snapshot())
}

func TestOnInsetsChangedRepaintsBeforePadding(t *testing.T) {
	ctrl := gomock.NewController(t)
	window := mocks.NewMockWindow(ctrl)
	content := mocks.NewMockContentView(ctrl)
	theme := mocks.NewMockThemeSource(ctrl)

	theme.EXPECT().Current().Return(platform.ThemeDark).AnyTimes()
	window.EXPECT().EnableBarBackgrounds()
	window.EXPECT().SetAppearance(gomock.Any(), false).Times(2)
	window.EXPECT().SetBarColor(gomock.Any(), DefaultPalette.Dark).Times(2)
	window.EXPECT().SetBackgroundColor(DefaultPalette.Dark)

	gomock.InOrder(
		content.EXPECT().SetBackgroundColor(DefaultPalette.Dark),
		content.EXPECT().SetPadding(platform.EdgeInsetsLTRB(0, 24, 0, 0)),
	)

	a := NewApplicator(&StyleState{}, window, theme)
	a.SetContent(content)
	c := NewInsetCoordinator(a, content)

	c.OnInsetsChanged(drifttest.Insets(drifttest.InsetsSpec{
		SystemBars: platform.EdgeInsetsLTRB(0, 24, 0, 48),
	}))
}

func TestAttachIsGuarded(t *testing.T) {
	a, _, host := newTestApplicator(platform.ThemeLight)
	c := NewInsetCoordinator(a, host.Content())

	c.Attach()
	c.Attach()
	assert.Equal(t, 1, host.ListenerInstalls())
	assert.True(t, c.Attached())

	out, ok := host.DeliverInsets(drifttest.Insets(drifttest.InsetsSpec{
		SystemBars: platform.EdgeInsetsLTRB(0, 24, 0, 48),
	}))
	assert.True(t, ok)
	assert.True(t, out.Insets(platform.SystemBars).IsZero())

	c.Detach()
	assert.False(t, c.Attached())
	assert.False(t, host.Snapshot().ListenerAttached)
	c.Detach()
}
