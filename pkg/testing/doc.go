// Package testing provides a recording fake of the native host for
// exercising system bar styling without a device.
//
// # Quick Start
//
//	host := drifttest.NewFakeHost(platform.ThemeLight)
//	plugin := safearea.New(host, platform.Immediate)
//	plugin.Load(ctx, config.Default())
//
//	host.DeliverInsets(drifttest.Insets(drifttest.InsetsSpec{
//	    SystemBars: platform.EdgeInsetsLTRB(0, 24, 0, 48),
//	}))
//
//	snap := host.Snapshot()
//	if snap.Padding.Top != 24 {
//	    t.Errorf("padding = %v", snap.Padding)
//	}
//
// FakeHost is safe for concurrent use. Listener callbacks (inset delivery,
// theme observers) run on the goroutine that triggers them, so drive them
// from the UI thread the plugin dispatches to.
package testing
