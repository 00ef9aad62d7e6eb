package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

// mockQueue implements gpucontext.Queue for testing.
type mockQueue struct{}

// mockAdapter implements gpucontext.Adapter for testing.
type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

// Verify the alias stays assignable from a DeviceProvider implementation.
var _ DeviceHandle = (*mockProvider)(nil)

func TestColorTargetDescriptor(t *testing.T) {
	provider := &mockProvider{format: gputypes.TextureFormatBGRA8Unorm}

	desc := ColorTargetDescriptor(provider, 1920, 1080)
	if desc.Width != 1920 || desc.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", desc.Width, desc.Height)
	}
	if desc.Format != provider.SurfaceFormat() {
		t.Errorf("format = %v, want surface format", desc.Format)
	}
	if desc.Usage&TextureUsageRenderAttachment == 0 {
		t.Error("color target must be usable as a render attachment")
	}
	if desc.Usage&TextureUsageTextureBinding == 0 {
		t.Error("color target must be samplable by the outline pass")
	}
}

func TestSectionTargetDescriptor(t *testing.T) {
	desc := SectionTargetDescriptor(gputypes.TextureFormatBGRA8Unorm, 64, 64)
	if desc.Label == "" {
		t.Error("section target should carry a debug label")
	}
	if desc.Usage&TextureUsageTextureBinding == 0 {
		t.Error("section target must be samplable by the outline pass")
	}
}
