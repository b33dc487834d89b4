package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		id, mode   string
		want       Context
	}{
		{"wechat dev", "wechat", "development", Context{ID: "wechat", StyleExt: "wxss"}},
		{"alipay prod", "alipay", "production", Context{ID: "alipay", Production: true, StyleExt: "acss"}},
		{"normalizes case", " Toutiao ", "", Context{ID: "toutiao", StyleExt: "ttss"}},
		{"empty defaults to wechat", "", "", Context{ID: "wechat", StyleExt: "wxss"}},
		{"unknown platform", "qq", "production", Context{ID: "qq", Production: true, StyleExt: "css"}},
		{"mode must match exactly", "swan", "Production", Context{ID: "swan", StyleExt: "css"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.id, tt.mode))
		})
	}
}

func TestStyleExtensionIsPure(t *testing.T) {
	t.Setenv("PLATFORM", "alipay")
	for _, id := range Known() {
		first := StyleExtension(id)
		for range 3 {
			assert.Equal(t, first, StyleExtension(id), id)
		}
	}
	assert.Equal(t, "wxss", StyleExtension("wechat"))
}

func TestWebLike(t *testing.T) {
	assert.True(t, New("h5", "").WebLike())
	assert.True(t, IsWebLike("web"))
	assert.False(t, New("wechat", "").WebLike())
	assert.Equal(t, "dist-swan", New("swan", "").OutputDir())
	assert.Equal(t, "production", New("swan", "production").Mode())
}
