package notiftype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownType(t *testing.T) {
	cfg := Lookup(TypeCallIncoming)

	assert.Equal(t, PriorityCritical, cfg.Priority)
	assert.Equal(t, "ringtone", cfg.Sound)
	assert.Equal(t, "calls", cfg.ChannelID)
	assert.True(t, cfg.FullScreen)
	assert.Equal(t, BehaviorFullScreen, cfg.Foreground)
}

func TestLookup_UnknownTypeFallsBackToDefault(t *testing.T) {
	cfg := Lookup("something_nobody_registered")

	assert.Equal(t, defaultConfig, cfg)
}

func TestLookup_SilentType(t *testing.T) {
	cfg := Lookup(TypeForceLogout)

	assert.Equal(t, BehaviorSilent, cfg.Foreground)
	assert.Empty(t, cfg.Sound)
}

func TestPrefersRealtime(t *testing.T) {
	assert.True(t, PrefersRealtime(TypeMessageDirect))
	assert.True(t, PrefersRealtime(TypeMessageGroup))
	assert.False(t, PrefersRealtime(TypeCallIncoming))
	assert.False(t, PrefersRealtime(TypeSystem))
	assert.False(t, PrefersRealtime("something_nobody_registered"))
}
