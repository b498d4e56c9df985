package loader_test

import (
	"errors"
	"testing"

	"roster-importer/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string      { return f.name }
func (f *fakeFeature) IsEnabled() bool   { return f.enabled }
func (f *fakeFeature) Load(_ fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("LoadsEnabledFeatures", func(t *testing.T) {
		mgr := loader.NewManager()
		a := &fakeFeature{name: "a", enabled: true}
		b := &fakeFeature{name: "b", enabled: false}
		mgr.Register(a)
		mgr.Register(b)

		err := mgr.LoadAll(app)
		assert.NoError(t, err)
		assert.True(t, a.loaded)
		assert.False(t, b.loaded)
	})

	t.Run("StopsOnFailure", func(t *testing.T) {
		mgr := loader.NewManager()
		a := &fakeFeature{name: "a", enabled: true, loadErr: errors.New("boom")}
		b := &fakeFeature{name: "b", enabled: true}
		mgr.Register(a)
		mgr.Register(b)

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "feature a")
		assert.False(t, b.loaded)
	})
}
