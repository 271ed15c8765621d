package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/simumotion/internal/frames"
	"github.com/olivier-w/simumotion/internal/kinematics"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Sim.Duration)
	assert.Equal(t, 160, cfg.Sim.Slices)
	assert.Equal(t, 1.0, cfg.Sim.Gravity)
	assert.Equal(t, 0.0, cfg.Sim.DragFactor)
	assert.Equal(t, 5.0, cfg.Launch.Speed)
	assert.Equal(t, []float64{15, 30, 45, 60, 75, 90}, cfg.Launch.Angles)
	assert.Equal(t, 30.0, cfg.View.XMax)
	assert.Equal(t, 15.0, cfg.View.YMax)
	assert.Equal(t, "Animation", cfg.View.Title)
	assert.Equal(t, "length", cfg.View.XLabel)
	assert.Equal(t, "height", cfg.View.YLabel)
	assert.Equal(t, frames.DefaultTimeTemplate, cfg.View.TimeTemplate)
	assert.True(t, cfg.Playback.Repeat)
	assert.Equal(t, frames.TraceCumulative, cfg.TraceMode())
	assert.Equal(t, BackendTerminal, cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 62500*time.Microsecond, cfg.Interval())
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	fs := newFlags(t, "--slices=40", "--angles=30,60", "--repeat=false", "--trace=current", "--interval=250ms", "--drag=0.5")
	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Sim.Slices)
	assert.Equal(t, []float64{30, 60}, cfg.Launch.Angles)
	assert.Equal(t, frames.RepeatOnce, cfg.Repeat())
	assert.Equal(t, frames.TraceCurrent, cfg.TraceMode())
	assert.Equal(t, 250*time.Millisecond, cfg.Interval())
	assert.Equal(t, kinematics.Vec2{X: -0.5, Y: -1.5}, cfg.Acceleration())
	// Unset flags leave defaults alone.
	assert.Equal(t, 10.0, cfg.Sim.Duration)
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "run.yaml")
	content := "sim:\n  slices: 80\n  gravity: 2\nlaunch:\n  angles: [10, 20]\nview:\n  title: Fan\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(newFlags(t, "--config="+path))
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Sim.Slices)
	assert.Equal(t, 2.0, cfg.Sim.Gravity)
	assert.Equal(t, []float64{10, 20}, cfg.Launch.Angles)
	assert.Equal(t, "Fan", cfg.View.Title)
	assert.Equal(t, 10.0, cfg.Sim.Duration)
}

func TestLoad_DiscoversConfigInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "simumotion.json"), []byte(`{"launch": {"speed": 7}}`), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.Launch.Speed)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(newFlags(t, "--config=/nonexistent/run.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SIMUMOTION_SIM_SLICES", "20")
	t.Setenv("SIMUMOTION_BACKEND", "window")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Sim.Slices)
	assert.Equal(t, BackendWindow, cfg.Backend)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SIMUMOTION_LAUNCH_SPEED=9\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SIMUMOTION_LAUNCH_SPEED") })

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 9.0, cfg.Launch.Speed)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"slices":  {"--slices=0"},
		"backend": {"--backend=opengl"},
		"trace":   {"--trace=fresh"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			_, err := Load(newFlags(t, args...))
			assert.Error(t, err)
		})
	}
}

func TestValidate_Viewport(t *testing.T) {
	cfg := Config{
		Sim:      SimConfig{Duration: 1, Slices: 2},
		Launch:   LaunchConfig{Angles: []float64{45}},
		View:     ViewConfig{XMin: 1, XMax: 1, YMax: 1},
		Backend:  BackendTerminal,
		Playback: PlaybackConfig{Trace: "cumulative"},
	}
	assert.ErrorContains(t, cfg.Validate(), "view.xMax")

	cfg.View.XMax = 2
	assert.NoError(t, cfg.Validate())

	cfg.Launch.Angles = nil
	assert.ErrorContains(t, cfg.Validate(), "launch.angles")
}

func TestLaunchesUseSharedOrigin(t *testing.T) {
	cfg := Config{Launch: LaunchConfig{X0: 1, Y0: 2, Speed: 3, Angles: []float64{10, 20}}}
	ls := cfg.Launches()
	require.Len(t, ls, 2)
	assert.Equal(t, kinematics.Launch{Origin: kinematics.Vec2{X: 1, Y: 2}, Speed: 3, AngleDeg: 20}, ls[1])
}
