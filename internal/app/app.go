// Package app wires the Kido pipeline together: camera tracking,
// gesture classification, navigation dispatch, and persistence.
package app

import (
	"log"

	"github.com/ayusman/kido/internal/capture"
	"github.com/ayusman/kido/internal/classifier"
	"github.com/ayusman/kido/internal/engine"
	"github.com/ayusman/kido/internal/navigate"
	"github.com/ayusman/kido/internal/plugin"
	"github.com/ayusman/kido/internal/store"
	"github.com/ayusman/kido/internal/tracker"
)

// pointerPluginName is the plugin the navigator drives.
const pointerPluginName = "pointer"

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	PluginDir    string
	CameraID     int
	MotionThresh float64
	Sensitivity  float64
}

// App is the main application that orchestrates hand tracking,
// gesture classification, and navigation actions.
type App struct {
	config     Config
	tracker    *tracker.Tracker
	engine     *engine.Engine
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor
	navigator  *navigate.Navigator
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	camera := capture.NewCamera(config.CameraID)
	motion := capture.NewMotionDetector(motionThreshold)

	// Try MediaPipe first, fall back to mock detector
	var detector tracker.Detector
	if mp, err := tracker.NewMediaPipeDetector(tracker.DefaultConfig()); err == nil {
		detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		detector = tracker.NewMockDetector()
	}

	trk := tracker.New(camera, motion, detector)
	eng := engine.New(trk, classifier.New(classifier.DefaultParams()))

	if config.Store != nil {
		eng.AddSink(engine.NewRecorder(config.Store.Events()))
	}

	return &App{
		config:     config,
		tracker:    trk,
		engine:     eng,
		pluginMgr:  plugin.NewManager(config.PluginDir),
		pluginExec: plugin.NewExecutor(5000), // 5 second timeout for plugin execution
	}
}

// SetEnabled enables or disables navigation.
func (a *App) SetEnabled(enabled bool) {
	a.engine.SetEnabled(enabled)
	if !enabled && a.navigator != nil {
		a.navigator.Release()
	}
}

// IsEnabled returns whether navigation is currently enabled.
func (a *App) IsEnabled() bool {
	return a.engine.IsEnabled()
}

// DiscoverPlugins scans the plugin directory and, when a pointer plugin
// is present, attaches the navigator to the pipeline.
func (a *App) DiscoverPlugins() error {
	if err := a.pluginMgr.Discover(); err != nil {
		return err
	}

	pointer, err := a.pluginMgr.Get(pointerPluginName)
	if err != nil {
		log.Printf("No %s plugin found, navigation actions disabled", pointerPluginName)
		return nil
	}

	a.navigator = navigate.New(a.pluginExec, pointer)
	if a.config.Sensitivity > 0 {
		a.navigator.SetSensitivity(a.config.Sensitivity)
	}
	a.engine.AddSink(a.navigator)

	log.Printf("Navigator attached to %s plugin", pointerPluginName)
	return nil
}

// AddSink registers an additional consumer of classified gesture ticks.
func (a *App) AddSink(s engine.Sink) {
	a.engine.AddSink(s)
}

// Start begins the tracking and classification pipeline.
func (a *App) Start() error {
	if err := a.tracker.Start(); err != nil {
		return err
	}
	a.engine.Start()

	log.Println("Navigation pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources. Any in-progress drag
// is released so the pointer button is not left pressed.
func (a *App) Stop() {
	a.engine.Stop()
	if a.navigator != nil {
		a.navigator.Release()
	}
	a.tracker.Stop()

	log.Println("Navigation pipeline stopped")
}

// Tracker returns the hand tracker.
func (a *App) Tracker() *tracker.Tracker {
	return a.tracker
}

// Engine returns the classification engine.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.tracker.Camera()
}

// PluginManager returns the plugin manager.
func (a *App) PluginManager() *plugin.Manager {
	return a.pluginMgr
}
