package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/ayusman/kido/internal/app"
	"github.com/ayusman/kido/internal/config"
	"github.com/ayusman/kido/internal/server"
	"github.com/ayusman/kido/internal/store"
	"github.com/ayusman/kido/internal/tray"
)

func main() {
	fmt.Println("Kido - Hand Gesture Navigation")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(cfg.DBPath())
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	a := app.New(app.Config{
		Store:        st,
		PluginDir:    cfg.PluginDir,
		CameraID:     cfg.CameraID,
		MotionThresh: cfg.MotionThreshold,
		Sensitivity:  cfg.Sensitivity,
	})

	if err := a.DiscoverPlugins(); err != nil {
		log.Printf("Plugin discovery failed: %v", err)
	}

	// Find web directory
	webDir := findWebDir(cfg.DataDir)
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Camera:    a.Camera(),
		Tracker:   a.Tracker(),
		Engine:    a.Engine(),
	})
	a.AddSink(srv.GestureStream())

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer a.Stop()

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(cfg.HTTPAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if cfg.Headless {
		a.SetEnabled(true)
		waitForSignal()
		return
	}

	runTray(a, cfg.HTTPAddr)
}

// runTray blocks in the system tray loop until the user quits.
func runTray(a *app.App, httpAddr string) {
	t := tray.New()
	a.AddSink(t)

	// The tray starts disabled; keep the pipeline in step with it so
	// nothing moves the pointer until the user toggles navigation on.
	a.SetEnabled(t.IsEnabled())

	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnSettings(func() {
		openBrowser(settingsURL(httpAddr))
	})
	t.OnQuit(func() {
		a.Stop()
	})

	t.Run()
}

// settingsURL turns a listen address into a browsable URL.
func settingsURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

// openBrowser opens the URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// waitForSignal blocks until SIGINT or SIGTERM.
func waitForSignal() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	fmt.Println("Shutting down")
}

// findWebDir searches for the web directory in common locations.
// It checks "web", "../web", "../../web", and <dataDir>/web.
// Returns the first existing directory or empty string if none found.
func findWebDir(dataDir string) string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	webDir := filepath.Join(dataDir, "web")
	if info, err := os.Stat(webDir); err == nil && info.IsDir() {
		return webDir
	}

	return ""
}
