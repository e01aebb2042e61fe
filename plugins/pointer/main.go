// Package main provides a pointer plugin for X11 desktops.
// It drives viewport navigation (drag to orbit, scroll to zoom) via xdotool.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// dragButton is the mouse button held while orbiting. Button 2 (middle)
// is the conventional orbit binding in 3D viewers.
const dragButton = "2"

// Request represents the input from the plugin executor.
type Request struct {
	Action  string          `json:"action"`
	Gesture string          `json:"gesture"`
	Config  json.RawMessage `json:"config"`
	Params  json.RawMessage `json:"params"`
}

// Response represents the output to the plugin executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// moveParams carries the pixel displacement for orbit-move.
type moveParams struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// scrollParams carries the direction for scroll.
type scrollParams struct {
	Direction string `json:"direction"`
}

// actionHandler defines a function type for handling specific actions.
type actionHandler func(params json.RawMessage) error

// actionHandlers maps action names to their handler functions.
var actionHandlers = map[string]actionHandler{
	"orbit-start": orbitStart,
	"orbit-move":  orbitMove,
	"orbit-end":   orbitEnd,
	"scroll":      scroll,
}

func main() {
	// Read request from stdin
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	// Look up the handler for the action
	handler, ok := actionHandlers[req.Action]
	if !ok {
		writeErrorResponse(fmt.Sprintf("unknown action: %s", req.Action))
		return
	}

	// Execute the handler
	if err := handler(req.Params); err != nil {
		writeErrorResponse(fmt.Sprintf("action %s failed: %v", req.Action, err))
		return
	}

	// Write success response
	writeSuccessResponse()
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(errMsg string) {
	resp := Response{
		Success: false,
		Error:   errMsg,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse() {
	resp := Response{
		Success: true,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// runXdotool executes an xdotool command and returns any error.
func runXdotool(args ...string) error {
	cmd := exec.Command("xdotool", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, string(output))
	}
	return nil
}

// orbitStart presses the drag button.
func orbitStart(json.RawMessage) error {
	return runXdotool("mousedown", dragButton)
}

// orbitMove moves the pointer by the requested displacement while dragging.
func orbitMove(params json.RawMessage) error {
	var p moveParams
	if err := json.Unmarshal(params, &p); err != nil {
		return fmt.Errorf("invalid move params: %w", err)
	}
	return runXdotool("mousemove_relative", "--", strconv.Itoa(p.DX), strconv.Itoa(p.DY))
}

// orbitEnd releases the drag button.
func orbitEnd(json.RawMessage) error {
	return runXdotool("mouseup", dragButton)
}

// scroll emits one scroll-wheel tick. X11 maps buttons 4 and 5 to
// wheel up and wheel down.
func scroll(params json.RawMessage) error {
	var p scrollParams
	if err := json.Unmarshal(params, &p); err != nil {
		return fmt.Errorf("invalid scroll params: %w", err)
	}

	switch p.Direction {
	case "up":
		return runXdotool("click", "4")
	case "down":
		return runXdotool("click", "5")
	default:
		return fmt.Errorf("unknown scroll direction: %q", p.Direction)
	}
}
