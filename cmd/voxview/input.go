package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"voxquad/internal/config"
	"voxquad/internal/render"
	"voxquad/internal/snapshot"
)

const (
	mouseSensitivity = 0.1
	moveSpeed        = 24.0 // blocks per second
	sprintFactor     = 3.0
)

func setupInput(window *glfw.Window, camera *render.Camera, stream *streamer) {
	firstMouse := true
	var lastX, lastY float64

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if firstMouse {
			lastX, lastY = xpos, ypos
			firstMouse = false
			return
		}
		dx := float32(xpos-lastX) * mouseSensitivity
		dy := float32(lastY-ypos) * mouseSensitivity
		lastX, lastY = xpos, ypos
		camera.Rotate(dx, dy)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyMinus:
			config.SetRenderDistance(config.GetRenderDistance() - 1)
		case glfw.KeyEqual:
			config.SetRenderDistance(config.GetRenderDistance() + 1)
		case glfw.KeyF5:
			saveSnapshot(stream)
		}
	})
}

func saveSnapshot(stream *streamer) {
	groups := stream.snapshotGroups()
	if len(groups) == 0 {
		log.Println("snapshot: nothing resident, skipped")
		return
	}
	path := fmt.Sprintf("world-%s.vqs", time.Now().Format("20060102-150405"))
	if err := snapshot.WriteFile(path, groups, snapshot.CompZstd); err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	log.Printf("snapshot: wrote %d groups to %s", len(groups), path)
}

func handleMovement(window *glfw.Window, camera *render.Camera, dt float32) {
	speed := moveSpeed * dt
	if window.GetKey(glfw.KeyLeftControl) == glfw.Press {
		speed *= sprintFactor
	}

	var forward, right, up float32
	if window.GetKey(glfw.KeyW) == glfw.Press {
		forward += speed
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		forward -= speed
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		right += speed
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		right -= speed
	}
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		up += speed
	}
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		up -= speed
	}
	camera.Move(forward, right, up)
}
