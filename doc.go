/*
Package glstart holds the GPU-free core of a small "getting started with OpenGL"
program: window configuration, the event queue that drives redraws, and the
vertex layouts and geometry uploaded by the OpenGL backend.

# Overview

The programs under example/ follow the same shape. A window is opened once,
GPU objects are created once, and from then on the window's event loop hands
three kinds of events to a Handler:

  - CloseRequested ends the loop.
  - Resized re-issues the viewport and notifies the handler.
  - RedrawRequested draws one frame and swaps buffers.

# Quick Start

	window, err := opengl.OpenWindow(glstart.WithTitle("quad"), glstart.WithSize(800, 600))
	if err != nil {
	    return err
	}
	defer window.Close()

	program, err := opengl.NewProgram(vertexSource, fragmentSource)
	if err != nil {
	    return err
	}
	defer program.Delete()

	quad, err := opengl.NewMesh(glstart.ColoredQuad())
	if err != nil {
	    return err
	}
	defer quad.Delete()

	return window.Run(glstart.RedrawFunc(func() error {
	    opengl.Clear(window.Config().ClearColor)
	    program.Use()
	    quad.Draw()
	    return nil
	}))

# Geometry

A Geometry is an interleaved float32 vertex buffer, a uint32 index buffer and
the Layout describing one vertex. Attribute i of a Layout is bound to shader
location i:

	layout (location = 0) in vec3 aPos;      // Layout[0] = {"position", 3}
	layout (location = 1) in vec3 aColor;    // Layout[1] = {"color", 3}
	layout (location = 2) in vec2 aTexCoord; // Layout[2] = {"texcoord", 2}

Geometry.Validate checks the buffers against the layout before anything is
uploaded.

# Threading

Everything runs on the main OS thread. Programs lock it in init:

	func init() {
	    runtime.LockOSThread()
	}
*/
package glstart
