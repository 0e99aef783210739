// Package renderer draws the day/night sky with OpenGL.
package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-daycycle/internal/engine/lighting"
	"github.com/Faultbox/midgard-daycycle/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	skyProgram uint32
	skyVAO     uint32 // empty; the sky triangle is generated from gl_VertexID

	uniforms skyUniforms
}

type skyUniforms struct {
	sky           int32
	ground        int32
	toSun         int32
	sunColor      int32
	moonColor     int32
	sunIntensity  int32
	moonIntensity int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.skyProgram, err = createProgram(skyVertexShader, skyFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create sky program: %w", err)
	}
	r.uniforms = skyUniforms{
		sky:           uniform(r.skyProgram, "uSky"),
		ground:        uniform(r.skyProgram, "uGround"),
		toSun:         uniform(r.skyProgram, "uToSun"),
		sunColor:      uniform(r.skyProgram, "uSunColor"),
		moonColor:     uniform(r.skyProgram, "uMoonColor"),
		sunIntensity:  uniform(r.skyProgram, "uSunIntensity"),
		moonIntensity: uniform(r.skyProgram, "uMoonIntensity"),
	}

	gl.GenVertexArrays(1, &r.skyVAO)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.skyVAO != 0 {
		gl.DeleteVertexArrays(1, &r.skyVAO)
	}
	if r.skyProgram != 0 {
		gl.DeleteProgram(r.skyProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame, clearing to the environment's sky color.
func (r *Renderer) Begin(env *lighting.Environment) {
	sky := env.SkyColor()
	gl.ClearColor(sky.R, sky.G, sky.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {}

// DrawSky draws the sky gradient, the ground lit by the environment and the
// sun and moon discs.
func (r *Renderer) DrawSky(env *lighting.Environment) {
	sky := env.SkyColor()
	ground := env.Irradiance(groundNormal).Scale(groundAlbedo)
	toSun := env.ToSun()

	gl.UseProgram(r.skyProgram)
	gl.Uniform3f(r.uniforms.sky, sky.R, sky.G, sky.B)
	gl.Uniform3f(r.uniforms.ground, ground.R, ground.G, ground.B)
	gl.Uniform3f(r.uniforms.toSun, toSun.X, toSun.Y, toSun.Z)
	gl.Uniform3f(r.uniforms.sunColor, env.Sun.Color.R, env.Sun.Color.G, env.Sun.Color.B)
	gl.Uniform3f(r.uniforms.moonColor, env.Moon.Color.R, env.Moon.Color.G, env.Moon.Color.B)
	gl.Uniform1f(r.uniforms.sunIntensity, env.Sun.Intensity)
	gl.Uniform1f(r.uniforms.moonIntensity, env.Moon.Intensity)

	gl.BindVertexArray(r.skyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func uniform(program uint32, name string) int32 {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		logger.Warn("uniform not found", zap.String("name", name))
	}
	return loc
}

// createProgram compiles and links a vertex/fragment shader pair.
func createProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", log)
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}
