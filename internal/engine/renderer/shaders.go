package renderer

import "github.com/Faultbox/midgard-daycycle/pkg/math"

var groundNormal = math.Up

const groundAlbedo = 0.45

// The sky is viewed from the side: the sun arc lies in the Y-Z plane, with
// +Z mapped to screen right, so the sun rises on the left and sets on the right.
const skyVertexShader = `
#version 410 core

out vec2 vPos;

void main() {
	// One triangle covering the screen.
	vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2) * 2.0 - 1.0;
	vPos = pos;
	gl_Position = vec4(pos, 0.0, 1.0);
}
` + "\x00"

const skyFragmentShader = `
#version 410 core

uniform vec3 uSky;
uniform vec3 uGround;
uniform vec3 uToSun;
uniform vec3 uSunColor;
uniform vec3 uMoonColor;
uniform float uSunIntensity;
uniform float uMoonIntensity;

in vec2 vPos;
out vec4 FragColor;

const float ORBIT = 0.8;
const float DISC = 0.06;

float disc(vec2 center) {
	return 1.0 - smoothstep(DISC * 0.8, DISC, distance(vPos, center));
}

void main() {
	vec3 color = vPos.y >= 0.0
		? mix(uSky * 1.15, uSky * 0.7, vPos.y)
		: uGround;

	if (vPos.y >= 0.0) {
		vec2 sun = vec2(uToSun.z, uToSun.y) * ORBIT;
		vec2 moon = -sun;
		color = mix(color, uSunColor, disc(sun) * clamp(uSunIntensity, 0.0, 1.0));
		color = mix(color, uMoonColor, disc(moon) * clamp(uMoonIntensity * 2.0, 0.0, 1.0));
	}

	FragColor = vec4(color, 1.0);
}
` + "\x00"
