// Package daynight simulates a day/night cycle for a 3D scene.
//
// A Simulator owns a virtual clock that runs faster than real time. Each
// Tick advances the clock, turns the time of day into a sun rotation about
// the world's right axis and mixes sun intensity, moon intensity and the
// ambient color from the sun's elevation through a pluggable response curve.
//
// The package never touches a renderer. Hosts read the returned Frame and
// apply it to whatever lighting state they own.
package daynight
