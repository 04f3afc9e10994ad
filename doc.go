// Package blue is a 2D game-engine layer on top of Ebitengine: an
// entity/component scene tree, deferred-commit update and render scheduling,
// a pooled coroutine scheduler driven by yield instructions, and a small
// content loader.
//
// The three schedulers (updater, renderer, coroutines) share one core idea:
// membership changes requested during a frame are staged and applied only at
// the start of the next pass, so callbacks may freely spawn and destroy
// objects while the live list is being iterated.
package blue
