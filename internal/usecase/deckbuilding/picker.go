package deckbuilding

import "math/rand/v2"

// RandomPicker usa las funciones globales de math/rand/v2, seguras entre goroutines.
type RandomPicker struct{}

func NewRandomPicker() RandomPicker {
	return RandomPicker{}
}

func (RandomPicker) IntN(n int) int {
	return rand.IntN(n)
}
