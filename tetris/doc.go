// Package tetris implements the rules of a single-player falling-block puzzle.
//
// A Game owns a Board of colored cells and one active Piece. Input methods
// (MoveLeft, MoveRight, Rotate, MoveDown, HardDrop) mutate the game
// synchronously and return the Events they caused, so callers can drive the
// game from any loop: a window's update callback, a terminal ticker or a
// headless simulation.
//
// The only failure mode is a newly spawned piece colliding with the stack,
// which ends the game. Once over, every input is ignored until Reset.
package tetris
