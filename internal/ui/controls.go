package ui

// Controls lists the key bindings shown next to the board.
var Controls = []string{
	"left/right  move",
	"up          rotate",
	"down        soft drop",
	"space       hard drop",
	"p           pause",
	"r           restart",
	"q/esc       quit",
}
