package terminal

import "github.com/plus3/blockfall/internal/session"

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// decode turns raw terminal input into actions. It reports quit for q,
// Ctrl-C and a lone Escape.
func decode(input []byte) (actions []session.Action, quit bool) {
	for i := 0; i < len(input); i++ {
		b := input[i]
		switch b {
		case keyCtrlC, 'q', 'Q':
			return actions, true
		case keyEscape:
			if i+2 < len(input) && (input[i+1] == '[' || input[i+1] == 'O') {
				if action, ok := arrow(input[i+2]); ok {
					actions = append(actions, action)
				}
				i += 2
				continue
			}
			if i+1 == len(input) {
				return actions, true
			}
		case 'a', 'h':
			actions = append(actions, session.ActionLeft)
		case 'd', 'l':
			actions = append(actions, session.ActionRight)
		case 'w', 'k':
			actions = append(actions, session.ActionRotate)
		case 's', 'j':
			actions = append(actions, session.ActionSoftDrop)
		case ' ':
			actions = append(actions, session.ActionHardDrop)
		case 'p', 'P':
			actions = append(actions, session.ActionPause)
		case 'r', 'R':
			actions = append(actions, session.ActionRestart)
		}
	}
	return actions, false
}

func arrow(b byte) (session.Action, bool) {
	switch b {
	case 'A':
		return session.ActionRotate, true
	case 'B':
		return session.ActionSoftDrop, true
	case 'C':
		return session.ActionRight, true
	case 'D':
		return session.ActionLeft, true
	}
	return 0, false
}
