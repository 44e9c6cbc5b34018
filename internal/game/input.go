package game

// InputKind tags an Input.
type InputKind uint8

const (
	InputChar InputKind = iota + 1
	InputDelete
	InputSubmit
)

// Input is a player event translated by the host. Char is only meaningful
// for InputChar.
type Input struct {
	Kind InputKind
	Char rune
}

// Char types one letter into the entry.
func Char(r rune) Input {
	return Input{Kind: InputChar, Char: r}
}

// Delete removes the last letter of the entry.
func Delete() Input {
	return Input{Kind: InputDelete}
}

// Submit scores the entry.
func Submit() Input {
	return Input{Kind: InputSubmit}
}

func (k InputKind) String() string {
	switch k {
	case InputChar:
		return "char"
	case InputDelete:
		return "delete"
	case InputSubmit:
		return "submit"
	default:
		return "unknown"
	}
}
