package game

// Evaluate scores guess against target. Both must be five uppercase letters.
//
// Target letters that are not matched positionally form a pool; scanning the
// guess left to right, a non-positional letter is Present only while the pool
// still holds a copy of it, and each Present consumes one copy.
func Evaluate(target, guess string) Clues {
	var out Clues
	var pool [26]int

	for i := 0; i < WordLength; i++ {
		if target[i] != guess[i] {
			pool[letterIndex(target[i])]++
		}
	}

	for i := 0; i < WordLength; i++ {
		switch ch := guess[i]; {
		case ch == target[i]:
			out[i] = ClueCorrect
		case pool[letterIndex(ch)] > 0:
			out[i] = CluePresent
			pool[letterIndex(ch)]--
		default:
			out[i] = ClueWrong
		}
	}
	return out
}

func letterIndex(ch byte) int {
	return int(ch - 'A')
}
