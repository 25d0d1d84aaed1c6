package domain

// Normalize projects a platform user id onto the calling provider's identifier
// grammar by dropping every character outside [A-Za-z0-9].
// Distinct raw ids may collide after normalization; this is not detected.
func Normalize(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isAlphanumeric(c) {
			out = append(out, c)
		}
	}
	return string(out)
}

func isAlphanumeric(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
