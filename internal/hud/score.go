package hud

// ScoreState is the hero's accumulated score, stored as six BCD-style
// digits so a Host can render it without any binary-to-decimal
// conversion of its own.
type ScoreState struct {
	Digits [6]uint8 // most significant first, each 0-9
}

// Add increments the score by a non-negative number of points, carrying
// across digits.
func (s *ScoreState) Add(points int) {
	carry := points
	for i := len(s.Digits) - 1; i >= 0 && carry > 0; i-- {
		v := int(s.Digits[i]) + carry%10
		carry = carry/10 + v/10
		s.Digits[i] = uint8(v % 10)
	}
}

// Value returns the score as a plain integer.
func (s *ScoreState) Value() int {
	v := 0
	for _, d := range s.Digits {
		v = v*10 + int(d)
	}
	return v
}
