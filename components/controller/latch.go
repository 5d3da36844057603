package controller

// Latch turns a held button into a single press.
type Latch struct {
	val bool
}

// Run returns true only on the tick where v goes from false to true.
func (l *Latch) Run(v bool) bool {
	r := v && !l.val
	l.val = v
	return r
}
