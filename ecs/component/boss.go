package component

type Boss struct {
	Body
	Speed float64
	HP    int
	MaxHP int
}

// Hit subtracts damage and reports whether the boss is now dead.
func (b *Boss) Hit(damage int) bool {
	if b == nil || b.HP <= 0 {
		return false
	}
	b.HP -= damage
	return b.HP <= 0
}

var BossComponent = NewComponent[Boss]()
