package schedule

// Shortcut is a keyboard date intent: shift the anchor date by Minutes, either from its
// current value (RelativeToNow) or from now.
type Shortcut struct {
	Key           string
	Label         string
	Minutes       int
	RelativeToNow bool
}

var dateShortcuts = []Shortcut{
	{Key: "h", Label: "+1 hora", Minutes: 60, RelativeToNow: true},
	{Key: "H", Label: "+3 horas", Minutes: 3 * 60, RelativeToNow: true},
	{Key: "d", Label: "+1 dia", Minutes: 24 * 60, RelativeToNow: true},
	{Key: "w", Label: "+1 semana", Minutes: 7 * 24 * 60, RelativeToNow: true},
	{Key: "n", Label: "hoje, daqui a 30 minutos", Minutes: DefaultOffsetMinutes},
	{Key: "T", Label: "amanhã neste horário", Minutes: 24 * 60},
}

// DateShortcuts returns the keyboard date shortcuts in display order
func DateShortcuts() []Shortcut {
	out := make([]Shortcut, len(dateShortcuts))
	copy(out, dateShortcuts)
	return out
}

// LookupShortcut finds the date shortcut bound to key
func LookupShortcut(key string) (Shortcut, bool) {
	for _, s := range dateShortcuts {
		if s.Key == key {
			return s, true
		}
	}
	return Shortcut{}, false
}

// Options converts the shortcut into resolver options
func (s Shortcut) Options(useInstagramDate bool) []ResolveOption {
	return []ResolveOption{
		WithInstagramDate(useInstagramDate),
		WithOffset(s.Minutes),
		RelativeToNow(s.RelativeToNow),
	}
}
