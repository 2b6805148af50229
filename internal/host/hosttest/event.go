package hosttest

// Event is a host event with properties read from a map.
type Event struct {
	Kind  string
	Props map[string]interface{}
}

func NewEvent(kind string, props map[string]interface{}) Event {
	return Event{Kind: kind, Props: props}
}

func (e Event) Type() string {
	return e.Kind
}

func (e Event) String(property string) string {
	s, _ := e.Props[property].(string)
	return s
}

func (e Event) Float(property string) float64 {
	switch v := e.Props[property].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func (e Event) Bool(property string) bool {
	b, _ := e.Props[property].(bool)
	return b
}
