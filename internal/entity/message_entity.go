package entity

// Message is an append-only contact submission. All fields are optional;
// the core never reads messages back.
type Message struct {
	Name    *string
	Email   *string
	Subject *string
	Body    *string
}
