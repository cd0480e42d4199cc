package core

type Signal any

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type SaveSignal struct {
	path    string
	content string
}

func (s SaveSignal) Value() (path, content string) {
	return s.path, s.content
}

type OpenSignal struct {
	path string
}

func (o OpenSignal) Value() string {
	return o.path
}

type SearchResultsSignal struct {
	term  string
	spans []Span
}

func (s SearchResultsSignal) Value() (term string, spans []Span) {
	return s.term, s.spans
}

type CopySignal struct {
	content string
	cut     bool
}

func (c CopySignal) Value() (content string, cut bool) {
	return c.content, c.cut
}

type PasteSignal struct {
	content string
}

func (p PasteSignal) Value() string {
	return p.content
}

type SessionSignal struct {
	session Session
}

func (s SessionSignal) Value() Session {
	return s.session
}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}
