package handlers

import "strings"

// idParam принимает идентификатор и как JSON-строку, и как JSON-число:
// клиенты исторически шлют userId обоими способами. Валидацией значения
// занимается сервис.
type idParam string

func (p *idParam) UnmarshalJSON(b []byte) error {
	*p = idParam(strings.Trim(string(b), `"`))
	return nil
}

func (p idParam) String() string { return string(p) }
