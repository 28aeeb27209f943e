package model

import "time"

// Code короткий код или пользовательский алиас
type Code string

func (c Code) String() string {
	return string(c)
}

// URL оригинальный адрес, на который ведёт короткий код
type URL string

func (u URL) String() string {
	return string(u)
}

// EntryKind различает сгенерированные коды и пользовательские алиасы
type EntryKind string

const (
	EntryKindGenerated EntryKind = "generated"
	EntryKindAlias     EntryKind = "alias"
)

// Entry запись реестра кодов
//
// Алиас ссылается на сгенерированный код через ParentCode и делит с ним
// одно пространство имён.
type Entry struct {
	Code       Code
	TargetURL  URL
	Owner      string // пустая строка у анонимных пользователей
	Kind       EntryKind
	ParentCode Code
	CreatedAt  time.Time
	ExpiresAt  *time.Time
	ClickCount int64
	Active     bool
}

// IsAlias возвращает true для пользовательских алиасов
func (e Entry) IsAlias() bool {
	return e.Kind == EntryKindAlias
}

// ExpiredAt проверяет, истёк ли срок действия записи к моменту now
func (e Entry) ExpiredAt(now time.Time) bool {
	return e.ExpiresAt != nil && !now.Before(*e.ExpiresAt)
}

// OwnedBy проверяет принадлежность записи пользователю
// Анонимные записи не принадлежат никому
func (e Entry) OwnedBy(owner string) bool {
	return e.Owner != "" && e.Owner == owner
}

// OwnerEntry сгенерированная запись вместе с её активными алиасами
type OwnerEntry struct {
	Entry
	Aliases []Code
}

// ClickEvent событие перехода по короткому коду
type ClickEvent struct {
	Code Code      `json:"code"`
	At   time.Time `json:"at"`
}
