package model

import "time"

// CreateRequest параметры создания короткой ссылки на уровне сервиса
type CreateRequest struct {
	TargetURL  URL
	CustomCode Code // пустой, если алиас не запрошен
	Owner      string
	ExpiresAt  *time.Time
}

// CreateResult созданная запись и, если запрошен, её алиас
type CreateResult struct {
	Entry Entry
	Alias *Entry
}

// ShortenRequest тело запроса POST /api/shorten
type ShortenRequest struct {
	URL        string `json:"url"`
	CustomCode string `json:"customCode,omitempty"`
	ExpiresAt  string `json:"expiresAt,omitempty"`
}

// ShortenResponse ответ на создание короткой ссылки
type ShortenResponse struct {
	ShortCode   string     `json:"shortCode"`
	CustomCode  string     `json:"customCode,omitempty"`
	ShortURL    string     `json:"shortUrl"`
	CustomURL   string     `json:"customUrl,omitempty"`
	OriginalURL string     `json:"originalUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// UserURLResponse элемент списка ссылок пользователя
type UserURLResponse struct {
	ShortCode   string     `json:"shortCode"`
	ShortURL    string     `json:"shortUrl"`
	OriginalURL string     `json:"originalUrl"`
	Aliases     []string   `json:"aliases,omitempty"`
	ClickCount  int64      `json:"clickCount"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// AliasRequest тело запроса PUT /api/urls/{code}/alias
type AliasRequest struct {
	CustomCode string `json:"customCode"`
}

// AliasResponse ответ на добавление алиаса
type AliasResponse struct {
	Code       string `json:"code"`
	CustomCode string `json:"customCode"`
	CustomURL  string `json:"customUrl"`
}

// TokenResponse ответ POST /api/auth/token
type TokenResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ErrorBody описание ошибки в ответе
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
