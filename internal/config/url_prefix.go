package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix базовый адрес коротких ссылок: схема http(s), хост и
// необязательный путь. Всегда оканчивается на "/".
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid URL prefix %q: %w", value, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL prefix %q: scheme must be http or https", value)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL prefix %q: host is required", value)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid URL prefix %q: query and fragment are not allowed", value)
	}

	*p = URLPrefix(strings.TrimSuffix(u.String(), "/") + "/")
	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// Join возвращает полный адрес для кода
func (p URLPrefix) Join(code string) string {
	return string(p) + code
}
