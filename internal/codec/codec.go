// Package codec переводит неотрицательные целые числа в короткие строки и обратно
package codec

import (
	"errors"
	"fmt"
	"math"
)

// Alphabet62 порядок символов задаёт значения цифр: сначала цифры, затем строчные, затем прописные буквы
const Alphabet62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrEmptyInput       = errors.New("empty input")
	ErrOverflow         = errors.New("value overflows uint64")
	ErrInvalidAlphabet  = errors.New("invalid alphabet")
)

// Codec позиционная система счисления над фиксированным алфавитом
type Codec struct {
	alphabet string
	base     uint64
	index    [256]int16
}

// Base62 кодек по умолчанию
var Base62 = MustNew(Alphabet62)

// New создает кодек над алфавитом из уникальных ASCII символов
func New(alphabet string) (*Codec, error) {
	if len(alphabet) < 2 {
		return nil, fmt.Errorf("%w: at least 2 symbols required", ErrInvalidAlphabet)
	}

	c := &Codec{
		alphabet: alphabet,
		base:     uint64(len(alphabet)),
	}
	for i := range c.index {
		c.index[i] = -1
	}

	for i := 0; i < len(alphabet); i++ {
		ch := alphabet[i]
		if ch >= 0x80 {
			return nil, fmt.Errorf("%w: non-ASCII symbol at %d", ErrInvalidAlphabet, i)
		}
		if c.index[ch] != -1 {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, ch)
		}
		c.index[ch] = int16(i)
	}

	return c, nil
}

// MustNew как New, но паникует на некорректном алфавите
func MustNew(alphabet string) *Codec {
	c, err := New(alphabet)
	if err != nil {
		panic(err)
	}
	return c
}

// Alphabet возвращает алфавит кодека
func (c *Codec) Alphabet() string {
	return c.alphabet
}

// Encode кодирует число; ноль кодируется первым символом алфавита
func (c *Codec) Encode(n uint64) string {
	if n == 0 {
		return c.alphabet[:1]
	}

	// 64 цифры хватает для любого основания >= 2
	var buf [64]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = c.alphabet[n%c.base]
		n /= c.base
	}

	return string(buf[i:])
}

// Decode обратное к Encode преобразование
func (c *Codec) Decode(s string) (uint64, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		digit := c.index[s[i]]
		if digit < 0 {
			return 0, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, s[i], i)
		}

		if n > (math.MaxUint64-uint64(digit))/c.base {
			return 0, fmt.Errorf("%s: %w", s, ErrOverflow)
		}
		n = n*c.base + uint64(digit)
	}

	return n, nil
}

// Valid проверяет, что строка состоит только из символов алфавита
func (c *Codec) Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if c.index[s[i]] < 0 {
			return false
		}
	}
	return true
}

// Encode кодирует число в Base62
func Encode(n uint64) string {
	return Base62.Encode(n)
}

// Decode декодирует Base62 строку
func Decode(s string) (uint64, error) {
	return Base62.Decode(s)
}
