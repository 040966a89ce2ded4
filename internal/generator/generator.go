package generator

import (
	"errors"
	"fmt"
	"time"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// DefaultLength is used when a caller does not specify a length.
	DefaultLength = 16
)

var (
	ErrEmptyPool     = errors.New("at least one character type must be selected")
	ErrLengthInvalid = errors.New("password length must be at least 1")
)

// Options configures a single generation run.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Result holds a generated password together with generation telemetry.
type Result struct {
	Password string
	PoolSize int
	Elapsed  time.Duration
}

// Generator produces random passwords by drawing characters independently and
// uniformly from the pool selected in Options.
type Generator struct {
	src Source
}

// New returns a Generator backed by src. A nil src falls back to crypto/rand.
func New(src Source) *Generator {
	if src == nil {
		src = cryptoSource{}
	}
	return &Generator{src: src}
}

// Generate creates a random password based on the given options. Every
// position is an independent uniform draw from the pool, so repeats are
// possible and no character class is guaranteed to appear.
func (g *Generator) Generate(opts Options) (Result, error) {
	start := time.Now()

	if opts.Length < 1 {
		return Result{}, ErrLengthInvalid
	}

	pool := buildPool(opts)
	if pool == "" {
		return Result{}, ErrEmptyPool
	}

	password := make([]byte, opts.Length)
	for i := range password {
		n, err := g.src.IntN(len(pool))
		if err != nil {
			return Result{}, fmt.Errorf("draw pool index: %w", err)
		}
		password[i] = pool[n]
	}

	return Result{
		Password: string(password),
		PoolSize: len(pool),
		Elapsed:  time.Since(start),
	}, nil
}

// buildPool concatenates the enabled charsets in a fixed order: uppercase,
// lowercase, numbers, symbols.
func buildPool(opts Options) string {
	var pool string
	if opts.Uppercase {
		pool += uppercaseChars
	}
	if opts.Lowercase {
		pool += lowercaseChars
	}
	if opts.Numbers {
		pool += numberChars
	}
	if opts.Symbols {
		pool += symbolChars
	}
	return pool
}
