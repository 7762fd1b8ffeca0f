// Package recipe stores named pipelines of cipher steps and builds them
// into a single [cipher.Cipher].
//
// A recipe is a YAML document:
//
//	name: double-vigenere
//	description: two Vigenère passes
//	tags: [vigenere, demo]
//	steps:
//	  - cipher: vigenere
//	    key: LEMON
//	  - cipher: affine
//	    key: "5 8"
//	  - cipher: vigenere-256
//	    key: x
//	    invert: true
//
// Encryption runs the steps in order.  Decryption runs them in reverse,
// each one decrypting, so a recipe's ciphertext decrypts with the same
// recipe.  An inverted step swaps its own two directions.
package recipe

import (
	"bytes"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-classical-ciphers/cipher"
	"github.com/hasbyte1/go-classical-ciphers/registry"
)

// Step is one cipher of a recipe.
type Step struct {
	Cipher registry.DriverName `yaml:"cipher"`
	Key    string              `yaml:"key"`
	Invert bool                `yaml:"invert,omitempty"`
}

// Recipe is a named chain of steps.
type Recipe struct {
	ID          string    `yaml:"id,omitempty"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Tags        []string  `yaml:"tags,omitempty"`
	Steps       []Step    `yaml:"steps"`
	CreatedAt   time.Time `yaml:"created_at,omitempty"`
	UpdatedAt   time.Time `yaml:"updated_at,omitempty"`
}

// Validate checks the structure of r.  Cipher names and keys are checked by
// [Recipe.Build].
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidRecipe)
	}
	if r.ID != "" {
		if _, err := uuid.Parse(r.ID); err != nil {
			return fmt.Errorf("%w: id %q: %v", ErrInvalidRecipe, r.ID, err)
		}
	}
	if len(r.Steps) == 0 {
		return fmt.Errorf("%w: %q has no steps", ErrInvalidRecipe, r.Name)
	}
	for i, s := range r.Steps {
		if s.Cipher == "" {
			return fmt.Errorf("%w: %q step %d has no cipher", ErrInvalidRecipe, r.Name, i+1)
		}
	}
	return nil
}

// Build creates fresh cipher instances for every step from m and joins
// them into one cipher.  Each call returns an independent pipeline.
func (r *Recipe) Build(m *registry.Manager) (cipher.Cipher, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	enc, err := r.pipeline(m, false)
	if err != nil {
		return nil, err
	}
	if len(r.Steps) == 1 {
		return enc, nil
	}
	dec, err := r.pipeline(m, true)
	if err != nil {
		return nil, err
	}
	return cipher.Combine(enc, cipher.Invert(dec)), nil
}

// pipeline chains one instance per step.  With reverse set it chains the
// inverted steps last to first, so encrypting through it decrypts the
// recipe.
func (r *Recipe) pipeline(m *registry.Manager, reverse bool) (cipher.Cipher, error) {
	steps := r.Steps
	if reverse {
		steps = slices.Clone(steps)
		slices.Reverse(steps)
	}

	var out cipher.Cipher
	for i, s := range steps {
		c, err := m.New(s.Cipher, s.Key)
		if err != nil {
			n := i + 1
			if reverse {
				n = len(steps) - i
			}
			return nil, fmt.Errorf("recipe %q: step %d: %w", r.Name, n, err)
		}
		if s.Invert {
			c = cipher.Invert(c)
		}
		if reverse {
			c = cipher.Invert(c)
		}
		if out == nil {
			out = c
		} else {
			out = cipher.Chain(out, c)
		}
	}
	return out, nil
}

func (r *Recipe) clone() *Recipe {
	c := *r
	c.Tags = slices.Clone(r.Tags)
	c.Steps = slices.Clone(r.Steps)
	return &c
}

// Parse decodes and validates a YAML recipe.  Unknown fields are rejected.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Marshal encodes r as YAML.
func Marshal(r *Recipe) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("recipe: failed to serialize %q: %w", r.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("recipe: failed to serialize %q: %w", r.Name, err)
	}
	return buf.Bytes(), nil
}
