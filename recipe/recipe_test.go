package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-classical-ciphers/cipher"
	"github.com/hasbyte1/go-classical-ciphers/modular"
	"github.com/hasbyte1/go-classical-ciphers/recipe"
	"github.com/hasbyte1/go-classical-ciphers/registry"
)

func newManager(t *testing.T) *registry.Manager {
	t.Helper()
	m, err := registry.NewDefaultManager()
	require.NoError(t, err)
	return m
}

const sampleYAML = `
name: lemon-affine
description: Vigenère followed by an affine pass
tags: [vigenere, affine]
steps:
  - cipher: vigenere
    key: LEMON
  - cipher: affine
    key: "5 8"
`

// ──────────────────────────────────────────────────────────────────────────────
// Parse / Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestParse(t *testing.T) {
	r, err := recipe.Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "lemon-affine", r.Name)
	assert.Equal(t, []string{"vigenere", "affine"}, r.Tags)
	assert.Equal(t, []recipe.Step{
		{Cipher: registry.DriverVigenere, Key: "LEMON"},
		{Cipher: registry.DriverAffine, Key: "5 8"},
	}, r.Steps)
	assert.Empty(t, r.ID)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty document", ""},
		{"not yaml", "steps: [unterminated"},
		{"unknown field", "name: x\nsteps: [{cipher: vigenere, key: A}]\ncolour: red\n"},
		{"missing name", "steps: [{cipher: vigenere, key: A}]\n"},
		{"no steps", "name: x\n"},
		{"step without cipher", "name: x\nsteps: [{key: A}]\n"},
		{"bad id", "id: not-a-uuid\nname: x\nsteps: [{cipher: vigenere, key: A}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recipe.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, recipe.ErrInvalidRecipe)
		})
	}
}

func TestMarshal_ParsesBack(t *testing.T) {
	r, err := recipe.Parse([]byte(sampleYAML))
	require.NoError(t, err)
	r.Steps[1].Invert = true

	data, err := recipe.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), "invert: true")
	assert.NotContains(t, string(data), "created_at")

	back, err := recipe.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

// ──────────────────────────────────────────────────────────────────────────────
// Build
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_MatchesManualChain(t *testing.T) {
	m := newManager(t)
	r, _ := recipe.Parse([]byte(sampleYAML))

	c, err := r.Build(m)
	require.NoError(t, err)
	ct, err := cipher.Encrypt(c, []byte("Attack at dawn!"))
	require.NoError(t, err)

	v, _ := m.New(registry.DriverVigenere, "LEMON")
	a, _ := m.New(registry.DriverAffine, "5 8")
	want, err := cipher.Encrypt(cipher.Chain(v, a), []byte("Attack at dawn!"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(ct))

	c, _ = r.Build(m)
	pt, err := cipher.Decrypt(c, ct)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", string(pt))
}

func TestBuild_DecryptsInReverseOrder(t *testing.T) {
	m := newManager(t)
	r := &recipe.Recipe{
		Name: "playfair-hill",
		Steps: []recipe.Step{
			{Cipher: registry.DriverPlayfair, Key: "playfair example"},
			{Cipher: registry.DriverHill, Key: "3 3 2 5"},
		},
	}

	c, err := r.Build(m)
	require.NoError(t, err)
	ct, err := cipher.Encrypt(c, []byte("balloon"))
	require.NoError(t, err)

	c, _ = r.Build(m)
	pt, err := cipher.Decrypt(c, ct)
	require.NoError(t, err)
	assert.Equal(t, "BALXLOON", string(pt))
}

func TestBuild_InvertedStep(t *testing.T) {
	m := newManager(t)
	r := &recipe.Recipe{
		Name:  "shift-down",
		Steps: []recipe.Step{{Cipher: registry.DriverVigenere256, Key: "\x01", Invert: true}},
	}
	c, err := r.Build(m)
	require.NoError(t, err)
	ct, err := cipher.Encrypt(c, []byte("bcd"))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(ct))
}

func TestBuild_InvertedStepInsidePipeline(t *testing.T) {
	m := newManager(t)
	r := &recipe.Recipe{
		Name: "cancel",
		Steps: []recipe.Step{
			{Cipher: registry.DriverVigenere, Key: "LEMON"},
			{Cipher: registry.DriverVigenere, Key: "LEMON", Invert: true},
		},
	}
	c, err := r.Build(m)
	require.NoError(t, err)
	ct, err := cipher.Encrypt(c, []byte("attack at dawn"))
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", string(ct))
}

func TestBuild_StepErrors(t *testing.T) {
	m := newManager(t)

	r := &recipe.Recipe{
		Name: "broken",
		Steps: []recipe.Step{
			{Cipher: registry.DriverVigenere, Key: "A"},
			{Cipher: "enigma", Key: "A"},
		},
	}
	_, err := r.Build(m)
	assert.ErrorIs(t, err, registry.ErrDriverNotFound)
	assert.Contains(t, err.Error(), "step 2")

	r.Steps[1] = recipe.Step{Cipher: registry.DriverAffine, Key: "2 1"}
	_, err = r.Build(m)
	assert.ErrorIs(t, err, cipher.ErrInvalidKey)
	assert.ErrorIs(t, err, modular.ErrNotCoprime)

	_, err = (&recipe.Recipe{Name: "empty"}).Build(m)
	assert.ErrorIs(t, err, recipe.ErrInvalidRecipe)
}
