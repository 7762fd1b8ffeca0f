package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hasbyte1/go-classical-ciphers/cipher"
	"github.com/hasbyte1/go-classical-ciphers/recipe"
	"github.com/hasbyte1/go-classical-ciphers/registry"
)

func runList(cfg config, m *registry.Manager, stdout io.Writer, log *logrus.Logger) int {
	fmt.Fprintln(stdout, "ciphers:")
	for _, name := range m.Drivers() {
		fmt.Fprintf(stdout, "  %s\n", name)
	}
	if cfg.recipes == "" {
		return 0
	}

	store := recipe.NewStore(cfg.recipes)
	if err := store.Load(); err != nil {
		log.WithError(err).Error("cannot load recipes")
		return 1
	}
	fmt.Fprintln(stdout, "recipes:")
	for _, r := range store.List() {
		names := make([]string, len(r.Steps))
		for i, s := range r.Steps {
			names[i] = string(s.Cipher)
		}
		fmt.Fprintf(stdout, "  %s (%s)\n", r.Name, strings.Join(names, " → "))
	}
	return 0
}

func runTransform(cfg config, m *registry.Manager, stdin io.Reader, stdout io.Writer, log *logrus.Logger) int {
	mode := "encrypt"
	if cfg.decrypt {
		mode = "decrypt"
	}
	entry := log.WithField("mode", mode)

	c, fields, err := buildCipher(cfg, m)
	if err != nil {
		entry.WithError(err).Error("cannot build cipher")
		return 2
	}
	entry = entry.WithFields(fields)

	in, closeIn, err := openInput(cfg.in, stdin)
	if err != nil {
		entry.WithError(err).Error("cannot open input")
		return 1
	}
	defer closeIn()

	out, closeOut, err := openOutput(cfg.out, stdout)
	if err != nil {
		entry.WithError(err).Error("cannot open output")
		return 1
	}

	var w *cipher.StreamWriter
	if cfg.decrypt {
		w = cipher.NewDecryptWriter(out, c)
	} else {
		w = cipher.NewEncryptWriter(out, c)
	}
	n, err := io.Copy(w, in)
	if err == nil {
		err = w.Close()
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}

	entry = entry.WithFields(logrus.Fields{"bytes_in": n, "bytes_out": w.BytesOut()})
	if err != nil {
		entry.WithError(err).Error("cannot " + mode)
		return 1
	}
	entry.Info("done")
	return 0
}

// buildCipher resolves either the recipe or the cipher/key pair of cfg.
func buildCipher(cfg config, m *registry.Manager) (cipher.Cipher, logrus.Fields, error) {
	if cfg.recipe == "" {
		c, err := m.New(registry.DriverName(cfg.cipher), cfg.key)
		return c, logrus.Fields{"cipher": cfg.cipher}, err
	}

	r, err := loadRecipe(cfg)
	if err != nil {
		return nil, nil, err
	}
	c, err := r.Build(m)
	return c, logrus.Fields{"recipe": r.Name, "steps": len(r.Steps)}, err
}

// loadRecipe reads a recipe file when cfg.recipe looks like a path, and
// looks it up in the recipe directory otherwise.
func loadRecipe(cfg config) (*recipe.Recipe, error) {
	if ext := filepath.Ext(cfg.recipe); ext == ".yaml" || ext == ".yml" {
		data, err := os.ReadFile(cfg.recipe)
		if err != nil {
			return nil, fmt.Errorf("read recipe: %w", err)
		}
		return recipe.Parse(data)
	}
	if cfg.recipes == "" {
		return nil, fmt.Errorf("recipe %q: no recipe directory; set -recipes or $%s", cfg.recipe, envRecipes)
	}

	store := recipe.NewStore(cfg.recipes)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store.Get(cfg.recipe)
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
