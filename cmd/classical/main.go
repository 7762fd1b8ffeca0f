// Command classical encrypts and decrypts text with classical ciphers.
//
//	classical -cipher vigenere -key LEMON <<< "attack at dawn"
//	classical -cipher hill -key "6 24 1 13 16 10 20 17 15" -decrypt -in msg.txt
//	classical -recipe lemon-affine -recipes ~/.config/classical/recipes
//	classical -list
//
// Letter ciphers ignore everything but ASCII letters on input, so grouped
// ciphertext can be piped straight back in for decryption.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hasbyte1/go-classical-ciphers/keyderive"
	"github.com/hasbyte1/go-classical-ciphers/registry"
)

const (
	envLogLevel  = "CLASSICAL_LOG_LEVEL"
	envRecipes   = "CLASSICAL_RECIPES"
	envKDFParams = "CLASSICAL_KDF_PARAMS"
)

// config is the parsed command line.
type config struct {
	cipher    string
	key       string
	decrypt   bool
	recipe    string
	recipes   string
	in        string
	out       string
	list      bool
	logLevel  string
	kdfParams string
	kdfInit   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code: 0 on
// success, 1 on a processing failure and 2 on a usage error.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := newLogger(stderr)
	if err := setLevel(log, cfg.logLevel); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if cfg.kdfInit {
		return runKDFInit(stdout, log)
	}

	kdf := keyderive.DefaultOptions()
	if cfg.kdfParams != "" {
		if kdf, err = keyderive.ParseParams(cfg.kdfParams); err != nil {
			log.WithError(err).Error("invalid key derivation parameters")
			return 2
		}
	}
	manager, err := registry.NewDefaultManager(registry.WithKeyDerivation(kdf))
	if err != nil {
		log.WithError(err).Error("cannot initialise ciphers")
		return 1
	}

	if cfg.list {
		return runList(cfg, manager, stdout, log)
	}
	return runTransform(cfg, manager, stdin, stdout, log)
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("classical", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.cipher, "cipher", string(registry.DriverVigenere), "cipher to use (see -list)")
	fs.StringVar(&cfg.key, "key", "", "key text; its format depends on the cipher")
	fs.BoolVar(&cfg.decrypt, "decrypt", false, "decrypt instead of encrypt")
	fs.StringVar(&cfg.recipe, "recipe", "", "recipe name from the recipe directory, or a path to a .yaml recipe")
	fs.StringVar(&cfg.recipes, "recipes", os.Getenv(envRecipes), "recipe directory (defaults to $"+envRecipes+")")
	fs.StringVar(&cfg.in, "in", "", "input file (defaults to stdin)")
	fs.StringVar(&cfg.out, "out", "", "output file (defaults to stdout)")
	fs.BoolVar(&cfg.list, "list", false, "list ciphers and recipes, then exit")
	fs.StringVar(&cfg.logLevel, "log-level", envOr(envLogLevel, "warning"), "log level (defaults to $"+envLogLevel+" or warning)")
	fs.StringVar(&cfg.kdfParams, "kdf-params", os.Getenv(envKDFParams), "Argon2 parameter string for vigenere-256-kdf")
	fs.BoolVar(&cfg.kdfInit, "kdf-init", false, "print a parameter string with a fresh random salt, then exit")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return config{}, errors.New("unexpected arguments")
	}
	return cfg, nil
}

func envOr(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func setLevel(log *logrus.Logger, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	return nil
}

func runKDFInit(stdout io.Writer, log *logrus.Logger) int {
	salt, err := keyderive.NewSalt(keyderive.DefaultSaltLen)
	if err != nil {
		log.WithError(err).Error("cannot generate salt")
		return 1
	}
	opts := keyderive.DefaultOptions()
	opts.Salt = salt
	fmt.Fprintln(stdout, opts.String())
	return 0
}
