// wotsctl manages Winternitz one-time keys: it generates and stores keys,
// signs with them once, and verifies signatures directly or in two split
// phases.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/ltcsuite/winternitz/keystore"
	"github.com/ltcsuite/winternitz/sigcache"
)

// app is the state shared by all commands of one invocation.
type app struct {
	cfg      *config
	out      io.Writer
	store    *keystore.Store
	sigCache *sigcache.SigCache
}

// openKeystore opens the keystore on first use.
func (a *app) openKeystore() (*keystore.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	s, err := keystore.Open(a.cfg.keystorePath())
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			ctlLog.Errorf("Unable to close keystore: %v", err)
		}
		a.store = nil
	}
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func newParser(a *app) *flags.Parser {
	parser := flags.NewParser(a.cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = false

	commands := []struct {
		name, short, long string
		data              interface{}
	}{
		{"generate", "Generate and store a new key",
			"Generate a random key, or derive one from a BIP-0039 mnemonic, store it and print its address.",
			&generateCmd{app: a}},
		{"list", "List stored keys", "Print the address of every stored key.",
			&listCmd{app: a}},
		{"show", "Show a stored key's public data",
			"Print the public key, pairing hash and address of a stored key.",
			&showCmd{app: a}},
		{"sign", "Sign a message with a stored key",
			"Sign a message and delete the key unless --keep is given.",
			&signCmd{app: a}},
		{"verify", "Verify a signature against an address",
			"Recover the address from a signature and compare it.",
			&verifyCmd{app: a}},
		{"split", "Split a signature into prime and execute parts",
			"Recover the pairing hash and print it with both signature halves.",
			&splitCmd{app: a}},
		{"verifysplit", "Verify a split signature",
			"Check the execute part against a trusted pairing hash, then the prime part against an address.",
			&verifySplitCmd{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			panic(err)
		}
	}

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if err := a.cfg.validate(); err != nil {
			return err
		}
		a.sigCache = sigcache.New(a.cfg.hasher, a.cfg.SigCacheMaxSize)

		logFile := filepath.Join(a.cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return err
		}
		defer closeLogRotator()
		setLogLevels(a.cfg.DebugLevel)

		defer a.close()
		return cmd.Execute(args)
	}

	return parser
}

// run parses args and executes the selected command, writing its results
// to out.
func run(args []string, out io.Writer) error {
	a := &app{cfg: defaultConfig(), out: out}
	return loadConfig(newParser(a), args)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
